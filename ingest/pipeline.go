package ingest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/talentscout/ai"
	"github.com/poiesic/talentscout/core"
	"github.com/poiesic/talentscout/extract"
	"github.com/poiesic/talentscout/storage"
)

const (
	// sectionExcerptLength bounds how much of each detected section is kept
	// on the stored record for display purposes.
	sectionExcerptLength = 1000

	// fullTextExcerptLength bounds the stored full-text excerpt used for
	// match snippets.
	fullTextExcerptLength = 2000
)

// Pipeline turns parsed candidate documents into embedded, stored records.
type Pipeline struct {
	repository storage.CandidateRepository
	embedder   ai.Embedder
	pool       *ants.Pool
	logger     *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent batch ingestion.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}

		if p.pool != nil {
			p.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}

		p.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates a new ingestion pipeline.
func NewPipeline(
	repository storage.CandidateRepository,
	provider ai.Provider,
	opts ...Option,
) (*Pipeline, error) {
	if repository == nil {
		return nil, ErrCandidateRepositoryRequired
	}
	if provider == nil {
		return nil, ErrAIProviderRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		repository: repository,
		embedder:   provider.Embedder(),
		pool:       pool,
		logger:     slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(p); err != nil {
			p.Release()
			return nil, err
		}
	}

	return p, nil
}

// Release releases the ingestion worker pool.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.pool != nil {
		p.pool.Release()
	}
}

// IngestText sections raw text and ingests it as one candidate document.
// An empty id gets a content-derived ID so re-ingesting the same text
// overwrites instead of duplicating.
func (p *Pipeline) IngestText(ctx context.Context, id, text string, metadata map[string]string) (*core.CandidateRecord, error) {
	doc := &core.ParsedDocument{
		ID:       id,
		RawText:  text,
		Sections: extract.ChunkSections(text),
		Metadata: metadata,
	}
	return p.IngestDocument(ctx, doc)
}

// IngestDocument embeds and stores one parsed document synchronously.
//
// The full text is always embedded; a failure there fails the ingest. The
// skills and experience sections are embedded when present and non-empty,
// otherwise their vectors hold the zero-vector placeholder. A section
// embedding failure degrades that section to the placeholder rather than
// failing the document.
func (p *Pipeline) IngestDocument(ctx context.Context, doc *core.ParsedDocument) (*core.CandidateRecord, error) {
	if err := core.ValidateParsedDocument(doc); err != nil {
		return nil, err
	}

	id := doc.ID
	if id == "" {
		id = core.IDFromContent(doc.RawText)
	}

	embedding, err := p.embedder.EmbedText(ctx, doc.RawText)
	if err != nil {
		p.logger.Error("error embedding document", "candidateID", id, "err", err)
		return nil, fmt.Errorf("%w: %v", ErrEmbeddingFailed, err)
	}

	record := &core.CandidateRecord{
		ID:               id,
		FullText:         doc.RawText,
		FullTextExcerpt:  truncate(doc.RawText, fullTextExcerptLength),
		SectionExcerpts:  make(map[core.SectionName]string, len(doc.Sections)),
		Embedding:        embedding,
		SkillsVector:     p.sectionVector(ctx, id, core.SectionSkills, doc.Sections),
		ExperienceVector: p.sectionVector(ctx, id, core.SectionExperience, doc.Sections),
		Metadata:         doc.Metadata,
	}

	for name, content := range doc.Sections {
		record.SectionExcerpts[name] = truncate(content, sectionExcerptLength)
	}

	if err := core.ValidateCandidateRecord(record); err != nil {
		return nil, err
	}

	stored, err := p.repository.UpsertCandidates(ctx, record)
	if err != nil {
		return nil, err
	}

	p.logger.Info("ingested candidate document",
		"candidateID", id,
		"sections", len(doc.Sections),
		"textLength", len(doc.RawText))

	return stored[0], nil
}

// IngestAll ingests documents concurrently through the worker pool.
// Documents that fail are skipped; their errors are joined into the returned
// error alongside the successfully stored records.
func (p *Pipeline) IngestAll(ctx context.Context, docs []*core.ParsedDocument) ([]*core.CandidateRecord, error) {
	records := make([]*core.CandidateRecord, len(docs))
	errs := make([]error, len(docs))

	var wg sync.WaitGroup
	for i, doc := range docs {
		wg.Add(1)
		idx, d := i, doc
		task := func() {
			defer wg.Done()
			records[idx], errs[idx] = p.IngestDocument(ctx, d)
		}
		if submitErr := p.pool.Submit(task); submitErr != nil {
			// Pool exhausted or released; ingest on the calling goroutine
			task()
		}
	}
	wg.Wait()

	stored := make([]*core.CandidateRecord, 0, len(docs))
	for i, record := range records {
		if errs[i] != nil {
			p.logger.Warn("skipping document after ingest failure", "index", i, "err", errs[i])
			continue
		}
		stored = append(stored, record)
	}

	return stored, errors.Join(errs...)
}

// sectionVector embeds one section's content, returning the zero-vector
// placeholder when the section is absent, empty, or fails to embed.
func (p *Pipeline) sectionVector(ctx context.Context, id string, name core.SectionName, sections map[core.SectionName]string) []float32 {
	content, ok := sections[name]
	if !ok || strings.TrimSpace(content) == "" {
		return core.ZeroVector()
	}

	vector, err := p.embedder.EmbedText(ctx, content)
	if err != nil {
		p.logger.Warn("error embedding section, storing placeholder",
			"candidateID", id, "section", name, "err", err)
		return core.ZeroVector()
	}
	return vector
}

// truncate returns at most limit runes of text.
func truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) > limit {
		return string(runes[:limit])
	}
	return text
}
