package match

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sort"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/talentscout/ai"
	"github.com/poiesic/talentscout/core"
	"github.com/poiesic/talentscout/storage"
)

// overFetchFactor controls how many candidates are pulled from the vector
// index relative to the requested result count. Fusion scoring can reorder
// the retrieval ranking, so the index is asked for a wider slate than the
// caller will receive.
const overFetchFactor = 3

// Matcher ranks stored candidates against a job description using hybrid
// keyword, semantic, and entity-overlap scoring.
type Matcher struct {
	repository storage.CandidateRepository
	embedder   ai.Embedder
	extractor  ai.EntityExtractor
	pool       *ants.Pool
	logger     *slog.Logger
}

// Option configures a Matcher.
type Option func(*Matcher) error

// WithPoolSize sets the worker pool size for concurrent candidate scoring.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(m *Matcher) error {
		if size < 1 {
			size = 1
		}

		if m.pool != nil {
			m.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}

		m.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(m *Matcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		m.logger = logger
		return nil
	}
}

// NewMatcher creates a new matcher.
func NewMatcher(
	repository storage.CandidateRepository,
	provider ai.Provider,
	opts ...Option,
) (*Matcher, error) {
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

	m := &Matcher{
		repository: repository,
		embedder:   provider.Embedder(),
		extractor:  provider.EntityExtractor(),
		pool:       pool,
		logger:     slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(m); err != nil {
			m.Release()
			return nil, err
		}
	}

	return m, nil
}

// Release releases the scoring worker pool.
// The matcher should not be used after calling Release.
func (m *Matcher) Release() {
	if m.pool != nil {
		m.pool.Release()
	}
}

// Match ranks candidates against the job description.
// Returns up to topK results ordered by final score descending.
func (m *Matcher) Match(ctx context.Context, jobDescription string, topK int) ([]*core.MatchResult, error) {
	return m.MatchWithMonitor(ctx, jobDescription, topK, nil)
}

// MatchWithMonitor ranks candidates against the job description with monitoring.
// The monitor receives callbacks at each stage of the matching process.
// Returns up to topK results ordered by final score descending; ties keep
// their retrieval order.
func (m *Matcher) MatchWithMonitor(ctx context.Context, jobDescription string, topK int, monitor MatchMonitor) ([]*core.MatchResult, error) {
	if topK < 1 {
		return nil, ErrInvalidTopK
	}

	// Use noop monitor if none provided
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	monitor.Start(jobDescription)

	// 1. Embed the job description once for the whole match
	queryVector, err := m.embedder.EmbedText(ctx, jobDescription)
	if err != nil {
		m.logger.Error("error generating embedding for job description", "err", err)
		return nil, fmt.Errorf("%w: %v", ErrEmbeddingFailed, err)
	}
	monitor.AfterQueryEmbedding(queryVector)

	// 2. Over-fetch from the vector index
	hits, err := m.repository.FindNearest(ctx, queryVector, topK*overFetchFactor)
	if err != nil {
		m.logger.Error("error querying vector index", "err", err)
		return nil, err
	}
	monitor.AfterRetrieval(hits)

	if len(hits) == 0 {
		results := []*core.MatchResult{}
		monitor.Finish(results)
		return results, nil
	}

	// 3. Extract entities from the query. NER being unavailable or failing
	// degrades the entity signal to zero rather than failing the match.
	queryEntities := make(map[string]bool)
	entities, err := m.extractor.ExtractEntities(ctx, jobDescription)
	if err != nil {
		m.logger.Warn("error extracting entities from job description", "err", err)
	} else {
		for _, entity := range entities {
			queryEntities[entity] = true
		}
	}
	monitor.AfterQueryEntityExtraction(entities)

	query := &queryContext{
		text:     jobDescription,
		vector:   queryVector,
		tokens:   tokenize(jobDescription),
		entities: queryEntities,
	}

	// 4. Score candidates concurrently, each into its retrieval-order slot
	results := make([]*core.MatchResult, len(hits))
	scoreErrs := make([]error, len(hits))

	var wg sync.WaitGroup
	for i, hit := range hits {
		wg.Add(1)
		idx, record := i, hit.Record
		task := func() {
			defer wg.Done()
			results[idx], scoreErrs[idx] = m.scoreCandidate(ctx, query, record)
		}
		if submitErr := m.pool.Submit(task); submitErr != nil {
			// Pool exhausted or released; score on the calling goroutine
			task()
		}
	}
	wg.Wait()

	// 5. Collect in retrieval order, dropping candidates that failed
	scored := make([]*core.MatchResult, 0, len(hits))
	for i, result := range results {
		if scoreErrs[i] != nil {
			m.logger.Warn("skipping candidate after scoring failure",
				"candidateID", hits[i].Record.ID, "err", scoreErrs[i])
			monitor.CandidateSkipped(hits[i].Record.ID, scoreErrs[i])
			continue
		}
		monitor.CandidateScored(result)
		scored = append(scored, result)
	}

	// 6. Stable sort by final score descending; retrieval order breaks ties
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].FinalScore > scored[j].FinalScore
	})
	if len(scored) > topK {
		scored = scored[:topK]
	}
	monitor.Finish(scored)

	return scored, nil
}

// scoreCandidate computes the three sub-scores and the fused final score for
// one candidate. A missing stored embedding is re-generated from the full
// text; if that fails the candidate is reported as unscoreable.
func (m *Matcher) scoreCandidate(ctx context.Context, query *queryContext, record *core.CandidateRecord) (*core.MatchResult, error) {
	embedding := record.Embedding
	if len(embedding) == 0 {
		var err error
		embedding, err = m.embedder.EmbedText(ctx, record.FullText)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrEmbeddingFailed, err)
		}
		record.Embedding = embedding
	}

	keyword, matched, missing := keywordScore(query.tokens, record.FullText)
	semantic := semanticScore(query.vector, record)

	var entity float64
	if len(query.entities) > 0 {
		candidateEntities, err := m.extractor.ExtractEntities(ctx, record.FullText)
		if err != nil {
			m.logger.Warn("error extracting entities from candidate",
				"candidateID", record.ID, "err", err)
		} else {
			entity = entityOverlapScore(query.entities, candidateEntities)
		}
	}

	return &core.MatchResult{
		CandidateID:        record.ID,
		KeywordScore:       keyword,
		SemanticScore:      semantic,
		EntityOverlapScore: entity,
		FinalScore:         fuseScores(keyword, semantic, entity),
		Snippet:            snippet(record),
		MatchedKeywords:    matched,
		MissingKeywords:    missing,
	}, nil
}
