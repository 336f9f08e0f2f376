package reindex

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/poiesic/talentscout/ai"
	"github.com/poiesic/talentscout/core"
	"github.com/poiesic/talentscout/storage"
)

// BatchProcessor regenerates embeddings for batches of candidate records.
type BatchProcessor struct {
	repo           storage.CandidateRepository
	embedder       ai.Embedder
	maxRetries     int
	retryBaseDelay time.Duration
}

// NewBatchProcessor creates a new batch processor.
// maxRetries: maximum number of retry attempts for embedding API calls
// retryBaseDelay: base delay for exponential backoff
func NewBatchProcessor(repo storage.CandidateRepository, embedder ai.Embedder, maxRetries int, retryBaseDelay time.Duration) *BatchProcessor {
	return &BatchProcessor{
		repo:           repo,
		embedder:       embedder,
		maxRetries:     maxRetries,
		retryBaseDelay: retryBaseDelay,
	}
}

// Process regenerates embeddings for a batch of candidates and updates them
// in the database. Full texts are embedded as one batch call; the skills and
// experience section vectors are rebuilt from the stored section excerpts,
// falling back to the zero-vector placeholder for absent sections. Vectors
// are normalized after embedding so cosine similarity stays well-behaved.
func (bp *BatchProcessor) Process(ctx context.Context, records []*core.CandidateRecord) error {
	if len(records) == 0 {
		return nil
	}

	// Embed all full texts in one call
	texts := make([]string, len(records))
	for i, record := range records {
		texts[i] = record.FullText
	}

	var embeddings [][]float32
	err := RetryWithBackoff(ctx, func() error {
		var err error
		embeddings, err = bp.embedder.EmbedTexts(ctx, texts)
		return err
	}, bp.maxRetries, bp.retryBaseDelay)

	if err != nil {
		return fmt.Errorf("failed to generate embeddings after %d attempts: %w", bp.maxRetries, err)
	}

	if len(embeddings) != len(records) {
		return fmt.Errorf("embedding count mismatch: expected %d, got %d", len(records), len(embeddings))
	}

	for i := range records {
		records[i].Embedding = NormalizeVector(embeddings[i])

		skills, err := bp.sectionVector(ctx, records[i], core.SectionSkills)
		if err != nil {
			return err
		}
		records[i].SkillsVector = skills

		experience, err := bp.sectionVector(ctx, records[i], core.SectionExperience)
		if err != nil {
			return err
		}
		records[i].ExperienceVector = experience
	}

	_, err = bp.repo.UpsertCandidates(ctx, records...)
	if err != nil {
		return fmt.Errorf("failed to update records: %w", err)
	}

	return nil
}

// sectionVector rebuilds one section embedding from the stored excerpt.
func (bp *BatchProcessor) sectionVector(ctx context.Context, record *core.CandidateRecord, name core.SectionName) ([]float32, error) {
	excerpt, ok := record.SectionExcerpts[name]
	if !ok || strings.TrimSpace(excerpt) == "" {
		return core.ZeroVector(), nil
	}

	var vector []float32
	err := RetryWithBackoff(ctx, func() error {
		var err error
		vector, err = bp.embedder.EmbedText(ctx, excerpt)
		return err
	}, bp.maxRetries, bp.retryBaseDelay)
	if err != nil {
		return nil, fmt.Errorf("failed to embed %s section for %s: %w", name, record.ID, err)
	}

	return NormalizeVector(vector), nil
}
