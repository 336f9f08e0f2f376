package badger

import (
	"context"
	"testing"
	"time"

	"github.com/poiesic/talentscout/core"
	"github.com/poiesic/talentscout/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) storage.CandidateRepository {
	t.Helper()
	repo, backend, err := NewMemoryRepository()
	require.NoError(t, err)
	t.Cleanup(func() {
		repo.Close()
		backend.Close()
	})
	return repo
}

func TestUpsertCandidates_SetsTimestamps(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	record := &core.CandidateRecord{
		ID:       "cand-1",
		FullText: "Backend engineer",
	}

	added, err := repo.UpsertCandidates(ctx, record)
	require.NoError(t, err)
	require.Len(t, added, 1)

	assert.False(t, added[0].InsertedAt.IsZero())
	assert.False(t, added[0].UpdatedAt.IsZero())
	assert.Equal(t, added[0].InsertedAt, added[0].UpdatedAt)
}

func TestUpsertCandidates_EmptyID(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.UpsertCandidates(context.Background(), &core.CandidateRecord{
		FullText: "no id",
	})
	assert.ErrorIs(t, err, core.ErrEmptyID)
}

func TestUpsertCandidates_LastWriteWins(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	first := &core.CandidateRecord{
		ID:       "cand-1",
		FullText: "Original text",
		Metadata: map[string]string{"version": "1"},
	}
	_, err := repo.UpsertCandidates(ctx, first)
	require.NoError(t, err)

	insertedAt := first.InsertedAt
	time.Sleep(2 * time.Millisecond)

	second := &core.CandidateRecord{
		ID:       "cand-1",
		FullText: "Replacement text",
		Metadata: map[string]string{"version": "2"},
	}
	_, err = repo.UpsertCandidates(ctx, second)
	require.NoError(t, err)

	got, err := repo.GetCandidate(ctx, "cand-1")
	require.NoError(t, err)

	assert.Equal(t, "Replacement text", got.FullText)
	assert.Equal(t, "2", got.Metadata["version"])
	// InsertedAt survives the replacement, UpdatedAt moves forward
	assert.True(t, got.InsertedAt.Equal(insertedAt.Truncate(time.Microsecond)) || got.InsertedAt.Equal(insertedAt))
	assert.True(t, got.UpdatedAt.After(got.InsertedAt))

	count, err := repo.CountCandidates(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestGetCandidate_NotFound(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.GetCandidate(context.Background(), "missing")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestGetCandidates_SkipsMissing(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.UpsertCandidates(ctx,
		&core.CandidateRecord{ID: "a", FullText: "a"},
		&core.CandidateRecord{ID: "b", FullText: "b"},
	)
	require.NoError(t, err)

	records, err := repo.GetCandidates(ctx, "a", "missing", "b")
	require.NoError(t, err)
	require.Len(t, records, 2)
}

func TestDeleteCandidates(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.UpsertCandidates(ctx, &core.CandidateRecord{ID: "a", FullText: "a"})
	require.NoError(t, err)

	err = repo.DeleteCandidates(ctx, "a")
	require.NoError(t, err)

	_, err = repo.GetCandidate(ctx, "a")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestDeleteCandidates_NotFound(t *testing.T) {
	repo := newTestRepo(t)

	err := repo.DeleteCandidates(context.Background(), "missing")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestGetAllCandidates(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	all, err := repo.GetAllCandidates(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	_, err = repo.UpsertCandidates(ctx,
		&core.CandidateRecord{ID: "a", FullText: "a", Embedding: []float32{0.1, 0.2}},
		&core.CandidateRecord{ID: "b", FullText: "b"},
		&core.CandidateRecord{ID: "c", FullText: "c"},
	)
	require.NoError(t, err)

	all, err = repo.GetAllCandidates(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)

	ids := make([]string, 0, len(all))
	for _, rec := range all {
		ids = append(ids, rec.ID)
	}
	assert.ElementsMatch(t, []string{"a", "b", "c"}, ids)
}

func TestCountCandidates(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	count, err := repo.CountCandidates(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	_, err = repo.UpsertCandidates(ctx,
		&core.CandidateRecord{ID: "a", FullText: "a"},
		&core.CandidateRecord{ID: "b", FullText: "b"},
	)
	require.NoError(t, err)

	count, err = repo.CountCandidates(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestCandidateRecord_PersistsVectorsAndSections(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	record := &core.CandidateRecord{
		ID:              "cand-full",
		FullText:        "Skills: Go\nWork Experience: many years",
		FullTextExcerpt: "Skills: Go",
		SectionExcerpts: map[core.SectionName]string{
			core.SectionSkills:     "Go",
			core.SectionExperience: "many years",
		},
		Embedding:        []float32{0.5, 0.5, 0.5},
		SkillsVector:     []float32{1.0, 0.0, 0.0},
		ExperienceVector: core.ZeroVector(),
		Metadata:         map[string]string{"source": "upload"},
	}

	_, err := repo.UpsertCandidates(ctx, record)
	require.NoError(t, err)

	got, err := repo.GetCandidate(ctx, "cand-full")
	require.NoError(t, err)

	assert.Equal(t, record.FullText, got.FullText)
	assert.Equal(t, record.SectionExcerpts, got.SectionExcerpts)
	assert.Equal(t, record.Embedding, got.Embedding)
	assert.Equal(t, record.SkillsVector, got.SkillsVector)
	assert.True(t, core.IsZeroVector(got.ExperienceVector))
	assert.Equal(t, "upload", got.Metadata["source"])
}
