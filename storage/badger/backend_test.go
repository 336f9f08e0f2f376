package badger

import (
	"context"
	"testing"

	"github.com/poiesic/talentscout/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenBackend_InMemory(t *testing.T) {
	backend, err := OpenBackend("", true)
	require.NoError(t, err)
	require.NotNil(t, backend)
	defer backend.Close()

	assert.False(t, backend.IsClosed())
}

func TestOpenBackend_FileSystem(t *testing.T) {
	tmpDir := t.TempDir()
	backend, err := OpenBackend(tmpDir, false)
	require.NoError(t, err)
	require.NotNil(t, backend)
	defer backend.Close()

	assert.False(t, backend.IsClosed())
}

func TestBackendClose(t *testing.T) {
	backend, err := OpenBackend("", true)
	require.NoError(t, err)
	require.NotNil(t, backend)

	assert.False(t, backend.IsClosed())

	err = backend.Close()
	require.NoError(t, err)

	assert.True(t, backend.IsClosed())
}

func TestFindNearest_NoRecords(t *testing.T) {
	backend, err := OpenBackend("", true)
	require.NoError(t, err)
	defer backend.Close()

	ctx := context.Background()
	vector := []float32{0.1, 0.2, 0.3}

	hits, err := backend.FindNearest(ctx, vector, 10)
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestFindNearest_InvalidLimit(t *testing.T) {
	backend, err := OpenBackend("", true)
	require.NoError(t, err)
	defer backend.Close()

	_, err = backend.FindNearest(context.Background(), []float32{1, 0, 0}, 0)
	assert.Error(t, err)
}

func TestFindNearest_WithRecords(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	require.NoError(t, err)
	defer func() {
		repo.Close()
		backend.Close()
	}()

	ctx := context.Background()

	// Create records with different vectors
	records := []*core.CandidateRecord{
		{
			ID:        "cand-near",
			FullText:  "First candidate",
			Embedding: []float32{1.0, 0.0, 0.0}, // identical direction to query
		},
		{
			ID:        "cand-close",
			FullText:  "Second candidate",
			Embedding: []float32{0.9, 0.1, 0.0}, // somewhat similar
		},
		{
			ID:        "cand-far",
			FullText:  "Third candidate",
			Embedding: []float32{0.0, 0.0, 1.0}, // orthogonal
		},
		{
			ID:        "cand-novec",
			FullText:  "Fourth candidate without vector",
			Embedding: nil, // no embedding - should be skipped
		},
	}

	added, err := repo.UpsertCandidates(ctx, records...)
	require.NoError(t, err)
	require.Len(t, added, 4)

	queryVector := []float32{1.0, 0.0, 0.0}
	hits, err := backend.FindNearest(ctx, queryVector, 10)
	require.NoError(t, err)

	// The embedding-less record is skipped
	require.Len(t, hits, 3)

	// Ordered by distance ascending
	assert.Equal(t, "cand-near", hits[0].Record.ID)
	assert.Equal(t, "cand-close", hits[1].Record.ID)
	assert.Equal(t, "cand-far", hits[2].Record.ID)

	assert.InDelta(t, 0.0, hits[0].Distance, 1e-5)
	assert.InDelta(t, 1.0, hits[2].Distance, 1e-5)
	for i := 1; i < len(hits); i++ {
		assert.GreaterOrEqual(t, hits[i].Distance, hits[i-1].Distance)
	}
}

func TestFindNearest_LimitApplied(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	require.NoError(t, err)
	defer func() {
		repo.Close()
		backend.Close()
	}()

	ctx := context.Background()

	records := []*core.CandidateRecord{
		{ID: "a", FullText: "a", Embedding: []float32{1.0, 0.0}},
		{ID: "b", FullText: "b", Embedding: []float32{0.8, 0.2}},
		{ID: "c", FullText: "c", Embedding: []float32{0.5, 0.5}},
	}
	_, err = repo.UpsertCandidates(ctx, records...)
	require.NoError(t, err)

	hits, err := backend.FindNearest(ctx, []float32{1.0, 0.0}, 2)
	require.NoError(t, err)
	require.Len(t, hits, 2)
	assert.Equal(t, "a", hits[0].Record.ID)
}

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float32
		expected float32
	}{
		{"identical direction", []float32{1, 0, 0}, []float32{2, 0, 0}, 1.0},
		{"orthogonal", []float32{1, 0}, []float32{0, 1}, 0.0},
		{"opposite", []float32{1, 0}, []float32{-1, 0}, -1.0},
		{"zero vector", []float32{0, 0}, []float32{1, 0}, 0.0},
		{"both zero", []float32{0, 0}, []float32{0, 0}, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, cosineSimilarity(tt.a, tt.b), 1e-6)
		})
	}
}
