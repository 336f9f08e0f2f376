package talentscout

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/poiesic/talentscout/ai/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenIndex(t *testing.T) {
	t.Run("create new index", func(t *testing.T) {
		tmpDir := filepath.Join(t.TempDir(), "test_index")
		ix, err := OpenIndex(tmpDir, WithProvider(mock.NewMockProvider()))
		require.NoError(t, err)
		require.NotNil(t, ix)
		defer ix.Close()

		// Verify components are initialized
		assert.NotNil(t, ix.CandidateRepository())
		assert.NotNil(t, ix.Provider())
		assert.NotNil(t, ix.backend)
		assert.NotNil(t, ix.logger)
	})

	t.Run("in-memory index", func(t *testing.T) {
		ix, err := OpenIndex("", WithInMemory(), WithProvider(mock.NewMockProvider()))
		require.NoError(t, err)
		require.NotNil(t, ix)
		defer ix.Close()
	})

	t.Run("error with invalid path", func(t *testing.T) {
		// Try to create an index at a file path instead of directory
		tmpFile := filepath.Join(t.TempDir(), "not_a_dir")
		err := os.WriteFile(tmpFile, []byte("test"), 0644)
		require.NoError(t, err)

		ix, err := OpenIndex(tmpFile, WithProvider(mock.NewMockProvider()))
		assert.Error(t, err)
		assert.Nil(t, ix)
	})
}

func TestIndex_Close(t *testing.T) {
	ix, err := OpenIndex("", WithInMemory(), WithProvider(mock.NewMockProvider()))
	require.NoError(t, err)
	require.NotNil(t, ix)

	err = ix.Close()
	assert.NoError(t, err)
}

func TestIndex_FactoryMethods(t *testing.T) {
	ix, err := OpenIndex("", WithInMemory(), WithProvider(mock.NewMockProvider()))
	require.NoError(t, err)
	defer ix.Close()

	t.Run("can create ingestion pipeline", func(t *testing.T) {
		pipeline, err := ix.NewPipeline()
		require.NoError(t, err)
		require.NotNil(t, pipeline)
		pipeline.Release()
	})

	t.Run("can create matcher", func(t *testing.T) {
		matcher, err := ix.NewMatcher()
		require.NoError(t, err)
		require.NotNil(t, matcher)
		matcher.Release()
	})
}

func TestIndex_IngestAndMatch(t *testing.T) {
	ix, err := OpenIndex("", WithInMemory(), WithProvider(mock.NewMockProvider()))
	require.NoError(t, err)
	defer ix.Close()

	ctx := context.Background()

	_, err = ix.Ingest(ctx, "backend", "Technical Skills\ngo python sql docker\n\nWork Experience\nbackend services", nil)
	require.NoError(t, err)
	_, err = ix.Ingest(ctx, "frontend", "Technical Skills\njavascript css react\n\nWork Experience\nweb interfaces", nil)
	require.NoError(t, err)

	results, err := ix.Match(ctx, "go backend engineer with sql", 5)
	require.NoError(t, err)
	require.Len(t, results, 2)

	// Keyword overlap favors the backend candidate
	var backendScore, frontendScore float64
	for _, r := range results {
		switch r.CandidateID {
		case "backend":
			backendScore = r.KeywordScore
		case "frontend":
			frontendScore = r.KeywordScore
		}
	}
	assert.Greater(t, backendScore, frontendScore)
}
