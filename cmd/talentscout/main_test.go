package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreBand(t *testing.T) {
	tests := []struct {
		score    float64
		expected string
	}{
		{0.95, "strong match"},
		{0.81, "strong match"},
		{0.80, "potential match"},
		{0.61, "potential match"},
		{0.60, "weak match"},
		{0.10, "weak match"},
		{-0.2, "weak match"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, scoreBand(tt.score), "score %v", tt.score)
	}
}

func TestFirstLine(t *testing.T) {
	assert.Equal(t, "first", firstLine("first\nsecond"))
	assert.Equal(t, "only", firstLine("only"))
	assert.Equal(t, "", firstLine(""))
}

func TestCollectDocumentPaths(t *testing.T) {
	tmpDir := t.TempDir()

	write := func(name string) string {
		path := filepath.Join(tmpDir, name)
		require.NoError(t, os.WriteFile(path, []byte("resume text"), 0644))
		return path
	}

	resumeA := write("a.txt")
	write("b.md")
	write("ignored.pdf")

	t.Run("single file", func(t *testing.T) {
		paths, err := collectDocumentPaths([]string{resumeA})
		require.NoError(t, err)
		assert.Equal(t, []string{resumeA}, paths)
	})

	t.Run("directory filters by extension", func(t *testing.T) {
		paths, err := collectDocumentPaths([]string{tmpDir})
		require.NoError(t, err)
		assert.Len(t, paths, 2)
	})

	t.Run("missing path errors", func(t *testing.T) {
		_, err := collectDocumentPaths([]string{filepath.Join(tmpDir, "missing.txt")})
		assert.Error(t, err)
	})
}
