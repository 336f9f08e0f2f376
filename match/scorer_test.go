package match

import (
	"testing"

	"github.com/poiesic/talentscout/ai/mock"
	"github.com/poiesic/talentscout/core"
	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{"simple words", "Python and SQL", []string{"python", "and", "sql"}},
		{"preserves c++", "Expert in C++ development", []string{"expert", "in", "c++", "development"}},
		{"preserves c#", "C# and .NET", []string{"c#", "and", "net"}},
		{"preserves hyphenated", "node-js and vue-js", []string{"node-js", "and", "vue-js"}},
		{"strips punctuation", "Go, Rust; Python.", []string{"go", "rust", "python"}},
		{"empty string", "", nil},
		{"only punctuation", "... !!! ???", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tokenize(tt.text))
		})
	}
}

func TestKeywordScore(t *testing.T) {
	t.Run("partial overlap", func(t *testing.T) {
		score, matched, missing := keywordScore(
			tokenize("python sql docker"),
			"Seasoned engineer: python, sql, aws",
		)
		assert.InDelta(t, 2.0/3.0, score, 1e-9)
		assert.Equal(t, []string{"python", "sql"}, matched)
		assert.Equal(t, []string{"docker"}, missing)
	})

	t.Run("full overlap", func(t *testing.T) {
		score, matched, missing := keywordScore(tokenize("go badger"), "go and badger all day")
		assert.Equal(t, 1.0, score)
		assert.Len(t, matched, 2)
		assert.Empty(t, missing)
	})

	t.Run("no overlap", func(t *testing.T) {
		score, matched, missing := keywordScore(tokenize("haskell"), "python shop")
		assert.Equal(t, 0.0, score)
		assert.Empty(t, matched)
		assert.Equal(t, []string{"haskell"}, missing)
	})

	t.Run("empty query", func(t *testing.T) {
		score, matched, missing := keywordScore(nil, "anything at all")
		assert.Equal(t, 0.0, score)
		assert.Empty(t, matched)
		assert.Empty(t, missing)
	})

	t.Run("duplicate query tokens counted once", func(t *testing.T) {
		score, matched, missing := keywordScore(
			tokenize("python python sql"),
			"python only here",
		)
		assert.InDelta(t, 0.5, score, 1e-9)
		assert.Equal(t, []string{"python"}, matched)
		assert.Equal(t, []string{"sql"}, missing)
	})

	t.Run("matched and missing partition the query tokens", func(t *testing.T) {
		queryTokens := tokenize("go rust c++ sql kafka")
		_, matched, missing := keywordScore(queryTokens, "go c++ projects")
		assert.Len(t, matched, 2)
		assert.Len(t, missing, 3)
		assert.ElementsMatch(t, append(matched, missing...), []string{"go", "rust", "c++", "sql", "kafka"})
	})
}

func TestSemanticScore(t *testing.T) {
	query := mock.DeterministicVector("backend engineer")

	t.Run("no section vectors uses base alone", func(t *testing.T) {
		record := &core.CandidateRecord{
			Embedding:        mock.DeterministicVector("candidate text"),
			SkillsVector:     core.ZeroVector(),
			ExperienceVector: core.ZeroVector(),
		}
		base := cosineSimilarity(query, record.Embedding)
		assert.Equal(t, base, semanticScore(query, record))
	})

	t.Run("nil section vectors behave like zero vectors", func(t *testing.T) {
		record := &core.CandidateRecord{
			Embedding: mock.DeterministicVector("candidate text"),
		}
		base := cosineSimilarity(query, record.Embedding)
		assert.Equal(t, base, semanticScore(query, record))
	})

	t.Run("identical full and section vectors score like base", func(t *testing.T) {
		vec := mock.DeterministicVector("candidate text")
		record := &core.CandidateRecord{
			Embedding:        vec,
			SkillsVector:     vec,
			ExperienceVector: vec,
		}
		base := cosineSimilarity(query, vec)
		assert.InDelta(t, base, semanticScore(query, record), 1e-9)
	})

	t.Run("blends base with present section mean", func(t *testing.T) {
		record := &core.CandidateRecord{
			Embedding:        mock.DeterministicVector("full text"),
			SkillsVector:     mock.DeterministicVector("skills section"),
			ExperienceVector: core.ZeroVector(),
		}
		base := cosineSimilarity(query, record.Embedding)
		skills := cosineSimilarity(query, record.SkillsVector)
		expected := 0.5*base + 0.5*skills
		assert.InDelta(t, expected, semanticScore(query, record), 1e-9)
	})

	t.Run("averages both sections when present", func(t *testing.T) {
		record := &core.CandidateRecord{
			Embedding:        mock.DeterministicVector("full text"),
			SkillsVector:     mock.DeterministicVector("skills section"),
			ExperienceVector: mock.DeterministicVector("experience section"),
		}
		base := cosineSimilarity(query, record.Embedding)
		skills := cosineSimilarity(query, record.SkillsVector)
		experience := cosineSimilarity(query, record.ExperienceVector)
		expected := 0.5*base + 0.5*((skills+experience)/2)
		assert.InDelta(t, expected, semanticScore(query, record), 1e-9)
	})
}

func TestEntityOverlapScore(t *testing.T) {
	queryEntities := map[string]bool{
		"acme corp":     true,
		"san francisco": true,
	}

	tests := []struct {
		name       string
		query      map[string]bool
		candidates []string
		expected   float64
	}{
		{"full overlap", queryEntities, []string{"acme corp", "san francisco"}, 1.0},
		{"half overlap", queryEntities, []string{"acme corp", "berlin"}, 0.5},
		{"no overlap", queryEntities, []string{"globex"}, 0.0},
		{"empty query entities", map[string]bool{}, []string{"acme corp"}, 0.0},
		{"empty candidate entities", queryEntities, nil, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, entityOverlapScore(tt.query, tt.candidates), 1e-9)
		})
	}
}

func TestFuseScores(t *testing.T) {
	t.Run("weights sum to one", func(t *testing.T) {
		assert.InDelta(t, 1.0, keywordWeight+semanticWeight+entityWeight, 1e-9)
	})

	t.Run("weighted sum", func(t *testing.T) {
		assert.InDelta(t, 0.3*0.5+0.5*0.8+0.2*1.0, fuseScores(0.5, 0.8, 1.0), 1e-9)
	})

	t.Run("perfect scores fuse to one", func(t *testing.T) {
		assert.InDelta(t, 1.0, fuseScores(1, 1, 1), 1e-9)
	})

	t.Run("bounded below by semantic weight times negative one", func(t *testing.T) {
		assert.InDelta(t, -semanticWeight, fuseScores(0, -1, 0), 1e-9)
	})
}

func TestSnippet(t *testing.T) {
	t.Run("prefers stored excerpt", func(t *testing.T) {
		record := &core.CandidateRecord{
			FullText:        "the whole document",
			FullTextExcerpt: "excerpt",
		}
		assert.Equal(t, "excerpt", snippet(record))
	})

	t.Run("falls back to truncated full text", func(t *testing.T) {
		long := make([]byte, 500)
		for i := range long {
			long[i] = 'x'
		}
		record := &core.CandidateRecord{FullText: string(long)}
		assert.Len(t, snippet(record), snippetLength)
	})

	t.Run("short full text returned whole", func(t *testing.T) {
		record := &core.CandidateRecord{FullText: "short"}
		assert.Equal(t, "short", snippet(record))
	})
}
