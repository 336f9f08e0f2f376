package mock

import (
	"context"
	"strings"
	"unicode"
)

// MockEntityExtractor is a test double for ai.EntityExtractor.
// It allows custom behavior injection via function fields.
type MockEntityExtractor struct {
	// ExtractEntitiesFunc is called by ExtractEntities if set.
	// If nil, uses default capitalized-span extraction.
	ExtractEntitiesFunc func(ctx context.Context, text string) ([]string, error)

	// Unavailable simulates a missing NER model: ExtractEntities returns an
	// empty slice for every input, mirroring the production contract.
	Unavailable bool

	callCount int
}

// NewMockEntityExtractor creates a mock entity extractor with default behavior.
// Note: Returns concrete type to allow behavior injection and call assertions.
func NewMockEntityExtractor() *MockEntityExtractor {
	return &MockEntityExtractor{}
}

// ExtractEntities extracts mock entities from text.
// Default behavior: runs of capitalized words become entity spans, lowercased.
// This is a crude stand-in for real NER that is deterministic and good enough
// for overlap arithmetic in tests: "Acme Corp" in both query and candidate
// text yields the same span on both sides.
func (m *MockEntityExtractor) ExtractEntities(ctx context.Context, text string) ([]string, error) {
	m.callCount++

	if m.Unavailable {
		return []string{}, nil
	}

	if m.ExtractEntitiesFunc != nil {
		return m.ExtractEntitiesFunc(ctx, text)
	}

	words := strings.Fields(text)
	seen := make(map[string]bool)
	entities := make([]string, 0)

	var span []string
	flush := func() {
		// Single capitalized words are usually sentence starts, not entities
		if len(span) >= 2 {
			key := strings.ToLower(strings.Join(span, " "))
			if !seen[key] {
				seen[key] = true
				entities = append(entities, key)
			}
		}
		span = span[:0]
	}

	for _, word := range words {
		cleaned := strings.Trim(word, ".,!?;:\"'()[]{}")
		r := []rune(cleaned)
		if len(r) > 0 && unicode.IsUpper(r[0]) {
			span = append(span, cleaned)
			continue
		}
		flush()
	}
	flush()

	return entities, nil
}

// CallCount returns the number of times ExtractEntities was called.
func (m *MockEntityExtractor) CallCount() int {
	return m.callCount
}

// Reset clears the call count and custom functions.
func (m *MockEntityExtractor) Reset() {
	m.callCount = 0
	m.ExtractEntitiesFunc = nil
	m.Unavailable = false
}
