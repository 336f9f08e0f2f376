package match

import (
	"sort"

	"github.com/poiesic/talentscout/core"
)

// Score fusion weights. Keyword overlap is precise but shallow, semantic
// similarity is broad but fuzzy, entity overlap catches shared employers
// and institutions that neither of the other signals rewards.
const (
	keywordWeight  = 0.3
	semanticWeight = 0.5
	entityWeight   = 0.2
)

const snippetLength = 200

// queryContext holds the per-query inputs computed once before scoring,
// shared read-only across candidate scoring goroutines.
type queryContext struct {
	text     string
	vector   []float32
	tokens   []string
	entities map[string]bool
}

// keywordScore computes the fraction of distinct query tokens present in the
// candidate text, along with the sorted matched and missing token lists.
// An empty query token set scores 0 with empty lists.
func keywordScore(queryTokens []string, candidateText string) (float64, []string, []string) {
	matched := make([]string, 0, len(queryTokens))
	missing := make([]string, 0)

	if len(queryTokens) == 0 {
		return 0, matched, missing
	}

	candidateSet := tokenSet(candidateText)
	seen := make(map[string]bool, len(queryTokens))
	distinct := 0
	for _, token := range queryTokens {
		if seen[token] {
			continue
		}
		seen[token] = true
		distinct++
		if candidateSet[token] {
			matched = append(matched, token)
		} else {
			missing = append(missing, token)
		}
	}

	sort.Strings(matched)
	sort.Strings(missing)

	return float64(len(matched)) / float64(distinct), matched, missing
}

// semanticScore blends whole-document similarity with section-level
// similarity. The base is the similarity between the query vector and the
// candidate's stored full-text embedding. When the candidate carries real
// (non-zero) skills or experience vectors, their mean similarity contributes
// half the score; otherwise the base stands alone.
func semanticScore(queryVector []float32, record *core.CandidateRecord) float64 {
	base := cosineSimilarity(queryVector, record.Embedding)

	var sectionSims []float64
	if !core.IsZeroVector(record.SkillsVector) {
		sectionSims = append(sectionSims, cosineSimilarity(queryVector, record.SkillsVector))
	}
	if !core.IsZeroVector(record.ExperienceVector) {
		sectionSims = append(sectionSims, cosineSimilarity(queryVector, record.ExperienceVector))
	}

	if len(sectionSims) == 0 {
		return base
	}

	var sum float64
	for _, sim := range sectionSims {
		sum += sim
	}
	return 0.5*base + 0.5*(sum/float64(len(sectionSims)))
}

// entityOverlapScore computes |query entities ∩ candidate entities| divided
// by |query entities|. Returns 0 when the query yielded no entities, which
// is also the silent-degradation path when NER is unavailable.
func entityOverlapScore(queryEntities map[string]bool, candidateEntities []string) float64 {
	if len(queryEntities) == 0 {
		return 0
	}

	candidateSet := make(map[string]bool, len(candidateEntities))
	for _, entity := range candidateEntities {
		candidateSet[entity] = true
	}

	overlap := 0
	for entity := range queryEntities {
		if candidateSet[entity] {
			overlap++
		}
	}
	return float64(overlap) / float64(len(queryEntities))
}

// fuseScores combines the three sub-scores with fixed weights.
func fuseScores(keyword, semantic, entity float64) float64 {
	return keywordWeight*keyword + semanticWeight*semantic + entityWeight*entity
}

// snippet returns the candidate's display excerpt, falling back to the
// leading characters of the full text when no excerpt was stored.
func snippet(record *core.CandidateRecord) string {
	if record.FullTextExcerpt != "" {
		return record.FullTextExcerpt
	}
	runes := []rune(record.FullText)
	if len(runes) > snippetLength {
		return string(runes[:snippetLength])
	}
	return record.FullText
}
