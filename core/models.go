package core

//go:generate go run ../cmd/musgen

import (
	"encoding/hex"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// EmbeddingDim is the fixed dimensionality of all embedding vectors.
// It matches the all-MiniLM family of sentence embedding models.
const EmbeddingDim = 384

// IDFromContent generates a deterministic candidate ID from text content using
// BLAKE2b hashing. Documents ingested without an explicit ID (e.g. pasted
// text) get a stable ID so re-ingesting the same content overwrites rather
// than duplicates.
func IDFromContent(text string) string {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	return hex.EncodeToString(h.Sum(nil))
}

// SectionName labels a contiguous span of a resume document.
type SectionName string

const (
	SectionSkills     SectionName = "skills"
	SectionExperience SectionName = "experience"
	SectionEducation  SectionName = "education"
	SectionProjects   SectionName = "projects"
)

// SectionNames lists all valid section names in detection priority order.
var SectionNames = []SectionName{
	SectionSkills,
	SectionExperience,
	SectionEducation,
	SectionProjects,
}

// ParsedDocument is the output of text extraction and sectioning for one
// candidate document. It is created once at ingest time and immutable
// afterward. Sections holds an entry only for section types actually detected
// in the source text.
type ParsedDocument struct {
	ID       string
	RawText  string
	Sections map[SectionName]string
	Metadata map[string]string
}

// CandidateRecord is the persisted unit in the candidate index.
//
// Embedding holds the full-text embedding. SkillsVector and ExperienceVector
// are precomputed at ingest time; when the corresponding section is absent or
// empty they hold the all-zero vector of EmbeddingDim entries, never nil, so
// downstream similarity math is always well-defined.
type CandidateRecord struct {
	ID               string
	FullText         string
	FullTextExcerpt  string
	SectionExcerpts  map[SectionName]string
	Embedding        []float32
	SkillsVector     []float32
	ExperienceVector []float32
	Metadata         map[string]string
	InsertedAt       time.Time
	UpdatedAt        time.Time
}

// ZeroVector returns the neutral placeholder embedding.
func ZeroVector() []float32 {
	return make([]float32, EmbeddingDim)
}

// IsZeroVector reports whether v is empty or all zeros.
// A zero vector marks a section that was absent at ingest time.
func IsZeroVector(v []float32) bool {
	for _, x := range v {
		if x != 0 {
			return false
		}
	}
	return true
}

// RetrievalHit is one nearest-neighbor result from the candidate index.
// Distance is 1 - cosine similarity, so smaller is more similar.
// Hits are transient query-time values and are never persisted.
type RetrievalHit struct {
	Record   *CandidateRecord
	Distance float32
}

// MatchResult is one ranked candidate for a single match query.
//
// KeywordScore and EntityOverlapScore are in [0,1]. SemanticScore is a cosine
// blend and may be mildly negative for strongly dissimilar text. FinalScore is
// the fixed-weight fusion of the three. Results are produced fresh per query
// and discarded after returning to the caller.
type MatchResult struct {
	CandidateID        string
	KeywordScore       float64
	SemanticScore      float64
	EntityOverlapScore float64
	FinalScore         float64
	Snippet            string
	MatchedKeywords    []string
	MissingKeywords    []string
}
