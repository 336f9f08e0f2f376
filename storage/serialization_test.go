package storage

import (
	"testing"
	"time"

	"github.com/poiesic/talentscout/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalUnmarshalCandidateRecord(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Microsecond)

	tests := []struct {
		name   string
		record *core.CandidateRecord
	}{
		{
			name: "minimal record",
			record: &core.CandidateRecord{
				ID:         "cand-1",
				FullText:   "Backend engineer with Go experience.",
				InsertedAt: now,
				UpdatedAt:  now,
			},
		},
		{
			name: "record with section excerpts",
			record: &core.CandidateRecord{
				ID:              "cand-2",
				FullText:        "Skills: Go, Python\nWork Experience: five years at a startup",
				FullTextExcerpt: "Skills: Go, Python",
				SectionExcerpts: map[core.SectionName]string{
					core.SectionSkills:     "Go, Python",
					core.SectionExperience: "five years at a startup",
				},
				InsertedAt: now,
				UpdatedAt:  now,
			},
		},
		{
			name: "record with vectors",
			record: &core.CandidateRecord{
				ID:               "cand-3",
				FullText:         "Data engineer",
				Embedding:        []float32{0.1, 0.2, 0.3, 0.4, 0.5},
				SkillsVector:     []float32{0.5, 0.4, 0.3, 0.2, 0.1},
				ExperienceVector: []float32{0.0, 0.0, 0.0, 0.0, 0.0},
				InsertedAt:       now,
				UpdatedAt:        now,
			},
		},
		{
			name: "record with everything",
			record: &core.CandidateRecord{
				ID:              core.IDFromContent("complete candidate"),
				FullText:        "Complete record with all fields populated for round-trip testing",
				FullTextExcerpt: "Complete record",
				SectionExcerpts: map[core.SectionName]string{
					core.SectionSkills:     "c++ c# node-js",
					core.SectionExperience: "ten years",
					core.SectionEducation:  "BSc",
					core.SectionProjects:   "search engine",
				},
				Embedding:        make([]float32, core.EmbeddingDim),
				SkillsVector:     core.ZeroVector(),
				ExperienceVector: core.ZeroVector(),
				Metadata:         map[string]string{"source": "upload", "filename": "resume.txt"},
				InsertedAt:       now,
				UpdatedAt:        now,
			},
		},
		{
			name: "unicode full text",
			record: &core.CandidateRecord{
				ID:         "cand-unicode",
				FullText:   "Ingénieur logiciel 世界 🌍",
				InsertedAt: now,
				UpdatedAt:  now,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Marshal
			data := MarshalCandidateRecord(tt.record)
			require.NotNil(t, data)
			require.NotEmpty(t, data)

			// Unmarshal
			decoded, err := UnmarshalCandidateRecord(data)
			require.NoError(t, err)
			require.NotNil(t, decoded)

			// Verify fields
			assert.Equal(t, tt.record.ID, decoded.ID)
			assert.Equal(t, tt.record.FullText, decoded.FullText)
			assert.Equal(t, tt.record.FullTextExcerpt, decoded.FullTextExcerpt)
			assert.True(t, tt.record.InsertedAt.Equal(decoded.InsertedAt))
			assert.True(t, tt.record.UpdatedAt.Equal(decoded.UpdatedAt))
			// Handle nil vs empty slice/map
			if len(tt.record.SectionExcerpts) == 0 {
				assert.Empty(t, decoded.SectionExcerpts)
			} else {
				assert.Equal(t, tt.record.SectionExcerpts, decoded.SectionExcerpts)
			}
			if len(tt.record.Metadata) == 0 {
				assert.Empty(t, decoded.Metadata)
			} else {
				assert.Equal(t, tt.record.Metadata, decoded.Metadata)
			}
			if len(tt.record.Embedding) == 0 {
				assert.Empty(t, decoded.Embedding)
			} else {
				assert.Equal(t, tt.record.Embedding, decoded.Embedding)
			}
			if len(tt.record.SkillsVector) == 0 {
				assert.Empty(t, decoded.SkillsVector)
			} else {
				assert.Equal(t, tt.record.SkillsVector, decoded.SkillsVector)
			}
			if len(tt.record.ExperienceVector) == 0 {
				assert.Empty(t, decoded.ExperienceVector)
			} else {
				assert.Equal(t, tt.record.ExperienceVector, decoded.ExperienceVector)
			}
		})
	}
}

func TestUnmarshalCandidateRecord_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty data", []byte{}},
		{"invalid data", []byte{0xFF, 0xFF, 0xFF}},
		{"partial data", []byte{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := UnmarshalCandidateRecord(tt.data)
			assert.Error(t, err)
		})
	}
}

func TestCandidateRecordRoundTripConsistency(t *testing.T) {
	t.Run("multiple marshal-unmarshal cycles", func(t *testing.T) {
		now := time.Now().UTC().Truncate(time.Microsecond)
		original := &core.CandidateRecord{
			ID:              "cand-999",
			FullText:        "Testing consistency",
			FullTextExcerpt: "Testing consistency",
			SectionExcerpts: map[core.SectionName]string{
				core.SectionSkills: "consistency",
			},
			Embedding:  []float32{0.1, 0.2, 0.3},
			Metadata:   map[string]string{"k": "v"},
			InsertedAt: now,
			UpdatedAt:  now,
		}

		// Perform 3 marshal-unmarshal cycles
		current := original
		for i := 0; i < 3; i++ {
			data := MarshalCandidateRecord(current)
			decoded, err := UnmarshalCandidateRecord(data)
			require.NoError(t, err)
			current = decoded
		}

		// Verify final result matches original
		assert.Equal(t, original.ID, current.ID)
		assert.Equal(t, original.FullText, current.FullText)
		assert.Equal(t, original.SectionExcerpts, current.SectionExcerpts)
		assert.Equal(t, original.Embedding, current.Embedding)
		assert.Equal(t, original.Metadata, current.Metadata)
	})
}
