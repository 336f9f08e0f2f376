// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package core

import (
	"fmt"
	"slices"
)

// ValidateParsedDocument validates a ParsedDocument according to domain rules.
//
// Validation rules:
//   - RawText must not be empty
//   - Section names must be one of the known SectionNames
//
// NOT validated:
//   - ID (an empty ID is replaced by a content hash at ingest time)
//   - Metadata (free-form)
func ValidateParsedDocument(doc *ParsedDocument) error {
	if doc == nil {
		return fmt.Errorf("%w: document is nil", ErrInvalidDocument)
	}

	if doc.RawText == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, ErrEmptyText)
	}

	for name := range doc.Sections {
		if err := ValidateSectionName(name); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidDocument, err)
		}
	}

	return nil
}

// ValidateCandidateRecord validates a CandidateRecord according to domain rules.
//
// Validation rules:
//   - ID must not be empty
//   - FullText must not be empty
//   - SkillsVector and ExperienceVector, when present, must have EmbeddingDim entries
//
// NOT validated:
//   - Embedding (can be empty until the ingest pipeline runs)
//   - Timestamps (populated by the repository)
func ValidateCandidateRecord(record *CandidateRecord) error {
	if record == nil {
		return fmt.Errorf("%w: record is nil", ErrInvalidCandidate)
	}

	if record.ID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidCandidate, ErrEmptyID)
	}

	if record.FullText == "" {
		return fmt.Errorf("%w: %w", ErrInvalidCandidate, ErrEmptyText)
	}

	for _, v := range [][]float32{record.SkillsVector, record.ExperienceVector} {
		if len(v) != 0 && len(v) != EmbeddingDim {
			return fmt.Errorf("%w: %w: got %d", ErrInvalidCandidate, ErrVectorDimension, len(v))
		}
	}

	return nil
}

// ValidateSectionName validates that a SectionName has a known value.
func ValidateSectionName(name SectionName) error {
	if !slices.Contains(SectionNames, name) {
		return fmt.Errorf("%w: %q", ErrInvalidSectionName, name)
	}
	return nil
}
