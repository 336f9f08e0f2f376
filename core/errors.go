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

import "errors"

// Domain validation errors
var (
	// ErrInvalidDocument indicates a ParsedDocument failed validation.
	ErrInvalidDocument = errors.New("invalid parsed document")

	// ErrInvalidCandidate indicates a CandidateRecord failed validation.
	ErrInvalidCandidate = errors.New("invalid candidate record")

	// ErrEmptyID indicates the ID field is empty.
	ErrEmptyID = errors.New("id cannot be empty")

	// ErrEmptyText indicates the raw text field is empty.
	ErrEmptyText = errors.New("text cannot be empty")

	// ErrInvalidSectionName indicates an unrecognized section name.
	ErrInvalidSectionName = errors.New("invalid section name")

	// ErrVectorDimension indicates an embedding vector with the wrong dimensionality.
	ErrVectorDimension = errors.New("embedding vector has wrong dimension")
)
