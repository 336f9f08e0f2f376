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


// Package match ranks stored candidates against a job description.
//
// A match runs in three stages:
//
//  1. The job description is embedded once and the vector index is asked
//     for topK * 3 nearest candidates, since fusion scoring can promote
//     candidates the raw embedding ranking puts lower.
//  2. Each retrieved candidate is scored concurrently on three signals:
//     keyword overlap (fraction of distinct query tokens present in the
//     candidate text), semantic similarity (whole-document similarity
//     blended with skills/experience section similarity), and entity
//     overlap (shared organizations, locations, facilities).
//  3. The signals are fused with fixed weights (0.3 keyword, 0.5 semantic,
//     0.2 entity), results are stable-sorted by final score descending,
//     and the top topK survive. Ties keep their retrieval order.
//
// A failed candidate embedding drops that one candidate; an unavailable
// NER model drops the entity signal to zero for everyone. Only a failed
// query embedding or a storage error fails the whole match.
package match
