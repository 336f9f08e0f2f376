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


package storage

import (
	"github.com/poiesic/talentscout/core"
)

// MarshalCandidateRecord serializes a CandidateRecord to bytes.
func MarshalCandidateRecord(record *core.CandidateRecord) []byte {
	buf := make([]byte, core.CandidateRecordMUS.Size(*record))
	core.CandidateRecordMUS.Marshal(*record, buf)
	return buf
}

// UnmarshalCandidateRecord deserializes a CandidateRecord from bytes.
func UnmarshalCandidateRecord(data []byte) (*core.CandidateRecord, error) {
	record, _, err := core.CandidateRecordMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &record, nil
}
