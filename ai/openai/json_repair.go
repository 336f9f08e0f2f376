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


package openai

// repairJSON attempts to fix common JSON formatting issues from LLM responses.
// It specifically handles missing opening quotes before keys in JSON objects.
// Example: `{text": "Acme"}` becomes `{"text": "Acme"}`.
func repairJSON(s string) string {
	runes := []rune(s)
	fixed := make([]rune, 0, len(runes)+16)

	for i := 0; i < len(runes); i++ {
		ch := runes[i]
		fixed = append(fixed, ch)

		if ch != '{' && ch != ',' {
			continue
		}

		// Look ahead past whitespace for a bare word followed by ":
		j := i + 1
		for j < len(runes) && (runes[j] == ' ' || runes[j] == '\n' || runes[j] == '\t') {
			fixed = append(fixed, runes[j])
			j++
		}
		start := j
		for j < len(runes) && isKeyRune(runes[j]) {
			j++
		}
		if j > start && j+1 < len(runes) && runes[j] == '"' && runes[j+1] == ':' {
			// Unquoted key: insert the missing opening quote.
			fixed = append(fixed, '"')
			fixed = append(fixed, runes[start:j]...)
			i = j - 1
			continue
		}
		i = start - 1
	}

	return string(fixed)
}

func isKeyRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_'
}
