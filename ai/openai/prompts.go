package openai

import (
	"fmt"
	"strings"

	"github.com/poiesic/talentscout/ai"
)

const nerResponseSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "entities": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "text": {
            "type": "string"
          },
          "type": {
            "type": "string"
          }
        },
        "required": ["text", "type"],
        "additionalProperties": false
      }
    }
  },
  "required": ["entities"],
  "additionalProperties": false
}`

const nerPromptTemplate = `Extract the named entities from the given text and return them as JSON.

Output ONLY valid JSON which complies with the schema given below. Do not include any preamble, explanation,
greeting, or acknowledgment. Start your response directly with the opening brace { and end with the closing
brace }. Your output must exactly follow this schema:

%s

Rules:
- The type field must match exactly one of the listed values: %s.
- "organization" covers companies, employers, universities, and institutions.
- "geo_political_entity" covers cities, states, and countries.
- "facility" covers named buildings, campuses, and plants.
- Entity text must be copied verbatim from the input; do not normalize or expand it.
- Include only entities that literally appear in the text. Do not hallucinate.
- Skip job titles, skills, and technology names; they are not named entities.
- If no entities can be identified, return "entities": [].
- The JSON must parse without errors; no trailing commas, no extra keys, and no extraneous text outside the object.

Example:
Input: "Backend engineer at Acme Corp in Berlin, previously at Stanford University."
Output:
{
  "entities": [
    {"text":"Acme Corp","type":"organization"},
    {"text":"Berlin","type":"geo_political_entity"},
    {"text":"Stanford University","type":"organization"}
  ]
}

Example (no entities):
Input: "Looking for a senior Go developer with Kubernetes experience."
Output:
{
  "entities": []
}`

// buildSystemPrompt creates the system prompt with entity types embedded.
func buildSystemPrompt() string {
	return fmt.Sprintf(nerPromptTemplate,
		nerResponseSchema,
		strings.Join(ai.EntityTypes, ", "))
}
