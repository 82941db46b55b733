package quizgen

import "github.com/pr1ncegupta/skillpath/internal/llm"

// TestSchema is the JSON schema for screening-test responses, used with
// providers that support native structured output. The question array
// sits inside an object because several vendor APIs reject a top-level
// array root.
var TestSchema = &llm.Schema{
	Name:        "screening-test",
	Description: "A multiple-choice screening test for one topic",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type":        "array",
				"description": "Exactly 5 multiple-choice questions",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id": map[string]any{
							"type":        "integer",
							"minimum":     1,
							"description": "Question number, 1 through 5",
						},
						"prompt": map[string]any{
							"type":        "string",
							"description": "The question text",
						},
						"choices": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "Exactly 4 options, one of which is the answer",
						},
						"answer": map[string]any{
							"type":        "string",
							"description": "The correct option, copied verbatim from choices",
						},
					},
					"required":             []any{"id", "prompt", "choices", "answer"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}
