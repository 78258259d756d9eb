package explain

import "github.com/abhisek/geomotion/internal/llm"

// ExplanationSchema defines the JSON schema for an explanation reply.
var ExplanationSchema = &llm.Schema{
	Name:        "trig-explanation",
	Description: "A short explanation of a trigonometric function at one angle",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"explanation": map[string]any{
				"type":        "string",
				"description": "2-3 sentences relating the unit circle coordinates to the wave value",
			},
		},
		"required":             []any{"explanation"},
		"additionalProperties": false,
	},
}
