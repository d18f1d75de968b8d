package coach

import "github.com/abhisek/wortiz/internal/llm"

// TipSchema defines the JSON schema for mnemonic tip generation.
var TipSchema = &llm.Schema{
	Name:        "coach-tip",
	Description: "A short memory aid for a German word the learner keeps missing",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"headline": map[string]any{
				"type":        "string",
				"description": "One short sentence naming what went wrong (in Slovenian)",
			},
			"mnemonic": map[string]any{
				"type":        "string",
				"description": "A vivid memory aid linking the German word to its Slovenian meaning (1-2 sentences, in Slovenian)",
			},
			"example": map[string]any{
				"type":        "string",
				"description": "One short German example sentence using the word correctly",
			},
		},
		"required":             []any{"headline", "mnemonic", "example"},
		"additionalProperties": false,
	},
}
