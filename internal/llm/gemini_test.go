package llm

import (
	"testing"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.0-pro"},
		{"gemini-2.0-flash", "gemini-2.0-flash"}, // Pass-through
	}
	for _, tt := range tests {
		got := resolveModel(tt.input, geminiModels)
		if got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestBuildGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"headline": map[string]any{"type": "string"},
			"mnemonic": map[string]any{"type": "string"},
			"kind":     map[string]any{"type": "string", "enum": []any{"noun", "verb", "number"}},
			"examples": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required": []any{"headline", "mnemonic"},
	}

	schema := buildGeminiSchema(def)

	if schema.Type != "OBJECT" {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	if len(schema.Properties) != 4 {
		t.Fatalf("expected 4 properties, got %d", len(schema.Properties))
	}
	if schema.Properties["headline"].Type != "STRING" {
		t.Fatalf("expected STRING for headline, got %s", schema.Properties["headline"].Type)
	}
	if len(schema.Properties["kind"].Enum) != 3 {
		t.Fatalf("expected 3 enum values, got %d", len(schema.Properties["kind"].Enum))
	}
	if schema.Properties["examples"].Type != "ARRAY" {
		t.Fatalf("expected ARRAY for examples, got %s", schema.Properties["examples"].Type)
	}
	if schema.Properties["examples"].Items.Type != "STRING" {
		t.Fatalf("expected STRING for examples items, got %s", schema.Properties["examples"].Items.Type)
	}
	if len(schema.Required) != 2 {
		t.Fatalf("expected 2 required fields, got %d", len(schema.Required))
	}
}
