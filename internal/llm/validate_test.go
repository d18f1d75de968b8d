package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func tipTestSchema() *Schema {
	return &Schema{
		Name:        "tip-object",
		Description: "A memory aid for a missed word",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"headline": map[string]any{"type": "string"},
				"attempts": map[string]any{"type": "integer", "minimum": 0},
				"kind":     map[string]any{"type": "string", "enum": []any{"noun", "verb", "number"}},
			},
			"required": []any{"headline", "attempts"},
		},
	}
}

func TestValidateResponse_ValidJSON(t *testing.T) {
	raw := json.RawMessage(`{"headline":"Pes je der Hund","attempts":3,"kind":"noun"}`)
	if err := validateResponse(tipTestSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_ValidWithoutOptional(t *testing.T) {
	raw := json.RawMessage(`{"headline":"Mačka je die Katze","attempts":1}`)
	if err := validateResponse(tipTestSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_MissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"headline":"samo naslov"}`)
	err := validateResponse(tipTestSchema(), raw)
	if err == nil {
		t.Fatal("expected error for missing required field")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_WrongType(t *testing.T) {
	raw := json.RawMessage(`{"headline":"Pes","attempts":"tri"}`)
	err := validateResponse(tipTestSchema(), raw)
	if err == nil {
		t.Fatal("expected error for wrong type")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_InvalidEnum(t *testing.T) {
	raw := json.RawMessage(`{"headline":"Pes","attempts":2,"kind":"adjective"}`)
	err := validateResponse(tipTestSchema(), raw)
	if err == nil {
		t.Fatal("expected error for invalid enum value")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_MalformedJSON(t *testing.T) {
	raw := json.RawMessage(`{not json}`)
	err := validateResponse(tipTestSchema(), raw)
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_EmptyResponse(t *testing.T) {
	if err := validateResponse(tipTestSchema(), json.RawMessage(``)); err == nil {
		t.Fatal("expected error for empty response")
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	raw := json.RawMessage(`{"anything":"goes"}`)
	if err := validateResponse(nil, raw); err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}

func TestValidateResponse_NestedObjects(t *testing.T) {
	schema := &Schema{
		Name:        "tip-nested",
		Description: "Nested test",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"word": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"german": map[string]any{"type": "string"},
					},
					"required": []any{"german"},
				},
				"examples": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
			},
			"required": []any{"word", "examples"},
		},
	}

	valid := json.RawMessage(`{"word":{"german":"der Hund"},"examples":["Der Hund bellt.","Der Hund schläft."]}`)
	if err := validateResponse(schema, valid); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	invalid := json.RawMessage(`{"word":{"german":"der Hund"},"examples":[1,2]}`)
	if err := validateResponse(schema, invalid); err == nil {
		t.Fatal("expected error for wrong array item type")
	}
}
