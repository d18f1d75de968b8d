package llm

import (
	"math"
	"testing"
)

func TestLookupCost(t *testing.T) {
	tests := []struct {
		modelID string
		found   bool
	}{
		{"gpt-4o-mini", true},
		{"gemini-2.0-flash", true},
		{"google/gemini-2.0-flash", true}, // OpenRouter vendor prefix
		{"anthropic/claude-sonnet-4-20250514", true},
		{"some-unknown-model", false},
	}
	for _, tt := range tests {
		got := LookupCost(tt.modelID)
		if (got != nil) != tt.found {
			t.Errorf("LookupCost(%q) found = %v, want %v", tt.modelID, got != nil, tt.found)
		}
	}
}

func TestModelCost(t *testing.T) {
	c := ModelCost{InputPerMTok: 0.15, OutputPerMTok: 0.6}

	got := c.Cost(1_000_000, 500_000)
	want := 0.15 + 0.3
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Cost = %f, want %f", got, want)
	}
	if c.Cost(0, 0) != 0 {
		t.Errorf("Cost(0,0) = %f, want 0", c.Cost(0, 0))
	}
}
