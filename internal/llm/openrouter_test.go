package llm

import (
	"testing"
)

func TestNewOpenRouterProvider(t *testing.T) {
	tests := []struct {
		name      string
		cfg       OpenRouterConfig
		wantErr   bool
		wantModel string
	}{
		{
			name:      "valid config",
			cfg:       OpenRouterConfig{APIKey: "sk-or-test", Model: "google/gemini-2.0-flash-exp"},
			wantModel: "google/gemini-2.0-flash-exp",
		},
		{
			name:    "empty API key",
			cfg:     OpenRouterConfig{Model: "google/gemini-2.0-flash-exp"},
			wantErr: true,
		},
		{
			// Vendor-prefixed IDs must bypass the OpenAI name table.
			name:      "model pass-through",
			cfg:       OpenRouterConfig{APIKey: "sk-or-test", Model: "anthropic/claude-3-haiku"},
			wantModel: "anthropic/claude-3-haiku",
		},
		{
			name: "custom base URL",
			cfg: OpenRouterConfig{
				APIKey:  "sk-or-test",
				Model:   "google/gemini-2.0-flash-exp",
				BaseURL: "https://custom.openrouter.example/v1",
			},
			wantModel: "google/gemini-2.0-flash-exp",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewOpenRouterProvider(tt.cfg)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if p.ModelID() != tt.wantModel {
				t.Errorf("model = %q, want %q", p.ModelID(), tt.wantModel)
			}
		})
	}
}
