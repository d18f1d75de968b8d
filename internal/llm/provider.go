package llm

import (
	"context"
	"encoding/json"
)

// Provider is the core abstraction for LLM interaction. Consumers call
// Generate with a Request and receive structured JSON back.
type Provider interface {
	// Generate sends a prompt to the LLM. When the request carries a
	// Schema, the provider uses its native structured output mechanism
	// and the response Content holds the validated JSON.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured
	// to use.
	ModelID() string
}

// Request describes what to send to the LLM.
type Request struct {
	// System sets the LLM's role and constraints.
	System string

	// Messages is the conversation. Coach tips are single-turn, so this
	// usually holds one user message.
	Messages []Message

	// Schema, when set, is the JSON Schema the response must conform
	// to. When nil the response Content is the raw reply text.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature controls randomness, 0.0 to 1.0. Zero means
	// deterministic.
	Temperature float64
}

// Message is a single turn in the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema defines the JSON structure expected from the LLM.
type Schema struct {
	// Name identifies the schema to the provider. Kebab-case, e.g.
	// "coach-tip".
	Name string

	// Description tells the LLM what the schema represents.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response holds the LLM's output.
type Response struct {
	// Content is the generated output, validated against the request
	// Schema when one was given.
	Content json.RawMessage

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason is normalized to "end" or "max_tokens".
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
