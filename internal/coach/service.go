// Package coach generates short mnemonic tips for missed vocabulary via
// an LLM provider. Generation runs asynchronously so the TUI never blocks
// on the network.
package coach

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/abhisek/wortiz/internal/llm"
	"github.com/abhisek/wortiz/internal/vocab"
)

// Tip is an LLM-generated memory aid for one missed item.
type Tip struct {
	Headline string
	Mnemonic string
	Example  string
}

// TipInput describes the miss the tip should address.
type TipInput struct {
	Kind     vocab.Kind
	Prompt   string   // the Slovenian prompt shown to the learner
	Solution []string // the expected German answer(s)
	Given    []string // what the learner actually typed
}

// Config holds tip generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults for tip generation.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   300,
		Temperature: 0.6,
	}
}

// Service generates tips asynchronously.
type Service struct {
	provider llm.Provider
	cfg      Config

	mu      sync.Mutex
	pending *Tip
	err     error
	ready   bool
}

// NewService creates a tip generation service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// RequestTip starts async tip generation. Only one tip is in-flight at a
// time; a new request replaces a pending one.
func (s *Service) RequestTip(ctx context.Context, input TipInput) {
	go func() {
		tip, err := s.generate(ctx, input)
		s.mu.Lock()
		defer s.mu.Unlock()
		s.pending = tip
		s.err = err
		s.ready = true
	}()
}

// ConsumeTip returns the pending tip if one is ready. Returns
// (nil, false) while generation is still running. After consumption the
// pending slot is cleared.
func (s *Service) ConsumeTip() (*Tip, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return nil, false
	}
	tip := s.pending
	s.pending = nil
	s.ready = false
	s.err = nil
	return tip, tip != nil
}

type tipOutput struct {
	Headline string `json:"headline"`
	Mnemonic string `json:"mnemonic"`
	Example  string `json:"example"`
}

func (s *Service) generate(ctx context.Context, input TipInput) (*Tip, error) {
	ctx = llm.WithPurpose(ctx, "coach-tip")

	req := llm.Request{
		System: tipSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildTipUserMessage(input)},
		},
		Schema:      TipSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("tip generation: %w", err)
	}

	var out tipOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse tip response: %w", err)
	}

	return &Tip{
		Headline: out.Headline,
		Mnemonic: out.Mnemonic,
		Example:  out.Example,
	}, nil
}
