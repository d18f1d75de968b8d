package coach

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/wortiz/internal/llm"
	"github.com/abhisek/wortiz/internal/vocab"
)

func validTipJSON() json.RawMessage {
	return json.RawMessage(`{
		"headline": "Zamenjal si člen: Hund je moškega spola.",
		"mnemonic": "Pes (der Hund) je 'on' — močan moški čuvaj hiše.",
		"example": "Der Hund schläft im Garten."
	}`)
}

func testInput() TipInput {
	return TipInput{
		Kind:     vocab.KindNoun,
		Prompt:   "pes",
		Solution: []string{"der Hund"},
		Given:    []string{"die Hund"},
	}
}

func awaitTip(t *testing.T, svc *Service) (*Tip, bool) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if tip, ok := svc.ConsumeTip(); ok {
			return tip, true
		}
		time.Sleep(10 * time.Millisecond)
	}
	return nil, false
}

func TestService_GeneratesTip(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validTipJSON()})
	svc := NewService(mock, DefaultConfig())

	svc.RequestTip(t.Context(), testInput())

	tip, ok := awaitTip(t, svc)
	if !ok || tip == nil {
		t.Fatal("expected tip to be generated")
	}
	if !strings.Contains(tip.Headline, "člen") {
		t.Errorf("unexpected headline: %q", tip.Headline)
	}
	if tip.Mnemonic == "" || tip.Example == "" {
		t.Errorf("tip incomplete: %+v", tip)
	}
}

func TestService_SendsMissDetails(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validTipJSON()})
	svc := NewService(mock, DefaultConfig())

	svc.RequestTip(t.Context(), testInput())
	if _, ok := awaitTip(t, svc); !ok {
		t.Fatal("expected tip")
	}

	if mock.CallCount() != 1 {
		t.Fatalf("calls = %d, want 1", mock.CallCount())
	}
	msg := mock.Calls[0].Messages[0].Content
	for _, want := range []string{"der Hund", "die Hund", "pes"} {
		if !strings.Contains(msg, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
	if mock.Calls[0].Schema != TipSchema {
		t.Error("expected the tip schema on the request")
	}
}

func TestService_ProviderFailure(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: errors.New("boom")})
	svc := NewService(mock, DefaultConfig())

	svc.RequestTip(t.Context(), testInput())

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		svc.mu.Lock()
		ready := svc.ready
		svc.mu.Unlock()
		if ready {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}

	if tip, ok := svc.ConsumeTip(); ok || tip != nil {
		t.Fatalf("expected no tip on failure, got %+v", tip)
	}
}

func TestConsumeTip_EmptyWhenNothingRequested(t *testing.T) {
	svc := NewService(llm.NewMockProvider(), DefaultConfig())
	if tip, ok := svc.ConsumeTip(); ok || tip != nil {
		t.Fatalf("expected nothing pending, got %+v", tip)
	}
}
