package llm

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestErrorMessages(t *testing.T) {
	base := errors.New("boom")

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"rate limit with retry-after", &ErrRateLimit{RetryAfter: 5 * time.Second, Err: base}, "retry after 5s"},
		{"rate limit without retry-after", &ErrRateLimit{Err: base}, "rate limited: boom"},
		{"invalid response", &ErrInvalidResponse{Err: base}, "invalid LLM response"},
		{"unavailable with cause", &ErrProviderUnavailable{Err: base}, "boom"},
		{"unavailable without cause", &ErrProviderUnavailable{}, "LLM provider unavailable"},
		{"max tokens", &ErrMaxTokensExceeded{}, "max tokens exceeded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); !strings.Contains(got, tt.want) {
				t.Errorf("Error() = %q, want substring %q", got, tt.want)
			}
		})
	}
}

func TestErrorUnwrap(t *testing.T) {
	base := errors.New("boom")

	for _, err := range []error{
		&ErrRateLimit{Err: base},
		&ErrInvalidResponse{Err: base},
		&ErrProviderUnavailable{Err: base},
	} {
		if !errors.Is(err, base) {
			t.Errorf("%T does not unwrap to its cause", err)
		}
	}
}
