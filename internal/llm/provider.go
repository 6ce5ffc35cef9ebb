package llm

import (
	"context"
	"errors"
)

// ErrNotConfigured is returned by providers that have no backing model.
var ErrNotConfigured = errors.New("text generation is not configured")

type Request struct {
	SystemPrompt    string
	UserPrompt      string
	Temperature     float32
	MaxOutputTokens int32
}

// Provider is a text-generation capability. Implementations must be safe for
// concurrent use.
type Provider interface {
	Complete(ctx context.Context, req Request) (string, error)
	Name() string
}

// UnavailableProvider always fails, so callers take their fallback path.
type UnavailableProvider struct{}

func (UnavailableProvider) Complete(context.Context, Request) (string, error) {
	return "", ErrNotConfigured
}

func (UnavailableProvider) Name() string { return "unavailable" }
