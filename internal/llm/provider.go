package llm

import "context"

// Provider abstracts a text-completion backend.
type Provider interface {
	Name() string
	// Available reports whether the backend can serve requests right now.
	// Used once at startup to pick a backend; must be cheap.
	Available(ctx context.Context) bool
	Generate(ctx context.Context, prompt string, maxTokens int) (string, error)
}
