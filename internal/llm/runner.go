package llm

import (
	"context"
	log "log/slog"
	"strings"
)

// FailurePrefix marks a completion that could not be generated. The runner
// fails closed: callers branch on content instead of handling errors.
const FailurePrefix = "[error] "

// IsFailure reports whether a completion must not be shown as a suggestion.
func IsFailure(s string) bool {
	return strings.TrimSpace(s) == "" || strings.HasPrefix(s, FailurePrefix)
}

// Runner owns backend selection. Providers are probed in preference order at
// startup; the first available one serves all requests.
type Runner struct {
	providers []Provider
	active    Provider
}

// NewRunner keeps the given preference order.
func NewRunner(providers ...Provider) *Runner {
	return &Runner{providers: providers}
}

// Start picks the first available backend. Returning an error here is the one
// fatal startup condition: without any completion backend the assistant is
// useless.
func (r *Runner) Start(ctx context.Context) error {
	for _, p := range r.providers {
		if p == nil {
			continue
		}
		if p.Available(ctx) {
			r.active = p
			log.Info("completion backend selected", "backend", p.Name())
			return nil
		}
		log.Warn("completion backend unavailable", "backend", p.Name())
	}
	return ErrNoBackend
}

// Backend names the active provider, or "" before Start.
func (r *Runner) Backend() string {
	if r.active == nil {
		return ""
	}
	return r.active.Name()
}

// Generate returns the completion for prompt, or a FailurePrefix-marked string
// on any backend fault. It never panics and never returns an error.
func (r *Runner) Generate(ctx context.Context, prompt string, maxTokens int) string {
	if r.active == nil {
		return FailurePrefix + "no completion backend available"
	}

	out, err := r.active.Generate(ctx, prompt, maxTokens)
	if err != nil {
		log.Error("completion failed", "backend", r.active.Name(), "err", err)
		return FailurePrefix + err.Error()
	}

	out = strings.TrimSpace(out)
	if out == "" {
		return FailurePrefix + "empty completion"
	}
	return out
}
