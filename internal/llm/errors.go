package llm

import "errors"

// ErrNoBackend means no completion provider answered the startup probe.
var ErrNoBackend = errors.New("no completion backend available")
