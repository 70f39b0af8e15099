package llm

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/ollama/ollama/api"
)

// Ollama is the local completion backend, talking to an Ollama server.
type Ollama struct {
	client *api.Client
	model  string
}

// NewOllama connects to the Ollama server at host, e.g.
// "http://localhost:11434".
func NewOllama(host, model string) (*Ollama, error) {
	base, err := url.Parse(host)
	if err != nil {
		return nil, fmt.Errorf("parse ollama host: %w", err)
	}
	return &Ollama{
		client: api.NewClient(base, http.DefaultClient),
		model:  model,
	}, nil
}

func (p *Ollama) Name() string { return "ollama" }

func (p *Ollama) Available(ctx context.Context) bool {
	return p.client.Heartbeat(ctx) == nil
}

func (p *Ollama) Generate(ctx context.Context, prompt string, maxTokens int) (string, error) {
	stream := false
	req := &api.GenerateRequest{
		Model:  p.model,
		Prompt: prompt,
		Stream: &stream,
		Options: map[string]any{
			"num_predict": maxTokens,
		},
	}

	var sb strings.Builder
	err := p.client.Generate(ctx, req, func(resp api.GenerateResponse) error {
		sb.WriteString(resp.Response)
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("ollama generate: %w", err)
	}
	return sb.String(), nil
}
