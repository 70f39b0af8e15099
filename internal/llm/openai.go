package llm

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"cluely/internal/proxy"
)

// OpenAI is the remote completion backend. Requests can optionally be routed
// through a SOCKS5 proxy.
type OpenAI struct {
	client openai.Client
	model  string
	hasKey bool
}

func NewOpenAI(apiKey, model, socksAddr string) (*OpenAI, error) {
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if socksAddr != "" {
		httpClient, err := proxy.NewSocksClient(socksAddr)
		if err != nil {
			return nil, fmt.Errorf("dial socks proxy %s: %w", socksAddr, err)
		}
		opts = append(opts, option.WithHTTPClient(httpClient))
	}

	return &OpenAI{
		client: openai.NewClient(opts...),
		model:  model,
		hasKey: apiKey != "",
	}, nil
}

func (p *OpenAI) Name() string { return "openai" }

func (p *OpenAI) Available(_ context.Context) bool { return p.hasKey }

func (p *OpenAI) Generate(ctx context.Context, prompt string, maxTokens int) (string, error) {
	resp, err := p.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Model:               openai.ChatModel(p.model),
		MaxCompletionTokens: openai.Int(int64(maxTokens)),
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("no choices in response")
	}
	content := resp.Choices[0].Message.Content
	if content == "" {
		return "", errors.New("empty message content")
	}
	return content, nil
}
