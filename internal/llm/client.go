package llm

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

const (
	// Timeout for individual chat-completion requests.
	requestTimeout = 60 * time.Second

	probePrompt = "Say 'OK' if you're ready."
)

// ChatClient is the minimal completion surface shared by the selector, the
// analyzer, and the briefer. Probe is a cheap liveness check for one model.
type ChatClient interface {
	Probe(ctx context.Context, model string) error
	Complete(ctx context.Context, model, prompt string) (string, error)
}

// OpenAIClient implements ChatClient on top of the OpenAI chat-completion API.
type OpenAIClient struct {
	client *openai.Client
}

var _ ChatClient = (*OpenAIClient)(nil)

// NewOpenAIClient builds a client with a bounded per-request timeout.
func NewOpenAIClient(apiKey string) *OpenAIClient {
	config := openai.DefaultConfig(apiKey)
	config.HTTPClient = &http.Client{Timeout: requestTimeout}

	slog.Info("[OpenAIClient] client initialized with custom HTTP timeout",
		slog.Duration("timeout", requestTimeout))
	return &OpenAIClient{client: openai.NewClientWithConfig(config)}
}

// Complete runs a single chat completion against the given model.
func (c *OpenAIClient) Complete(ctx context.Context, model, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("completion response contained no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

// Probe sends a minimal completion to verify the model answers at all.
func (c *OpenAIClient) Probe(ctx context.Context, model string) error {
	_, err := c.Complete(ctx, model, probePrompt)
	return err
}
