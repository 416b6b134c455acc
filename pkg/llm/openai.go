package llm

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/sashabaranov/go-openai"
)

// Config holds settings for one OpenAI-compatible endpoint.
type Config struct {
	BaseURL     string
	Model       string
	APIKeyEnv   string
	Temperature float32
	MaxRetries  int
	Timeout     time.Duration
}

// OpenAIProvider talks to an OpenAI-compatible chat completion endpoint.
type OpenAIProvider struct {
	client      *openai.Client
	model       string
	temperature float32
	maxRetries  int
	timeout     time.Duration
	logger      *slog.Logger
}

// NewOpenAIProvider builds a provider from config. The API key is read from
// the environment variable named in cfg.APIKeyEnv; local endpoints that need
// no key may leave it unset.
func NewOpenAIProvider(cfg Config, logger *slog.Logger) *OpenAIProvider {
	apiKey := os.Getenv(cfg.APIKeyEnv)
	if apiKey == "" {
		apiKey = "not-needed"
	}

	clientCfg := openai.DefaultConfig(apiKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	return &OpenAIProvider{
		client:      openai.NewClientWithConfig(clientCfg),
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxRetries:  cfg.MaxRetries,
		timeout:     cfg.Timeout,
		logger:      logger.With("component", "llm", "model", cfg.Model),
	}
}

// Model returns the configured model identifier.
func (p *OpenAIProvider) Model() string {
	return p.model
}

// Chat sends a single-message completion request, retrying transient
// failures with exponential backoff.
func (p *OpenAIProvider) Chat(ctx context.Context, prompt, label, conversationID string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	req := openai.ChatCompletionRequest{
		Model:       p.model,
		Temperature: p.temperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	}

	var content string
	operation := func() error {
		start := time.Now()
		resp, err := p.client.CreateChatCompletion(ctx, req)
		if err != nil {
			p.logger.Warn("Chat completion attempt failed",
				"label", label, "conversation_id", conversationID, "error", err)
			return err
		}
		if len(resp.Choices) == 0 {
			return backoff.Permanent(fmt.Errorf("chat completion returned no choices"))
		}
		content = resp.Choices[0].Message.Content
		p.logger.Debug("Chat completion succeeded",
			"label", label, "conversation_id", conversationID,
			"duration_ms", time.Since(start).Milliseconds(),
			"response_chars", len(content))
		return nil
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), uint64(p.maxRetries)),
		ctx,
	)
	if err := backoff.Retry(operation, policy); err != nil {
		return "", fmt.Errorf("chat completion failed (%s): %w", label, err)
	}
	return content, nil
}
