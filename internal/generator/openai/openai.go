// Package openai generates text through an OpenAI-compatible chat completions
// endpoint, such as Groq.
package openai

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
	"github.com/openai/openai-go/v2/shared"
	"github.com/rs/zerolog"

	"firassist/internal/domain"
)

// SystemPrompt frames every request.
const SystemPrompt = "You are a legal assistant specializing in Indian criminal law."

// Config configures the chat completions client.
type Config struct {
	BaseURL     string
	APIKeyEnv   string
	Model       string
	Temperature float64
	MaxTokens   int
	Timeout     time.Duration
	MaxRetries  int
}

// Client implements domain.Generator.
type Client struct {
	client      openai.Client
	model       shared.ChatModel
	temperature float64
	maxTokens   int
	log         zerolog.Logger
}

// NewClient creates a client, reading the API key from cfg.APIKeyEnv.
func NewClient(cfg Config, log zerolog.Logger) (*Client, error) {
	key := os.Getenv(cfg.APIKeyEnv)
	if key == "" {
		return nil, fmt.Errorf("missing API key in env %s", cfg.APIKeyEnv)
	}
	if cfg.Model == "" {
		return nil, errors.New("model name is required")
	}
	t := cfg.Timeout
	if t == 0 {
		t = 60 * time.Second
	}
	opts := []option.RequestOption{
		option.WithAPIKey(key),
		option.WithRequestTimeout(t),
		option.WithMaxRetries(max(cfg.MaxRetries, 0)),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	return &Client{
		client:      openai.NewClient(opts...),
		model:       shared.ChatModel(cfg.Model),
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
		log:         log.With().Str("component", "generator").Str("model", cfg.Model).Logger(),
	}, nil
}

// Generate sends prompt as a user message and returns the first choice.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(SystemPrompt),
			openai.UserMessage(prompt),
		},
		Temperature: openai.Float(c.temperature),
	}
	if c.maxTokens > 0 {
		params.MaxTokens = openai.Int(int64(c.maxTokens))
	}

	start := time.Now()
	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		c.log.Error().Err(err).Dur("duration", time.Since(start)).Msg("chat completion failed")
		return "", fmt.Errorf("%w: %w", domain.ErrGeneration, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no response choices returned", domain.ErrGeneration)
	}
	c.log.Debug().Dur("duration", time.Since(start)).Int64("tokens", resp.Usage.TotalTokens).Msg("chat completion done")
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
