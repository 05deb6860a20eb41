package anthropic

import (
	"context"
	"fmt"
	"sync"

	"github.com/NeuralTrust/TrustGuard/pkg/domain/moderation"
	"github.com/NeuralTrust/TrustGuard/pkg/infra/providers"
	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// Anthropic rejects requests without max_tokens.
const defaultMaxTokens = 16

type client struct {
	clientPool *sync.Map
}

func NewAnthropicClient() providers.Client {
	return &client{
		clientPool: &sync.Map{},
	}
}

func (c *client) Generate(
	ctx context.Context,
	config *providers.Config,
	prompt string,
) (*providers.CompletionResponse, error) {
	return c.Chat(ctx, config, nil, prompt)
}

func (c *client) Chat(
	ctx context.Context,
	config *providers.Config,
	history moderation.History,
	prompt string,
) (*providers.CompletionResponse, error) {
	if err := config.Validate(true); err != nil {
		return nil, err
	}
	anthropicClient := c.getOrCreateClient(config.Credentials.ApiKey, config.BaseURL)

	maxTokens := int64(config.MaxTokens)
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}

	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(config.Model),
		Messages:    messages(history, prompt),
		MaxTokens:   maxTokens,
		Temperature: anthropic.Float(0),
	}

	message, err := anthropicClient.Messages.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("anthropic request failed: %w", err)
	}

	if len(message.Content) == 0 {
		return nil, providers.ErrEmptyResponse
	}
	var text string
	for _, content := range message.Content {
		if content.Type == "text" {
			text = content.Text
			break
		}
	}

	return &providers.CompletionResponse{
		ID:       message.ID,
		Model:    string(message.Model),
		Response: text,
		Usage: providers.NewUsage(
			int(message.Usage.InputTokens),
			int(message.Usage.OutputTokens),
		),
	}, nil
}

func messages(history moderation.History, prompt string) []anthropic.MessageParam {
	msgs := providers.Messages(history, prompt)
	out := make([]anthropic.MessageParam, 0, len(msgs))
	for _, m := range msgs {
		block := anthropic.NewTextBlock(m.Content)
		if m.Role == providers.RoleAssistant {
			out = append(out, anthropic.NewAssistantMessage(block))
			continue
		}
		out = append(out, anthropic.NewUserMessage(block))
	}
	return out
}

func (c *client) getOrCreateClient(apiKey, baseURL string) *anthropic.Client {
	key := baseURL + "|" + apiKey
	if v, ok := c.clientPool.Load(key); ok {
		if cli, ok := v.(*anthropic.Client); ok {
			return cli
		}
	}
	opts := []option.RequestOption{option.WithAPIKey(apiKey), option.WithMaxRetries(0)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	cli := anthropic.NewClient(opts...)
	actual, _ := c.clientPool.LoadOrStore(key, &cli)
	if stored, ok := actual.(*anthropic.Client); ok {
		return stored
	}
	return &cli
}
