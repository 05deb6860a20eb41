package openai

import (
	"context"
	"fmt"
	"sync"

	"github.com/NeuralTrust/TrustGuard/pkg/domain/moderation"
	"github.com/NeuralTrust/TrustGuard/pkg/infra/providers"
	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
	"golang.org/x/sync/singleflight"
)

type client struct {
	clientPool *sync.Map
	sf         singleflight.Group
}

// NewOpenaiClient serves both api.openai.com and self-hosted OpenAI
// compatible servers such as vLLM, selected by Config.BaseURL.
func NewOpenaiClient() providers.Client {
	return &client{
		clientPool: &sync.Map{},
	}
}

// Generate uses the legacy completions API so the flat prompt reaches the
// model untouched.
func (c *client) Generate(
	ctx context.Context,
	config *providers.Config,
	prompt string,
) (*providers.CompletionResponse, error) {
	if err := config.Validate(true); err != nil {
		return nil, err
	}
	openaiClient := c.getOrCreateClient(config.Credentials.ApiKey, config.BaseURL)

	params := openai.CompletionNewParams{
		Model: openai.CompletionNewParamsModel(config.Model),
		Prompt: openai.CompletionNewParamsPromptUnion{
			OfString: openai.String(prompt),
		},
		Temperature: openai.Float(0),
	}
	if config.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(config.MaxTokens))
	}

	resp, err := openaiClient.Completions.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("openAI completions request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, providers.ErrEmptyResponse
	}

	return &providers.CompletionResponse{
		ID:       resp.ID,
		Model:    resp.Model,
		Response: resp.Choices[0].Text,
		Usage: providers.NewUsage(
			int(resp.Usage.PromptTokens),
			int(resp.Usage.CompletionTokens),
		),
	}, nil
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
	openaiClient := c.getOrCreateClient(config.Credentials.ApiKey, config.BaseURL)

	params := openai.ChatCompletionNewParams{
		Model:       config.Model,
		Messages:    chatMessages(history, prompt),
		Temperature: openai.Float(0),
	}
	if config.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(config.MaxTokens))
	}

	resp, err := openaiClient.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("openAI chat request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, providers.ErrEmptyResponse
	}

	return &providers.CompletionResponse{
		ID:       resp.ID,
		Model:    resp.Model,
		Response: resp.Choices[0].Message.Content,
		Usage: providers.NewUsage(
			int(resp.Usage.PromptTokens),
			int(resp.Usage.CompletionTokens),
		),
	}, nil
}

func chatMessages(history moderation.History, prompt string) []openai.ChatCompletionMessageParamUnion {
	msgs := providers.Messages(history, prompt)
	out := make([]openai.ChatCompletionMessageParamUnion, 0, len(msgs))
	for _, m := range msgs {
		if m.Role == providers.RoleAssistant {
			out = append(out, openai.AssistantMessage(m.Content))
			continue
		}
		out = append(out, openai.UserMessage(m.Content))
	}
	return out
}

func (c *client) getOrCreateClient(apiKey, baseURL string) *openai.Client {
	key := baseURL + "|" + apiKey
	if v, ok := c.clientPool.Load(key); ok {
		if cli, ok := v.(*openai.Client); ok {
			return cli
		}
	}
	v, _, _ := c.sf.Do(key, func() (any, error) {
		if v2, ok := c.clientPool.Load(key); ok {
			return v2, nil
		}
		cli := newClient(apiKey, baseURL)
		c.clientPool.Store(key, cli)
		return cli, nil
	})
	if cli, ok := v.(*openai.Client); ok {
		return cli
	}
	return newClient(apiKey, baseURL)
}

func newClient(apiKey, baseURL string) *openai.Client {
	opts := []option.RequestOption{option.WithAPIKey(apiKey), option.WithMaxRetries(0)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	cli := openai.NewClient(opts...)
	return &cli
}
