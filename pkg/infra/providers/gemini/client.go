package gemini

import (
	"context"
	"fmt"
	"sync"

	"github.com/NeuralTrust/TrustGuard/pkg/domain/moderation"
	"github.com/NeuralTrust/TrustGuard/pkg/infra/providers"
	"golang.org/x/sync/singleflight"
	"google.golang.org/genai"
)

const (
	roleUser  = "user"
	roleModel = "model"
)

type client struct {
	clientPool *sync.Map
	sf         singleflight.Group
}

func NewGeminiClient() providers.Client {
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
	genaiClient, err := c.getOrCreateClient(ctx, config.Credentials.ApiKey, config.BaseURL)
	if err != nil {
		return nil, err
	}

	generateConfig := &genai.GenerateContentConfig{
		Temperature: genai.Ptr[float32](0),
	}
	if config.MaxTokens > 0 {
		generateConfig.MaxOutputTokens = int32(config.MaxTokens)
	}

	result, err := genaiClient.Models.GenerateContent(ctx, config.Model, contents(history, prompt), generateConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}
	if len(result.Candidates) == 0 {
		return nil, providers.ErrEmptyResponse
	}

	resp := &providers.CompletionResponse{
		Model:    config.Model,
		Response: result.Text(),
	}
	if result.UsageMetadata != nil {
		resp.Usage = providers.NewUsage(
			int(result.UsageMetadata.PromptTokenCount),
			int(result.UsageMetadata.CandidatesTokenCount),
		)
	}
	return resp, nil
}

func contents(history moderation.History, prompt string) []*genai.Content {
	msgs := providers.Messages(history, prompt)
	out := make([]*genai.Content, 0, len(msgs))
	for _, m := range msgs {
		role := roleUser
		if m.Role == providers.RoleAssistant {
			role = roleModel
		}
		out = append(out, &genai.Content{
			Role:  role,
			Parts: []*genai.Part{{Text: m.Content}},
		})
	}
	return out
}

func (c *client) getOrCreateClient(ctx context.Context, apiKey, baseURL string) (*genai.Client, error) {
	key := baseURL + "|" + apiKey
	if v, ok := c.clientPool.Load(key); ok {
		if cli, ok := v.(*genai.Client); ok {
			return cli, nil
		}
	}
	v, err, _ := c.sf.Do(key, func() (any, error) {
		if v2, ok := c.clientPool.Load(key); ok {
			return v2, nil
		}
		cfg := &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		}
		if baseURL != "" {
			cfg.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
		}
		cli, err := genai.NewClient(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to create genai client: %w", err)
		}
		c.clientPool.Store(key, cli)
		return cli, nil
	})
	if err != nil {
		return nil, err
	}
	cli, ok := v.(*genai.Client)
	if !ok {
		return nil, fmt.Errorf("invalid client type in pool")
	}
	return cli, nil
}
