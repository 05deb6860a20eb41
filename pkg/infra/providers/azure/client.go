package azure

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/NeuralTrust/TrustGuard/pkg/domain/moderation"
	"github.com/NeuralTrust/TrustGuard/pkg/infra/httpx"
	"github.com/NeuralTrust/TrustGuard/pkg/infra/providers"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fastjson"
)

const (
	defaultApiVersion = "2024-02-15-preview"
	cognitiveScope    = "https://cognitiveservices.azure.com/.default"
	requestTimeout    = 120 * time.Second
)

var (
	ErrMissingAzureConfig = errors.New("azure endpoint is required")
	ErrUpstream           = errors.New("azure openai request failed")
)

type CredentialFactory func() (azcore.TokenCredential, error)

type client struct {
	http          httpx.Doer
	newCredential CredentialFactory

	mu         sync.Mutex
	credential azcore.TokenCredential
}

func NewAzureClient(doer httpx.Doer) providers.Client {
	return NewAzureClientWithCredential(doer, defaultCredential)
}

func NewAzureClientWithCredential(doer httpx.Doer, factory CredentialFactory) providers.Client {
	if doer == nil {
		doer = httpx.NewClient()
	}
	return &client{http: doer, newCredential: factory}
}

func (c *client) Generate(
	ctx context.Context,
	config *providers.Config,
	prompt string,
) (*providers.CompletionResponse, error) {
	return c.Chat(ctx, config, nil, prompt)
}

// Chat calls the deployment named by Config.Model. Managed identity sends an
// AAD bearer token, otherwise the api-key header is used.
func (c *client) Chat(
	ctx context.Context,
	config *providers.Config,
	history moderation.History,
	prompt string,
) (*providers.CompletionResponse, error) {
	azureCfg := config.Credentials.Azure
	if azureCfg == nil || azureCfg.Endpoint == "" {
		return nil, ErrMissingAzureConfig
	}
	if err := config.Validate(!azureCfg.UseManagedIdentity); err != nil {
		return nil, err
	}

	payload := map[string]interface{}{
		"messages":    providers.Messages(history, prompt),
		"temperature": 0,
	}
	if config.MaxTokens > 0 {
		payload["max_tokens"] = config.MaxTokens
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	apiVersion := azureCfg.ApiVersion
	if apiVersion == "" {
		apiVersion = defaultApiVersion
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(fmt.Sprintf("%s/openai/deployments/%s/chat/completions?api-version=%s",
		strings.TrimRight(azureCfg.Endpoint, "/"), config.Model, apiVersion))
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	if azureCfg.UseManagedIdentity {
		token, err := c.token(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get Azure AD token: %w", err)
		}
		req.Header.Set(fasthttp.HeaderAuthorization, "Bearer "+token)
	} else {
		req.Header.Set("api-key", config.Credentials.ApiKey)
	}
	req.SetBodyRaw(body)

	timeout := requestTimeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
	}
	if err := c.http.DoTimeout(req, resp, timeout); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	respBody, err := httpx.ResponseBody(resp)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	if resp.StatusCode() != fasthttp.StatusOK {
		return nil, fmt.Errorf("%w: status %d: %s", ErrUpstream, resp.StatusCode(), respBody)
	}

	var p fastjson.Parser
	v, err := p.ParseBytes(respBody)
	if err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	choices := v.GetArray("choices")
	if len(choices) == 0 {
		return nil, providers.ErrEmptyResponse
	}
	return &providers.CompletionResponse{
		ID:       string(v.GetStringBytes("id")),
		Model:    config.Model,
		Response: string(choices[0].GetStringBytes("message", "content")),
		Usage: providers.NewUsage(
			v.GetInt("usage", "prompt_tokens"),
			v.GetInt("usage", "completion_tokens"),
		),
	}, nil
}

func (c *client) token(ctx context.Context) (string, error) {
	c.mu.Lock()
	if c.credential == nil {
		cred, err := c.newCredential()
		if err != nil {
			c.mu.Unlock()
			return "", err
		}
		c.credential = cred
	}
	cred := c.credential
	c.mu.Unlock()

	token, err := cred.GetToken(ctx, policy.TokenRequestOptions{
		Scopes: []string{cognitiveScope},
	})
	if err != nil {
		return "", fmt.Errorf("failed to get token: %w", err)
	}
	return token.Token, nil
}

func defaultCredential() (azcore.TokenCredential, error) {
	cred, err := azidentity.NewDefaultAzureCredential(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create credential: %w", err)
	}
	return cred, nil
}
