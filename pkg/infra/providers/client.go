package providers

import (
	"context"
	"errors"

	"github.com/NeuralTrust/TrustGuard/pkg/domain/moderation"
)

var (
	ErrMissingAPIKey = errors.New("API key is required")
	ErrMissingModel  = errors.New("model is required")
	ErrEmptyResponse = errors.New("no completions returned")
)

type Config struct {
	Credentials Credentials            `json:"credentials"`
	Model       string                 `json:"model"`
	BaseURL     string                 `json:"base_url,omitempty"`
	MaxTokens   int                    `json:"max_tokens,omitempty"`
	Temperature float64                `json:"temperature,omitempty"`
	Options     map[string]interface{} `json:"options,omitempty"`
}

type Credentials struct {
	ApiKey string            `json:"api_key,omitempty"`
	Aws    *AwsCredentials   `json:"aws,omitempty"`
	Azure  *AzureCredentials `json:"azure,omitempty"`
}

type AwsCredentials struct {
	Region       string `json:"region"`
	AccessKey    string `json:"access_key,omitempty"`
	SecretKey    string `json:"secret_key,omitempty"`
	SessionToken string `json:"session_token,omitempty"`
	RoleARN      string `json:"role_arn,omitempty"`
	UseRole      bool   `json:"use_role,omitempty"`
}

type AzureCredentials struct {
	Endpoint           string `json:"endpoint"`
	ApiVersion         string `json:"api_version,omitempty"`
	UseManagedIdentity bool   `json:"use_managed_identity,omitempty"`
}

//go:generate mockery --name=Client --dir=. --output=./mocks --filename=client_mock.go --case=underscore --with-expecter

// Client performs exactly one bounded, deterministic generation per call and
// returns only the newly generated text.
type Client interface {
	// Generate completes a single flat prompt.
	Generate(ctx context.Context, config *Config, prompt string) (*CompletionResponse, error)
	// Chat replays history as alternating turns followed by prompt.
	Chat(ctx context.Context, config *Config, history moderation.History, prompt string) (*CompletionResponse, error)
}

func (c *Config) Validate(requireKey bool) error {
	if requireKey && c.Credentials.ApiKey == "" {
		return ErrMissingAPIKey
	}
	if c.Model == "" {
		return ErrMissingModel
	}
	return nil
}
