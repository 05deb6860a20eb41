package factory

import (
	"fmt"

	"github.com/NeuralTrust/TrustGuard/pkg/infra/httpx"
	"github.com/NeuralTrust/TrustGuard/pkg/infra/providers"
	"github.com/NeuralTrust/TrustGuard/pkg/infra/providers/anthropic"
	"github.com/NeuralTrust/TrustGuard/pkg/infra/providers/azure"
	"github.com/NeuralTrust/TrustGuard/pkg/infra/providers/bedrock"
	"github.com/NeuralTrust/TrustGuard/pkg/infra/providers/gemini"
	"github.com/NeuralTrust/TrustGuard/pkg/infra/providers/huggingface"
	"github.com/NeuralTrust/TrustGuard/pkg/infra/providers/openai"
)

const (
	ProviderHuggingface = "huggingface"
	ProviderOpenAI      = "openai"
	ProviderGoogle      = "google"
	ProviderAnthropic   = "anthropic"
	ProviderBedrock     = "bedrock"
	ProviderAzure       = "azure"
)

//go:generate mockery --name=ProviderLocator --dir=. --output=./mocks --filename=provider_locator_mock.go --case=underscore --with-expecter

type ProviderLocator interface {
	Get(provider string) (providers.Client, error)
}

type providerLocator struct {
	httpClient httpx.Doer
}

func NewProviderLocator(httpClient httpx.Doer) ProviderLocator {
	if httpClient == nil {
		httpClient = httpx.NewClient()
	}
	return &providerLocator{
		httpClient: httpClient,
	}
}

func (f *providerLocator) Get(provider string) (providers.Client, error) {
	switch provider {
	case ProviderHuggingface, "":
		return huggingface.NewHuggingfaceClient(f.httpClient), nil
	case ProviderOpenAI:
		return openai.NewOpenaiClient(), nil
	case ProviderGoogle:
		return gemini.NewGeminiClient(), nil
	case ProviderAnthropic:
		return anthropic.NewAnthropicClient(), nil
	case ProviderBedrock:
		return bedrock.NewBedrockClient(), nil
	case ProviderAzure:
		return azure.NewAzureClient(f.httpClient), nil
	default:
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}
}
