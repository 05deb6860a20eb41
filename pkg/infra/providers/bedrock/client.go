package bedrock

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/NeuralTrust/TrustGuard/pkg/domain/moderation"
	"github.com/NeuralTrust/TrustGuard/pkg/infra/providers"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	stsTypes "github.com/aws/aws-sdk-go-v2/service/sts/types"
	"github.com/valyala/fastjson"
)

const (
	ModelPrefixAnthropicClaude   = "anthropic.claude"
	ModelPrefixAnthropicClaudeV3 = "anthropic.claude-3"
	ModelPrefixAmazonTitan       = "amazon.titan"
	ModelPrefixMistral           = "mistral"
	ModelPrefixMetaLlama         = "meta.llama"

	anthropicVersion = "bedrock-2023-05-31"
	defaultRegion    = "us-east-1"
	sessionName      = "TrustGuardModeration"
)

var ErrMissingAwsCredentials = errors.New("aws credentials are required")

// Invoker is the part of *bedrockruntime.Client used here.
type Invoker interface {
	InvokeModel(
		ctx context.Context,
		params *bedrockruntime.InvokeModelInput,
		optFns ...func(*bedrockruntime.Options),
	) (*bedrockruntime.InvokeModelOutput, error)
}

type InvokerFactory func(ctx context.Context, creds *providers.AwsCredentials) (Invoker, error)

type client struct {
	clientPool *sync.Map
	newInvoker InvokerFactory
}

func NewBedrockClient() providers.Client {
	return NewBedrockClientWithFactory(newRuntimeClient)
}

func NewBedrockClientWithFactory(factory InvokerFactory) providers.Client {
	return &client{
		clientPool: &sync.Map{},
		newInvoker: factory,
	}
}

func (c *client) Generate(
	ctx context.Context,
	cfg *providers.Config,
	prompt string,
) (*providers.CompletionResponse, error) {
	return c.invoke(ctx, cfg, []providers.Message{{Role: providers.RoleUser, Content: prompt}})
}

func (c *client) Chat(
	ctx context.Context,
	cfg *providers.Config,
	history moderation.History,
	prompt string,
) (*providers.CompletionResponse, error) {
	return c.invoke(ctx, cfg, providers.Messages(history, prompt))
}

func (c *client) invoke(
	ctx context.Context,
	cfg *providers.Config,
	messages []providers.Message,
) (*providers.CompletionResponse, error) {
	if err := cfg.Validate(false); err != nil {
		return nil, err
	}
	if cfg.Credentials.Aws == nil {
		return nil, ErrMissingAwsCredentials
	}

	invoker, err := c.getOrCreateClient(ctx, cfg.Credentials.Aws)
	if err != nil {
		return nil, fmt.Errorf("failed to create Bedrock client: %w", err)
	}

	body, err := json.Marshal(buildRequest(cfg, messages))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	resp, err := invoker.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(cfg.Model),
		ContentType: aws.String("application/json"),
		Accept:      aws.String("application/json"),
		Body:        body,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to invoke model: %w", err)
	}

	return parseResponse(cfg.Model, resp.Body)
}

func buildRequest(cfg *providers.Config, messages []providers.Message) map[string]interface{} {
	maxTokens := cfg.MaxTokens
	switch {
	case isClaudeV3Model(cfg.Model):
		return map[string]interface{}{
			"anthropic_version": anthropicVersion,
			"max_tokens":        maxTokens,
			"temperature":       0,
			"messages":          messages,
		}
	case isClaudeModel(cfg.Model):
		return map[string]interface{}{
			"prompt":               transcript(messages, "\n\nHuman: ", "\n\nAssistant: ") + "\n\nAssistant:",
			"max_tokens_to_sample": maxTokens,
			"temperature":          0,
		}
	case isTitanModel(cfg.Model):
		return map[string]interface{}{
			"inputText": transcript(messages, "User: ", "Bot: ") + "\nBot:",
			"textGenerationConfig": map[string]interface{}{
				"maxTokenCount": maxTokens,
				"temperature":   0,
			},
		}
	case isMistralModel(cfg.Model):
		return map[string]interface{}{
			"prompt":      "<s>[INST] " + transcript(messages, "", "") + " [/INST]",
			"max_tokens":  maxTokens,
			"temperature": 0,
		}
	case isLlamaModel(cfg.Model):
		return map[string]interface{}{
			"prompt":      transcript(messages, "User: ", "Assistant: ") + "\nAssistant:",
			"max_gen_len": maxTokens,
			"temperature": 0,
		}
	default:
		return map[string]interface{}{
			"prompt":      transcript(messages, "", ""),
			"max_tokens":  maxTokens,
			"temperature": 0,
		}
	}
}

// transcript renders messages for prompt-only models. A single user message
// with empty prefixes is passed through verbatim.
func transcript(messages []providers.Message, userPrefix, assistantPrefix string) string {
	var b strings.Builder
	for i, m := range messages {
		if i > 0 {
			b.WriteByte('\n')
		}
		if m.Role == providers.RoleAssistant {
			b.WriteString(assistantPrefix)
		} else {
			b.WriteString(userPrefix)
		}
		b.WriteString(m.Content)
	}
	return b.String()
}

func parseResponse(model string, body []byte) (*providers.CompletionResponse, error) {
	var p fastjson.Parser
	v, err := p.ParseBytes(body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	out := &providers.CompletionResponse{Model: model, ID: string(v.GetStringBytes("id"))}
	switch {
	case isClaudeV3Model(model):
		for _, content := range v.GetArray("content") {
			if string(content.GetStringBytes("type")) == "text" {
				out.Response = string(content.GetStringBytes("text"))
				break
			}
		}
		out.Usage = providers.NewUsage(v.GetInt("usage", "input_tokens"), v.GetInt("usage", "output_tokens"))
	case isClaudeModel(model):
		out.Response = string(v.GetStringBytes("completion"))
	case isTitanModel(model):
		results := v.GetArray("results")
		if len(results) == 0 {
			return nil, providers.ErrEmptyResponse
		}
		out.Response = string(results[0].GetStringBytes("outputText"))
		out.Usage = providers.NewUsage(v.GetInt("inputTextTokenCount"), results[0].GetInt("tokenCount"))
	case isMistralModel(model):
		outputs := v.GetArray("outputs")
		if len(outputs) == 0 {
			return nil, providers.ErrEmptyResponse
		}
		out.Response = string(outputs[0].GetStringBytes("text"))
	case isLlamaModel(model):
		out.Response = string(v.GetStringBytes("generation"))
		out.Usage = providers.NewUsage(v.GetInt("prompt_token_count"), v.GetInt("generation_token_count"))
	default:
		for _, field := range []string{"completion", "generation", "outputText", "response", "text", "output"} {
			if v.Exists(field) {
				out.Response = string(v.GetStringBytes(field))
				break
			}
		}
	}
	return out, nil
}

func (c *client) getOrCreateClient(ctx context.Context, creds *providers.AwsCredentials) (Invoker, error) {
	key := buildClientKey(creds)
	if v, ok := c.clientPool.Load(key); ok {
		if invoker, ok := v.(Invoker); ok {
			return invoker, nil
		}
	}
	invoker, err := c.newInvoker(ctx, creds)
	if err != nil {
		return nil, err
	}
	actual, _ := c.clientPool.LoadOrStore(key, invoker)
	if stored, ok := actual.(Invoker); ok {
		return stored, nil
	}
	return invoker, nil
}

func buildClientKey(creds *providers.AwsCredentials) string {
	return fmt.Sprintf("%s:%s:%v:%s", creds.AccessKey, creds.Region, creds.UseRole, creds.RoleARN)
}

func newRuntimeClient(ctx context.Context, creds *providers.AwsCredentials) (Invoker, error) {
	cfg, err := buildAwsConfig(ctx, creds)
	if err != nil {
		return nil, err
	}
	return bedrockruntime.NewFromConfig(cfg), nil
}

// buildAwsConfig falls back to the default credential chain when no static
// keys are configured.
func buildAwsConfig(ctx context.Context, creds *providers.AwsCredentials) (aws.Config, error) {
	region := creds.Region
	if region == "" {
		region = defaultRegion
	}

	if creds.AccessKey == "" {
		return config.LoadDefaultConfig(ctx, config.WithRegion(region))
	}

	if creds.UseRole && creds.RoleARN != "" {
		assumed, err := assumeRole(ctx, creds.AccessKey, creds.SecretKey, creds.RoleARN, region)
		if err != nil {
			return aws.Config{}, err
		}
		return loadAWSConfig(ctx, *assumed.AccessKeyId, *assumed.SecretAccessKey, *assumed.SessionToken, region)
	}

	return loadAWSConfig(ctx, creds.AccessKey, creds.SecretKey, creds.SessionToken, region)
}

func loadAWSConfig(ctx context.Context, accessKey, secretKey, sessionToken, region string) (aws.Config, error) {
	return config.LoadDefaultConfig(ctx,
		config.WithCredentialsProvider(aws.CredentialsProviderFunc(
			func(ctx context.Context) (aws.Credentials, error) {
				return aws.Credentials{
					AccessKeyID:     accessKey,
					SecretAccessKey: secretKey,
					SessionToken:    sessionToken,
				}, nil
			},
		)),
		config.WithRegion(region),
	)
}

func assumeRole(ctx context.Context, accessKey, secretKey, roleARN, region string) (*stsTypes.Credentials, error) {
	baseCfg, err := loadAWSConfig(ctx, accessKey, secretKey, "", region)
	if err != nil {
		return nil, fmt.Errorf("unable to load base AWS config: %w", err)
	}
	output, err := sts.NewFromConfig(baseCfg).AssumeRole(ctx, &sts.AssumeRoleInput{
		RoleArn:         aws.String(roleARN),
		RoleSessionName: aws.String(sessionName),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to assume role: %w", err)
	}
	return output.Credentials, nil
}

func isClaudeModel(model string) bool {
	return strings.Contains(model, ModelPrefixAnthropicClaude)
}

func isClaudeV3Model(model string) bool {
	return strings.Contains(model, ModelPrefixAnthropicClaudeV3)
}

func isTitanModel(model string) bool {
	return strings.Contains(model, ModelPrefixAmazonTitan)
}

func isMistralModel(model string) bool {
	return strings.Contains(model, ModelPrefixMistral)
}

func isLlamaModel(model string) bool {
	return strings.Contains(model, ModelPrefixMetaLlama)
}
