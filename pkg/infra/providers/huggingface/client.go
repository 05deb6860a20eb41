package huggingface

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/NeuralTrust/TrustGuard/pkg/domain/moderation"
	"github.com/NeuralTrust/TrustGuard/pkg/infra/httpx"
	"github.com/NeuralTrust/TrustGuard/pkg/infra/providers"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fastjson"
)

const (
	defaultTimeout = 120 * time.Second
	generatePath   = "/generate"
	chatPath       = "/v1/chat/completions"
	maxErrorBody   = 512
)

var (
	ErrMissingBaseURL = errors.New("base URL is required")
	ErrUpstream       = errors.New("text generation request failed")
)

type generateRequest struct {
	Inputs     string             `json:"inputs"`
	Parameters generateParameters `json:"parameters"`
}

type generateParameters struct {
	MaxNewTokens   int      `json:"max_new_tokens,omitempty"`
	DoSample       bool     `json:"do_sample"`
	ReturnFullText bool     `json:"return_full_text"`
	Details        bool     `json:"details"`
	Stop           []string `json:"stop,omitempty"`
}

type chatRequest struct {
	Model       string              `json:"model"`
	Messages    []providers.Message `json:"messages"`
	MaxTokens   int                 `json:"max_tokens,omitempty"`
	Temperature float64             `json:"temperature"`
	Stream      bool                `json:"stream"`
}

type hfOptions struct {
	Stop    []string      `mapstructure:"stop"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type client struct {
	http    httpx.Doer
	parsers fastjson.ParserPool
}

// NewHuggingfaceClient talks to a text-generation-inference server (or any
// server exposing the same /generate and OpenAI style chat routes).
func NewHuggingfaceClient(doer httpx.Doer) providers.Client {
	if doer == nil {
		doer = httpx.NewClient()
	}
	return &client{http: doer}
}

func (c *client) Generate(
	ctx context.Context,
	config *providers.Config,
	prompt string,
) (*providers.CompletionResponse, error) {
	opts, err := c.validate(config)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(generateRequest{
		Inputs: prompt,
		Parameters: generateParameters{
			MaxNewTokens: config.MaxTokens,
			Details:      true,
			Stop:         opts.Stop,
		},
	})
	if err != nil {
		return nil, err
	}

	body, err := c.post(ctx, config, opts, generatePath, payload)
	if err != nil {
		return nil, err
	}

	p := c.parsers.Get()
	defer c.parsers.Put(p)
	v, err := p.ParseBytes(body)
	if err != nil {
		return nil, fmt.Errorf("invalid generate response: %w", err)
	}
	// The hosted inference API wraps the result in an array.
	if v.Type() == fastjson.TypeArray {
		items := v.GetArray()
		if len(items) == 0 {
			return nil, providers.ErrEmptyResponse
		}
		v = items[0]
	}
	if !v.Exists("generated_text") {
		return nil, providers.ErrEmptyResponse
	}

	text := string(v.GetStringBytes("generated_text"))
	// Servers that ignore return_full_text echo the prompt back.
	text = strings.TrimPrefix(text, prompt)

	completion := v.GetInt("details", "generated_tokens")
	prefill := len(v.GetArray("details", "prefill"))
	return &providers.CompletionResponse{
		Model:    config.Model,
		Response: text,
		Usage:    providers.NewUsage(prefill, completion),
	}, nil
}

func (c *client) Chat(
	ctx context.Context,
	config *providers.Config,
	history moderation.History,
	prompt string,
) (*providers.CompletionResponse, error) {
	opts, err := c.validate(config)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(chatRequest{
		Model:       config.Model,
		Messages:    providers.Messages(history, prompt),
		MaxTokens:   config.MaxTokens,
		Temperature: 0,
	})
	if err != nil {
		return nil, err
	}

	body, err := c.post(ctx, config, opts, chatPath, payload)
	if err != nil {
		return nil, err
	}

	p := c.parsers.Get()
	defer c.parsers.Put(p)
	v, err := p.ParseBytes(body)
	if err != nil {
		return nil, fmt.Errorf("invalid chat response: %w", err)
	}
	choices := v.GetArray("choices")
	if len(choices) == 0 {
		return nil, providers.ErrEmptyResponse
	}
	return &providers.CompletionResponse{
		ID:       string(v.GetStringBytes("id")),
		Model:    string(v.GetStringBytes("model")),
		Response: string(choices[0].GetStringBytes("message", "content")),
		Usage: providers.NewUsage(
			v.GetInt("usage", "prompt_tokens"),
			v.GetInt("usage", "completion_tokens"),
		),
	}, nil
}

func (c *client) validate(config *providers.Config) (hfOptions, error) {
	var opts hfOptions
	if config.BaseURL == "" {
		return opts, ErrMissingBaseURL
	}
	if err := providers.DecodeOptions(config.Options, &opts); err != nil {
		return opts, fmt.Errorf("invalid huggingface options: %w", err)
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	return opts, nil
}

func (c *client) post(
	ctx context.Context,
	config *providers.Config,
	opts hfOptions,
	path string,
	payload []byte,
) ([]byte, error) {
	timeout := opts.Timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if timeout <= 0 {
		return nil, context.DeadlineExceeded
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(strings.TrimRight(config.BaseURL, "/") + path)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	req.Header.Set(fasthttp.HeaderAcceptEncoding, "gzip, br, zstd")
	if config.Credentials.ApiKey != "" {
		req.Header.Set(fasthttp.HeaderAuthorization, "Bearer "+config.Credentials.ApiKey)
	}
	req.SetBodyRaw(payload)

	if err := c.http.DoTimeout(req, resp, timeout); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	body, err := httpx.ResponseBody(resp)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	if status := resp.StatusCode(); status < fasthttp.StatusOK || status >= fasthttp.StatusMultipleChoices {
		if len(body) > maxErrorBody {
			body = body[:maxErrorBody]
		}
		return nil, fmt.Errorf("%w: status %d: %s", ErrUpstream, status, body)
	}
	return append([]byte(nil), body...), nil
}
