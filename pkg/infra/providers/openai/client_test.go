package openai_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/NeuralTrust/TrustGuard/pkg/domain/moderation"
	"github.com/NeuralTrust/TrustGuard/pkg/infra/providers"
	"github.com/NeuralTrust/TrustGuard/pkg/infra/providers/openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOpenaiClient(t *testing.T) {
	assert.NotNil(t, openai.NewOpenaiClient())
}

func TestGenerate_MissingAPIKey(t *testing.T) {
	client := openai.NewOpenaiClient()

	resp, err := client.Generate(context.Background(), &providers.Config{Model: "gpt-3.5-turbo-instruct"}, "p")

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, providers.ErrMissingAPIKey)
}

func TestChat_MissingModel(t *testing.T) {
	client := openai.NewOpenaiClient()
	config := &providers.Config{Credentials: providers.Credentials{ApiKey: "k"}}

	resp, err := client.Chat(context.Background(), config, nil, "p")

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, providers.ErrMissingModel)
}

func captureServer(t *testing.T, reply string) (*httptest.Server, *map[string]interface{}, *string) {
	t.Helper()
	var body map[string]interface{}
	var path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &body)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, reply)
	}))
	t.Cleanup(srv.Close)
	return srv, &body, &path
}

func TestGenerate_CompletionsAPI(t *testing.T) {
	srv, body, path := captureServer(t,
		`{"id":"cmpl-1","object":"text_completion","created":1,"model":"qwen","choices":[{"index":0,"text":" flagged","finish_reason":"length","logprobs":null}],"usage":{"prompt_tokens":10,"completion_tokens":2,"total_tokens":12}}`)

	client := openai.NewOpenaiClient()
	config := &providers.Config{
		Model:       "qwen",
		BaseURL:     srv.URL + "/v1",
		MaxTokens:   4,
		Credentials: providers.Credentials{ApiKey: "k"},
	}

	resp, err := client.Generate(context.Background(), config, "System: p\nUser: c\nAssistant:")
	require.NoError(t, err)

	assert.Equal(t, " flagged", resp.Response)
	assert.Equal(t, 12, resp.Usage.TotalTokens)
	assert.Equal(t, "/v1/completions", *path)
	assert.Equal(t, float64(4), (*body)["max_tokens"])
	assert.Equal(t, float64(0), (*body)["temperature"])
	assert.Equal(t, "System: p\nUser: c\nAssistant:", (*body)["prompt"])
}

func TestChat_ChatCompletionsAPI(t *testing.T) {
	srv, body, path := captureServer(t,
		`{"id":"chat-1","object":"chat.completion","created":1,"model":"chatglm","choices":[{"index":0,"message":{"role":"assistant","content":"okay"},"finish_reason":"stop","logprobs":null}],"usage":{"prompt_tokens":5,"completion_tokens":1,"total_tokens":6}}`)

	client := openai.NewOpenaiClient()
	config := &providers.Config{
		Model:       "chatglm",
		BaseURL:     srv.URL,
		Credentials: providers.Credentials{ApiKey: "k"},
	}
	history := moderation.History{moderation.NewTurn("policy", ""), moderation.NewTurn("a", "okay")}

	resp, err := client.Chat(context.Background(), config, history, "b")
	require.NoError(t, err)

	assert.Equal(t, "okay", resp.Response)
	assert.Equal(t, "/chat/completions", *path)
	messages, ok := (*body)["messages"].([]interface{})
	require.True(t, ok)
	assert.Len(t, messages, 4)
}
