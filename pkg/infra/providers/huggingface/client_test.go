package huggingface

import (
	"context"
	"encoding/json"
	"net"
	"testing"
	"time"

	"github.com/NeuralTrust/TrustGuard/pkg/domain/moderation"
	"github.com/NeuralTrust/TrustGuard/pkg/infra/httpx"
	"github.com/NeuralTrust/TrustGuard/pkg/infra/providers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttputil"
)

type recorded struct {
	path   string
	auth   string
	body   map[string]interface{}
	called int
}

func startServer(t *testing.T, status int, reply string) (*recorded, providers.Client) {
	t.Helper()
	rec := &recorded{}
	ln := fasthttputil.NewInmemoryListener()
	srv := &fasthttp.Server{
		Handler: func(ctx *fasthttp.RequestCtx) {
			rec.called++
			rec.path = string(ctx.Path())
			rec.auth = string(ctx.Request.Header.Peek(fasthttp.HeaderAuthorization))
			_ = json.Unmarshal(ctx.PostBody(), &rec.body)
			ctx.SetStatusCode(status)
			ctx.SetContentType("application/json")
			ctx.SetBodyString(reply)
		},
	}
	go func() { _ = srv.Serve(ln) }()
	t.Cleanup(func() { _ = ln.Close() })

	doer := httpx.NewClient(httpx.WithDial(func(string) (net.Conn, error) { return ln.Dial() }))
	return rec, NewHuggingfaceClient(doer)
}

func testConfig() *providers.Config {
	return &providers.Config{
		Model:       "Qwen/Qwen1.5-1.8B",
		BaseURL:     "http://tgi.local/",
		MaxTokens:   4,
		Credentials: providers.Credentials{ApiKey: "hf-token"},
	}
}

func TestGenerate(t *testing.T) {
	rec, client := startServer(t, fasthttp.StatusOK,
		`{"generated_text":" Flagged","details":{"generated_tokens":2,"prefill":[{},{},{}]}}`)

	resp, err := client.Generate(context.Background(), testConfig(), "System: p\nUser: c\nAssistant:")
	require.NoError(t, err)

	assert.Equal(t, " Flagged", resp.Response)
	assert.Equal(t, 2, resp.Usage.CompletionTokens)
	assert.Equal(t, 3, resp.Usage.PromptTokens)
	assert.Equal(t, "/generate", rec.path)
	assert.Equal(t, "Bearer hf-token", rec.auth)

	params, ok := rec.body["parameters"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(4), params["max_new_tokens"])
	assert.Equal(t, false, params["do_sample"])
	assert.Equal(t, false, params["return_full_text"])
	assert.Equal(t, "System: p\nUser: c\nAssistant:", rec.body["inputs"])
}

func TestGenerate_ArrayResponseStripsEchoedPrompt(t *testing.T) {
	_, client := startServer(t, fasthttp.StatusOK, `[{"generated_text":"PROMPT okay"}]`)

	resp, err := client.Generate(context.Background(), testConfig(), "PROMPT")
	require.NoError(t, err)
	assert.Equal(t, " okay", resp.Response)
}

func TestGenerate_EmptyArray(t *testing.T) {
	_, client := startServer(t, fasthttp.StatusOK, `[]`)

	_, err := client.Generate(context.Background(), testConfig(), "p")
	assert.ErrorIs(t, err, providers.ErrEmptyResponse)
}

func TestGenerate_UpstreamError(t *testing.T) {
	_, client := startServer(t, fasthttp.StatusServiceUnavailable, `{"error":"Model is overloaded"}`)

	resp, err := client.Generate(context.Background(), testConfig(), "p")
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrUpstream)
	assert.Contains(t, err.Error(), "503")
}

func TestGenerate_MissingBaseURL(t *testing.T) {
	rec, client := startServer(t, fasthttp.StatusOK, `{}`)
	cfg := testConfig()
	cfg.BaseURL = ""

	_, err := client.Generate(context.Background(), cfg, "p")
	assert.ErrorIs(t, err, ErrMissingBaseURL)
	assert.Zero(t, rec.called)
}

func TestGenerate_CancelledContext(t *testing.T) {
	rec, client := startServer(t, fasthttp.StatusOK, `{"generated_text":"okay"}`)
	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	time.Sleep(time.Millisecond)

	_, err := client.Generate(ctx, testConfig(), "p")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Zero(t, rec.called)
}

func TestChat(t *testing.T) {
	rec, client := startServer(t, fasthttp.StatusOK,
		`{"id":"c1","model":"THUDM/chatglm3-6b","choices":[{"message":{"role":"assistant","content":"okay"}}],"usage":{"prompt_tokens":40,"completion_tokens":1}}`)

	history := moderation.History{moderation.NewTurn("policy", "")}
	resp, err := client.Chat(context.Background(), testConfig(), history, "hello")
	require.NoError(t, err)

	assert.Equal(t, "okay", resp.Response)
	assert.Equal(t, "c1", resp.ID)
	assert.Equal(t, 41, resp.Usage.TotalTokens)
	assert.Equal(t, "/v1/chat/completions", rec.path)

	messages, ok := rec.body["messages"].([]interface{})
	require.True(t, ok)
	assert.Len(t, messages, 2)
	assert.Equal(t, float64(0), rec.body["temperature"])
}

func TestChat_NoChoices(t *testing.T) {
	_, client := startServer(t, fasthttp.StatusOK, `{"choices":[]}`)

	_, err := client.Chat(context.Background(), testConfig(), nil, "hello")
	assert.ErrorIs(t, err, providers.ErrEmptyResponse)
}
