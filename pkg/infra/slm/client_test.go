package slm_test

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"sync/atomic"
	"testing"
	"time"

	"github.com/NeuralTrust/TrustGuard/pkg/domain/comment"
	"github.com/NeuralTrust/TrustGuard/pkg/infra/httpx"
	"github.com/NeuralTrust/TrustGuard/pkg/infra/slm"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttputil"
)

type fakeAPI struct {
	calls  atomic.Int32
	status int
	reply  string
	delay  time.Duration
	auth   atomic.Value
	prompt atomic.Value
}

func (f *fakeAPI) start(t *testing.T) httpx.Doer {
	t.Helper()
	ln := fasthttputil.NewInmemoryListener()
	srv := &fasthttp.Server{
		Handler: func(ctx *fasthttp.RequestCtx) {
			f.calls.Add(1)
			f.auth.Store(string(ctx.Request.Header.Peek(fasthttp.HeaderAuthorization)))
			var body map[string]string
			_ = json.Unmarshal(ctx.PostBody(), &body)
			f.prompt.Store(body["prompt"])
			if f.delay > 0 {
				time.Sleep(f.delay)
			}
			ctx.SetStatusCode(f.status)
			ctx.SetContentType("application/json")
			ctx.SetBodyString(f.reply)
		},
	}
	go func() { _ = srv.Serve(ln) }()
	t.Cleanup(func() { _ = ln.Close() })
	return httpx.NewClient(httpx.WithDial(func(string) (net.Conn, error) { return ln.Dial() }))
}

func newModerator(doer httpx.Doer, enabled bool, timeout time.Duration) comment.Moderator {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return slm.NewModerationClient(
		logger,
		doer,
		httpx.NewCircuitBreaker("slm-test", time.Minute, 2),
		slm.Config{Enabled: enabled, BaseURL: "http://api.local/", ApiKey: "secret", Timeout: timeout},
	)
}

func TestModerate_Flagged(t *testing.T) {
	api := &fakeAPI{status: fasthttp.StatusOK, reply: `{"response":"flagged","history":[]}`}
	m := newModerator(api.start(t), true, time.Second)

	d := m.Moderate(context.Background(), "go away")
	assert.Equal(t, comment.Decision{Flag: true, Status: 406, Reason: "auto-flagged"}, d)
	assert.Equal(t, "Bearer secret", api.auth.Load())
	assert.Equal(t, "go away", api.prompt.Load())
}

func TestModerate_Okay(t *testing.T) {
	api := &fakeAPI{status: fasthttp.StatusOK, reply: `{"response":"okay","history":[["hi","okay"]]}`}
	m := newModerator(api.start(t), true, time.Second)

	assert.Equal(t, comment.Decision{Status: 200}, m.Moderate(context.Background(), "hi"))
}

func TestModerate_Disabled(t *testing.T) {
	api := &fakeAPI{status: fasthttp.StatusOK, reply: `{"response":"flagged"}`}
	m := newModerator(api.start(t), false, time.Second)

	assert.False(t, m.Moderate(context.Background(), "go away").Flag)
	assert.Equal(t, int32(0), api.calls.Load())
}

func TestModerate_FailsOpen(t *testing.T) {
	t.Run("non 2xx", func(t *testing.T) {
		api := &fakeAPI{status: fasthttp.StatusInternalServerError, reply: `{"error":"internal server error"}`}
		m := newModerator(api.start(t), true, time.Second)
		assert.Equal(t, comment.Decision{}, m.Moderate(context.Background(), "x"))
	})

	t.Run("malformed body", func(t *testing.T) {
		api := &fakeAPI{status: fasthttp.StatusOK, reply: `{"nope":1}`}
		m := newModerator(api.start(t), true, time.Second)
		assert.Equal(t, comment.Decision{}, m.Moderate(context.Background(), "x"))
	})

	t.Run("timeout", func(t *testing.T) {
		api := &fakeAPI{status: fasthttp.StatusOK, reply: `{"response":"flagged"}`, delay: 200 * time.Millisecond}
		m := newModerator(api.start(t), true, 20*time.Millisecond)
		assert.Equal(t, comment.Decision{}, m.Moderate(context.Background(), "x"))
	})
}

func TestModerate_BreakerOpensAfterRepeatedFailures(t *testing.T) {
	api := &fakeAPI{status: fasthttp.StatusBadGateway, reply: `bad gateway`}
	m := newModerator(api.start(t), true, time.Second)

	for i := 0; i < 5; i++ {
		require.False(t, m.Moderate(context.Background(), "x").Flag)
	}
	assert.Equal(t, int32(2), api.calls.Load())
}
