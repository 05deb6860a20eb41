package slm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/NeuralTrust/TrustGuard/pkg/domain/comment"
	"github.com/NeuralTrust/TrustGuard/pkg/infra/httpx"
	"github.com/NeuralTrust/TrustGuard/pkg/infra/prometheus"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fastjson"
)

const defaultTimeout = 2 * time.Second

var (
	ErrUpstream     = errors.New("moderation api error")
	ErrInvalidReply = errors.New("invalid moderation reply")

	jsonAPI         = jsoniter.ConfigFastest
	replyParserPool fastjson.ParserPool
)

type Config struct {
	Enabled bool
	BaseURL string
	ApiKey  string
	Timeout time.Duration
}

type chatRequest struct {
	Prompt string `json:"prompt"`
}

type moderationClient struct {
	logger  *logrus.Logger
	doer    httpx.Doer
	breaker httpx.CircuitBreaker
	cfg     Config
}

// NewModerationClient returns a comment.Moderator backed by POST /chat. It
// fails open: every error reads as "do not flag".
func NewModerationClient(
	logger *logrus.Logger,
	doer httpx.Doer,
	breaker httpx.CircuitBreaker,
	cfg Config,
) comment.Moderator {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &moderationClient{
		logger:  logger,
		doer:    doer,
		breaker: breaker,
		cfg:     cfg,
	}
}

func (c *moderationClient) Moderate(ctx context.Context, content string) comment.Decision {
	if !c.cfg.Enabled {
		prometheus.BoardModeration.WithLabelValues("disabled").Inc()
		return comment.Decision{}
	}

	var reply string
	err := c.breaker.Execute(func() error {
		r, err := c.chat(ctx, content)
		reply = r
		return err
	})
	if err != nil {
		c.logger.WithError(err).Warn("moderation call failed, not flagging")
		prometheus.BoardModeration.WithLabelValues("error").Inc()
		return comment.Decision{}
	}

	d := Decide(reply)
	outcome := "okay"
	if d.Flag {
		outcome = "flagged"
	}
	prometheus.BoardModeration.WithLabelValues(outcome).Inc()
	c.logger.WithFields(logrus.Fields{
		"flag":   d.Flag,
		"status": d.Status,
	}).Debug("moderation decision")
	return d
}

func (c *moderationClient) chat(ctx context.Context, content string) (string, error) {
	body, err := jsonAPI.Marshal(chatRequest{Prompt: content})
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.cfg.BaseURL + "/chat")
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	req.Header.Set(fasthttp.HeaderAuthorization, "Bearer "+c.cfg.ApiKey)
	req.SetBody(body)

	timeout := c.cfg.Timeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
	}
	if timeout <= 0 {
		return "", context.DeadlineExceeded
	}

	if err := c.doer.DoTimeout(req, resp, timeout); err != nil {
		return "", fmt.Errorf("call moderation api: %w", err)
	}
	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return "", fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode())
	}

	raw, err := httpx.ResponseBody(resp)
	if err != nil {
		return "", err
	}

	p := replyParserPool.Get()
	defer replyParserPool.Put(p)
	v, err := p.ParseBytes(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidReply, err)
	}
	r := v.Get("response")
	if r == nil || r.Type() != fastjson.TypeString {
		return "", fmt.Errorf("%w: missing response field", ErrInvalidReply)
	}
	return string(r.GetStringBytes()), nil
}
