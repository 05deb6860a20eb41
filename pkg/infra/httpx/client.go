package httpx

import (
	"time"

	"github.com/valyala/fasthttp"
)

const (
	DefaultTimeout             = 30 * time.Second
	DefaultMaxConnsPerHost     = 256
	DefaultMaxIdleConnDuration = 10 * time.Second
	DefaultMaxResponseBodySize = 4 * 1024 * 1024
)

// Doer is the subset of *fasthttp.Client used by outbound callers.
type Doer interface {
	DoTimeout(req *fasthttp.Request, resp *fasthttp.Response, timeout time.Duration) error
}

type ClientOptions struct {
	MaxConnsPerHost     int
	MaxIdleConnDuration time.Duration
	MaxResponseBodySize int
	Dial                fasthttp.DialFunc
}

type ClientOption func(*ClientOptions)

func WithMaxConnsPerHost(n int) ClientOption {
	return func(o *ClientOptions) {
		o.MaxConnsPerHost = n
	}
}

// WithDial replaces the dialer, mostly for in-memory listeners in tests.
func WithDial(dial fasthttp.DialFunc) ClientOption {
	return func(o *ClientOptions) {
		o.Dial = dial
	}
}

func NewClient(opts ...ClientOption) *fasthttp.Client {
	options := &ClientOptions{
		MaxConnsPerHost:     DefaultMaxConnsPerHost,
		MaxIdleConnDuration: DefaultMaxIdleConnDuration,
		MaxResponseBodySize: DefaultMaxResponseBodySize,
	}
	for _, opt := range opts {
		opt(options)
	}
	return &fasthttp.Client{
		MaxConnsPerHost:          options.MaxConnsPerHost,
		MaxIdleConnDuration:      options.MaxIdleConnDuration,
		MaxResponseBodySize:      options.MaxResponseBodySize,
		Dial:                     options.Dial,
		NoDefaultUserAgentHeader: true,
	}
}
