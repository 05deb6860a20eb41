package middleware

import "github.com/gofiber/fiber/v2"

type Middleware interface {
	Middleware() fiber.Handler
}

// Transport groups the middleware a server installs.
type Transport struct {
	RequestLogMiddleware Middleware
	PanicMiddleware      Middleware
	CORSMiddleware       Middleware
	MetricsMiddleware    Middleware
	AuthMiddleware       Middleware
	SessionMiddleware    Middleware
	AdminMiddleware      Middleware
	WebsocketMiddleware  Middleware
}

// Global returns the middleware installed on every route, in order.
func (t Transport) Global() []Middleware {
	var out []Middleware
	for _, m := range []Middleware{t.RequestLogMiddleware, t.PanicMiddleware, t.CORSMiddleware, t.MetricsMiddleware} {
		if m != nil {
			out = append(out, m)
		}
	}
	return out
}
