package middleware

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type CORSConfig struct {
	AllowOrigins     []string
	AllowMethods     []string
	AllowHeaders     []string
	AllowCredentials bool
	MaxAge           int
}

type corsGlobalMiddleware struct {
	cfg     CORSConfig
	methods string
	headers string
}

func NewCORSGlobalMiddleware(cfg CORSConfig) Middleware {
	return &corsGlobalMiddleware{
		cfg:     cfg,
		methods: strings.Join(cfg.AllowMethods, ", "),
		headers: strings.Join(cfg.AllowHeaders, ", "),
	}
}

// Middleware reflects the request origin when credentials are allowed, since
// browsers reject "*" together with credentials.
func (m *corsGlobalMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		origin := c.Get(fiber.HeaderOrigin)
		if origin == "" || !m.allowed(origin) {
			return c.Next()
		}

		c.Vary(fiber.HeaderOrigin)
		if m.cfg.AllowCredentials || !hasStar(m.cfg.AllowOrigins) {
			c.Set(fiber.HeaderAccessControlAllowOrigin, origin)
		} else {
			c.Set(fiber.HeaderAccessControlAllowOrigin, "*")
		}
		if m.cfg.AllowCredentials {
			c.Set(fiber.HeaderAccessControlAllowCredentials, "true")
		}

		if c.Method() != fiber.MethodOptions || c.Get(fiber.HeaderAccessControlRequestMethod) == "" {
			return c.Next()
		}

		c.Set(fiber.HeaderAccessControlAllowMethods, m.methods)
		if reqHeaders := c.Get(fiber.HeaderAccessControlRequestHeaders); reqHeaders != "" && hasStar(m.cfg.AllowHeaders) {
			c.Set(fiber.HeaderAccessControlAllowHeaders, reqHeaders)
		} else if m.headers != "" {
			c.Set(fiber.HeaderAccessControlAllowHeaders, m.headers)
		}
		if m.cfg.MaxAge > 0 {
			c.Set(fiber.HeaderAccessControlMaxAge, strconv.Itoa(m.cfg.MaxAge))
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

func (m *corsGlobalMiddleware) allowed(origin string) bool {
	for _, o := range m.cfg.AllowOrigins {
		if o == "*" || strings.EqualFold(o, origin) {
			return true
		}
	}
	return false
}

func hasStar(arr []string) bool {
	for _, v := range arr {
		if v == "*" {
			return true
		}
	}
	return false
}
