package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const bearerPrefix = "Bearer "

type authMiddleware struct {
	logger *logrus.Logger
	apiKey []byte
}

// NewAuthMiddleware requires "Authorization: Bearer <apiKey>". A missing or
// malformed header is 401, a wrong token is 403.
func NewAuthMiddleware(logger *logrus.Logger, apiKey string) Middleware {
	return &authMiddleware{
		logger: logger,
		apiKey: []byte(apiKey),
	}
}

func (m *authMiddleware) Middleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		header := ctx.Get(fiber.HeaderAuthorization)
		if header == "" {
			m.logger.Debug("no authorization header provided")
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing authorization header"})
		}
		if !strings.HasPrefix(header, bearerPrefix) {
			m.logger.Debug("malformed authorization header")
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid authorization header"})
		}

		token := strings.TrimPrefix(header, bearerPrefix)
		if subtle.ConstantTimeCompare([]byte(token), m.apiKey) != 1 {
			m.logger.WithField("ip", ctx.IP()).Warn("invalid api key")
			return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "invalid API key"})
		}
		return ctx.Next()
	}
}
