package middleware

import (
	"context"

	"github.com/NeuralTrust/TrustGuard/pkg/app/session"
	"github.com/NeuralTrust/TrustGuard/pkg/common"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type sessionMiddleware struct {
	logger      *logrus.Logger
	manager     session.Manager
	defaultUser string
}

// NewSessionMiddleware resolves the board user from the session cookie.
// Requests without a valid cookie act as defaultUser.
func NewSessionMiddleware(
	logger *logrus.Logger,
	manager session.Manager,
	defaultUser string,
) Middleware {
	return &sessionMiddleware{
		logger:      logger,
		manager:     manager,
		defaultUser: defaultUser,
	}
}

func (m *sessionMiddleware) Middleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		userID := m.defaultUser
		if token := ctx.Cookies(session.CookieName); token != "" {
			id, err := m.manager.UserID(token)
			if err != nil {
				m.logger.WithError(err).Debug("ignoring invalid session cookie")
			} else {
				userID = id
			}
		}

		ctx.Locals(common.UserIDContextKey, userID)
		ctx.SetUserContext(context.WithValue(ctx.UserContext(), common.UserIDContextKey, userID))
		return ctx.Next()
	}
}

// UserID returns the board user resolved by the session middleware.
func UserID(ctx *fiber.Ctx) string {
	id, _ := ctx.Locals(common.UserIDContextKey).(string)
	return id
}
