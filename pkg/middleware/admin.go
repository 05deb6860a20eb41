package middleware

import (
	"github.com/NeuralTrust/TrustGuard/pkg/domain/comment"
	domain "github.com/NeuralTrust/TrustGuard/pkg/domain/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type adminMiddleware struct {
	logger *logrus.Logger
	users  comment.UserRepository
}

// NewAdminMiddleware lets the request through only when the session user is
// an admin. It must run after the session middleware.
func NewAdminMiddleware(logger *logrus.Logger, users comment.UserRepository) Middleware {
	return &adminMiddleware{
		logger: logger,
		users:  users,
	}
}

func (m *adminMiddleware) Middleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		userID := UserID(ctx)
		user, err := m.users.GetByID(ctx.UserContext(), userID)
		if err != nil {
			if !domain.IsNotFoundError(err) {
				m.logger.WithError(err).WithField("user_id", userID).Error("failed to load user")
				return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
			}
			return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": domain.ErrForbidden.Error()})
		}
		if !user.IsAdmin() {
			return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": domain.ErrForbidden.Error()})
		}
		return ctx.Next()
	}
}
