package http

import (
	"time"

	"github.com/NeuralTrust/TrustGuard/pkg/app/session"
	"github.com/NeuralTrust/TrustGuard/pkg/handlers/http/request"
	"github.com/NeuralTrust/TrustGuard/pkg/handlers/http/response"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type sessionHandler struct {
	logger   *logrus.Logger
	sessions session.Manager
	secure   bool
}

func NewSessionHandler(logger *logrus.Logger, sessions session.Manager, secureCookie bool) Handler {
	return &sessionHandler{
		logger:   logger,
		sessions: sessions,
		secure:   secureCookie,
	}
}

// Handle @Summary Switch the active board user
// @Tags Board
// @Accept json
// @Produce json
// @Param request body request.SessionRequest true "User to act as"
// @Success 200 {object} response.SessionResponse
// @Failure 400 {object} response.ErrorResponse
// @Router /api/session [post]
func (h *sessionHandler) Handle(c *fiber.Ctx) error {
	var req request.SessionRequest
	if err := decodeBody(c, &req); err != nil {
		return respondError(c, h.logger, err)
	}
	if err := req.Validate(); err != nil {
		return respondError(c, h.logger, err)
	}

	token, err := h.sessions.CreateToken(req.UserID)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     session.CookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(h.sessions.TTL()),
		HTTPOnly: true,
		Secure:   h.secure,
		SameSite: fiber.CookieSameSiteStrictMode,
	})
	return c.Status(fiber.StatusOK).JSON(response.SessionResponse{UserID: req.UserID})
}
