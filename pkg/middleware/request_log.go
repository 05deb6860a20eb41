package middleware

import (
	"context"
	"time"

	"github.com/NeuralTrust/TrustGuard/pkg/common"
	"github.com/NeuralTrust/TrustGuard/pkg/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const RequestIDHeader = "X-Request-Id"

type requestLogMiddleware struct {
	logger *logrus.Logger
}

// NewRequestLogMiddleware tags each request with an id and start time and
// logs one line when it completes.
func NewRequestLogMiddleware(logger *logrus.Logger) Middleware {
	return &requestLogMiddleware{logger: logger}
}

func (m *requestLogMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		requestID := c.Get(RequestIDHeader)
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = uuid.NewString()
		}

		c.Locals(common.RequestIDKey, requestID)
		c.Locals(common.LatencyContextKey, start)
		ctx := context.WithValue(c.UserContext(), common.RequestIDKey, requestID)
		c.SetUserContext(ctx)
		c.Set(RequestIDHeader, requestID)

		err := c.Next()
		if err != nil {
			// Let the app error handler write the status before logging it.
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		fields := logrus.Fields{
			"request_id": requestID,
			"method":     c.Method(),
			"path":       c.Path(),
			"status":     c.Response().StatusCode(),
			"latency_ms": time.Since(start).Milliseconds(),
			"ip":         c.IP(),
		}
		if ua := utils.ParseUserAgent(c.Get(fiber.HeaderUserAgent), c.Get(fiber.HeaderAcceptLanguage)); ua != nil {
			fields["device"] = ua.Device
			fields["os"] = ua.OS
			fields["browser"] = ua.Browser
			fields["locale"] = ua.Locale
		}
		m.logger.WithFields(fields).Info("request completed")
		return nil
	}
}
