package middleware

import (
	"github.com/NeuralTrust/TrustGuard/pkg/common"
	infraWebsocket "github.com/NeuralTrust/TrustGuard/pkg/infra/websocket"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type websocketMiddleware struct {
	logger    *logrus.Logger
	semaphore *infraWebsocket.Semaphore
}

// NewWebsocketMiddleware only lets websocket upgrades through, at most
// maxConnections at a time. The handler releases the slot via
// common.WsSemaphoreKey.
func NewWebsocketMiddleware(logger *logrus.Logger, maxConnections int) Middleware {
	return &websocketMiddleware{
		logger:    logger,
		semaphore: infraWebsocket.NewSemaphore(maxConnections),
	}
}

func (m *websocketMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}
		if !m.semaphore.Acquire() {
			m.logger.Warn("maximum websocket connections reached, rejecting connection")
			return fiber.ErrTooManyRequests
		}
		c.Locals(common.WsSemaphoreKey, m.semaphore)
		return c.Next()
	}
}
