package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// Checker reports whether a dependency is usable.
type Checker func() error

type healthHandler struct {
	checks map[string]Checker
}

// NewHealthHandler answers 200 while every check passes and 503 otherwise.
func NewHealthHandler(checks map[string]Checker) Handler {
	return &healthHandler{checks: checks}
}

// Handle @Summary Health check
// @Tags Service
// @Produce json
// @Success 200 {object} map[string]interface{} "Healthy"
// @Failure 503 {object} map[string]interface{} "A dependency is down"
// @Router /health [get]
func (h *healthHandler) Handle(c *fiber.Ctx) error {
	status := fiber.StatusOK
	failed := fiber.Map{}
	for name, check := range h.checks {
		if err := check(); err != nil {
			status = fiber.StatusServiceUnavailable
			failed[name] = err.Error()
		}
	}

	body := fiber.Map{
		"status": "healthy",
		"time":   time.Now().Format(time.RFC3339),
	}
	if len(failed) > 0 {
		body["status"] = "unhealthy"
		body["checks"] = failed
	}
	return c.Status(status).JSON(body)
}
