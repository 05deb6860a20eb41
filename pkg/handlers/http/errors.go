package http

import (
	"errors"

	"github.com/NeuralTrust/TrustGuard/pkg/app/moderation"
	domain "github.com/NeuralTrust/TrustGuard/pkg/domain/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const (
	ErrInvalidJsonPayload = "invalid JSON payload"
	ErrInternal           = "internal server error"
)

// respondError maps domain errors to status codes. Anything unrecognised
// becomes an opaque 500.
func respondError(c *fiber.Ctx, logger *logrus.Logger, err error) error {
	switch {
	case domain.IsValidationError(err):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case domain.IsNotFoundError(err):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": err.Error()})
	}

	entry := logger.WithError(err).WithField("path", c.Path())
	if errors.Is(err, moderation.ErrGeneration) {
		entry.Error("moderation generation failed")
	} else {
		entry.Error("request failed")
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": ErrInternal})
}

// decodeBody reads a JSON body with the app's decoder regardless of the
// Content-Type header.
func decodeBody(c *fiber.Ctx, out interface{}) error {
	if len(c.Body()) == 0 {
		return domain.NewValidationError("", "request body is required")
	}
	if err := c.App().Config().JSONDecoder(c.Body(), out); err != nil {
		return domain.NewValidationError("", ErrInvalidJsonPayload+": "+err.Error())
	}
	return nil
}
