package http

import (
	"github.com/NeuralTrust/TrustGuard/pkg/app/moderation"
	"github.com/NeuralTrust/TrustGuard/pkg/handlers/http/request"
	"github.com/NeuralTrust/TrustGuard/pkg/handlers/http/response"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type chatHandler struct {
	logger     *logrus.Logger
	classifier moderation.Classifier
	limits     request.Limits
}

func NewChatHandler(
	logger *logrus.Logger,
	classifier moderation.Classifier,
	limits request.Limits,
) Handler {
	return &chatHandler{
		logger:     logger,
		classifier: classifier,
		limits:     limits,
	}
}

// Handle @Summary Classify a comment
// @Description Labels the prompt as "flagged" or "okay" and returns the history with the new turn appended
// @Tags Moderation
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request.ChatRequest true "Comment and prior history"
// @Success 200 {object} response.ChatResponse "Moderation label"
// @Failure 400 {object} response.ErrorResponse "Invalid request"
// @Failure 401 {object} response.ErrorResponse "Missing or malformed Authorization header"
// @Failure 403 {object} response.ErrorResponse "Invalid API key"
// @Failure 500 {object} response.ErrorResponse "Generation failed"
// @Router /chat [post]
func (h *chatHandler) Handle(c *fiber.Ctx) error {
	var req request.ChatRequest
	if err := decodeBody(c, &req); err != nil {
		return respondError(c, h.logger, err)
	}
	if err := req.Validate(h.limits); err != nil {
		return respondError(c, h.logger, err)
	}

	result, err := h.classifier.Classify(c.UserContext(), *req.Prompt, req.History)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.Status(fiber.StatusOK).JSON(response.ChatResponse{
		Response: result.Label,
		History:  result.History,
	})
}
