package http

import (
	"github.com/NeuralTrust/TrustGuard/pkg/app/comment"
	"github.com/NeuralTrust/TrustGuard/pkg/handlers/http/request"
	"github.com/NeuralTrust/TrustGuard/pkg/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type listCommentsHandler struct {
	logger  *logrus.Logger
	service comment.Service
}

func NewListCommentsHandler(logger *logrus.Logger, service comment.Service) Handler {
	return &listCommentsHandler{logger: logger, service: service}
}

// Handle @Summary List comments visible to the current user
// @Tags Board
// @Produce json
// @Success 200 {array} map[string]interface{} "Comment views"
// @Router /api/comments [get]
func (h *listCommentsHandler) Handle(c *fiber.Ctx) error {
	views, err := h.service.VisibleComments(c.UserContext(), middleware.UserID(c))
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.Status(fiber.StatusOK).JSON(views)
}

type createCommentHandler struct {
	logger  *logrus.Logger
	service comment.Service
}

func NewCreateCommentHandler(logger *logrus.Logger, service comment.Service) Handler {
	return &createCommentHandler{logger: logger, service: service}
}

// Handle @Summary Post a comment as the current user
// @Description The comment is stored first and then auto-moderated. A moderation failure never rejects the comment.
// @Tags Board
// @Accept json
// @Produce json
// @Param request body request.CommentRequest true "Comment"
// @Success 201 {object} map[string]interface{} "Created comment"
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse "Unknown user"
// @Router /api/comments [post]
func (h *createCommentHandler) Handle(c *fiber.Ctx) error {
	var req request.CommentRequest
	if err := decodeBody(c, &req); err != nil {
		return respondError(c, h.logger, err)
	}

	created, err := h.service.AddComment(c.UserContext(), middleware.UserID(c), req.Content)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

type flagCommentHandler struct {
	logger  *logrus.Logger
	service comment.Service
}

func NewFlagCommentHandler(logger *logrus.Logger, service comment.Service) Handler {
	return &flagCommentHandler{logger: logger, service: service}
}

// Handle @Summary Flag a comment
// @Tags Board
// @Produce json
// @Param id path string true "Comment ID"
// @Success 204
// @Failure 400 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse "Not an admin"
// @Failure 404 {object} response.ErrorResponse
// @Router /api/comments/{id}/flag [post]
func (h *flagCommentHandler) Handle(c *fiber.Ctx) error {
	if err := h.service.FlagComment(c.UserContext(), c.Params("id"), middleware.UserID(c)); err != nil {
		return respondError(c, h.logger, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

type unflagCommentHandler struct {
	logger  *logrus.Logger
	service comment.Service
}

func NewUnflagCommentHandler(logger *logrus.Logger, service comment.Service) Handler {
	return &unflagCommentHandler{logger: logger, service: service}
}

// Handle @Summary Remove every flag from a comment
// @Tags Board
// @Produce json
// @Param id path string true "Comment ID"
// @Success 204
// @Failure 400 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse "Not an admin"
// @Failure 404 {object} response.ErrorResponse
// @Router /api/comments/{id}/flag [delete]
func (h *unflagCommentHandler) Handle(c *fiber.Ctx) error {
	if err := h.service.UnflagComment(c.UserContext(), c.Params("id"), middleware.UserID(c)); err != nil {
		return respondError(c, h.logger, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

type moderateHandler struct {
	logger  *logrus.Logger
	service comment.Service
}

func NewModerateHandler(logger *logrus.Logger, service comment.Service) Handler {
	return &moderateHandler{logger: logger, service: service}
}

// Handle @Summary Dry-run moderation of a text
// @Description Always answers 200. An empty object means moderation was unavailable or disabled.
// @Tags Board
// @Accept json
// @Produce json
// @Param request body request.ModerateRequest true "Text to check"
// @Success 200 {object} map[string]interface{} "Decision with flag, status, reason and category"
// @Router /api/moderate [post]
func (h *moderateHandler) Handle(c *fiber.Ctx) error {
	var req request.ModerateRequest
	if len(c.Body()) > 0 {
		if err := c.App().Config().JSONDecoder(c.Body(), &req); err != nil {
			h.logger.WithError(err).Debug("ignoring malformed moderate payload")
		}
	}
	return c.Status(fiber.StatusOK).JSON(h.service.Moderate(c.UserContext(), req.Content))
}
