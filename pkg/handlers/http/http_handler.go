package http

import "github.com/gofiber/fiber/v2"

type Handler interface {
	Handle(ctx *fiber.Ctx) error
}

// HandlerTransport carries the handlers of both server types; a router only
// reads the ones it mounts.
type HandlerTransport struct {
	// Service
	HealthHandler  Handler
	VersionHandler Handler

	// Moderation API
	ChatHandler Handler

	// Board
	SessionHandler       Handler
	ListCommentsHandler  Handler
	CreateCommentHandler Handler
	FlagCommentHandler   Handler
	UnflagCommentHandler Handler
	ModerateHandler      Handler
}
