package router

import (
	"time"

	handlers "github.com/NeuralTrust/TrustGuard/pkg/handlers/http"
	wsHandlers "github.com/NeuralTrust/TrustGuard/pkg/handlers/websocket"
	"github.com/NeuralTrust/TrustGuard/pkg/middleware"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

const ModerationFeedPath = "/ws/moderation"

type boardRouter struct {
	middlewareTransport middleware.Transport
	handlerTransport    handlers.HandlerTransport
	feedHandler         wsHandlers.Handler
}

// NewBoardRouter mounts the board API. feedHandler may be nil, in which case
// the moderation feed is not served.
func NewBoardRouter(
	middlewareTransport middleware.Transport,
	handlerTransport handlers.HandlerTransport,
	feedHandler wsHandlers.Handler,
) ServerRouter {
	return &boardRouter{
		middlewareTransport: middlewareTransport,
		handlerTransport:    handlerTransport,
		feedHandler:         feedHandler,
	}
}

func (r *boardRouter) BuildRoutes(router *fiber.App) error {
	h := r.handlerTransport
	if h.SessionHandler == nil || h.ListCommentsHandler == nil || h.CreateCommentHandler == nil ||
		h.FlagCommentHandler == nil || h.UnflagCommentHandler == nil || h.ModerateHandler == nil {
		return ErrMissingHandler
	}
	if r.middlewareTransport.SessionMiddleware == nil {
		return ErrMissingHandler
	}

	for _, m := range r.middlewareTransport.Global() {
		router.Use(m.Middleware())
	}
	if h.HealthHandler != nil {
		router.Get(HealthPath, h.HealthHandler.Handle)
	}

	session := r.middlewareTransport.SessionMiddleware.Middleware()

	api := router.Group("/api", session)
	{
		api.Post("/session", h.SessionHandler.Handle)
		api.Post("/moderate", h.ModerateHandler.Handle)

		comments := api.Group("/comments")
		{
			comments.Get("", h.ListCommentsHandler.Handle)
			comments.Post("", h.CreateCommentHandler.Handle)
			comments.Post("/:id/flag", h.FlagCommentHandler.Handle)
			comments.Delete("/:id/flag", h.UnflagCommentHandler.Handle)
		}
	}

	if r.feedHandler == nil {
		return nil
	}
	chain := []fiber.Handler{session}
	if r.middlewareTransport.AdminMiddleware != nil {
		chain = append(chain, r.middlewareTransport.AdminMiddleware.Middleware())
	}
	if r.middlewareTransport.WebsocketMiddleware != nil {
		chain = append(chain, r.middlewareTransport.WebsocketMiddleware.Middleware())
	}
	chain = append(chain, websocket.New(
		r.feedHandler.Handle,
		websocket.Config{
			HandshakeTimeout: 15 * time.Second,
			ReadBufferSize:   1024,
			WriteBufferSize:  1024,
		},
	))
	router.Get(ModerationFeedPath, chain...)

	return nil
}
