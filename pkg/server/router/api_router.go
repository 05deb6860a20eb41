package router

import (
	handlers "github.com/NeuralTrust/TrustGuard/pkg/handlers/http"
	"github.com/NeuralTrust/TrustGuard/pkg/middleware"
	"github.com/gofiber/fiber/v2"
)

const (
	HealthPath  = "/health"
	PingPath    = "/__/ping"
	VersionPath = "/version"
	ChatPath    = "/chat"
)

type apiRouter struct {
	middlewareTransport middleware.Transport
	handlerTransport    handlers.HandlerTransport
}

func NewAPIRouter(
	middlewareTransport middleware.Transport,
	handlerTransport handlers.HandlerTransport,
) ServerRouter {
	return &apiRouter{
		middlewareTransport: middlewareTransport,
		handlerTransport:    handlerTransport,
	}
}

func (r *apiRouter) BuildRoutes(router *fiber.App) error {
	h := r.handlerTransport
	if h.ChatHandler == nil || h.HealthHandler == nil || h.VersionHandler == nil {
		return ErrMissingHandler
	}
	if r.middlewareTransport.AuthMiddleware == nil {
		return ErrMissingHandler
	}

	for _, m := range r.middlewareTransport.Global() {
		router.Use(m.Middleware())
	}

	router.Get(HealthPath, h.HealthHandler.Handle)
	router.Get(PingPath, func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "pong",
		})
	})
	router.Get(VersionPath, h.VersionHandler.Handle)
	router.Post(ChatPath, r.middlewareTransport.AuthMiddleware.Middleware(), h.ChatHandler.Handle)

	return nil
}
