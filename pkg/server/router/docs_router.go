package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
)

type docsRouter struct{}

// NewDocsRouter serves the swagger UI for the registered API document.
func NewDocsRouter() ServerRouter {
	return &docsRouter{}
}

func (r *docsRouter) BuildRoutes(router *fiber.App) error {
	router.Get("/docs/*", swagger.HandlerDefault)
	return nil
}
