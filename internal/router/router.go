package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/alumniconnect/portal-api/internal/config"
	"github.com/alumniconnect/portal-api/internal/handler"
	"github.com/alumniconnect/portal-api/internal/observability"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	AuthHandler       *handler.AuthHandler
	UserHandler       *handler.UserHandler
	EventHandler      *handler.EventHandler
	JobHandler        *handler.JobHandler
	GalleryHandler    *handler.GalleryHandler
	ForumHandler      *handler.ForumHandler
	MessageHandler    *handler.MessageHandler
	DocumentHandler   *handler.DocumentHandler
	UniversityHandler *handler.UniversityHandler
	JWTMiddleware     fiber.Handler
}

// Register wires the HTTP routes into the fiber application.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	app.Get("/metrics", observability.MetricsHandler())

	api := app.Group("/api/v1", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})
	api.Get("/health", handler.HealthCheck(cfg))

	jwtMiddleware := deps.JWTMiddleware
	if jwtMiddleware == nil {
		jwtMiddleware = func(c *fiber.Ctx) error { return c.Next() }
	}

	if deps.AuthHandler != nil {
		auth := api.Group("/auth")
		deps.AuthHandler.Register(auth)
		deps.AuthHandler.RegisterProtected(auth.Group("", jwtMiddleware))
	}

	if deps.UniversityHandler != nil {
		university := api.Group("/university")
		deps.UniversityHandler.Register(university)
		deps.UniversityHandler.RegisterProtected(university.Group("", jwtMiddleware))
	}

	if deps.UserHandler != nil {
		deps.UserHandler.Register(api.Group("/users", jwtMiddleware))
	}

	if deps.EventHandler != nil {
		deps.EventHandler.Register(api.Group("/events", jwtMiddleware))
	}

	if deps.JobHandler != nil {
		deps.JobHandler.Register(api.Group("/jobs", jwtMiddleware))
	}

	if deps.GalleryHandler != nil {
		deps.GalleryHandler.Register(api.Group("/galleries", jwtMiddleware))
	}

	if deps.ForumHandler != nil {
		deps.ForumHandler.Register(api.Group("/forum", jwtMiddleware))
	}

	if deps.MessageHandler != nil {
		deps.MessageHandler.Register(api.Group("/messages", jwtMiddleware))
	}

	if deps.DocumentHandler != nil {
		deps.DocumentHandler.Register(api.Group("/documents", jwtMiddleware))
	}
}
