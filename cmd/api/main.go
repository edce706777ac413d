package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/alumniconnect/portal-api/internal/config"
	"github.com/alumniconnect/portal-api/internal/handler"
	"github.com/alumniconnect/portal-api/internal/middleware"
	"github.com/alumniconnect/portal-api/internal/router"
	"github.com/alumniconnect/portal-api/internal/service"
	"github.com/alumniconnect/portal-api/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	st := store.New()
	validate := validator.New(validator.WithRequiredStructEnabled())

	authService := service.NewAuthService(st, validate, cfg.JWTSecret, cfg.TokenTTL, logger)
	userService := service.NewUserService(st, validate, logger)
	eventService := service.NewEventService(st, validate, logger)
	jobService := service.NewJobService(st, validate, logger)
	galleryService := service.NewGalleryService(st, validate, logger)
	forumService := service.NewForumService(st, validate, logger)
	messageService := service.NewMessageService(st, validate, logger)
	documentService := service.NewDocumentService(st, validate, logger)
	universityService := service.NewUniversityService(st, validate, logger)

	if err := authService.EnsureAdmin(context.Background(), cfg.AdminUsername, cfg.AdminPassword, cfg.AdminEmail); err != nil {
		log.Fatalf("failed to provision admin account: %v", err)
	}

	authHandler := handler.NewAuthHandler(authService, logger)
	userHandler := handler.NewUserHandler(userService, logger)
	eventHandler := handler.NewEventHandler(eventService, logger)
	jobHandler := handler.NewJobHandler(jobService, logger)
	galleryHandler := handler.NewGalleryHandler(galleryService, logger)
	forumHandler := handler.NewForumHandler(forumService, logger)
	messageHandler := handler.NewMessageHandler(messageService, logger)
	documentHandler := handler.NewDocumentHandler(documentService, logger)
	universityHandler := handler.NewUniversityHandler(universityService, logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
	})

	middleware.Register(app, middleware.Config{Logger: &logger})
	router.Register(app, cfg, router.Dependencies{
		AuthHandler:       authHandler,
		UserHandler:       userHandler,
		EventHandler:      eventHandler,
		JobHandler:        jobHandler,
		GalleryHandler:    galleryHandler,
		ForumHandler:      forumHandler,
		MessageHandler:    messageHandler,
		DocumentHandler:   documentHandler,
		UniversityHandler: universityHandler,
		JWTMiddleware:     middleware.JWTProtected(cfg.JWTSecret),
	})

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(app)
}

func waitForShutdown(app *fiber.App) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}

	log.Println("server stopped")
}
