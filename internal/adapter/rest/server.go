// Package rest exposes the projection services over HTTP.
package rest

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/simaogato/homedecide-backend/internal/usecase/projection"
	"github.com/simaogato/homedecide-backend/internal/usecase/rentlookup"
)

// Server serves the projection API over HTTP
type Server struct {
	app     *fiber.App
	limiter *RateLimiter
}

// New builds the fiber app with the /api/v1 routes. limiter may be nil.
func New(projectionService *projection.Service, rentLookupService *rentlookup.RentLookupService, limiter *RateLimiter) *Server {
	app := fiber.New(fiber.Config{
		ErrorHandler:          errorHandler,
		DisableStartupMessage: true,
	})

	app.Use(func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		log.Printf("http %s %s duration=%s", c.Method(), c.Path(), time.Since(start))
		return err
	})

	api := app.Group("/api/v1")
	if limiter != nil {
		api.Use(RateLimitMiddleware(limiter))
	}
	registerRoutes(api, newProjectionController(projectionService, rentLookupService))

	return &Server{app: app, limiter: limiter}
}

// App returns the underlying fiber app
func (s *Server) App() *fiber.App {
	return s.app
}

// Start listens on port until the app is shut down
func (s *Server) Start(_ context.Context, port string) error {
	if err := s.app.Listen(fmt.Sprintf(":%s", port)); err != nil {
		return fmt.Errorf("server start: %w", err)
	}
	return nil
}

// Shutdown stops accepting requests and waits for in-flight ones until ctx expires
func (s *Server) Shutdown(ctx context.Context) error {
	if s.limiter != nil {
		s.limiter.Stop()
	}
	return s.app.ShutdownWithContext(ctx)
}
