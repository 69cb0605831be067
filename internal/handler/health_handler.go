package handler

import (
	"github.com/gofiber/fiber/v3"
)

const apiVersion = "1.0.0"

// HealthHandler serves the liveness and health-probe endpoints.
type HealthHandler struct{}

// NewHealthHandler creates a new health handler.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Register sets up the liveness and health routes.
func (h *HealthHandler) Register(app *fiber.App) {
	app.Get("/", h.Root)
	app.Get("/health", h.Health)
}

// Root is the liveness endpoint.
func (h *HealthHandler) Root(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Google Chatbot API is running",
		"version": apiVersion,
	})
}

// Health reports the upstream services this backend depends on.
func (h *HealthHandler) Health(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":   "healthy",
		"services": []string{"cerebras", "google-oauth"},
	})
}
