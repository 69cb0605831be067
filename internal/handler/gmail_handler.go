package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v3"

	"github.com/vineethkumarrao/google-chatbot-backend/internal/port"
	"github.com/vineethkumarrao/google-chatbot-backend/internal/service"
)

const defaultListLimit = 10

// GmailHandler serves the Gmail read endpoint.
type GmailHandler struct {
	mailService *service.MailService
}

// NewGmailHandler creates a new Gmail handler.
func NewGmailHandler(mailService *service.MailService) *GmailHandler {
	return &GmailHandler{mailService: mailService}
}

// Register sets up Gmail routes.
func (h *GmailHandler) Register(app *fiber.App) {
	app.Get("/google/gmail", h.List)
}

// List returns summaries of the user's most recent emails.
func (h *GmailHandler) List(c fiber.Ctx) error {
	userID := c.Query("user_id")

	limit := int64(defaultListLimit)
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil && n > 0 {
			limit = n
		}
	}

	emails, err := h.mailService.ListEmails(c.Context(), userID, limit)
	if err != nil {
		if errors.Is(err, port.ErrUnauthenticated) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "User not authenticated"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Gmail access failed: " + err.Error(),
		})
	}

	return c.JSON(fiber.Map{"emails": emails})
}
