package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/vineethkumarrao/google-chatbot-backend/internal/domain"
	"github.com/vineethkumarrao/google-chatbot-backend/internal/service"
)

// ChatHandler relays chat messages to the AI backend.
type ChatHandler struct {
	chatService *service.ChatService
}

// NewChatHandler creates a new chat handler.
func NewChatHandler(chatService *service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// Register sets up chat routes.
func (h *ChatHandler) Register(app *fiber.App) {
	app.Post("/chat", h.Chat)
}

// Chat handles a chat message.
func (h *ChatHandler) Chat(c fiber.Ctx) error {
	var body domain.ChatMessage
	if err := c.Bind().JSON(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request"})
	}
	if body.Message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "message is required"})
	}

	reply, err := h.chatService.Chat(c.Context(), &body)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Chat processing failed: " + err.Error(),
		})
	}

	return c.JSON(reply)
}
