package handler

import (
	"net/url"

	"github.com/gofiber/fiber/v3"

	"github.com/vineethkumarrao/google-chatbot-backend/internal/service"
)

// AuthHandler handles the OAuth2 endpoints.
type AuthHandler struct {
	authService *service.AuthService
	frontendURL string
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService *service.AuthService, frontendURL string) *AuthHandler {
	return &AuthHandler{authService: authService, frontendURL: frontendURL}
}

// Register sets up auth routes.
func (h *AuthHandler) Register(app *fiber.App) {
	app.Get("/auth/google", h.Begin)
	app.Get("/auth/google/callback", h.Callback)
	app.Get("/auth/status", h.Status)
}

// Begin returns the Google consent screen URL for the current host.
func (h *AuthHandler) Begin(c fiber.Ctx) error {
	authURL, err := h.authService.BeginAuth(c.BaseURL())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "OAuth initiation failed: " + err.Error(),
		})
	}

	return c.JSON(fiber.Map{"auth_url": authURL})
}

// Callback finishes the OAuth flow. The caller is a browser mid-navigation,
// so every outcome becomes a redirect to the frontend: success carries the
// user id, failure carries the error text as a query parameter.
func (h *AuthHandler) Callback(c fiber.Ctx) error {
	userID, err := h.authService.CompleteAuth(c.Context(), c.Query("code"), c.BaseURL())
	if err != nil {
		return c.Redirect().To(h.frontendURL + "?auth=error&message=" + url.QueryEscape(err.Error()))
	}

	return c.Redirect().To(h.frontendURL + "?auth=success&user_id=" + url.QueryEscape(userID))
}

// Status reports whether the given user has completed the OAuth flow.
func (h *AuthHandler) Status(c fiber.Ctx) error {
	return c.JSON(h.authService.Status(c.Query("user_id")))
}
