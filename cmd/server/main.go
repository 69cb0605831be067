package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/joho/godotenv"

	"github.com/vineethkumarrao/google-chatbot-backend/internal/adapter/ai"
	"github.com/vineethkumarrao/google-chatbot-backend/internal/adapter/auth"
	"github.com/vineethkumarrao/google-chatbot-backend/internal/adapter/gmailapi"
	"github.com/vineethkumarrao/google-chatbot-backend/internal/adapter/store"
	"github.com/vineethkumarrao/google-chatbot-backend/internal/handler"
	"github.com/vineethkumarrao/google-chatbot-backend/internal/service"
	"github.com/vineethkumarrao/google-chatbot-backend/pkg/config"
)

func main() {
	// ── Load .env file ───────────────────────────────────────────────────
	_ = godotenv.Load() // silently ignore if .env doesn't exist

	// ── Configuration ────────────────────────────────────────────────────
	cfg := config.Load()

	slog.Info("starting Google Chatbot API",
		"port", cfg.Port,
		"model", cfg.CerebrasModel,
		"frontend", cfg.FrontendURL,
	)

	// ── Adapters ─────────────────────────────────────────────────────────
	googleAuth := auth.NewGoogleProvider(cfg.GoogleClientID, cfg.GoogleClientSecret)
	cerebrasAI := ai.NewCerebrasProvider(cfg.CerebrasBaseURL, cfg.CerebrasModel, cfg.CerebrasAPIKey)
	gmailClient := gmailapi.NewClient()
	sessions := store.NewMemoryStore()

	// ── Services ─────────────────────────────────────────────────────────
	authService := service.NewAuthService(googleAuth, sessions)
	chatService := service.NewChatService(cerebrasAI)
	mailService := service.NewMailService(gmailClient, sessions)

	// ── Fiber App ────────────────────────────────────────────────────────
	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))

	// ── Routes ───────────────────────────────────────────────────────────
	handler.NewHealthHandler().Register(app)
	handler.NewAuthHandler(authService, cfg.FrontendURL).Register(app)
	handler.NewChatHandler(chatService).Register(app)
	handler.NewGmailHandler(mailService).Register(app)

	// ── Start ────────────────────────────────────────────────────────────
	slog.Info("listening", "port", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
