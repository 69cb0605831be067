package config

import (
	"os"
	"strings"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Server
	Port    string
	AppName string

	// OAuth2 — Google
	GoogleClientID     string
	GoogleClientSecret string

	// Cerebras AI
	CerebrasAPIKey  string
	CerebrasBaseURL string
	CerebrasModel   string

	// Frontend
	FrontendURL    string
	AllowedOrigins []string
}

// defaultAllowedOrigins is the fixed CORS allow-list of frontend origins.
var defaultAllowedOrigins = []string{
	"http://localhost:3000",
	"http://localhost:3002",
	"https://v0-google-integration-chatbot.vercel.app",
	"https://*.v0.app",
	"https://*.vusercontent.net",
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Port:    envOrDefault("PORT", "8000"),
		AppName: envOrDefault("APP_NAME", "Google Chatbot API"),

		GoogleClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		GoogleClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),

		CerebrasAPIKey:  os.Getenv("CEREBRAS_API_KEY"),
		CerebrasBaseURL: envOrDefault("CEREBRAS_BASE_URL", "https://api.cerebras.ai"),
		CerebrasModel:   envOrDefault("CEREBRAS_MODEL", "llama3.1-8b"),

		FrontendURL:    envOrDefault("FRONTEND_URL", "https://v0-google-integration-chatbot.vercel.app"),
		AllowedOrigins: envOrDefaultList("CORS_ALLOW_ORIGINS", defaultAllowedOrigins),
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envOrDefaultList(key string, fallback []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}
	return fallback
}
