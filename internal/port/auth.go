package port

import (
	"context"

	"github.com/vineethkumarrao/google-chatbot-backend/internal/domain"
)

// AuthProvider abstracts the OAuth2 identity provider.
// The redirect URI is passed per call because it is derived from the base URL
// of the request that started the flow.
type AuthProvider interface {
	// AuthURL returns the full OAuth2 authorization URL for redirecting the user.
	AuthURL(redirectURI string) string

	// ExchangeCode exchanges an authorization code for a token bundle.
	ExchangeCode(ctx context.Context, code, redirectURI string) (*domain.TokenBundle, error)

	// GetUserProfile fetches the authenticated user's profile from the provider.
	GetUserProfile(ctx context.Context, accessToken string) (*domain.UserProfile, error)
}
