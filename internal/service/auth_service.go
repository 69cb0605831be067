package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/vineethkumarrao/google-chatbot-backend/internal/domain"
	"github.com/vineethkumarrao/google-chatbot-backend/internal/port"
)

// callbackPath is appended to the request's base URL to form the redirect URI.
const callbackPath = "/auth/google/callback"

// connectedServices is reported for any user with a stored token bundle. It
// reflects the requested scopes, not the grants Google actually returned.
var connectedServices = []string{"gmail", "calendar", "drive"}

// AuthService brokers the OAuth2 authorization-code flow.
type AuthService struct {
	provider port.AuthProvider
	store    port.SessionStore
}

// NewAuthService creates a new authentication service.
func NewAuthService(provider port.AuthProvider, store port.SessionStore) *AuthService {
	return &AuthService{provider: provider, store: store}
}

// BeginAuth builds the authorization URL for the given request base URL.
func (s *AuthService) BeginAuth(requestBaseURL string) (string, error) {
	if requestBaseURL == "" {
		return "", fmt.Errorf("request base URL is empty")
	}

	redirectURI := strings.TrimRight(requestBaseURL, "/") + callbackPath
	return s.provider.AuthURL(redirectURI), nil
}

// CompleteAuth exchanges the authorization code, resolves the user's stable
// id via the userinfo endpoint, and stores the token bundle under it. Any
// error is returned to the caller; mapping errors into the redirect-with-
// error-param behavior is the HTTP boundary's job.
func (s *AuthService) CompleteAuth(ctx context.Context, code, requestBaseURL string) (string, error) {
	if code == "" {
		return "", fmt.Errorf("missing authorization code")
	}

	redirectURI := strings.TrimRight(requestBaseURL, "/") + callbackPath

	tokens, err := s.provider.ExchangeCode(ctx, code, redirectURI)
	if err != nil {
		return "", fmt.Errorf("exchange code: %w", err)
	}

	profile, err := s.provider.GetUserProfile(ctx, tokens.AccessToken)
	if err != nil {
		return "", fmt.Errorf("get profile: %w", err)
	}

	s.store.Put(profile.ID, tokens)

	slog.Info("user authenticated", "user_id", profile.ID)
	return profile.ID, nil
}

// Status reports whether a token bundle exists for the given user id. A pure
// lookup with no side effects.
func (s *AuthService) Status(userID string) *domain.AuthStatus {
	if _, ok := s.store.Get(userID); ok {
		return &domain.AuthStatus{Connected: true, Services: connectedServices}
	}
	return &domain.AuthStatus{Connected: false, Services: []string{}}
}
