package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vineethkumarrao/google-chatbot-backend/internal/port"
)

func TestAuthURL(t *testing.T) {
	g := NewGoogleProvider("client-id", "client-secret")

	raw := g.AuthURL("http://localhost:8000/auth/google/callback")
	u, err := url.Parse(raw)
	require.NoError(t, err)

	assert.Equal(t, "accounts.google.com", u.Host)
	assert.Equal(t, "/o/oauth2/auth", u.Path)

	q := u.Query()
	assert.Equal(t, "client-id", q.Get("client_id"))
	assert.Equal(t, "http://localhost:8000/auth/google/callback", q.Get("redirect_uri"))
	assert.Equal(t, "code", q.Get("response_type"))
	assert.Equal(t, "offline", q.Get("access_type"))
	assert.Equal(t, "consent", q.Get("prompt"))

	scopes := strings.Fields(q.Get("scope"))
	assert.Equal(t, []string{
		"openid",
		"email",
		"profile",
		"https://www.googleapis.com/auth/gmail.readonly",
		"https://www.googleapis.com/auth/calendar.readonly",
		"https://www.googleapis.com/auth/drive.readonly",
	}, scopes)

	// The flow deliberately carries no CSRF state parameter.
	_, hasState := q["state"]
	assert.False(t, hasState)
}

func TestExchangeCode(t *testing.T) {
	var gotForm url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotForm = r.PostForm
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"access_token": "ya29.access",
			"refresh_token": "1//refresh",
			"expires_in": 3599,
			"scope": "openid email profile",
			"token_type": "Bearer"
		}`))
	}))
	defer srv.Close()

	g := NewGoogleProvider("client-id", "client-secret")
	g.tokenURL = srv.URL

	tokens, err := g.ExchangeCode(context.Background(), "auth-code", "http://localhost:8000/auth/google/callback")
	require.NoError(t, err)

	assert.Equal(t, "ya29.access", tokens.AccessToken)
	assert.Equal(t, "1//refresh", tokens.RefreshToken)
	assert.Equal(t, 3599, tokens.ExpiresIn)
	assert.Equal(t, "Bearer", tokens.TokenType)

	assert.Equal(t, "auth-code", gotForm.Get("code"))
	assert.Equal(t, "authorization_code", gotForm.Get("grant_type"))
	assert.Equal(t, "http://localhost:8000/auth/google/callback", gotForm.Get("redirect_uri"))
	assert.Equal(t, "client-id", gotForm.Get("client_id"))
	assert.Equal(t, "client-secret", gotForm.Get("client_secret"))
}

func TestExchangeCodeMissingAccessToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"scope": "openid", "token_type": "Bearer"}`))
	}))
	defer srv.Close()

	g := NewGoogleProvider("client-id", "client-secret")
	g.tokenURL = srv.URL

	_, err := g.ExchangeCode(context.Background(), "auth-code", "http://localhost:8000/auth/google/callback")
	assert.ErrorIs(t, err, port.ErrNoAccessToken)
}

func TestExchangeCodeUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error": "invalid_grant"}`))
	}))
	defer srv.Close()

	g := NewGoogleProvider("client-id", "client-secret")
	g.tokenURL = srv.URL

	_, err := g.ExchangeCode(context.Background(), "stale-code", "http://localhost:8000/auth/google/callback")
	require.Error(t, err)
	// The raw upstream body is embedded in the error detail.
	assert.Contains(t, err.Error(), "invalid_grant")
}

func TestGetUserProfile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer ya29.access", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": "108123", "email": "user@example.com", "name": "User", "picture": "https://example.com/p.png"}`))
	}))
	defer srv.Close()

	g := NewGoogleProvider("client-id", "client-secret")
	g.userinfoURL = srv.URL

	profile, err := g.GetUserProfile(context.Background(), "ya29.access")
	require.NoError(t, err)
	assert.Equal(t, "108123", profile.ID)
	assert.Equal(t, "user@example.com", profile.Email)
}

func TestGetUserProfileUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error": "invalid_token"}`))
	}))
	defer srv.Close()

	g := NewGoogleProvider("client-id", "client-secret")
	g.userinfoURL = srv.URL

	_, err := g.GetUserProfile(context.Background(), "expired")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid_token")
}
