package domain

// TokenBundle holds the OAuth2 tokens returned by Google after code exchange.
// It is treated as an opaque pass-through: fields are never validated beyond
// presence of the access token, and expired tokens are used as-is.
type TokenBundle struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	ExpiresIn    int    `json:"expires_in"`
	Scope        string `json:"scope"`
	TokenType    string `json:"token_type"`
}

// UserProfile is the subset of the Google userinfo response we care about.
// The ID is the stable key under which tokens are stored.
type UserProfile struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// AuthStatus reports whether a user has completed the OAuth flow.
type AuthStatus struct {
	Connected bool     `json:"connected"`
	Services  []string `json:"services"`
}
