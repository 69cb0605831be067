package port

import "errors"

// Sentinel errors used across ports.
var (
	ErrUnauthenticated = errors.New("user not authenticated")
	ErrNoAccessToken   = errors.New("token response missing access token")
)
