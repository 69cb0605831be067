package port

import "github.com/vineethkumarrao/google-chatbot-backend/internal/domain"

// SessionStore maps a user id to the token bundle issued at callback time.
// Entries live for the lifetime of the process; there is no eviction and no
// logout. A re-authentication overwrites the previous bundle.
type SessionStore interface {
	// Put stores a token bundle under the given user id, replacing any
	// existing entry.
	Put(userID string, tokens *domain.TokenBundle)

	// Get returns the token bundle for the given user id, if present.
	Get(userID string) (*domain.TokenBundle, bool)
}
