package port

import (
	"context"

	"github.com/vineethkumarrao/google-chatbot-backend/internal/domain"
)

// MailProvider abstracts the upstream mail API. The access token comes from
// the session store and is used as-is; no refresh is attempted.
type MailProvider interface {
	// ListMessageIDs lists up to limit message ids for the token's owner.
	ListMessageIDs(ctx context.Context, accessToken string, limit int64) ([]string, error)

	// GetMessage fetches a single message and reshapes it into a summary.
	GetMessage(ctx context.Context, accessToken, id string) (*domain.EmailSummary, error)
}
