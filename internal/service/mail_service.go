package service

import (
	"context"
	"fmt"

	"github.com/vineethkumarrao/google-chatbot-backend/internal/domain"
	"github.com/vineethkumarrao/google-chatbot-backend/internal/port"
)

// detailFetchLimit caps how many messages get a full detail fetch, regardless
// of the caller-supplied list limit.
const detailFetchLimit = 5

// MailService reads a user's mailbox using the token bundle stored at
// callback time.
type MailService struct {
	mail  port.MailProvider
	store port.SessionStore
}

// NewMailService creates a new mail service.
func NewMailService(mail port.MailProvider, store port.SessionStore) *MailService {
	return &MailService{mail: mail, store: store}
}

// ListEmails lists up to limit message ids for the user, then fetches full
// detail for at most detailFetchLimit of them. Returns
// port.ErrUnauthenticated without touching the upstream API when no token
// bundle exists for the user.
func (s *MailService) ListEmails(ctx context.Context, userID string, limit int64) ([]domain.EmailSummary, error) {
	tokens, ok := s.store.Get(userID)
	if !ok {
		return nil, port.ErrUnauthenticated
	}

	ids, err := s.mail.ListMessageIDs(ctx, tokens.AccessToken, limit)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}

	emails := make([]domain.EmailSummary, 0, detailFetchLimit)
	for i, id := range ids {
		if i >= detailFetchLimit {
			break
		}
		summary, err := s.mail.GetMessage(ctx, tokens.AccessToken, id)
		if err != nil {
			return nil, fmt.Errorf("get message: %w", err)
		}
		emails = append(emails, *summary)
	}

	return emails, nil
}
