package gmailapi

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	gmail "google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"

	"github.com/vineethkumarrao/google-chatbot-backend/internal/domain"
)

const gmailUserID = "me"

// Header fallbacks when the message lacks Subject or From.
const (
	defaultSubject = "No Subject"
	defaultSender  = "Unknown Sender"
)

// Client implements port.MailProvider against the Gmail REST API. A service
// is built per call from the stored access token; expired tokens are used
// as-is and surface whatever error the API returns.
type Client struct{}

// NewClient creates a new Gmail API client.
func NewClient() *Client {
	return &Client{}
}

// ListMessageIDs lists up to limit message ids for the token's owner.
func (c *Client) ListMessageIDs(ctx context.Context, accessToken string, limit int64) ([]string, error) {
	svc, err := c.newService(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	res, err := svc.Users.Messages.List(gmailUserID).MaxResults(limit).Do()
	if err != nil {
		return nil, fmt.Errorf("gmail: list messages: %w", err)
	}

	ids := make([]string, 0, len(res.Messages))
	for _, m := range res.Messages {
		ids = append(ids, m.Id)
	}
	return ids, nil
}

// GetMessage fetches a single message and reshapes it into a summary.
func (c *Client) GetMessage(ctx context.Context, accessToken, id string) (*domain.EmailSummary, error) {
	svc, err := c.newService(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	msg, err := svc.Users.Messages.Get(gmailUserID, id).Do()
	if err != nil {
		return nil, fmt.Errorf("gmail: get message %s: %w", id, err)
	}

	return summarize(msg), nil
}

// newService builds a Gmail service from a bare access token. No refresh
// token is attached, so the credential is short-lived by construction.
func (c *Client) newService(ctx context.Context, accessToken string) (*gmail.Service, error) {
	ts := oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: accessToken,
		TokenType:   "Bearer",
	})

	svc, err := gmail.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("gmail: create service: %w", err)
	}
	return svc, nil
}

// summarize extracts the Subject and From headers and the snippet from a
// Gmail message, applying fallbacks for absent headers.
func summarize(msg *gmail.Message) *domain.EmailSummary {
	summary := &domain.EmailSummary{
		ID:      msg.Id,
		Subject: defaultSubject,
		Sender:  defaultSender,
		Snippet: msg.Snippet,
	}

	if msg.Payload == nil {
		return summary
	}

	for _, h := range msg.Payload.Headers {
		switch h.Name {
		case "Subject":
			summary.Subject = h.Value
		case "From":
			summary.Sender = h.Value
		}
	}
	return summary
}
