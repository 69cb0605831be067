package service

import (
	"strings"

	"github.com/vineethkumarrao/google-chatbot-backend/internal/domain"
)

// intentKeywords maps each intent to its trigger words, in priority order.
// The first intent with a matching keyword wins.
var intentKeywords = []struct {
	intent   domain.Intent
	keywords []string
}{
	{domain.IntentGmail, []string{"email", "mail", "gmail"}},
	{domain.IntentCalendar, []string{"calendar", "schedule", "meeting"}},
	{domain.IntentDrive, []string{"drive", "file", "document"}},
}

// DetectIntent classifies a chat message by case-insensitive substring match
// against fixed keyword sets. Returns IntentNone when nothing matches.
func DetectIntent(text string) domain.Intent {
	lower := strings.ToLower(text)
	for _, entry := range intentKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				return entry.intent
			}
		}
	}
	return domain.IntentNone
}
