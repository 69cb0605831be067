package domain

// EmailSummary is the reshaped view of a Gmail message returned to the
// frontend. Derived per-request, never stored.
type EmailSummary struct {
	ID      string `json:"id"`
	Subject string `json:"subject"`
	Sender  string `json:"sender"`
	Snippet string `json:"snippet"`
}
