package domain

// Intent is a coarse category inferred from chat text via keyword matching.
type Intent string

// Known intents, in detection priority order.
const (
	IntentGmail    Intent = "gmail"
	IntentCalendar Intent = "calendar"
	IntentDrive    Intent = "drive"
	IntentNone     Intent = ""
)

// ChatMessage is an inbound chat request. Transient, request-scoped.
type ChatMessage struct {
	Message string `json:"message"`
	UserID  string `json:"user_id,omitempty"`
}

// ChatReply is the response to a chat request.
type ChatReply struct {
	Response string         `json:"response"`
	Intent   Intent         `json:"intent,omitempty"`
	Data     map[string]any `json:"data,omitempty"`
}
