package port

import "context"

// AIProvider abstracts the AI/LLM backend for chat completions.
// Implementations can target Cerebras or any OpenAI-compatible API.
type AIProvider interface {
	// ModelName returns the identifier of the model being used.
	ModelName() string

	// Chat sends a single non-streaming completion request and returns the
	// first choice's text.
	Chat(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}
