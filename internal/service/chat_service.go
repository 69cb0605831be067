package service

import (
	"context"
	"fmt"

	"github.com/vineethkumarrao/google-chatbot-backend/internal/domain"
	"github.com/vineethkumarrao/google-chatbot-backend/internal/port"
)

// systemPrompt frames every completion request. The user's text is the sole
// user turn; no history is carried.
const systemPrompt = "You are a helpful assistant that can access Google services like Gmail, Calendar, and Drive. Analyze user requests and provide helpful responses."

// ChatService relays chat messages to the AI backend and tags them with a
// coarse intent.
type ChatService struct {
	ai port.AIProvider
}

// NewChatService creates a new chat service.
func NewChatService(ai port.AIProvider) *ChatService {
	return &ChatService{ai: ai}
}

// Chat forwards the message to the AI backend and classifies its intent.
func (s *ChatService) Chat(ctx context.Context, msg *domain.ChatMessage) (*domain.ChatReply, error) {
	response, err := s.ai.Chat(ctx, systemPrompt, msg.Message)
	if err != nil {
		return nil, fmt.Errorf("chat completion: %w", err)
	}

	return &domain.ChatReply{
		Response: response,
		Intent:   DetectIntent(msg.Message),
	}, nil
}
