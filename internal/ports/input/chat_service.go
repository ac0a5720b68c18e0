package input

import "bbq-enquiry/internal/domain"

// ChatService interface - Input port (use case)
// Defines what the application can do with one conversation turn
type ChatService interface {
	// Chat processes one user message for a session and returns the reply.
	// An error means a turn-level fault: the session has been reset and the
	// next turn for the same identifier starts fresh.
	Chat(request domain.ChatRequest) (*domain.ChatReply, error)
}
