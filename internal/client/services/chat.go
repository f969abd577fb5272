package services

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/matcha/internal/client/api"
	"github.com/dmitrijs2005/matcha/internal/client/models"
)

// ChatAPI is the slice of the gateway the chat service needs.
type ChatAPI interface {
	ChatMessages(ctx context.Context, profileID string) ([]models.ChatMessage, error)
	SendChatMessage(ctx context.Context, profileID, text string) error
}

// ChatService defines conversation operations for the CLI.
//
// Contract:
//   - History: fetch the conversation with the given profile.
//   - Send: post a message; blank messages are rejected locally.
//
// All methods must honor context cancellation/timeouts.
type ChatService interface {
	History(ctx context.Context, profileID string) ([]models.ChatMessage, error)
	Send(ctx context.Context, profileID, text string) error
}

type chatService struct {
	api ChatAPI
}

// NewChatService constructs a ChatService bound to the given gateway.
func NewChatService(a ChatAPI) ChatService {
	return &chatService{api: a}
}

func (s *chatService) History(ctx context.Context, profileID string) ([]models.ChatMessage, error) {
	return s.api.ChatMessages(ctx, profileID)
}

func (s *chatService) Send(ctx context.Context, profileID, text string) error {
	if strings.TrimSpace(text) == "" {
		return &api.BackendError{Status: api.ClassBadRequest, Messages: []string{"Message is required"}}
	}
	return s.api.SendChatMessage(ctx, profileID, text)
}
