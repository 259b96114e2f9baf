package services

import (
	"context"

	"github.com/chatappointment/services/internal/models"
	"go.uber.org/zap"
)

const PlaceholderReply = "Hello! This is a placeholder response from the bot service."

type ChatService struct {
	logger *zap.Logger
}

func NewChatService(logger *zap.Logger) *ChatService {
	return &ChatService{logger: logger}
}

// Reply answers every message with the same placeholder until a real
// chatbot backend exists.
func (s *ChatService) Reply(ctx context.Context, req models.ChatRequest) (models.ChatResponse, error) {
	if err := ctx.Err(); err != nil {
		return models.ChatResponse{}, err
	}

	s.logger.Debug("Chat message received", zap.Int("fields", len(req)))

	return models.ChatResponse{Response: PlaceholderReply}, nil
}
