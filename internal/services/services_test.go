package services

import (
	"context"
	"testing"

	"github.com/chatappointment/services/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestInfoService_UserService(t *testing.T) {
	svc := NewInfoService(UserService)

	assert.Equal(t, models.HealthStatus{Status: "healthy", Service: "user-service"}, svc.Health())
	assert.Equal(t, models.ServiceInfo{Message: "ChatAppointment User Service", Version: "1.0.0"}, svc.Info())
}

func TestInfoService_BotService(t *testing.T) {
	svc := NewInfoService(BotService)

	assert.Equal(t, "bot-service", svc.Health().Service)
	assert.Equal(t, "ChatAppointment Bot Service", svc.Info().Message)
	assert.Equal(t, BotService, svc.Descriptor())
}

func TestChatService_Reply(t *testing.T) {
	svc := NewChatService(zap.NewNop())

	resp, err := svc.Reply(context.Background(), models.ChatRequest{"text": "hi"})
	require.NoError(t, err)
	assert.Equal(t, PlaceholderReply, resp.Response)
}

func TestChatService_ReplyCanceled(t *testing.T) {
	svc := NewChatService(zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Reply(ctx, models.ChatRequest{})
	assert.ErrorIs(t, err, context.Canceled)
}
