package handlers

import (
	"net/http"

	"github.com/chatappointment/services/internal/models"
	"github.com/chatappointment/services/internal/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ChatHandler struct {
	chat   *services.ChatService
	logger *zap.Logger
}

func NewChatHandler(chat *services.ChatService, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		chat:   chat,
		logger: logger,
	}
}

// Chat handles POST /chat
// @Summary Send a chat message
// @Description Accepts any JSON object and returns the bot's reply
// @Tags chat
// @Accept json
// @Produce json
// @Param message body models.ChatRequest true "Chat message"
// @Success 200 {object} models.ChatResponse
// @Failure 422 {object} models.ErrorResponse "Body is not a JSON object"
// @Router /chat [post]
func (h *ChatHandler) Chat(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil || req == nil {
		respondError(c, http.StatusUnprocessableEntity, "Request body must be a JSON object")
		return
	}

	resp, err := h.chat.Reply(c.Request.Context(), req)
	if err != nil {
		h.logger.Error("Chat reply failed", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resp)
}
