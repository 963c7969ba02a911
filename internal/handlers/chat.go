package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"stagedai-backend/internal/models"
)

// salesChatter answers marketing inquiries; it degrades internally rather
// than returning errors.
type salesChatter interface {
	SalesCrewReply(ctx context.Context, message string, history []models.ChatMessage) string
}

type ChatHandler struct {
	chatter salesChatter
}

func NewChatHandler(chatter salesChatter) *ChatHandler {
	return &ChatHandler{chatter: chatter}
}

func (h *ChatHandler) SalesChat(c *gin.Context) {
	var req models.SalesChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "message is required"})
		return
	}

	reply := h.chatter.SalesCrewReply(c.Request.Context(), req.Message, req.History)
	c.JSON(http.StatusOK, models.SalesChatResponse{Reply: reply})
}
