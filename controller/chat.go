package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"salesdesk/service"
)

type ChatController struct {
	Svc *service.ChatService
}

// SendMessage accepts one user message and answers with the SSE relay
// stream. Everything after validation is the service's exact sequence.
func (ch ChatController) SendMessage(c *gin.Context) {
	conversationID := c.Param("id")

	var input struct {
		Content string `json:"content"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Content == "" {
		logger.Warnf("[%s] Invalid chat input, %v", c.GetString("requestId"), err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Content is required"})
		return
	}

	conv, err := ch.Svc.Convs.GetConversation(conversationID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process message"})
		return
	}
	if conv == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Conversation not found"})
		return
	}

	_ = ch.Svc.StreamReply(c, conversationID, input.Content)
}
