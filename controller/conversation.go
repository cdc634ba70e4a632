package controller

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"salesdesk/model"
	"salesdesk/store"
)

// defaultConversationTitle stands in until the client names the thread.
const defaultConversationTitle = "محادثة جديدة"

// ConversationController serves one assistant namespace; it is mounted
// twice, under /api/conversations and /api/cs/conversations.
type ConversationController struct {
	Convs store.ConversationStore
}

func (ctrl ConversationController) List(c *gin.Context) {
	convs, err := ctrl.Convs.ListConversations()
	if err != nil {
		logger.Warnf("[%s] list conversations error, %s", c.GetString("requestId"), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch conversations"})
		return
	}
	c.JSON(http.StatusOK, convs)
}

func (ctrl ConversationController) Create(c *gin.Context) {
	var input struct {
		Title string `json:"title"`
	}
	// An empty body is a valid "new conversation" request.
	if err := c.ShouldBindJSON(&input); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	title := input.Title
	if title == "" {
		title = defaultConversationTitle
	}
	if runes := []rune(title); len(runes) > 50 {
		title = string(runes[:50])
	}

	conv := &model.Conversation{Title: title}
	if err := ctrl.Convs.CreateConversation(conv); err != nil {
		logger.Warnf("[%s] create conversation error, %s", c.GetString("requestId"), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create conversation"})
		return
	}
	c.JSON(http.StatusCreated, conv)
}

func (ctrl ConversationController) Delete(c *gin.Context) {
	if err := ctrl.Convs.DeleteConversation(c.Param("id")); err != nil {
		logger.Warnf("[%s] delete conversation error, %s", c.GetString("requestId"), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete conversation"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (ctrl ConversationController) ListMessages(c *gin.Context) {
	msgs, err := ctrl.Convs.ListMessages(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch messages"})
		return
	}
	if msgs == nil {
		msgs = []model.Message{}
	}
	c.JSON(http.StatusOK, msgs)
}
