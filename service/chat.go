package service

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/openai/openai-go"

	"salesdesk/model"
	"salesdesk/platform"
	"salesdesk/store"
)

var logger = platform.Logger

// ChatService relays one user message to the completion API and streams
// the reply back to the caller while persisting both sides of the
// exchange. It is instantiated once per assistant: the sales and customer
// success instances differ only in persona text and conversation
// namespace.
type ChatService struct {
	Convs   store.ConversationStore
	Client  *openai.Client
	Persona string
	Model   string
}

type chatMessage struct {
	Role    openai.ChatCompletionMessageParamRole
	Content string
}

// StreamReply runs the full relay sequence for one inbound user message.
// The order is contractual: persist the user message, load the history,
// stream the completion, persist the full reply, then signal done. The
// user message survives any later failure.
func (s *ChatService) StreamReply(c *gin.Context, conversationID, content string) error {
	requestID := c.GetString("requestId")

	w := c.Writer
	flusher, ok := w.(http.Flusher)
	if !ok {
		logger.Warnf("[%s] response writer does not support flushing", requestID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Streaming unsupported"})
		return fmt.Errorf("response writer does not support flushing")
	}

	if err := s.Convs.CreateMessage(&model.Message{
		ConversationID: conversationID,
		Role:           model.RoleUser,
		Content:        content,
	}); err != nil {
		logger.Warnf("[%s] persist user message error, %s", requestID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process message"})
		return err
	}

	history, err := s.Convs.ListMessages(conversationID)
	if err != nil {
		logger.Warnf("[%s] load history error, %s", requestID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process message"})
		return err
	}

	messages := []chatMessage{{Role: "system", Content: s.Persona}}
	for _, m := range history {
		// Anything but user/assistant in the store is corruption, not
		// something to forward upstream.
		if m.Role != model.RoleUser && m.Role != model.RoleAssistant {
			logger.Errorf("[%s] conversation %s holds message %s with role %q", requestID, conversationID, m.ID, m.Role)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Conversation history is corrupted"})
			return fmt.Errorf("unexpected message role %q in conversation %s", m.Role, conversationID)
		}
		messages = append(messages, chatMessage{
			Role:    openai.ChatCompletionMessageParamRole(m.Role),
			Content: m.Content,
		})
	}

	params := openai.ChatCompletionNewParams{
		Messages:  openai.F([]openai.ChatCompletionMessageParamUnion{}),
		Model:     openai.F(s.Model),
		MaxTokens: openai.F(int64(2048)),
	}
	for _, message := range messages {
		var body any = message.Content
		params.Messages.Value = append(params.Messages.Value, openai.ChatCompletionMessageParam{
			Role:    openai.F(message.Role),
			Content: openai.F(body),
		})
	}

	setStreamHeaders(w)

	stream := s.Client.Chat.Completions.NewStreaming(c.Request.Context(), params)
	defer stream.Close()

	var reply strings.Builder
	streaming := false
	for stream.Next() {
		chunk := stream.Current()
		if len(chunk.Choices) == 0 {
			continue
		}
		delta := chunk.Choices[0].Delta.Content
		if delta == "" {
			continue
		}
		reply.WriteString(delta)
		if err := writeEvent(w, flusher, gin.H{"content": delta}); err != nil {
			// Client went away; drop the stream and keep the partial
			// reply out of the store.
			logger.Warnf("[%s] client write failed, aborting stream, %s", requestID, err)
			return err
		}
		streaming = true
	}

	if err := stream.Err(); err != nil {
		logger.Warnf("[%s] upstream stream error, %s", requestID, err)
		if !streaming {
			// Nothing has been flushed yet, a plain error response is
			// still possible.
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process message"})
			return err
		}
		_ = writeEvent(w, flusher, gin.H{"error": "حدث خطأ أثناء المعالجة"})
		return err
	}

	if err := s.Convs.CreateMessage(&model.Message{
		ConversationID: conversationID,
		Role:           model.RoleAssistant,
		Content:        reply.String(),
	}); err != nil {
		logger.Warnf("[%s] persist assistant message error, %s", requestID, err)
		_ = writeEvent(w, flusher, gin.H{"error": "Failed to save reply"})
		return err
	}

	return writeEvent(w, flusher, gin.H{"done": true})
}
