package service

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/openai/openai-go"
)

// GenerateService runs one-shot generations: a fixed system prompt plus a
// single user prompt, streamed with the same data: {"content": ...}
// frames as the chat relay but terminated by the literal [DONE] sentinel.
// Nothing is persisted before or after.
type GenerateService struct {
	Client *openai.Client
	Model  string
}

// StreamOnce streams one exchange and returns the accumulated text.
// Errors after streaming begins surface in-band.
func (s *GenerateService) StreamOnce(c *gin.Context, systemPrompt, userPrompt string, maxTokens int64) (string, error) {
	requestID := c.GetString("requestId")

	w := c.Writer
	flusher, ok := w.(http.Flusher)
	if !ok {
		logger.Warnf("[%s] response writer does not support flushing", requestID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Streaming unsupported"})
		return "", nil
	}

	params := openai.ChatCompletionNewParams{
		Messages: openai.F([]openai.ChatCompletionMessageParamUnion{}),
		Model:    openai.F(s.Model),
	}
	if maxTokens > 0 {
		params.MaxTokens = openai.F(maxTokens)
	}
	for _, message := range []chatMessage{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: userPrompt},
	} {
		var body any = message.Content
		params.Messages.Value = append(params.Messages.Value, openai.ChatCompletionMessageParam{
			Role:    openai.F(message.Role),
			Content: openai.F(body),
		})
	}

	setStreamHeaders(w)

	stream := s.Client.Chat.Completions.NewStreaming(c.Request.Context(), params)
	defer stream.Close()

	var full strings.Builder
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
		full.WriteString(delta)
		if err := writeEvent(w, flusher, gin.H{"content": delta}); err != nil {
			logger.Warnf("[%s] client write failed, aborting stream, %s", requestID, err)
			return full.String(), err
		}
		streaming = true
	}

	if err := stream.Err(); err != nil {
		logger.Warnf("[%s] upstream stream error, %s", requestID, err)
		if !streaming {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Generation failed"})
			return full.String(), err
		}
		_ = writeEvent(w, flusher, gin.H{"error": "Generation failed"})
		return full.String(), err
	}

	return full.String(), writeDone(w, flusher)
}
