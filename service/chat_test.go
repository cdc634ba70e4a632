package service

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salesdesk/model"
	"salesdesk/store"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type upstreamRequest struct {
	Model    string `json:"model"`
	Messages []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
	Stream bool `json:"stream"`
}

// fakeCompletionUpstream serves a chat completion stream built from the
// given deltas, recording the request body it received.
func fakeCompletionUpstream(t *testing.T, deltas []string, tail string) (*httptest.Server, *upstreamRequest) {
	t.Helper()
	captured := &upstreamRequest{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, captured))

		w.Header().Set("Content-Type", "text/event-stream")
		flusher := w.(http.Flusher)
		for _, delta := range deltas {
			chunk := map[string]any{
				"id":      "chunk-1",
				"object":  "chat.completion.chunk",
				"created": 1756700000,
				"model":   "gpt-4o-mini",
				"choices": []map[string]any{
					{"index": 0, "delta": map[string]any{"content": delta}},
				},
			}
			raw, err := json.Marshal(chunk)
			require.NoError(t, err)
			fmt.Fprintf(w, "data: %s\n\n", raw)
			flusher.Flush()
		}
		if tail != "" {
			io.WriteString(w, tail)
			flusher.Flush()
		}
	}))
	t.Cleanup(srv.Close)
	return srv, captured
}

func failingUpstream(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "boom"}`, http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func testClient(srv *httptest.Server) *openai.Client {
	return openai.NewClient(
		option.WithBaseURL(srv.URL+"/"),
		option.WithAPIKey("test-key"),
	)
}

func newTestContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)
	return c, w
}

func newChatService(srv *httptest.Server, convs store.ConversationStore) *ChatService {
	return &ChatService{
		Convs:   convs,
		Client:  testClient(srv),
		Persona: SalesPersona,
		Model:   "gpt-4o-mini",
	}
}

func TestStreamReplyFramesAndPersists(t *testing.T) {
	srv, _ := fakeCompletionUpstream(t, []string{"أهلاً ", "بك"}, "data: [DONE]\n\n")
	st := store.NewMemStore()
	conv := &model.Conversation{Title: "محادثة جديدة"}
	require.NoError(t, st.Sales().CreateConversation(conv))

	svc := newChatService(srv, st.Sales())
	c, w := newTestContext(t)

	err := svc.StreamReply(c, conv.ID, "مرحبا")
	require.NoError(t, err)

	assert.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))
	body := w.Body.String()
	assert.Contains(t, body, `data: {"content":"أهلاً "}`+"\n\n")
	assert.Contains(t, body, `data: {"content":"بك"}`+"\n\n")
	assert.True(t, strings.HasSuffix(body, `data: {"done":true}`+"\n\n"))
	assert.NotContains(t, body, "data: [DONE]")

	msgs, err := st.Sales().ListMessages(conv.ID)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, model.RoleUser, msgs[0].Role)
	assert.Equal(t, "مرحبا", msgs[0].Content)
	assert.Equal(t, model.RoleAssistant, msgs[1].Role)
	assert.Equal(t, "أهلاً بك", msgs[1].Content)
}

func TestStreamReplySendsPersonaAndHistory(t *testing.T) {
	srv, captured := fakeCompletionUpstream(t, []string{"ok"}, "data: [DONE]\n\n")
	st := store.NewMemStore()
	conv := &model.Conversation{Title: "t"}
	require.NoError(t, st.Sales().CreateConversation(conv))
	require.NoError(t, st.Sales().CreateMessage(&model.Message{ConversationID: conv.ID, Role: model.RoleUser, Content: "سؤال سابق"}))
	require.NoError(t, st.Sales().CreateMessage(&model.Message{ConversationID: conv.ID, Role: model.RoleAssistant, Content: "جواب سابق"}))

	svc := newChatService(srv, st.Sales())
	c, _ := newTestContext(t)

	require.NoError(t, svc.StreamReply(c, conv.ID, "مرحبا"))

	require.Len(t, captured.Messages, 4)
	assert.Equal(t, "system", captured.Messages[0].Role)
	assert.Equal(t, SalesPersona, captured.Messages[0].Content)
	assert.Equal(t, "user", captured.Messages[1].Role)
	assert.Equal(t, "سؤال سابق", captured.Messages[1].Content)
	assert.Equal(t, "assistant", captured.Messages[2].Role)
	assert.Equal(t, "جواب سابق", captured.Messages[2].Content)
	assert.Equal(t, "user", captured.Messages[3].Role)
	assert.Equal(t, "مرحبا", captured.Messages[3].Content)

	// The persona is request framing only, it must never land in the store.
	msgs, err := st.Sales().ListMessages(conv.ID)
	require.NoError(t, err)
	require.Len(t, msgs, 4)
	for _, m := range msgs {
		assert.NotEqual(t, "system", m.Role)
	}
}

func TestStreamReplyUpstreamFailureKeepsUserMessage(t *testing.T) {
	srv := failingUpstream(t)
	st := store.NewMemStore()
	conv := &model.Conversation{Title: "t"}
	require.NoError(t, st.Sales().CreateConversation(conv))

	svc := newChatService(srv, st.Sales())
	c, w := newTestContext(t)

	err := svc.StreamReply(c, conv.ID, "مرحبا")
	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	msgs, listErr := st.Sales().ListMessages(conv.ID)
	require.NoError(t, listErr)
	require.Len(t, msgs, 1)
	assert.Equal(t, model.RoleUser, msgs[0].Role)
	assert.Equal(t, "مرحبا", msgs[0].Content)
}

func TestStreamReplyMidStreamErrorDiscardsPartialReply(t *testing.T) {
	// One good chunk, then a frame the decoder cannot parse.
	srv, _ := fakeCompletionUpstream(t, []string{"جزء"}, "data: {not json\n\n")
	st := store.NewMemStore()
	conv := &model.Conversation{Title: "t"}
	require.NoError(t, st.Sales().CreateConversation(conv))

	svc := newChatService(srv, st.Sales())
	c, w := newTestContext(t)

	err := svc.StreamReply(c, conv.ID, "مرحبا")
	require.Error(t, err)

	body := w.Body.String()
	assert.Contains(t, body, `"content":"جزء"`)
	assert.Contains(t, body, `data: {"error":"حدث خطأ أثناء المعالجة"}`+"\n\n")
	assert.NotContains(t, body, `"done":true`)

	// The partial reply stays out of the store; the user message stays in.
	msgs, listErr := st.Sales().ListMessages(conv.ID)
	require.NoError(t, listErr)
	require.Len(t, msgs, 1)
	assert.Equal(t, model.RoleUser, msgs[0].Role)
}

func TestStreamReplyRejectsCorruptHistory(t *testing.T) {
	srv, _ := fakeCompletionUpstream(t, []string{"ok"}, "data: [DONE]\n\n")
	st := store.NewMemStore()
	conv := &model.Conversation{Title: "t"}
	require.NoError(t, st.Sales().CreateConversation(conv))
	require.NoError(t, st.Sales().CreateMessage(&model.Message{ConversationID: conv.ID, Role: "system", Content: "stray"}))

	svc := newChatService(srv, st.Sales())
	c, w := newTestContext(t)

	err := svc.StreamReply(c, conv.ID, "مرحبا")
	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGenerateStreamOnce(t *testing.T) {
	srv, captured := fakeCompletionUpstream(t, []string{"نتيجة ", "التحليل"}, "data: [DONE]\n\n")
	gen := &GenerateService{Client: testClient(srv), Model: "gpt-4o-mini"}
	c, w := newTestContext(t)

	full, err := gen.StreamOnce(c, NeedsAnalystPersona, "حلل هذا العميل", 3000)
	require.NoError(t, err)
	assert.Equal(t, "نتيجة التحليل", full)

	body := w.Body.String()
	assert.Contains(t, body, `data: {"content":"نتيجة "}`+"\n\n")
	assert.True(t, strings.HasSuffix(body, "data: [DONE]\n\n"))
	assert.NotContains(t, body, `"done":true`)

	require.Len(t, captured.Messages, 2)
	assert.Equal(t, "system", captured.Messages[0].Role)
	assert.Equal(t, NeedsAnalystPersona, captured.Messages[0].Content)
	assert.Equal(t, "user", captured.Messages[1].Role)
}

func TestGenerateFailureBeforeStreaming(t *testing.T) {
	srv := failingUpstream(t)
	gen := &GenerateService{Client: testClient(srv), Model: "gpt-4o-mini"}
	c, w := newTestContext(t)

	_, err := gen.StreamOnce(c, PaletteDesignerPersona, "اقترح بالتة", 0)
	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "data: [DONE]")
}
