package service

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// The chat endpoints speak a hand-rolled subset of SSE: bare
// `data: <payload>\n\n` frames, no event or id fields.

func setStreamHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
}

// writeEvent emits one data: <json>\n\n frame and flushes it.
func writeEvent(w http.ResponseWriter, flusher http.Flusher, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "data: %s\n\n", data); err != nil {
		return err
	}
	flusher.Flush()
	return nil
}

// writeDone emits the literal [DONE] sentinel that terminates the
// one-shot generation streams. The conversational relay ends with a
// {"done": true} event instead; the two framings are distinct on purpose.
func writeDone(w http.ResponseWriter, flusher http.Flusher) error {
	if _, err := io.WriteString(w, "data: [DONE]\n\n"); err != nil {
		return err
	}
	flusher.Flush()
	return nil
}
