package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

// streamEvents keeps a viewer connected over Server-Sent Events until it
// disconnects. Missed events are gone: the hub drops rather than queues.
func (h *Handler) streamEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		respondError(w, http.StatusInternalServerError, codeInternalError, "streaming unsupported")
		return
	}

	// subscribe before the headers go out so a viewer that sees the
	// response is already registered
	events, unsubscribe := h.hub.Subscribe()
	defer unsubscribe()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	h.zaplog.Info("viewer connected", zap.String("action", "viewer_connected"))

	for {
		select {
		case <-r.Context().Done():
			h.zaplog.Info("viewer disconnected", zap.String("action", "viewer_disconnected"))
			return
		case msg, open := <-events:
			if !open {
				return
			}
			data, err := json.Marshal(msg.Payload)
			if err != nil {
				h.zaplog.Error("event marshal failed", zap.String("event", msg.Event), zap.Error(err))
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", msg.Event, data)
			flusher.Flush()
		}
	}
}
