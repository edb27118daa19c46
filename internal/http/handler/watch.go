package handler

import (
	"fmt"
	"net/http"

	"educagenda/internal/notify"
)

type WatchHandler struct {
	Hub *notify.Hub
}

// Watch streams table-level change signals over SSE. Each signal means
// "something changed in events": the client re-runs its last query in
// full. The subscription ends when the client disconnects.
func (h *WatchHandler) Watch(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	ch := h.Hub.Subscribe()
	defer h.Hub.Unsubscribe(ch)

	fmt.Fprint(w, "event: ready\ndata: {}\n\n")
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case _, ok := <-ch:
			if !ok {
				return
			}
			fmt.Fprint(w, "event: change\ndata: {\"table\":\"events\"}\n\n")
			flusher.Flush()
		}
	}
}
