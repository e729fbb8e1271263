package sse

import (
	"net/http"
	"strings"
	"time"

	"github.com/osse101/NexTracker_Go/internal/logger"
)

// Handler returns an HTTP handler for SSE connections.
// Clients may restrict the stream with ?types=panel.snapshot,fight.results
func Handler(hub *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.Header().Set("Access-Control-Allow-Origin", "*")

		flusher, ok := w.(http.Flusher)
		if !ok {
			http.Error(w, ErrMsgStreamingUnsupported, http.StatusInternalServerError)
			return
		}

		var eventTypes []string
		if filterParam := r.URL.Query().Get(QueryParamTypes); filterParam != "" {
			eventTypes = strings.Split(filterParam, ",")
		}

		client := hub.Register(eventTypes)
		log.Info(LogMsgClientConnected,
			"client_id", client.ID,
			"filters", eventTypes,
			"total_clients", hub.ClientCount())

		defer func() {
			hub.Unregister(client.ID)
			log.Info(LogMsgClientDisconnected, "client_id", client.ID)
		}()

		connected := Event{
			ID:        client.ID,
			Type:      EventTypeConnected,
			Timestamp: time.Now().Unix(),
			Payload: ConnectedPayload{
				ClientID: client.ID,
				Filters:  eventTypes,
			},
		}
		if !write(w, flusher, connected) {
			return
		}

		ticker := time.NewTicker(KeepaliveInterval)
		defer ticker.Stop()

		ctx := r.Context()
		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-client.EventChannel:
				if !ok {
					// Hub is shutting down
					return
				}
				if !write(w, flusher, event) {
					return
				}

			case <-ticker.C:
				keepalive := Event{Type: EventTypeKeepalive, Timestamp: time.Now().Unix()}
				if !write(w, flusher, keepalive) {
					return
				}
			}
		}
	}
}

// write sends one event and reports whether the connection is still usable
func write(w http.ResponseWriter, flusher http.Flusher, event Event) bool {
	msg, err := FormatSSEMessage(event)
	if err != nil {
		logger.Error(LogMsgWriteError, "event_type", event.Type, "error", err)
		return true
	}
	if _, err := w.Write(msg); err != nil {
		logger.Warn(LogMsgWriteError, "event_type", event.Type, "error", err)
		return false
	}
	flusher.Flush()
	return true
}
