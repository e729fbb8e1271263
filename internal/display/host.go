package display

import (
	"sync"

	"github.com/osse101/NexTracker_Go/internal/domain"
	"github.com/osse101/NexTracker_Go/internal/logger"
	"github.com/osse101/NexTracker_Go/internal/metrics"
	"github.com/osse101/NexTracker_Go/internal/tracker"
)

// OverlayPayload is broadcast when the overlay is attached or detached
type OverlayPayload struct {
	Attached bool `json:"attached"`
}

// Host tracks whether the overlay is attached to the client's view
type Host struct {
	mu       sync.RWMutex
	hub      Broadcaster
	attached tracker.Display
}

// NewHost creates an overlay host. hub may be nil.
func NewHost(hub Broadcaster) *Host {
	return &Host{hub: hub}
}

// Attach marks the overlay as shown. Attaching an attached overlay does nothing.
func (h *Host) Attach(overlay tracker.Display) {
	h.mu.Lock()
	if h.attached != nil {
		h.mu.Unlock()
		return
	}
	h.attached = overlay
	h.mu.Unlock()

	metrics.OverlayAttached.Set(1)
	logger.Debug(LogMsgOverlayAttached)
	h.broadcast(domain.EventTypeOverlayAttached, true)
}

// Detach hides the overlay. Detaching a detached overlay does nothing.
func (h *Host) Detach(_ tracker.Display) {
	h.mu.Lock()
	if h.attached == nil {
		h.mu.Unlock()
		return
	}
	h.attached = nil
	h.mu.Unlock()

	metrics.OverlayAttached.Set(0)
	logger.Debug(LogMsgOverlayDetached)
	h.broadcast(domain.EventTypeOverlayDetached, false)
}

// Attached reports whether an overlay is currently attached
func (h *Host) Attached() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.attached != nil
}

func (h *Host) broadcast(eventType string, attached bool) {
	if h.hub == nil {
		return
	}
	h.hub.Broadcast(eventType, OverlayPayload{Attached: attached})
}
