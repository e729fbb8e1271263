package display

import (
	"fmt"
	"sync"
	"time"

	"github.com/osse101/NexTracker_Go/internal/domain"
	"github.com/osse101/NexTracker_Go/internal/tracker"
)

// Broadcaster pushes typed payloads to connected clients (the SSE hub)
type Broadcaster interface {
	Broadcast(eventType string, payload interface{})
}

// ParseSurface converts a query value into a Surface
func ParseSurface(s string) (Surface, error) {
	switch Surface(s) {
	case SurfacePanel, SurfaceOverlay:
		return Surface(s), nil
	default:
		return "", fmt.Errorf("%w: unknown surface %q", domain.ErrInvalidInput, s)
	}
}

// EventType returns the SSE event type used for this surface's snapshots
func (s Surface) EventType() string {
	if s == SurfaceOverlay {
		return domain.EventTypeOverlaySnapshot
	}
	return domain.EventTypePanelSnapshot
}

// Latest keeps the most recent snapshot pushed to a surface.
// UpdateValues is called from the session goroutine; reads come from HTTP handlers.
type Latest struct {
	mu      sync.RWMutex
	snap    domain.Snapshot
	updated time.Time
	seen    bool
}

// NewLatest creates an empty holder
func NewLatest() *Latest {
	return &Latest{}
}

// UpdateValues stores the snapshot
func (l *Latest) UpdateValues(snap domain.Snapshot) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.snap = snap
	l.updated = time.Now()
	l.seen = true
}

// Snapshot returns the last snapshot and whether one has been received
func (l *Latest) Snapshot() (domain.Snapshot, time.Time, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.snap, l.updated, l.seen
}

// Broadcast forwards snapshots to the hub under the surface's event type
type Broadcast struct {
	hub     Broadcaster
	surface Surface
}

// NewBroadcast creates a broadcasting display for a surface
func NewBroadcast(hub Broadcaster, surface Surface) *Broadcast {
	return &Broadcast{hub: hub, surface: surface}
}

// UpdateValues broadcasts the snapshot
func (b *Broadcast) UpdateValues(snap domain.Snapshot) {
	b.hub.Broadcast(b.surface.EventType(), snap)
}

// Fanout calls each display in order
type Fanout []tracker.Display

// UpdateValues forwards the snapshot to every display
func (f Fanout) UpdateValues(snap domain.Snapshot) {
	for _, d := range f {
		d.UpdateValues(snap)
	}
}
