package domain

// Event type constants used for event bus subscriptions, SSE broadcasts
// and metrics tracking.
//
// Event types follow the pattern: <entity>.<action> (e.g., "fight.started")
const (
	// EventTypeFightStarted is published when the tracker latches onto a new fight
	EventTypeFightStarted = "fight.started"

	// EventTypeFightEnded is published when the tracked boss is no longer present
	EventTypeFightEnded = "fight.ended"

	// EventTypeFightResults is published once the reset delay has elapsed after a fight,
	// after the post-fight chat messages have had a chance to arrive
	EventTypeFightResults = "fight.results"

	// EventTypeFightCleared is published when the cooldown completes and the tracker is idle again
	EventTypeFightCleared = "fight.cleared"

	// EventTypeSignalMVP is published when the MVP chat message is observed
	EventTypeSignalMVP = "signal.mvp"

	// EventTypeSignalDrop is published when the drop chat message is observed
	EventTypeSignalDrop = "signal.drop"
)

// Display surface event types, broadcast to SSE clients
const (
	EventTypePanelSnapshot   = "panel.snapshot"
	EventTypeOverlaySnapshot = "overlay.snapshot"
	EventTypeOverlayAttached = "overlay.attached"
	EventTypeOverlayDetached = "overlay.detached"
)
