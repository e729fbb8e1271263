package sse

import "time"

// Buffer sizes
const (
	// BroadcastBufferSize is the buffer size for the broadcast channel.
	// Snapshots arrive every tick for two surfaces, so this leaves room for bursts.
	BroadcastBufferSize = 256

	// ClientEventBuffer is the buffer size for each client's event channel
	ClientEventBuffer = 64

	// ClientChannelBuffer is the buffer size for register/unregister channels
	ClientChannelBuffer = 10
)

// SSE connection settings
const (
	// KeepaliveInterval is how often to send keepalive pings
	KeepaliveInterval = 30 * time.Second
)

// Event types for SSE
const (
	// EventTypeConnected is the first event every client receives
	EventTypeConnected = "connected"

	// EventTypeKeepalive is the keepalive ping event type
	EventTypeKeepalive = "keepalive"
)

// Query parameters
const (
	QueryParamTypes = "types"
)

// Log messages
const (
	LogMsgClientConnected    = "SSE client connected"
	LogMsgClientDisconnected = "SSE client disconnected"
	LogMsgEventBroadcast     = "Broadcasting SSE event"
	LogMsgEventDropped       = "SSE broadcast buffer full, event dropped"
	LogMsgWriteError         = "Failed to write SSE event"
	LogMsgSubscriberReady    = "SSE subscriber registered for event types"
	LogMsgInvalidPayload     = "Invalid event payload for SSE"
)

// Error messages
const (
	ErrMsgStreamingUnsupported = "SSE not supported"
)
