package discord

import "time"

// Embed colors
const (
	ColorMVP      = 0xFFD700 // Gold
	ColorEligible = 0x2ecc71 // Green
	ColorNone     = 0x95a5a6 // Gray
)

// Retry settings for sending notifications
const (
	MaxSendRetries      = 3
	InitialSendInterval = 500 * time.Millisecond
	MaxSendInterval     = 5 * time.Second
)

// Embed text
const (
	embedTitle        = "Nex fight results"
	embedFooterFormat = "Fight %s"
	fieldOwnDamage    = "Your damage"
	fieldTotalDamage  = "Total damage"
	fieldShare        = "Share"
	fieldDuration     = "Duration"
	fieldPlayers      = "Peak players"
	fieldMVP          = "MVP"
	fieldEligible     = "Drop eligible"
	valueYes          = "Yes"
	valueNo           = "No"
)

// Log messages
const (
	LogMsgNotifierDisabled   = "Discord notifications disabled, token or channel not configured"
	LogMsgNotifierRegistered = "Discord notifier registered"
	LogMsgEnqueueFailed      = "Failed to queue Discord notification"
	LogMsgSendRetry          = "Discord send failed, retrying"
	LogMsgNotificationSent   = "Discord notification sent"
	LogMsgInvalidPayload     = "Ignoring fight results with unexpected payload"
)
