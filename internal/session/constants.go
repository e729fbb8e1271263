package session

import "time"

const (
	// DefaultTickInterval is the game's server tick
	DefaultTickInterval = 600 * time.Millisecond

	// InboxSize bounds how many messages may be queued between ticks
	InboxSize = 256
)

// Message kinds, used as metric labels
const (
	KindWorld  = "world"
	KindDamage = "damage"
	KindChat   = "chat"
	KindConfig = "config"
	KindTick   = "tick"
)

// Log messages
const (
	LogMsgSessionStarted      = "Session loop started"
	LogMsgSessionStopped      = "Session loop stopped"
	LogMsgExternalTickIgnored = "Ignoring external tick while ticking internally"
	LogMsgUnknownMessage      = "Ignoring unknown session message"
)
