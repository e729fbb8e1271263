package session

import "github.com/osse101/NexTracker_Go/internal/domain"

// Message is an input to the session loop
type Message interface {
	Kind() string
}

// WorldMsg replaces the visible world
type WorldMsg struct {
	Update domain.WorldUpdate
}

// DamageMsg carries a hitsplat
type DamageMsg struct {
	Event domain.DamageEvent
}

// ChatMsg carries a chat line
type ChatMsg struct {
	Event domain.ChatEvent
}

// ConfigMsg carries a changed setting
type ConfigMsg struct {
	Event domain.ConfigChangeEvent
}

// TickMsg advances the tracker by one game tick
type TickMsg struct{}

func (WorldMsg) Kind() string  { return KindWorld }
func (DamageMsg) Kind() string { return KindDamage }
func (ChatMsg) Kind() string   { return KindChat }
func (ConfigMsg) Kind() string { return KindConfig }
func (TickMsg) Kind() string   { return KindTick }
