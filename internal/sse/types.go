package sse

import "github.com/osse101/NexTracker_Go/internal/domain"

// ConnectedPayload is sent once when a client connects
type ConnectedPayload struct {
	ClientID string   `json:"client_id"`
	Filters  []string `json:"filters"`
}

// FightPayload represents the SSE payload for fight lifecycle events
type FightPayload struct {
	FightID     string  `json:"fight_id"`
	OwnDamage   int     `json:"own_damage"`
	TotalDamage int     `json:"total_damage"`
	Share       float64 `json:"share"`
	Ticks       int     `json:"ticks"`
	PeakPlayers int     `json:"peak_players"`
	IsMVP       bool    `json:"is_mvp"`
	IsEligible  bool    `json:"is_eligible"`
}

// NewFightPayload flattens a fight summary for SSE clients
func NewFightPayload(s domain.FightSummary) FightPayload {
	return FightPayload{
		FightID:     s.FightID,
		OwnDamage:   s.OwnDamage,
		TotalDamage: s.TotalDamage,
		Share:       s.Share(),
		Ticks:       s.Ticks,
		PeakPlayers: s.PeakPlayers,
		IsMVP:       s.IsMVP,
		IsEligible:  s.IsEligible,
	}
}

// SignalPayload represents the SSE payload for MVP and drop chat signals
type SignalPayload struct {
	FightID string `json:"fight_id,omitempty"`
	Text    string `json:"text"`
}
