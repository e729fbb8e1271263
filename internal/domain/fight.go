package domain

import "time"

// Phase codes carried in every snapshot
const (
	PhaseCodeActive  = 1
	PhaseCodeEnded   = 0
	PhaseCodeCleared = -1
)

// Snapshot is the value tuple pushed to display surfaces
type Snapshot struct {
	Own        int  `json:"own"`
	Total      int  `json:"total"`
	Players    int  `json:"players"`
	IsMVP      bool `json:"is_mvp"`
	IsEligible bool `json:"is_eligible"`
	Phase      int  `json:"phase"`
}

// ClearedSnapshot is the all-zero snapshot emitted when the tracker returns to idle
func ClearedSnapshot() Snapshot {
	return Snapshot{Phase: PhaseCodeCleared}
}

// FightSummary aggregates one fight for history and notifications
type FightSummary struct {
	FightID     string    `json:"fight_id"`
	PlayerName  string    `json:"player_name,omitempty"`
	OwnDamage   int       `json:"own_damage"`
	TotalDamage int       `json:"total_damage"`
	Ticks       int       `json:"ticks"`
	PeakPlayers int       `json:"peak_players"`
	IsMVP       bool      `json:"is_mvp"`
	IsEligible  bool      `json:"is_eligible"`
	StartedAt   time.Time `json:"started_at"`
	EndedAt     time.Time `json:"ended_at,omitempty"`
}

// Share returns the local player's fraction of total damage dealt
func (s FightSummary) Share() float64 {
	if s.TotalDamage <= 0 {
		return 0
	}
	return float64(s.OwnDamage) / float64(s.TotalDamage)
}
