package domain

import (
	"fmt"
	"strings"
)

// EntityKind distinguishes the two actor types the tracker cares about
type EntityKind string

const (
	EntityKindNPC    EntityKind = "npc"
	EntityKindPlayer EntityKind = "player"
)

// ParseEntityKind normalizes a wire value into an EntityKind
func ParseEntityKind(s string) (EntityKind, error) {
	switch EntityKind(strings.ToLower(strings.TrimSpace(s))) {
	case EntityKindNPC:
		return EntityKindNPC, nil
	case EntityKindPlayer:
		return EntityKindPlayer, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidEntityKind, s)
	}
}

// Entity is a game object currently loaded in the visible world
type Entity struct {
	ID   int        `json:"id"`
	Kind EntityKind `json:"kind"`
}

// Player is a player actor in the visible world
type Player struct {
	ID   int    `json:"id"`
	Name string `json:"name,omitempty"`
}

// WorldUpdate replaces the observer's view of the visible world
type WorldUpdate struct {
	Entities      []Entity `json:"entities"`
	Players       []Player `json:"players"`
	LocalPlayerID int      `json:"local_player_id"`
}
