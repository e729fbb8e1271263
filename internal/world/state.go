package world

import "github.com/osse101/NexTracker_Go/internal/domain"

// State is the tracker's view of the visible game world, replaced wholesale by
// each update from the client bridge. It is owned by the session goroutine.
type State struct {
	entities []domain.Entity
	players  []domain.Player
	localID  int
}

// NewState creates an empty world with no local player
func NewState() *State {
	return &State{}
}

// Apply replaces the visible world with the update's contents
func (s *State) Apply(update domain.WorldUpdate) {
	s.entities = append(s.entities[:0], update.Entities...)
	s.players = append(s.players[:0], update.Players...)
	s.localID = update.LocalPlayerID
}

func (s *State) ListPresentEntities() []domain.Entity { return s.entities }

func (s *State) ListPlayers() []domain.Player { return s.players }

// LocalPlayerID returns 0 until a world update names the local player
func (s *State) LocalPlayerID() int { return s.localID }
