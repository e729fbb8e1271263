package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/NexTracker_Go/internal/display"
	"github.com/osse101/NexTracker_Go/internal/domain"
	"github.com/osse101/NexTracker_Go/internal/logger"
	"github.com/osse101/NexTracker_Go/internal/tracker"
)

// SnapshotReader exposes the latest snapshot pushed to a surface
type SnapshotReader interface {
	Snapshot() (domain.Snapshot, time.Time, bool)
}

// StateReader exposes the session's published tracker state
type StateReader interface {
	State() tracker.State
	Ticks() uint64
}

// FightHistory exposes recently finished fights
type FightHistory interface {
	Recent(limit int) []domain.FightSummary
	Get(fightID string) (domain.FightSummary, error)
}

// QueryHandler serves read-only tracker projections
type QueryHandler struct {
	surfaces map[display.Surface]SnapshotReader
	state    StateReader
	history  FightHistory
}

// NewQueryHandler creates a new query handler
func NewQueryHandler(panel, overlay SnapshotReader, state StateReader, history FightHistory) *QueryHandler {
	return &QueryHandler{
		surfaces: map[display.Surface]SnapshotReader{
			display.SurfacePanel:   panel,
			display.SurfaceOverlay: overlay,
		},
		state:   state,
		history: history,
	}
}

// SnapshotResponse is the latest 6-tuple for a surface
type SnapshotResponse struct {
	Surface   display.Surface `json:"surface"`
	Available bool            `json:"available"`
	Snapshot  domain.Snapshot `json:"snapshot"`
	UpdatedAt *time.Time      `json:"updated_at,omitempty"`
}

// StateResponse is the tracker state plus loop progress
type StateResponse struct {
	tracker.State
	Ticks uint64 `json:"ticks"`
}

// FightsResponse lists recent fights, newest first
type FightsResponse struct {
	Fights []domain.FightSummary `json:"fights"`
	Count  int                   `json:"count"`
}

// HandleSnapshot returns the latest snapshot for ?surface=panel|overlay (default panel)
func (h *QueryHandler) HandleSnapshot(w http.ResponseWriter, r *http.Request) {
	surface, err := display.ParseSurface(GetOptionalQueryParam(r, QueryParamSurface, string(display.SurfacePanel)))
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidSurface)
		return
	}

	snap, updated, ok := h.surfaces[surface].Snapshot()
	resp := SnapshotResponse{Surface: surface, Available: ok, Snapshot: snap}
	if ok {
		resp.UpdatedAt = &updated
	}
	respondJSON(w, http.StatusOK, resp)
}

// HandleState returns the tracker's phase, fight id and cooldown progress
func (h *QueryHandler) HandleState(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, StateResponse{
		State: h.state.State(),
		Ticks: h.state.Ticks(),
	})
}

// HandleListFights returns recent fights
func (h *QueryHandler) HandleListFights(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r, DefaultFightsLimit, MaxFightsLimit)
	if err != nil {
		logger.FromContext(r.Context()).Debug(ErrMsgInvalidLimit, "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidLimit)
		return
	}

	fights := h.history.Recent(limit)
	if fights == nil {
		fights = []domain.FightSummary{}
	}
	respondJSON(w, http.StatusOK, FightsResponse{Fights: fights, Count: len(fights)})
}

// HandleGetFight returns one fight by id
func (h *QueryHandler) HandleGetFight(w http.ResponseWriter, r *http.Request) {
	fight, err := h.history.Get(chi.URLParam(r, URLParamFightID))
	if err != nil {
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}
	respondJSON(w, http.StatusOK, fight)
}
