package handler

import (
	"context"
	"net/http"

	"github.com/osse101/NexTracker_Go/internal/domain"
	"github.com/osse101/NexTracker_Go/internal/logger"
	"github.com/osse101/NexTracker_Go/internal/metrics"
	"github.com/osse101/NexTracker_Go/internal/session"
)

// Submitter queues tracker inputs for the session loop
type Submitter interface {
	Submit(ctx context.Context, msg session.Message) error
}

// SettingsApplier records client config changes in the tracker's settings
type SettingsApplier interface {
	Apply(change domain.ConfigChangeEvent) (bool, error)
}

// IngestHandler accepts events from the game client bridge
type IngestHandler struct {
	session  Submitter
	settings SettingsApplier
}

// NewIngestHandler creates a new ingest handler
func NewIngestHandler(s Submitter, settings SettingsApplier) *IngestHandler {
	return &IngestHandler{session: s, settings: settings}
}

// AcceptedResponse acknowledges queued messages
type AcceptedResponse struct {
	Accepted int `json:"accepted"`
}

type EntityRequest struct {
	ID   int    `json:"id" validate:"required,gt=0"`
	Kind string `json:"kind" validate:"required,entitykind"`
}

type PlayerRequest struct {
	ID   int    `json:"id" validate:"required,gt=0"`
	Name string `json:"name" validate:"max=12"`
}

// WorldRequest replaces the visible world
type WorldRequest struct {
	Entities      []EntityRequest `json:"entities" validate:"max=2048,dive"`
	Players       []PlayerRequest `json:"players" validate:"max=2048,dive"`
	LocalPlayerID int             `json:"local_player_id" validate:"gte=0"`
}

// DamageRequest describes one hitsplat
type DamageRequest struct {
	ActorID             int    `json:"actor_id" validate:"required,gt=0"`
	ActorKind           string `json:"actor_kind" validate:"required,entitykind"`
	InteractingWithID   int    `json:"interacting_with_id" validate:"gte=0"`
	InteractingWithKind string `json:"interacting_with_kind" validate:"entitykind"`
	Amount              int    `json:"amount" validate:"gte=0"`
	IsHealing           bool   `json:"is_healing"`
	Mine                bool   `json:"mine"`
	TargetIsLocalPlayer bool   `json:"target_is_local_player"`
}

// ChatRequest is one chat line
type ChatRequest struct {
	Category string `json:"category" validate:"required,max=64"`
	Text     string `json:"text" validate:"required,max=512"`
}

// ConfigRequest reports a changed client setting
type ConfigRequest struct {
	Group    string `json:"group" validate:"required,max=64"`
	Key      string `json:"key" validate:"required,max=64"`
	NewValue string `json:"new_value" validate:"max=256"`
}

// TickRequest advances the tracker; an empty body means one tick
type TickRequest struct {
	Count int `json:"count" validate:"omitempty,min=1,max=100"`
}

// HandleWorld replaces the tracker's view of the world
func (h *IngestHandler) HandleWorld(w http.ResponseWriter, r *http.Request) {
	var req WorldRequest
	if err := DecodeAndValidateRequest(r, w, &req, "World ingest"); err != nil {
		metrics.IngestRejected.WithLabelValues(session.KindWorld, RejectReasonInvalid).Inc()
		return
	}

	update := domain.WorldUpdate{
		Entities:      make([]domain.Entity, 0, len(req.Entities)),
		Players:       make([]domain.Player, 0, len(req.Players)),
		LocalPlayerID: req.LocalPlayerID,
	}
	for _, e := range req.Entities {
		kind, _ := domain.ParseEntityKind(e.Kind) // validated above
		update.Entities = append(update.Entities, domain.Entity{ID: e.ID, Kind: kind})
	}
	for _, p := range req.Players {
		update.Players = append(update.Players, domain.Player{ID: p.ID, Name: p.Name})
	}

	h.submit(w, r, session.WorldMsg{Update: update})
}

// HandleDamage queues a hitsplat
func (h *IngestHandler) HandleDamage(w http.ResponseWriter, r *http.Request) {
	var req DamageRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Damage ingest"); err != nil {
		metrics.IngestRejected.WithLabelValues(session.KindDamage, RejectReasonInvalid).Inc()
		return
	}

	actorKind, _ := domain.ParseEntityKind(req.ActorKind)
	ev := domain.DamageEvent{
		ActorID:             req.ActorID,
		ActorKind:           actorKind,
		InteractingWithID:   req.InteractingWithID,
		Amount:              req.Amount,
		IsHealing:           req.IsHealing,
		Mine:                req.Mine,
		TargetIsLocalPlayer: req.TargetIsLocalPlayer,
	}
	if req.InteractingWithKind != "" {
		ev.InteractingWithKind, _ = domain.ParseEntityKind(req.InteractingWithKind)
	}

	h.submit(w, r, session.DamageMsg{Event: ev})
}

// HandleChat queues a chat line
func (h *IngestHandler) HandleChat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Chat ingest"); err != nil {
		metrics.IngestRejected.WithLabelValues(session.KindChat, RejectReasonInvalid).Inc()
		return
	}

	h.submit(w, r, session.ChatMsg{Event: domain.ChatEvent{Category: req.Category, Text: req.Text}})
}

// HandleConfig queues a client setting change
func (h *IngestHandler) HandleConfig(w http.ResponseWriter, r *http.Request) {
	var req ConfigRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Config ingest"); err != nil {
		metrics.IngestRejected.WithLabelValues(session.KindConfig, RejectReasonInvalid).Inc()
		return
	}

	change := domain.ConfigChangeEvent{
		Group:    req.Group,
		Key:      req.Key,
		NewValue: req.NewValue,
	}

	// The settings store is the tracker's config source, so it is updated
	// before the tracker is told to reconcile
	changed, err := h.settings.Apply(change)
	if err != nil {
		logger.FromContext(r.Context()).Debug(LogMsgSettingRejected, "key", req.Key, "error", err)
		metrics.IngestRejected.WithLabelValues(session.KindConfig, RejectReasonInvalid).Inc()
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}
	if !changed {
		respondJSON(w, http.StatusAccepted, AcceptedResponse{Accepted: 0})
		return
	}

	h.submit(w, r, session.ConfigMsg{Event: change})
}

// HandleTick advances the tracker when ticks are driven externally
func (h *IngestHandler) HandleTick(w http.ResponseWriter, r *http.Request) {
	req := TickRequest{Count: 1}
	if r.ContentLength != 0 {
		if err := DecodeAndValidateRequest(r, w, &req, "Tick ingest"); err != nil {
			metrics.IngestRejected.WithLabelValues(session.KindTick, RejectReasonInvalid).Inc()
			return
		}
		if req.Count == 0 {
			req.Count = 1
		}
	}

	for i := 0; i < req.Count; i++ {
		if err := h.session.Submit(r.Context(), session.TickMsg{}); err != nil {
			h.fail(w, r, session.KindTick, err)
			return
		}
	}
	respondJSON(w, http.StatusAccepted, AcceptedResponse{Accepted: req.Count})
}

func (h *IngestHandler) submit(w http.ResponseWriter, r *http.Request, msg session.Message) {
	if err := h.session.Submit(r.Context(), msg); err != nil {
		h.fail(w, r, msg.Kind(), err)
		return
	}
	respondJSON(w, http.StatusAccepted, AcceptedResponse{Accepted: 1})
}

func (h *IngestHandler) fail(w http.ResponseWriter, r *http.Request, kind string, err error) {
	logger.FromContext(r.Context()).Warn(LogMsgSubmitFailed, "kind", kind, "error", err)
	metrics.IngestRejected.WithLabelValues(kind, RejectReasonUnavailable).Inc()
	statusCode, userMsg := mapServiceErrorToUserMessage(err)
	respondError(w, statusCode, userMsg)
}
