package tracker

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/NexTracker_Go/internal/domain"
	"github.com/osse101/NexTracker_Go/internal/event"
	"github.com/osse101/NexTracker_Go/internal/logger"
	"github.com/osse101/NexTracker_Go/internal/metrics"
)

// WorldObserver exposes the visible game world
type WorldObserver interface {
	ListPresentEntities() []domain.Entity
	ListPlayers() []domain.Player
	// LocalPlayerID returns 0 when the local player is not loaded
	LocalPlayerID() int
}

// Display receives snapshots; implementations must tolerate a call every tick
type Display interface {
	UpdateValues(snap domain.Snapshot)
}

// OverlayHost attaches and detaches the overlay surface. Both calls are idempotent.
type OverlayHost interface {
	Attach(overlay Display)
	Detach(overlay Display)
}

// ConfigSource exposes the user-facing settings the tracker reads
type ConfigSource interface {
	ShowOverlay() bool
}

// Publisher receives fight lifecycle events
type Publisher interface {
	Publish(ctx context.Context, evt event.Event) error
}

// Phase is the fight lifecycle phase
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseActive
	PhaseCooldown
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseActive:
		return "active"
	case PhaseCooldown:
		return "cooldown"
	default:
		return "unknown"
	}
}

// MarshalText renders the phase by name in JSON responses
func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// State is a point-in-time copy of the tracker's fields
type State struct {
	Phase          Phase           `json:"phase"`
	FightID        string          `json:"fight_id,omitempty"`
	Own            int             `json:"own"`
	Total          int             `json:"total"`
	IsMVP          bool            `json:"is_mvp"`
	IsEligible     bool            `json:"is_eligible"`
	CooldownTick   int             `json:"cooldown_tick"`
	OverlayVisible bool            `json:"overlay_visible"`
	Mode           AttributionMode `json:"attribution_mode"`
}

// Deps carries the tracker's collaborators. Bus and Clock are optional.
type Deps struct {
	World   WorldObserver
	Panel   Display
	Overlay Display
	Host    OverlayHost
	Config  ConfigSource
	Bus     Publisher
	Clock   func() time.Time
	Mode    AttributionMode
}

// Tracker is the fight lifecycle state machine.
//
// It is not safe for concurrent use: every method must be called from the
// same goroutine (see internal/session).
type Tracker struct {
	world   WorldObserver
	panel   Display
	overlay Display
	host    OverlayHost
	config  ConfigSource
	bus     Publisher
	now     func() time.Time

	state State
	fight domain.FightSummary

	// lastFightID is the most recently cleared fight; late chat signals belong to it
	lastFightID string
}

// New creates a tracker in the idle phase
func New(deps Deps) *Tracker {
	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}
	mode := deps.Mode
	if mode == "" {
		mode = AttributionStrict
	}

	return &Tracker{
		world:   deps.World,
		panel:   deps.Panel,
		overlay: deps.Overlay,
		host:    deps.Host,
		config:  deps.Config,
		bus:     deps.Bus,
		now:     clock,
		state: State{
			Phase:        PhaseIdle,
			CooldownTick: cooldownStopped,
			Mode:         mode,
		},
	}
}

// State returns a copy of the current state
func (t *Tracker) State() State {
	return t.state
}

// OnTick evaluates the state accumulated since the previous tick
func (t *Tracker) OnTick(ctx context.Context) {
	ctx = logger.WithFightID(ctx, t.state.FightID)

	switch t.state.Phase {
	case PhaseActive:
		if _, present := FindTarget(t.world); !present {
			t.endFight(ctx)
			return
		}

		players := len(t.world.ListPlayers())
		t.emit(domain.Snapshot{
			Own:        t.state.Own,
			Total:      t.state.Total,
			Players:    players,
			IsMVP:      t.state.IsMVP,
			IsEligible: t.state.IsEligible,
			Phase:      domain.PhaseCodeActive,
		})

		t.fight.OwnDamage += t.state.Own
		t.fight.TotalDamage += t.state.Total
		t.fight.Ticks++
		if players > t.fight.PeakPlayers {
			t.fight.PeakPlayers = players
		}

		t.state.Own = 0
		t.state.Total = 0

	case PhaseCooldown:
		t.state.CooldownTick++

		if t.state.CooldownTick == ResetDelayTicks {
			logger.FromContext(ctx).Debug(LogMsgResultsDumped)
			t.emit(t.endedSnapshot())
			t.publish(ctx, event.NewFightEvent(event.FightResults, t.summary()))
		}

		if t.state.CooldownTick >= OverlayRemoveTicks {
			logger.FromContext(ctx).Debug(LogMsgOverlayRemoved)
			t.setOverlayVisible(false)
			t.emit(domain.ClearedSnapshot())
			summary := t.summary()
			t.state.Phase = PhaseIdle
			t.state.CooldownTick = cooldownStopped
			t.lastFightID = t.state.FightID
			t.state.FightID = ""
			t.publish(ctx, event.NewFightEvent(event.FightCleared, summary))
		}
	}
}

// OnDamage handles a hitsplat. It may start a fight and accumulates contribution while active.
func (t *Tracker) OnDamage(ctx context.Context, ev domain.DamageEvent) {
	target, present := FindTarget(t.world)
	if !present {
		return
	}

	if t.state.Phase != PhaseActive {
		if !isFightTrigger(ev, target, t.world.LocalPlayerID(), t.state.Mode) {
			return
		}
		t.startFight(ctx)
	}

	if !isTargetHit(ev, target) {
		return
	}

	log := logger.FromContext(logger.WithFightID(ctx, t.state.FightID))
	if ev.Amount < 0 {
		log.Debug(LogMsgNegativeAmount, "amount", ev.Amount)
		return
	}

	if ev.Mine {
		t.state.Own += ev.Amount
		log.Debug(LogMsgOwnContribution, "amount", ev.Amount)
	}
	if !ev.IsHealing {
		t.state.Total += ev.Amount
		log.Debug(LogMsgTotalContribution, "total", t.state.Total)
	}
}

// OnChat scans game messages for the MVP and drop signals.
// Signals apply to the current or most recently ended fight regardless of phase.
func (t *Tracker) OnChat(ctx context.Context, ev domain.ChatEvent) {
	if ev.Category != domain.ChatCategoryGameMessage {
		return
	}
	fightID := t.signalFightID()
	ctx = logger.WithFightID(ctx, fightID)

	if strings.Contains(ev.Text, ChatSignalMVP) {
		logger.FromContext(ctx).Debug(LogMsgMVPDetected)
		if !t.state.IsMVP {
			t.state.IsMVP = true
			t.publish(ctx, event.NewSignalEvent(event.SignalMVP, fightID, ev.Text))
		}
	}
	if strings.Contains(ev.Text, ChatSignalDrop) {
		logger.FromContext(ctx).Debug(LogMsgDropDetected)
		if !t.state.IsEligible {
			t.state.IsEligible = true
			t.publish(ctx, event.NewSignalEvent(event.SignalDrop, fightID, ev.Text))
		}
	}
}

// OnConfigChange reconciles the overlay with the configured permission and
// applies attribution mode changes. Keys outside the tracker's group are ignored.
func (t *Tracker) OnConfigChange(ctx context.Context, ev domain.ConfigChangeEvent) {
	if ev.Group != ConfigGroup {
		return
	}
	log := logger.FromContext(ctx)

	switch ev.Key {
	case ConfigKeyShowOverlay:
		if t.config.ShowOverlay() && t.state.OverlayVisible {
			t.host.Attach(t.overlay)
		} else {
			t.host.Detach(t.overlay)
		}
		log.Debug(LogMsgOverlayReconciled,
			"show_overlay", t.config.ShowOverlay(),
			"overlay_visible", t.state.OverlayVisible)

	case ConfigKeyAttributionMode:
		mode, err := ParseAttributionMode(ev.NewValue)
		if err != nil {
			log.Warn(LogMsgInvalidMode, "value", ev.NewValue, "error", err)
			return
		}
		if mode != t.state.Mode {
			log.Info(LogMsgModeChanged, "from", t.state.Mode, "to", mode)
			t.state.Mode = mode
		}
	}
}

// Shutdown detaches the overlay and returns the tracker to idle
func (t *Tracker) Shutdown(ctx context.Context) {
	t.host.Detach(t.overlay)
	mode := t.state.Mode
	t.state = State{
		Phase:        PhaseIdle,
		CooldownTick: cooldownStopped,
		Mode:         mode,
	}
	t.fight = domain.FightSummary{}
	logger.FromContext(ctx).Debug(LogMsgTrackerShutdown)
}

func (t *Tracker) startFight(ctx context.Context) {
	t.state.Phase = PhaseActive
	t.state.FightID = uuid.NewString()
	t.state.CooldownTick = cooldownStopped
	t.state.IsMVP = false
	t.state.IsEligible = false
	t.state.Own = 0
	t.state.Total = 0
	t.fight = domain.FightSummary{
		FightID:    t.state.FightID,
		PlayerName: t.localPlayerName(),
		StartedAt:  t.now(),
	}

	ctx = logger.WithFightID(ctx, t.state.FightID)
	logger.FromContext(ctx).Info(LogMsgFightStarted)

	t.setOverlayVisible(true)
	t.publish(ctx, event.NewFightEvent(event.FightStarted, t.summary()))
}

func (t *Tracker) endFight(ctx context.Context) {
	// Hitsplats from the final partial window still count toward the fight summary
	t.fight.OwnDamage += t.state.Own
	t.fight.TotalDamage += t.state.Total

	logger.FromContext(ctx).Info(LogMsgFightEnded,
		"own_damage", t.fight.OwnDamage,
		"total_damage", t.fight.TotalDamage,
		"ticks", t.fight.Ticks)

	t.state.Phase = PhaseCooldown
	t.state.CooldownTick = 0
	t.state.Own = 0
	t.state.Total = 0
	t.fight.EndedAt = t.now()

	t.emit(t.endedSnapshot())
	t.publish(ctx, event.NewFightEvent(event.FightEnded, t.summary()))
}

func (t *Tracker) setOverlayVisible(visible bool) {
	if visible == t.state.OverlayVisible {
		return
	}
	t.state.OverlayVisible = visible
	if visible {
		if t.config.ShowOverlay() {
			t.host.Attach(t.overlay)
		}
	} else {
		t.host.Detach(t.overlay)
	}
}

// signalFightID is the fight a chat signal is attributed to: the current one,
// or the last cleared one while idle
func (t *Tracker) signalFightID() string {
	if t.state.FightID != "" {
		return t.state.FightID
	}
	return t.lastFightID
}

// localPlayerName returns "" when the local player is not loaded
func (t *Tracker) localPlayerName() string {
	id := t.world.LocalPlayerID()
	if id == 0 {
		return ""
	}
	for _, p := range t.world.ListPlayers() {
		if p.ID == id {
			return p.Name
		}
	}
	return ""
}

// endedSnapshot is shown after the fight: counters zeroed, flags and player count kept
func (t *Tracker) endedSnapshot() domain.Snapshot {
	return domain.Snapshot{
		Players:    len(t.world.ListPlayers()),
		IsMVP:      t.state.IsMVP,
		IsEligible: t.state.IsEligible,
		Phase:      domain.PhaseCodeEnded,
	}
}

func (t *Tracker) emit(snap domain.Snapshot) {
	t.panel.UpdateValues(snap)
	t.overlay.UpdateValues(snap)
}

func (t *Tracker) summary() domain.FightSummary {
	s := t.fight
	s.IsMVP = t.state.IsMVP
	s.IsEligible = t.state.IsEligible
	return s
}

func (t *Tracker) publish(ctx context.Context, evt event.Event) {
	if t.bus == nil {
		return
	}
	if err := t.bus.Publish(ctx, evt); err != nil {
		metrics.EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "type", evt.Type, "error", err)
	}
}
