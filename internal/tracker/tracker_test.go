package tracker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/NexTracker_Go/internal/domain"
	"github.com/osse101/NexTracker_Go/internal/event"
)

const (
	nexID       = 11278
	localID     = 7
	otherID     = 8
	bystanderID = 9999
)

// fakeWorld is a settable WorldObserver
type fakeWorld struct {
	entities []domain.Entity
	players  []domain.Player
	local    int
}

func (w *fakeWorld) ListPresentEntities() []domain.Entity { return w.entities }
func (w *fakeWorld) ListPlayers() []domain.Player         { return w.players }
func (w *fakeWorld) LocalPlayerID() int                   { return w.local }

func (w *fakeWorld) showNex() {
	w.entities = []domain.Entity{{ID: bystanderID, Kind: domain.EntityKindNPC}, {ID: nexID, Kind: domain.EntityKindNPC}}
}

func (w *fakeWorld) hideNex() {
	w.entities = []domain.Entity{{ID: bystanderID, Kind: domain.EntityKindNPC}}
}

// recordingDisplay keeps every snapshot it receives
type recordingDisplay struct {
	snaps []domain.Snapshot
}

func (d *recordingDisplay) UpdateValues(snap domain.Snapshot) { d.snaps = append(d.snaps, snap) }

func (d *recordingDisplay) last() domain.Snapshot {
	if len(d.snaps) == 0 {
		return domain.Snapshot{}
	}
	return d.snaps[len(d.snaps)-1]
}

func (d *recordingDisplay) countPhase(code int) int {
	n := 0
	for _, s := range d.snaps {
		if s.Phase == code {
			n++
		}
	}
	return n
}

// MockOverlayHost mocks the OverlayHost interface
type MockOverlayHost struct {
	mock.Mock
}

func (m *MockOverlayHost) Attach(overlay Display) { m.Called(overlay) }
func (m *MockOverlayHost) Detach(overlay Display) { m.Called(overlay) }

type fakeConfig struct {
	showOverlay bool
}

func (c *fakeConfig) ShowOverlay() bool { return c.showOverlay }

// failingBus always rejects events
type failingBus struct{}

func (failingBus) Publish(context.Context, event.Event) error { return errors.New("bus down") }

type fixture struct {
	tracker *Tracker
	world   *fakeWorld
	panel   *recordingDisplay
	overlay *recordingDisplay
	host    *MockOverlayHost
	config  *fakeConfig
	events  []event.Event
}

func newFixture(t *testing.T, mode AttributionMode) *fixture {
	t.Helper()

	f := &fixture{
		world: &fakeWorld{
			players: []domain.Player{{ID: localID, Name: "me"}, {ID: otherID, Name: "them"}},
			local:   localID,
		},
		panel:   &recordingDisplay{},
		overlay: &recordingDisplay{},
		host:    &MockOverlayHost{},
		config:  &fakeConfig{showOverlay: true},
	}
	f.host.On("Attach", mock.Anything).Return()
	f.host.On("Detach", mock.Anything).Return()

	bus := event.NewMemoryBus()
	for _, typ := range append(event.FightTypes, event.SignalMVP, event.SignalDrop) {
		bus.Subscribe(typ, func(_ context.Context, evt event.Event) error {
			f.events = append(f.events, evt)
			return nil
		})
	}

	f.tracker = New(Deps{
		World:   f.world,
		Panel:   f.panel,
		Overlay: f.overlay,
		Host:    f.host,
		Config:  f.config,
		Bus:     bus,
		Clock:   func() time.Time { return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC) },
		Mode:    mode,
	})
	return f
}

func (f *fixture) tick(t *testing.T, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		f.tracker.OnTick(context.Background())
		assertInvariants(t, f.tracker.State())
	}
}

func (f *fixture) damage(t *testing.T, ev domain.DamageEvent) {
	t.Helper()
	f.tracker.OnDamage(context.Background(), ev)
	assertInvariants(t, f.tracker.State())
}

func (f *fixture) chat(text string) {
	f.tracker.OnChat(context.Background(), domain.ChatEvent{Category: domain.ChatCategoryGameMessage, Text: text})
}

func (f *fixture) eventTypes() []event.Type {
	types := make([]event.Type, 0, len(f.events))
	for _, e := range f.events {
		types = append(types, e.Type)
	}
	return types
}

func assertInvariants(t *testing.T, s State) {
	t.Helper()
	if s.Phase != PhaseActive {
		assert.Zero(t, s.Own, "own contribution must be zero outside an active fight")
		assert.Zero(t, s.Total, "total contribution must be zero outside an active fight")
	}
	assert.Equal(t, s.Phase == PhaseCooldown, s.CooldownTick != cooldownStopped,
		"cooldown tick must be running exactly while in cooldown")
	assert.GreaterOrEqual(t, s.Own, 0)
	assert.GreaterOrEqual(t, s.Total, 0)
}

// Hitsplat on Nex while Nex is attacking the local player
func nexHitTargetingMe(amount int, mine bool) domain.DamageEvent {
	return domain.DamageEvent{
		ActorID:             nexID,
		ActorKind:           domain.EntityKindNPC,
		InteractingWithID:   localID,
		InteractingWithKind: domain.EntityKindPlayer,
		Amount:              amount,
		Mine:                mine,
	}
}

// Hitsplat on Nex while Nex is attacking someone else
func nexHit(amount int, mine, healing bool) domain.DamageEvent {
	return domain.DamageEvent{
		ActorID:             nexID,
		ActorKind:           domain.EntityKindNPC,
		InteractingWithID:   otherID,
		InteractingWithKind: domain.EntityKindPlayer,
		Amount:              amount,
		Mine:                mine,
		IsHealing:           healing,
	}
}

// Hitsplat on a player who is attacking Nex
func playerHitAttackingNex(playerID, amount int) domain.DamageEvent {
	return domain.DamageEvent{
		ActorID:             playerID,
		ActorKind:           domain.EntityKindPlayer,
		InteractingWithID:   nexID,
		InteractingWithKind: domain.EntityKindNPC,
		Amount:              amount,
	}
}

func (f *fixture) startFight(t *testing.T) {
	t.Helper()
	f.world.showNex()
	f.damage(t, playerHitAttackingNex(localID, 3))
	require.Equal(t, PhaseActive, f.tracker.State().Phase)
}

func TestTracker_StaysIdleWithoutTarget(t *testing.T) {
	f := newFixture(t, AttributionStrict)
	f.world.hideNex()

	f.tick(t, 100)
	f.damage(t, playerHitAttackingNex(localID, 10))
	f.damage(t, nexHitTargetingMe(10, true))
	f.tick(t, 5)

	state := f.tracker.State()
	assert.Equal(t, PhaseIdle, state.Phase)
	assert.Zero(t, state.Own)
	assert.Zero(t, state.Total)
	assert.Empty(t, f.panel.snaps)
	assert.Empty(t, f.overlay.snaps)
	f.host.AssertNotCalled(t, "Attach", mock.Anything)
}

func TestTracker_FightStartScenario(t *testing.T) {
	f := newFixture(t, AttributionStrict)

	f.tick(t, 1) // target absent
	f.world.showNex()
	f.tick(t, 1) // target present, no damage yet
	assert.Equal(t, PhaseIdle, f.tracker.State().Phase)

	f.damage(t, nexHitTargetingMe(10, true))

	state := f.tracker.State()
	assert.Equal(t, PhaseActive, state.Phase)
	assert.NotEmpty(t, state.FightID)
	assert.Equal(t, 10, state.Own)
	assert.Equal(t, 10, state.Total)
	assert.True(t, state.OverlayVisible)
	f.host.AssertNumberOfCalls(t, "Attach", 1)

	f.tick(t, 1)

	want := domain.Snapshot{Own: 10, Total: 10, Players: 2, Phase: domain.PhaseCodeActive}
	assert.Equal(t, want, f.panel.last())
	assert.Equal(t, want, f.overlay.last())
	assert.Zero(t, f.tracker.State().Own, "counters reset for the next tick window")
	assert.Zero(t, f.tracker.State().Total)

	f.tick(t, 1)
	assert.Equal(t, domain.Snapshot{Players: 2, Phase: domain.PhaseCodeActive}, f.panel.last())
}

func TestTracker_StartResetsFlagsAndCounters(t *testing.T) {
	f := newFixture(t, AttributionStrict)

	f.chat("You were the MVP for this fight.")
	f.chat("Someone received a drop: Nihil horn")
	require.True(t, f.tracker.State().IsMVP)
	require.True(t, f.tracker.State().IsEligible)
	assert.Equal(t, PhaseIdle, f.tracker.State().Phase, "chat signals never start a fight")

	f.startFight(t)

	state := f.tracker.State()
	assert.False(t, state.IsMVP)
	assert.False(t, state.IsEligible)
	assert.Zero(t, state.Own)
	assert.Zero(t, state.Total)
}

func TestTracker_OwnContribution(t *testing.T) {
	f := newFixture(t, AttributionStrict)
	f.startFight(t)

	f.damage(t, nexHit(25, true, false))
	assert.Equal(t, 25, f.tracker.State().Own)

	f.damage(t, nexHit(40, false, false))
	assert.Equal(t, 25, f.tracker.State().Own, "other players' damage never counts as own")

	f.damage(t, nexHit(5, true, false))
	assert.Equal(t, 30, f.tracker.State().Own)
}

func TestTracker_TotalContribution(t *testing.T) {
	f := newFixture(t, AttributionStrict)
	f.startFight(t)

	f.damage(t, nexHit(25, true, false))
	f.damage(t, nexHit(40, false, false))
	assert.Equal(t, 65, f.tracker.State().Total)

	f.damage(t, nexHit(100, false, true))
	assert.Equal(t, 65, f.tracker.State().Total, "healing never counts toward total")
}

func TestTracker_OnlyTargetHitsAccumulate(t *testing.T) {
	f := newFixture(t, AttributionStrict)
	f.startFight(t)

	f.damage(t, domain.DamageEvent{ActorID: bystanderID, ActorKind: domain.EntityKindNPC, Amount: 50, Mine: true})
	f.damage(t, domain.DamageEvent{ActorID: localID, ActorKind: domain.EntityKindPlayer, Amount: 50, Mine: true})

	assert.Zero(t, f.tracker.State().Own)
	assert.Zero(t, f.tracker.State().Total)
}

func TestTracker_NegativeAmountIgnored(t *testing.T) {
	f := newFixture(t, AttributionStrict)
	f.startFight(t)

	f.damage(t, nexHit(-5, true, false))

	assert.Zero(t, f.tracker.State().Own)
	assert.Zero(t, f.tracker.State().Total)
}

func TestTracker_EligibilityPersistsThroughCooldown(t *testing.T) {
	f := newFixture(t, AttributionStrict)
	f.startFight(t)

	f.chat("Teammate received a drop: Torva full helm")
	assert.True(t, f.tracker.State().IsEligible)
	assert.Equal(t, PhaseActive, f.tracker.State().Phase)

	f.world.hideNex()
	f.tick(t, 1)
	require.Equal(t, PhaseCooldown, f.tracker.State().Phase)
	assert.True(t, f.tracker.State().IsEligible)
	assert.True(t, f.panel.last().IsEligible)

	f.tick(t, OverlayRemoveTicks)
	assert.Equal(t, PhaseIdle, f.tracker.State().Phase)
	assert.True(t, f.tracker.State().IsEligible, "flags are only cleared by the next fight start")

	f.startFight(t)
	assert.False(t, f.tracker.State().IsEligible)
}

func TestTracker_ChatIgnoresOtherCategories(t *testing.T) {
	f := newFixture(t, AttributionStrict)

	f.tracker.OnChat(context.Background(), domain.ChatEvent{Category: "PUBLICCHAT", Text: "You were the MVP for this fight"})
	f.tracker.OnChat(context.Background(), domain.ChatEvent{Category: domain.ChatCategoryGameMessage, Text: "You were the mvp"})

	assert.False(t, f.tracker.State().IsMVP)
	assert.False(t, f.tracker.State().IsEligible)
}

func TestTracker_TargetVanishEndsFightOnce(t *testing.T) {
	f := newFixture(t, AttributionStrict)
	f.startFight(t)
	f.tick(t, 3)
	f.chat("You were the MVP for this fight")
	f.damage(t, nexHit(12, true, false))

	f.world.hideNex()
	f.tick(t, 1)

	state := f.tracker.State()
	assert.Equal(t, PhaseCooldown, state.Phase)
	assert.Equal(t, 0, state.CooldownTick)
	assert.Equal(t, 1, f.panel.countPhase(domain.PhaseCodeEnded))
	assert.Equal(t, domain.Snapshot{Players: 2, IsMVP: true, Phase: domain.PhaseCodeEnded}, f.panel.last())

	f.tick(t, 1)
	assert.Equal(t, 1, f.panel.countPhase(domain.PhaseCodeEnded), "no dump one tick after vanish")
	assert.Equal(t, 1, f.tracker.State().CooldownTick)

	f.tick(t, 1)
	assert.Equal(t, 2, f.tracker.State().CooldownTick)
	assert.Equal(t, 2, f.panel.countPhase(domain.PhaseCodeEnded), "dump exactly when cooldown reaches the reset delay")
	assert.Equal(t, domain.Snapshot{Players: 2, IsMVP: true, Phase: domain.PhaseCodeEnded}, f.overlay.last())
	assert.Equal(t, PhaseCooldown, f.tracker.State().Phase, "dump does not change phase")

	f.tick(t, 10)
	assert.Equal(t, 2, f.panel.countPhase(domain.PhaseCodeEnded))
}

func TestTracker_CooldownClearsAfterRemovalThreshold(t *testing.T) {
	f := newFixture(t, AttributionStrict)
	f.startFight(t)
	f.world.hideNex()
	f.tick(t, 1)

	f.tick(t, OverlayRemoveTicks-1)
	assert.Equal(t, PhaseCooldown, f.tracker.State().Phase)
	f.host.AssertNotCalled(t, "Detach", mock.Anything)

	f.tick(t, 1)

	state := f.tracker.State()
	assert.Equal(t, PhaseIdle, state.Phase)
	assert.Equal(t, cooldownStopped, state.CooldownTick)
	assert.False(t, state.OverlayVisible)
	assert.Empty(t, state.FightID)
	assert.Equal(t, domain.ClearedSnapshot(), f.panel.last())
	assert.Equal(t, domain.ClearedSnapshot(), f.overlay.last())
	f.host.AssertNumberOfCalls(t, "Detach", 1)

	emitted := len(f.panel.snaps)
	f.tick(t, 20)
	assert.Len(t, f.panel.snaps, emitted, "idle ticks emit nothing")
}

func TestTracker_RestartDuringCooldown(t *testing.T) {
	f := newFixture(t, AttributionStrict)
	f.startFight(t)
	firstID := f.tracker.State().FightID
	f.chat("You were the MVP for this fight")

	f.world.hideNex()
	f.tick(t, 5)
	require.Equal(t, PhaseCooldown, f.tracker.State().Phase)

	f.world.showNex()
	f.damage(t, nexHitTargetingMe(9, true))

	state := f.tracker.State()
	assert.Equal(t, PhaseActive, state.Phase)
	assert.Equal(t, cooldownStopped, state.CooldownTick)
	assert.NotEqual(t, firstID, state.FightID)
	assert.False(t, state.IsMVP)
	assert.Equal(t, 9, state.Own)
	f.host.AssertNumberOfCalls(t, "Attach", 1)
}

func TestTracker_OverlayHonorsShowOverlaySetting(t *testing.T) {
	f := newFixture(t, AttributionStrict)
	f.config.showOverlay = false

	f.startFight(t)
	assert.True(t, f.tracker.State().OverlayVisible)
	f.host.AssertNotCalled(t, "Attach", mock.Anything)

	f.config.showOverlay = true
	f.tracker.OnConfigChange(context.Background(), domain.ConfigChangeEvent{Group: ConfigGroup, Key: ConfigKeyShowOverlay, NewValue: "true"})
	f.host.AssertNumberOfCalls(t, "Attach", 1)
	f.host.AssertCalled(t, "Attach", f.overlay)

	f.config.showOverlay = false
	f.tracker.OnConfigChange(context.Background(), domain.ConfigChangeEvent{Group: ConfigGroup, Key: ConfigKeyShowOverlay, NewValue: "false"})
	f.host.AssertNumberOfCalls(t, "Detach", 1)
	assert.True(t, f.tracker.State().OverlayVisible, "desired visibility survives a config veto")
}

func TestTracker_ConfigChangeWhileHiddenDetaches(t *testing.T) {
	f := newFixture(t, AttributionStrict)

	f.tracker.OnConfigChange(context.Background(), domain.ConfigChangeEvent{Group: ConfigGroup, Key: ConfigKeyShowOverlay, NewValue: "true"})

	f.host.AssertNotCalled(t, "Attach", mock.Anything)
	f.host.AssertNumberOfCalls(t, "Detach", 1)
}

func TestTracker_ConfigChangeOtherGroupIgnored(t *testing.T) {
	f := newFixture(t, AttributionStrict)
	f.startFight(t)

	f.tracker.OnConfigChange(context.Background(), domain.ConfigChangeEvent{Group: "some-other-plugin", Key: ConfigKeyShowOverlay})
	f.tracker.OnConfigChange(context.Background(), domain.ConfigChangeEvent{Group: ConfigGroup, Key: "unrelated"})

	f.host.AssertNumberOfCalls(t, "Attach", 1)
	f.host.AssertNotCalled(t, "Detach", mock.Anything)
}

func TestTracker_AttributionModeChange(t *testing.T) {
	f := newFixture(t, AttributionStrict)

	f.tracker.OnConfigChange(context.Background(), domain.ConfigChangeEvent{Group: ConfigGroup, Key: ConfigKeyAttributionMode, NewValue: "LOOSE"})
	assert.Equal(t, AttributionLoose, f.tracker.State().Mode)

	f.tracker.OnConfigChange(context.Background(), domain.ConfigChangeEvent{Group: ConfigGroup, Key: ConfigKeyAttributionMode, NewValue: "sometimes"})
	assert.Equal(t, AttributionLoose, f.tracker.State().Mode, "invalid values leave the mode unchanged")
}

func TestTracker_FightStartGating(t *testing.T) {
	unrelatedPlayerHit := domain.DamageEvent{
		ActorID:             otherID,
		ActorKind:           domain.EntityKindPlayer,
		InteractingWithID:   bystanderID,
		InteractingWithKind: domain.EntityKindNPC,
		Amount:              4,
	}
	nexHitsSomeoneElse := nexHit(4, false, false)
	flaggedButAttackingOther := nexHit(4, false, false)
	flaggedButAttackingOther.TargetIsLocalPlayer = true

	tests := []struct {
		name  string
		mode  AttributionMode
		ev    domain.DamageEvent
		local int
		want  Phase
	}{
		{"player attacking nex", AttributionStrict, playerHitAttackingNex(otherID, 4), localID, PhaseActive},
		{"nex attacking local player", AttributionStrict, nexHitTargetingMe(4, false), localID, PhaseActive},
		{"nex flagged as targeting local player", AttributionStrict, domain.DamageEvent{ActorID: nexID, ActorKind: domain.EntityKindNPC, TargetIsLocalPlayer: true}, localID, PhaseActive},
		{"nex attacking another player", AttributionStrict, nexHitsSomeoneElse, localID, PhaseIdle},
		{"reported interaction overrides local player flag", AttributionStrict, flaggedButAttackingOther, localID, PhaseIdle},
		{"local player flag ignored without local player", AttributionStrict, domain.DamageEvent{ActorID: nexID, ActorKind: domain.EntityKindNPC, TargetIsLocalPlayer: true}, 0, PhaseIdle},
		{"local player absent", AttributionStrict, nexHitTargetingMe(4, false), 0, PhaseIdle},
		{"player in unrelated combat strict", AttributionStrict, unrelatedPlayerHit, localID, PhaseIdle},
		{"player in unrelated combat loose", AttributionLoose, unrelatedPlayerHit, localID, PhaseActive},
		{"bystander npc hit", AttributionLoose, domain.DamageEvent{ActorID: bystanderID, ActorKind: domain.EntityKindNPC}, localID, PhaseIdle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, tt.mode)
			f.world.local = tt.local
			f.world.showNex()

			f.damage(t, tt.ev)

			assert.Equal(t, tt.want, f.tracker.State().Phase)
		})
	}
}

func TestTracker_PublishesLifecycle(t *testing.T) {
	f := newFixture(t, AttributionStrict)
	f.startFight(t)
	fightID := f.tracker.State().FightID

	f.damage(t, nexHit(30, true, false))
	f.damage(t, nexHit(70, false, false))
	f.tick(t, 1)
	f.damage(t, nexHit(10, true, false))
	f.world.players = append(f.world.players, domain.Player{ID: 99})
	f.tick(t, 1)

	f.world.hideNex()
	f.tick(t, 1)
	f.chat("You were the MVP for this fight")
	f.chat("You were the MVP for this fight")
	f.tick(t, OverlayRemoveTicks)

	assert.Equal(t, []event.Type{
		event.FightStarted,
		event.FightEnded,
		event.SignalMVP,
		event.FightResults,
		event.FightCleared,
	}, f.eventTypes())

	for _, evt := range f.events {
		assert.Equal(t, fightID, evt.GetMetadataValue(event.MetadataKeyFightID), "event %s", evt.Type)
	}

	results, err := event.DecodePayload[domain.FightSummary](f.events[3].Payload)
	require.NoError(t, err)
	assert.Equal(t, 40, results.OwnDamage)
	assert.Equal(t, 110, results.TotalDamage)
	assert.Equal(t, 2, results.Ticks)
	assert.Equal(t, 3, results.PeakPlayers)
	assert.True(t, results.IsMVP)
	assert.False(t, results.IsEligible)
	assert.False(t, results.EndedAt.IsZero())
	assert.Equal(t, "me", results.PlayerName)
}

func TestTracker_LateSignalsUseLastFight(t *testing.T) {
	f := newFixture(t, AttributionStrict)
	f.startFight(t)
	fightID := f.tracker.State().FightID

	f.world.hideNex()
	f.tick(t, OverlayRemoveTicks+1)
	require.Equal(t, PhaseIdle, f.tracker.State().Phase)
	require.Empty(t, f.tracker.State().FightID)

	f.chat("Zezima received a drop: Torva platebody")

	last := f.events[len(f.events)-1]
	require.Equal(t, event.SignalDrop, last.Type)
	signal, err := event.DecodePayload[event.SignalPayloadV1](last.Payload)
	require.NoError(t, err)
	assert.Equal(t, fightID, signal.FightID)
	assert.Equal(t, fightID, last.GetMetadataValue(event.MetadataKeyFightID))
	assert.True(t, f.tracker.State().IsEligible)
}

func TestTracker_SignalBeforeAnyFightHasNoFight(t *testing.T) {
	f := newFixture(t, AttributionStrict)

	f.chat("You were the MVP for this fight")

	require.Len(t, f.events, 1)
	signal, err := event.DecodePayload[event.SignalPayloadV1](f.events[0].Payload)
	require.NoError(t, err)
	assert.Empty(t, signal.FightID)
}

func TestTracker_PlayerNameUnknownWithoutLocalPlayer(t *testing.T) {
	f := newFixture(t, AttributionLoose)
	f.world.local = 0
	f.world.showNex()

	f.damage(t, playerHitAttackingNex(otherID, 3))
	require.Equal(t, PhaseActive, f.tracker.State().Phase)

	started, err := event.DecodePayload[domain.FightSummary](f.events[0].Payload)
	require.NoError(t, err)
	assert.Empty(t, started.PlayerName)
}

func TestTracker_FinalWindowCountsTowardSummary(t *testing.T) {
	f := newFixture(t, AttributionStrict)
	f.startFight(t)
	f.damage(t, nexHit(15, true, false))

	f.world.hideNex()
	f.tick(t, 1)

	ended, err := event.DecodePayload[domain.FightSummary](f.events[1].Payload)
	require.NoError(t, err)
	assert.Equal(t, 15, ended.OwnDamage)
	assert.Equal(t, 15, ended.TotalDamage)
	assert.Zero(t, f.panel.last().Own, "the ended snapshot still shows zeroed counters")
}

func TestTracker_PublishFailureDoesNotBreakTracking(t *testing.T) {
	f := newFixture(t, AttributionStrict)
	f.tracker.bus = failingBus{}

	f.startFight(t)
	f.damage(t, nexHit(8, true, false))
	f.tick(t, 1)

	assert.Equal(t, 8, f.panel.last().Own)
}

func TestTracker_WorksWithoutBus(t *testing.T) {
	f := newFixture(t, AttributionStrict)
	f.tracker.bus = nil

	f.startFight(t)
	f.world.hideNex()
	f.tick(t, OverlayRemoveTicks+1)

	assert.Equal(t, PhaseIdle, f.tracker.State().Phase)
}

func TestTracker_Shutdown(t *testing.T) {
	f := newFixture(t, AttributionLoose)
	f.startFight(t)
	f.damage(t, nexHit(8, true, false))

	f.tracker.Shutdown(context.Background())

	state := f.tracker.State()
	assert.Equal(t, PhaseIdle, state.Phase)
	assert.Equal(t, cooldownStopped, state.CooldownTick)
	assert.False(t, state.OverlayVisible)
	assert.Zero(t, state.Own)
	assert.Equal(t, AttributionLoose, state.Mode)
	f.host.AssertNumberOfCalls(t, "Detach", 1)
}

func TestPhase_String(t *testing.T) {
	assert.Equal(t, "idle", PhaseIdle.String())
	assert.Equal(t, "active", PhaseActive.String())
	assert.Equal(t, "cooldown", PhaseCooldown.String())
	assert.Equal(t, "unknown", Phase(42).String())
}
