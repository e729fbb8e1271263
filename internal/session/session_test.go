package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/NexTracker_Go/internal/display"
	"github.com/osse101/NexTracker_Go/internal/domain"
	"github.com/osse101/NexTracker_Go/internal/testing/leaktest"
	"github.com/osse101/NexTracker_Go/internal/tracker"
	"github.com/osse101/NexTracker_Go/internal/world"
)

const (
	nexID   = tracker.TargetMinID
	localID = 42
	waitFor = 2 * time.Second
)

type staticConfig bool

func (c staticConfig) ShowOverlay() bool { return bool(c) }

type harness struct {
	session *Session
	panel   *display.Latest
	host    *display.Host
}

func newHarness(cfg Config) *harness {
	panel := display.NewLatest()
	overlay := display.NewLatest()
	host := display.NewHost(nil)
	w := world.NewState()
	tr := tracker.New(tracker.Deps{
		World:   w,
		Panel:   panel,
		Overlay: overlay,
		Host:    host,
		Config:  staticConfig(true),
	})
	return &harness{
		session: New(tr, w, cfg),
		panel:   panel,
		host:    host,
	}
}

func nexWorld() WorldMsg {
	return WorldMsg{Update: domain.WorldUpdate{
		Entities:      []domain.Entity{{ID: nexID, Kind: domain.EntityKindNPC}},
		Players:       []domain.Player{{ID: localID, Name: "me"}},
		LocalPlayerID: localID,
	}}
}

func localHit(amount int) DamageMsg {
	return DamageMsg{Event: domain.DamageEvent{
		ActorID:             nexID,
		ActorKind:           domain.EntityKindNPC,
		InteractingWithID:   localID,
		InteractingWithKind: domain.EntityKindPlayer,
		Amount:              amount,
		Mine:                true,
		TargetIsLocalPlayer: true,
	}}
}

func TestSession_DrainsInboxBeforeTick(t *testing.T) {
	h := newHarness(Config{TickInterval: time.Hour})
	ctx := context.Background()

	require.NoError(t, h.session.Submit(ctx, nexWorld()))
	require.NoError(t, h.session.Submit(ctx, localHit(30)))
	require.NoError(t, h.session.Submit(ctx, localHit(12)))

	h.session.drain(ctx)
	h.session.tick(ctx)

	snap, _, ok := h.panel.Snapshot()
	require.True(t, ok)
	assert.Equal(t, 42, snap.Own)
	assert.Equal(t, 42, snap.Total)
	assert.Equal(t, 1, snap.Players)
	assert.Equal(t, domain.PhaseCodeActive, snap.Phase)
	assert.Equal(t, tracker.PhaseActive, h.session.State().Phase)
	assert.Equal(t, uint64(1), h.session.Ticks())
}

func TestSession_ExternalTicks(t *testing.T) {
	checker := leaktest.NewGoroutineChecker(t)
	h := newHarness(Config{ExternalTicks: true})
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- h.session.Run(ctx) }()

	require.NoError(t, h.session.Submit(ctx, nexWorld()))
	require.NoError(t, h.session.Submit(ctx, localHit(7)))
	require.NoError(t, h.session.Submit(ctx, TickMsg{}))

	require.Eventually(t, func() bool { return h.session.Ticks() == 1 }, waitFor, 5*time.Millisecond)
	snap, _, _ := h.panel.Snapshot()
	assert.Equal(t, 7, snap.Own)
	assert.True(t, h.host.Attached())

	cancel()
	require.NoError(t, <-done)
	checker.Check(0)
}

func TestSession_InternalTickerIgnoresExternalTicks(t *testing.T) {
	h := newHarness(Config{TickInterval: time.Hour})
	ctx := context.Background()

	require.NoError(t, h.session.Submit(ctx, TickMsg{}))
	h.session.drain(ctx)

	assert.Equal(t, uint64(0), h.session.Ticks())
}

func TestSession_InternalTicker(t *testing.T) {
	h := newHarness(Config{TickInterval: 10 * time.Millisecond})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() { _ = h.session.Run(ctx) }()

	require.NoError(t, h.session.Submit(ctx, nexWorld()))
	require.NoError(t, h.session.Submit(ctx, localHit(5)))

	require.Eventually(t, func() bool {
		return h.session.State().Phase == tracker.PhaseActive && h.session.Ticks() >= 2
	}, waitFor, 5*time.Millisecond)
}

func TestSession_ShutdownDetachesOverlay(t *testing.T) {
	h := newHarness(Config{ExternalTicks: true})
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- h.session.Run(ctx) }()

	require.NoError(t, h.session.Submit(ctx, nexWorld()))
	require.NoError(t, h.session.Submit(ctx, localHit(1)))
	require.Eventually(t, h.host.Attached, waitFor, 5*time.Millisecond)

	cancel()
	require.NoError(t, <-done)

	assert.False(t, h.host.Attached())
	assert.Equal(t, tracker.PhaseIdle, h.session.State().Phase)
}

func TestSession_SubmitAfterStop(t *testing.T) {
	h := newHarness(Config{ExternalTicks: true})
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- h.session.Run(ctx) }()
	cancel()
	<-done
	<-h.session.Done()

	err := h.session.Submit(context.Background(), TickMsg{})

	assert.ErrorIs(t, err, domain.ErrSessionStopped)
}

func TestSession_SubmitHonoursContextWhenFull(t *testing.T) {
	h := newHarness(Config{ExternalTicks: true})
	for i := 0; i < InboxSize; i++ {
		require.NoError(t, h.session.Submit(context.Background(), TickMsg{}))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := h.session.Submit(ctx, TickMsg{})

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestMessageKinds(t *testing.T) {
	assert.Equal(t, KindWorld, WorldMsg{}.Kind())
	assert.Equal(t, KindDamage, DamageMsg{}.Kind())
	assert.Equal(t, KindChat, ChatMsg{}.Kind())
	assert.Equal(t, KindConfig, ConfigMsg{}.Kind())
	assert.Equal(t, KindTick, TickMsg{}.Kind())
}

func TestSession_CheckHealth(t *testing.T) {
	h := newHarness(Config{ExternalTicks: true})
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- h.session.Run(ctx) }()
	assert.NoError(t, h.session.CheckHealth(ctx))

	cancel()
	<-done

	assert.ErrorIs(t, h.session.CheckHealth(context.Background()), domain.ErrSessionStopped)
}
