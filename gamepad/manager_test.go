package gamepad

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hshopyseo-creator/Gamepad-Tester/hostinput"
	mocks "github.com/hshopyseo-creator/Gamepad-Tester/internal/testing"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestManager(src hostinput.Source, sched hostinput.Scheduler) *Manager {
	return New(src, sched, discardLogger(), nil)
}

func TestConnectNotificationInitializesZeroState(t *testing.T) {
	src := mocks.NewScriptedSource([]*hostinput.Frame{})
	m := newTestManager(src, nil)

	var connected []Snapshot
	m.SetConnectHandler(func(s Snapshot) { connected = append(connected, s) })

	src.Notify(hostinput.Notification{
		Kind: hostinput.NotifyConnect, Index: 0, ID: "pad-a",
		Buttons: 3, Axes: 2, Timestamp: 7,
	})
	m.pass()

	require.Len(t, connected, 1)
	snap := connected[0]
	assert.Equal(t, "pad-a", snap.ID)
	require.Len(t, snap.Buttons, 3)
	require.Len(t, snap.Axes, 2)
	for _, b := range snap.Buttons {
		assert.False(t, b.Pressed)
		assert.Zero(t, b.Value)
	}
	for _, a := range snap.Axes {
		assert.Zero(t, a.Raw)
		assert.Zero(t, a.Value)
	}
	assert.True(t, m.AnyConnected())
}

func TestSynthesizedConnectFromPoll(t *testing.T) {
	// The device shows up in a frame with a button already held, without
	// any prior connect notification.
	f := &hostinput.Frame{
		Index: 1, ID: "late-pad", Connected: true, Timestamp: 3,
		Buttons: []hostinput.ButtonSample{{Pressed: true, Value: 1}},
		Axes:    []float64{0},
	}
	src := mocks.NewScriptedSource([]*hostinput.Frame{nil, f})
	m := newTestManager(src, nil)

	var connected []Snapshot
	var presses []ButtonEvent
	m.SetConnectHandler(func(s Snapshot) { connected = append(connected, s) })
	m.SetButtonPressHandler(func(e ButtonEvent) { presses = append(presses, e) })

	m.pass()

	require.Len(t, connected, 1, "discovery counts as a connect")
	assert.Equal(t, "late-pad", connected[0].ID)
	assert.False(t, connected[0].Buttons[0].Pressed, "connect snapshot starts from the released default")

	require.Len(t, presses, 1, "held button fires a press in the same pass")
	assert.Equal(t, 1, presses[0].Device)

	m.pass()
	assert.Len(t, connected, 1, "already tracked on the next pass")
	assert.Equal(t, 1, m.Count())
}

func TestFullUpdateEveryPassForActiveDevice(t *testing.T) {
	f := &hostinput.Frame{
		Index: 0, ID: "pad", Connected: true, Timestamp: 1,
		Buttons: make([]hostinput.ButtonSample, 2),
		Axes:    make([]float64, 2),
	}
	other := &hostinput.Frame{
		Index: 1, ID: "other", Connected: true, Timestamp: 1,
		Buttons: make([]hostinput.ButtonSample, 2),
		Axes:    make([]float64, 2),
	}
	src := mocks.NewScriptedSource([]*hostinput.Frame{f, other})
	m := newTestManager(src, nil)

	var updates []Snapshot
	m.SetFullUpdateHandler(func(s Snapshot) { updates = append(updates, s) })

	m.pass()
	m.pass()
	m.pass()

	require.Len(t, updates, 3, "one full update per pass even with no changes")
	for _, u := range updates {
		assert.Equal(t, 0, u.Index, "only the active device broadcasts")
	}
}

func TestDisconnectReelectsActive(t *testing.T) {
	first := &hostinput.Frame{Index: 0, ID: "first", Connected: true, Buttons: make([]hostinput.ButtonSample, 1), Axes: make([]float64, 1)}
	second := &hostinput.Frame{Index: 1, ID: "second", Connected: true, Buttons: make([]hostinput.ButtonSample, 1), Axes: make([]float64, 1)}
	// Each disconnect also empties the device's slot; a slot that kept
	// reporting a connected frame would just be rediscovered.
	src := mocks.NewScriptedSource(
		[]*hostinput.Frame{first, second},
		[]*hostinput.Frame{nil, second},
		[]*hostinput.Frame{},
	)
	m := newTestManager(src, nil)

	var gone []string
	m.SetDisconnectHandler(func(index int, id string) { gone = append(gone, id) })

	m.pass()
	idx, ok := m.ActiveIndex()
	require.True(t, ok)
	require.Equal(t, 0, idx)

	src.Notify(hostinput.Notification{Kind: hostinput.NotifyDisconnect, Index: 0, ID: "first"})
	m.pass()

	assert.Equal(t, []string{"first"}, gone)
	idx, ok = m.ActiveIndex()
	require.True(t, ok)
	assert.Equal(t, 1, idx)
	assert.NotNil(t, m.Snapshot(idx), "active device must exist in the registry")

	src.Notify(hostinput.Notification{Kind: hostinput.NotifyDisconnect, Index: 1, ID: "second"})
	m.pass()
	_, ok = m.ActiveIndex()
	assert.False(t, ok)
	assert.False(t, m.AnyConnected())
}

func TestDisconnectUnknownDeviceIsSilent(t *testing.T) {
	src := mocks.NewScriptedSource([]*hostinput.Frame{})
	m := newTestManager(src, nil)

	called := false
	m.SetDisconnectHandler(func(int, string) { called = true })

	src.Notify(hostinput.Notification{Kind: hostinput.NotifyDisconnect, Index: 42, ID: "ghost"})
	m.pass()
	assert.False(t, called)
}

func TestSnapshotAbsentIndex(t *testing.T) {
	src := mocks.NewScriptedSource([]*hostinput.Frame{})
	m := newTestManager(src, nil)
	assert.Nil(t, m.Snapshot(99))
}

func TestHandlerOverwriteLastWins(t *testing.T) {
	f := &hostinput.Frame{
		Index: 0, ID: "pad", Connected: true,
		Buttons: []hostinput.ButtonSample{{Pressed: true, Value: 1}},
	}
	src := mocks.NewScriptedSource([]*hostinput.Frame{f})
	m := newTestManager(src, nil)

	firstCalled := false
	secondCalled := false
	m.SetButtonPressHandler(func(ButtonEvent) { firstCalled = true })
	m.SetButtonPressHandler(func(ButtonEvent) { secondCalled = true })

	m.pass()
	assert.False(t, firstCalled, "overwritten handler never fires")
	assert.True(t, secondCalled)
}

func TestNoHandlerDropsEventSilently(t *testing.T) {
	f := &hostinput.Frame{
		Index: 0, ID: "pad", Connected: true,
		Buttons: []hostinput.ButtonSample{{Pressed: true, Value: 1}},
		Axes:    []float64{0.9},
	}
	src := mocks.NewScriptedSource([]*hostinput.Frame{f})
	m := newTestManager(src, nil)

	assert.NotPanics(t, func() { m.pass() })
}

func TestStartIdempotentSingleStop(t *testing.T) {
	f := &hostinput.Frame{Index: 0, ID: "pad", Connected: true}
	src := mocks.NewScriptedSource([]*hostinput.Frame{f})
	sched := mocks.NewManualScheduler()
	m := newTestManager(src, sched)

	ctx := context.Background()
	m.Start(ctx)
	m.Start(ctx)
	m.Start(ctx)
	require.True(t, m.Running())

	sched.Tick()
	sched.Tick()
	assert.Eventually(t, func() bool { return src.Polls() == 2 },
		time.Second, time.Millisecond, "exactly one loop consumes ticks")

	m.Stop()
	assert.False(t, m.Running())
	assert.Equal(t, 2, src.Polls(), "no pass after Stop")

	// Stopping again is a no-op.
	m.Stop()

	// The manager can be restarted afterwards.
	m.Start(ctx)
	sched.Tick()
	assert.Eventually(t, func() bool { return src.Polls() == 3 },
		time.Second, time.Millisecond)
	m.Stop()
}
