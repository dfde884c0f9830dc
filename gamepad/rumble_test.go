package gamepad

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hshopyseo-creator/Gamepad-Tester/hostinput"
	mocks "github.com/hshopyseo-creator/Gamepad-Tester/internal/testing"
)

func rumblePad(index int) *hostinput.Frame {
	return &hostinput.Frame{
		Index: index, ID: "rumble-pad", Connected: true,
		Buttons: make([]hostinput.ButtonSample, 1),
		Axes:    make([]float64, 1),
		Rumble:  hostinput.Capability{Supported: true, Kind: hostinput.KindDualRumble},
	}
}

func TestRumbleNoActiveDevice(t *testing.T) {
	src := mocks.NewScriptedSource([]*hostinput.Frame{})
	m := newTestManager(src, nil)

	ok := <-m.Rumble(context.Background(), RumbleMedium)
	assert.False(t, ok)
	assert.Empty(t, src.RumbleCalls())
}

func TestRumbleUnsupportedDevice(t *testing.T) {
	f := &hostinput.Frame{
		Index: 0, ID: "plain-pad", Connected: true,
		Buttons: make([]hostinput.ButtonSample, 1),
	}
	src := mocks.NewScriptedSource([]*hostinput.Frame{f})
	m := newTestManager(src, nil)
	m.pass()

	ok := <-m.Rumble(context.Background(), RumbleStrong)
	assert.False(t, ok, "capability-less device reports a negative result")
	assert.Empty(t, src.RumbleCalls(), "the host is never asked")
}

func TestRumblePlatformRejection(t *testing.T) {
	src := mocks.NewScriptedSource([]*hostinput.Frame{rumblePad(0)})
	src.SetRumbleError(errors.New("actuator busy"))
	m := newTestManager(src, nil)
	m.pass()

	ok := <-m.Rumble(context.Background(), RumbleMedium)
	assert.False(t, ok, "host rejection surfaces as a negative result, not an error")
	assert.Len(t, src.RumbleCalls(), 1)
}

func TestRumbleConcurrentWithSamplingLoop(t *testing.T) {
	// Triggers effects while the loop keeps rewriting the active device's
	// state; run with the race detector enabled.
	src := mocks.NewScriptedSource([]*hostinput.Frame{rumblePad(0)})
	sched := hostinput.NewTickScheduler(time.Millisecond)
	defer sched.Stop()
	m := newTestManager(src, sched)

	m.Start(context.Background())
	require.Eventually(t, func() bool { return m.AnyConnected() },
		time.Second, time.Millisecond)

	for i := 0; i < 50; i++ {
		ok := <-m.Rumble(context.Background(), RumbleLight)
		assert.True(t, ok)
	}
	m.Stop()
	assert.Len(t, src.RumbleCalls(), 50)
}

func TestRumblePatternTable(t *testing.T) {
	tests := []struct {
		pattern  RumblePattern
		strong   float64
		weak     float64
		duration time.Duration
	}{
		{RumbleLight, 0.25, 0.5, 150 * time.Millisecond},
		{RumbleMedium, 0.6, 0.8, 300 * time.Millisecond},
		{RumbleStrong, 1.0, 1.0, 600 * time.Millisecond},
		// Unknown patterns fall back to medium.
		{RumblePattern(""), 0.6, 0.8, 300 * time.Millisecond},
		{RumblePattern("earthquake"), 0.6, 0.8, 300 * time.Millisecond},
	}
	for _, tt := range tests {
		t.Run(string(tt.pattern), func(t *testing.T) {
			src := mocks.NewScriptedSource([]*hostinput.Frame{rumblePad(2)})
			m := newTestManager(src, nil)
			m.pass()

			ok := <-m.Rumble(context.Background(), tt.pattern)
			require.True(t, ok)

			calls := src.RumbleCalls()
			require.Len(t, calls, 1)
			assert.Equal(t, 2, calls[0].Index)
			assert.Equal(t, tt.strong, calls[0].Strong)
			assert.Equal(t, tt.weak, calls[0].Weak)
			assert.Equal(t, tt.duration, calls[0].Duration)
		})
	}
}
