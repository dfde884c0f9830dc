// Package testing provides scripted test doubles for the host input
// boundary.
package testing

import (
	"context"
	"sync"
	"time"

	"github.com/hshopyseo-creator/Gamepad-Tester/hostinput"
)

// RumbleCall records one force feedback invocation on a ScriptedSource.
type RumbleCall struct {
	Index    int
	Strong   float64
	Weak     float64
	Duration time.Duration
}

// ScriptedSource replays a fixed sequence of poll results. Each call to
// Slots returns the next step of the script; once the script is exhausted
// the final step repeats.
type ScriptedSource struct {
	mu          sync.Mutex
	script      [][]*hostinput.Frame
	pos         int
	polls       int
	notifs      chan hostinput.Notification
	rumbleErr   error
	rumbleCalls []RumbleCall
}

func NewScriptedSource(script ...[]*hostinput.Frame) *ScriptedSource {
	return &ScriptedSource{
		script: script,
		notifs: make(chan hostinput.Notification, 16),
	}
}

func (s *ScriptedSource) Slots() []*hostinput.Frame {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.polls++
	if len(s.script) == 0 {
		return nil
	}
	step := s.script[s.pos]
	if s.pos < len(s.script)-1 {
		s.pos++
	}
	out := make([]*hostinput.Frame, len(step))
	for i, f := range step {
		out[i] = f.Clone()
	}
	return out
}

func (s *ScriptedSource) Notifications() <-chan hostinput.Notification {
	return s.notifs
}

// Notify queues an explicit connect/disconnect notification.
func (s *ScriptedSource) Notify(n hostinput.Notification) {
	s.notifs <- n
}

func (s *ScriptedSource) Rumble(ctx context.Context, index int, strong, weak float64, duration time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rumbleCalls = append(s.rumbleCalls, RumbleCall{Index: index, Strong: strong, Weak: weak, Duration: duration})
	return s.rumbleErr
}

func (s *ScriptedSource) Close() error { return nil }

// SetRumbleError makes subsequent Rumble calls fail with err.
func (s *ScriptedSource) SetRumbleError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rumbleErr = err
}

// RumbleCalls returns a copy of all recorded force feedback invocations.
func (s *ScriptedSource) RumbleCalls() []RumbleCall {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]RumbleCall, len(s.rumbleCalls))
	copy(out, s.rumbleCalls)
	return out
}

// Polls returns how many times Slots has been called.
func (s *ScriptedSource) Polls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.polls
}

// ManualScheduler releases one sampling pass per Tick call.
type ManualScheduler struct {
	ticks chan struct{}
}

func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{ticks: make(chan struct{})}
}

// Tick unblocks the next Wait. It blocks until the loop is actually
// waiting, which makes pass boundaries deterministic in tests.
func (s *ManualScheduler) Tick() {
	s.ticks <- struct{}{}
}

func (s *ManualScheduler) Wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-s.ticks:
		return nil
	}
}
