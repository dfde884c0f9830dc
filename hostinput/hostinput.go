// Package hostinput defines the boundary between the gamepad manager and
// whatever the host platform uses to expose physical controllers. A Source
// produces per-frame device snapshots and hotplug notifications; a Scheduler
// provides the frame-cadence suspension point the sampling loop waits on.
package hostinput

import (
	"context"
	"time"
)

// KindDualRumble is the actuator kind reported by controllers with the
// common strong/weak dual motor layout.
const KindDualRumble = "dual-rumble"

// Capability describes a device's force feedback support.
type Capability struct {
	Supported bool
	Kind      string
}

// ButtonSample is the raw per-button reading within a frame: a digital
// pressed flag plus the analog pressure in 0.0..1.0.
type ButtonSample struct {
	Pressed bool
	Value   float64
}

// Frame is one raw device snapshot read during a sampling pass.
// Axes are raw values in -1.0..1.0 with no filtering applied.
type Frame struct {
	Index     int
	ID        string
	Connected bool
	Timestamp float64
	Buttons   []ButtonSample
	Axes      []float64
	Rumble    Capability
}

// Clone returns a deep copy so callers can hold a frame across passes.
func (f *Frame) Clone() *Frame {
	if f == nil {
		return nil
	}
	out := *f
	out.Buttons = make([]ButtonSample, len(f.Buttons))
	copy(out.Buttons, f.Buttons)
	out.Axes = make([]float64, len(f.Axes))
	copy(out.Axes, f.Axes)
	return &out
}

// NotificationKind discriminates hotplug notifications.
type NotificationKind uint8

const (
	NotifyConnect NotificationKind = iota
	NotifyDisconnect
)

// Notification is an explicit connect or disconnect signal from the host.
// Devices may also appear in a frame before their connect notification is
// delivered; consumers are expected to treat both paths identically.
type Notification struct {
	Kind      NotificationKind
	Index     int
	ID        string
	Buttons   int
	Axes      int
	Timestamp float64
	Rumble    Capability
}

// Source exposes the host's controller slots.
//
// Slots is a synchronous bounded read of every currently visible device
// slot; nil entries are empty slots. Rumble plays a force feedback effect
// and may block, so callers should not invoke it from the sampling loop
// goroutine directly.
type Source interface {
	Slots() []*Frame
	Notifications() <-chan Notification
	Rumble(ctx context.Context, index int, strong, weak float64, duration time.Duration) error
	Close() error
}

// Scheduler paces the sampling loop. Wait blocks until the next frame
// boundary, returning a non-nil error once the context is done.
type Scheduler interface {
	Wait(ctx context.Context) error
}

// DefaultFrameInterval approximates a 60Hz display refresh.
const DefaultFrameInterval = 16 * time.Millisecond

// TickScheduler is the default wall-clock Scheduler.
type TickScheduler struct {
	ticker *time.Ticker
}

// NewTickScheduler returns a Scheduler firing every interval. A
// non-positive interval falls back to DefaultFrameInterval.
func NewTickScheduler(interval time.Duration) *TickScheduler {
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	return &TickScheduler{ticker: time.NewTicker(interval)}
}

func (s *TickScheduler) Wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-s.ticker.C:
		return nil
	}
}

// Stop releases the underlying ticker. Wait must not be called afterwards.
func (s *TickScheduler) Stop() {
	s.ticker.Stop()
}
