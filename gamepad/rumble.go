package gamepad

import (
	"context"
	"time"
)

// RumblePattern names a fixed vibration intensity preset.
type RumblePattern string

const (
	RumbleLight  RumblePattern = "light"
	RumbleMedium RumblePattern = "medium"
	RumbleStrong RumblePattern = "strong"
)

type rumbleEffect struct {
	strong   float64
	weak     float64
	duration time.Duration
}

var rumbleEffects = map[RumblePattern]rumbleEffect{
	RumbleLight:  {strong: 0.25, weak: 0.5, duration: 150 * time.Millisecond},
	RumbleMedium: {strong: 0.6, weak: 0.8, duration: 300 * time.Millisecond},
	RumbleStrong: {strong: 1.0, weak: 1.0, duration: 600 * time.Millisecond},
}

// Rumble plays a vibration pattern on the active device and returns a
// one-shot channel carrying the deferred outcome. The result is false when
// no device is active, the active device has no force feedback actuator,
// or the host call fails; none of these raise an error to the caller and
// the sampling loop never waits on the result.
func (m *Manager) Rumble(ctx context.Context, pattern RumblePattern) <-chan bool {
	res := make(chan bool, 1)

	eff, ok := rumbleEffects[pattern]
	if !ok {
		eff = rumbleEffects[RumbleMedium]
	}

	// The sampling loop mutates device state under m.mu, so everything the
	// effect needs is copied out before the lock is released.
	m.mu.Lock()
	dev := m.reg.Active()
	var (
		index     int
		id        string
		supported bool
	)
	if dev != nil {
		index = dev.Index
		id = dev.ID
		supported = dev.Rumble.Supported
	}
	m.mu.Unlock()

	if dev == nil {
		m.logger.Debug("rumble skipped, no active device")
		res <- false
		return res
	}
	if !supported {
		m.logger.Debug("rumble skipped, device has no actuator", "device", index, "id", id)
		res <- false
		return res
	}

	go func() {
		if err := m.src.Rumble(ctx, index, eff.strong, eff.weak, eff.duration); err != nil {
			m.logger.Warn("rumble failed", "device", index, "error", err)
			res <- false
			return
		}
		res <- true
	}()
	return res
}
