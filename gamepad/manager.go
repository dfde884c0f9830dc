// Package gamepad implements the input manager: it tracks connected
// controllers, samples them once per frame, detects button edges and axis
// movement past a dead zone, and notifies registered callbacks.
package gamepad

import (
	"context"
	"log/slog"
	"sync"

	"github.com/hshopyseo-creator/Gamepad-Tester/hostinput"
)

// FrameLogger receives every live frame read during a sampling pass, for
// raw traffic dumps.
type FrameLogger interface {
	Frame(slot int, f *hostinput.Frame)
}

// Manager runs the sampling loop over a host input source. The loop
// goroutine is the only writer of registry state; the mutex makes
// cross-goroutine queries and callback registration sound.
type Manager struct {
	mu       sync.Mutex
	src      hostinput.Source
	sched    hostinput.Scheduler
	logger   *slog.Logger
	frames   FrameLogger
	reg      *Registry
	handlers handlers

	running bool
	cancel  context.CancelFunc
	done    chan struct{}
}

// New creates a manager over the given source and scheduler. frames may be
// nil to disable raw frame dumps.
func New(src hostinput.Source, sched hostinput.Scheduler, logger *slog.Logger, frames FrameLogger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		src:    src,
		sched:  sched,
		logger: logger,
		frames: frames,
		reg:    NewRegistry(),
	}
}

// Start launches the sampling loop. Calling Start while the loop is
// already running is a no-op; one Stop halts it regardless of how many
// times Start was called.
func (m *Manager) Start(ctx context.Context) {
	m.mu.Lock()
	if m.running {
		m.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	m.running = true
	m.cancel = cancel
	m.done = done
	m.mu.Unlock()

	go m.run(ctx, done)
}

// Stop cancels the loop and waits for the in-flight pass to finish; no
// callback fires after Stop returns. Stopping an idle manager is a no-op.
func (m *Manager) Stop() {
	m.mu.Lock()
	if !m.running {
		m.mu.Unlock()
		return
	}
	m.running = false
	cancel := m.cancel
	done := m.done
	m.mu.Unlock()

	cancel()
	<-done
}

// Running reports whether the sampling loop is active.
func (m *Manager) Running() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.running
}

func (m *Manager) run(ctx context.Context, done chan struct{}) {
	defer close(done)
	for {
		if err := m.sched.Wait(ctx); err != nil {
			return
		}
		m.pass()
	}
}

// pass is one complete sampling iteration: drain hotplug notifications,
// read every slot, diff against stored state, and dispatch events.
func (m *Manager) pass() {
	m.drainNotifications()

	for _, f := range m.src.Slots() {
		if f == nil || !f.Connected {
			continue
		}
		if m.frames != nil {
			m.frames.Frame(f.Index, f)
		}

		m.mu.Lock()
		h := m.handlers
		dev := m.reg.Get(f.Index)
		var connected *Snapshot
		if dev == nil {
			// The device showed up in a poll before its connect
			// notification was delivered; treat it exactly like an
			// announced connect.
			dev = deviceFromFrame(f)
			dev.timestamp = f.Timestamp
			m.reg.Connect(dev)
			snap := snapshotOf(dev)
			connected = &snap
		}
		presses, releases, moves := detect(dev, f)
		var full *Snapshot
		if idx, ok := m.reg.ActiveIndex(); ok && idx == dev.Index {
			snap := snapshotOf(dev)
			full = &snap
		}
		m.mu.Unlock()

		// Dispatch outside the lock so handlers can call back into
		// queries like Snapshot.
		if connected != nil {
			m.logger.Debug("device discovered in poll", "device", connected.Index, "id", connected.ID)
			if h.connect != nil {
				h.connect(*connected)
			}
		}
		for _, e := range presses {
			if h.buttonPress != nil {
				h.buttonPress(e)
			}
		}
		for _, e := range releases {
			if h.buttonRelease != nil {
				h.buttonRelease(e)
			}
		}
		for _, e := range moves {
			if h.axisChange != nil {
				h.axisChange(e)
			}
		}
		if full != nil && h.fullUpdate != nil {
			h.fullUpdate(*full)
		}
	}
}

func (m *Manager) drainNotifications() {
	ch := m.src.Notifications()
	for {
		select {
		case n := <-ch:
			m.handleNotification(n)
		default:
			return
		}
	}
}

func (m *Manager) handleNotification(n hostinput.Notification) {
	switch n.Kind {
	case hostinput.NotifyConnect:
		m.mu.Lock()
		dev := deviceFromNotification(n)
		dev.timestamp = n.Timestamp
		m.reg.Connect(dev)
		snap := snapshotOf(dev)
		h := m.handlers.connect
		m.mu.Unlock()

		m.logger.Debug("device connected", "device", n.Index, "id", n.ID, "buttons", n.Buttons, "axes", n.Axes)
		if h != nil {
			h(snap)
		}
	case hostinput.NotifyDisconnect:
		m.mu.Lock()
		removed := m.reg.Disconnect(n.Index)
		h := m.handlers.disconnect
		m.mu.Unlock()

		if removed == nil {
			return
		}
		m.logger.Debug("device disconnected", "device", n.Index, "id", removed.ID)
		if h != nil {
			h(n.Index, removed.ID)
		}
	}
}

// Snapshot returns the full state of the device at index, or nil if the
// index is no longer tracked.
func (m *Manager) Snapshot(index int) *Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	dev := m.reg.Get(index)
	if dev == nil {
		return nil
	}
	snap := snapshotOf(dev)
	return &snap
}

// Snapshots returns the state of every tracked device in registry order.
func (m *Manager) Snapshots() []Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	devs := m.reg.All()
	out := make([]Snapshot, 0, len(devs))
	for _, d := range devs {
		out = append(out, snapshotOf(d))
	}
	return out
}

// Count returns the number of tracked devices.
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.reg.Count()
}

// ActiveIndex returns the active device index and whether one is set.
func (m *Manager) ActiveIndex() (int, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.reg.ActiveIndex()
}

// AnyConnected reports whether at least one device is tracked and active.
func (m *Manager) AnyConnected() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.reg.AnyConnected()
}
