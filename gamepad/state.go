package gamepad

import (
	"github.com/hshopyseo-creator/Gamepad-Tester/hostinput"
)

// ButtonState is the last sampled reading for one button.
type ButtonState struct {
	Pressed bool
	Value   float64
}

// Device is one tracked controller. Its button and axis collections are
// owned by the registry and mutated only during a sampling pass; axis
// entries store the raw reading, dead zone filtering is applied fresh at
// comparison time.
type Device struct {
	Index       int
	ID          string
	ButtonCount int
	AxisCount   int
	Connected   bool
	Rumble      hostinput.Capability

	buttons   []ButtonState
	axes      []float64
	timestamp float64
}

func deviceFromFrame(f *hostinput.Frame) *Device {
	return &Device{
		Index:       f.Index,
		ID:          f.ID,
		ButtonCount: len(f.Buttons),
		AxisCount:   len(f.Axes),
		Connected:   f.Connected,
		Rumble:      f.Rumble,
	}
}

func deviceFromNotification(n hostinput.Notification) *Device {
	return &Device{
		Index:       n.Index,
		ID:          n.ID,
		ButtonCount: n.Buttons,
		AxisCount:   n.Axes,
		Connected:   true,
		Rumble:      n.Rumble,
	}
}

// ButtonSnapshot is one button entry in a full-state snapshot.
type ButtonSnapshot struct {
	Index   int
	Name    string
	Pressed bool
	Value   float64
}

// AxisSnapshot is one axis entry in a full-state snapshot. Value has the
// dead zone applied, Raw is the unfiltered reading.
type AxisSnapshot struct {
	Index int
	Name  string
	Value float64
	Raw   float64
}

// Snapshot is a complete copy of one device's state, safe to hold after
// the sampling pass that produced it.
type Snapshot struct {
	Index     int
	ID        string
	Timestamp float64
	Connected bool
	Buttons   []ButtonSnapshot
	Axes      []AxisSnapshot
	Rumble    hostinput.Capability
}

func snapshotOf(d *Device) Snapshot {
	s := Snapshot{
		Index:     d.Index,
		ID:        d.ID,
		Timestamp: d.timestamp,
		Connected: d.Connected,
		Buttons:   make([]ButtonSnapshot, len(d.buttons)),
		Axes:      make([]AxisSnapshot, len(d.axes)),
		Rumble:    d.Rumble,
	}
	for i, b := range d.buttons {
		s.Buttons[i] = ButtonSnapshot{Index: i, Name: ButtonName(i), Pressed: b.Pressed, Value: b.Value}
	}
	for i, raw := range d.axes {
		s.Axes[i] = AxisSnapshot{Index: i, Name: AxisName(i), Value: ApplyDeadZone(raw), Raw: raw}
	}
	return s
}
