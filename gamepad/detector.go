package gamepad

import (
	"math"

	"github.com/hshopyseo-creator/Gamepad-Tester/hostinput"
)

const (
	// DeadZone is the magnitude at or below which an axis reading is
	// treated as neutral. Triggers share the stick dead zone.
	DeadZone = 0.15
	// axisEventThreshold suppresses sensor jitter: an axis-change event
	// fires only when the dead-zone-adjusted value moves by more than
	// this since the last stored reading.
	axisEventThreshold = 0.02
)

// ApplyDeadZone maps sub-threshold axis readings to exactly 0.0 and leaves
// everything else untouched.
func ApplyDeadZone(v float64) float64 {
	if math.Abs(v) <= DeadZone {
		return 0
	}
	return v
}

// detect diffs a fresh frame against the device's stored state, overwrites
// the stored state, and returns the discrete events the transition
// produced. Called with the manager lock held.
func detect(dev *Device, f *hostinput.Frame) (presses, releases []ButtonEvent, moves []AxisEvent) {
	nb := len(dev.buttons)
	if len(f.Buttons) < nb {
		nb = len(f.Buttons)
	}
	for i := 0; i < nb; i++ {
		cur := f.Buttons[i]
		prev := dev.buttons[i]
		if cur.Pressed && !prev.Pressed {
			presses = append(presses, ButtonEvent{
				Device:    dev.Index,
				Button:    i,
				Name:      ButtonName(i),
				Value:     cur.Value,
				Timestamp: f.Timestamp,
			})
		} else if !cur.Pressed && prev.Pressed {
			releases = append(releases, ButtonEvent{
				Device:    dev.Index,
				Button:    i,
				Name:      ButtonName(i),
				Timestamp: f.Timestamp,
			})
		}
		dev.buttons[i] = ButtonState{Pressed: cur.Pressed, Value: cur.Value}
	}

	na := len(dev.axes)
	if len(f.Axes) < na {
		na = len(f.Axes)
	}
	for i := 0; i < na; i++ {
		raw := f.Axes[i]
		adjusted := ApplyDeadZone(raw)
		if math.Abs(adjusted-ApplyDeadZone(dev.axes[i])) > axisEventThreshold {
			moves = append(moves, AxisEvent{
				Device:    dev.Index,
				Axis:      i,
				Name:      AxisName(i),
				Value:     adjusted,
				Raw:       raw,
				Timestamp: f.Timestamp,
			})
		}
		// Store the raw value; the dead zone is re-applied on the next
		// comparison rather than persisted.
		dev.axes[i] = raw
	}

	dev.timestamp = f.Timestamp
	dev.Connected = f.Connected
	dev.Rumble = f.Rumble
	return presses, releases, moves
}
