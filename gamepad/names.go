package gamepad

import "strconv"

// Human-readable names for the standard gamepad layout. Indices outside
// the tables get a generated label instead.
var buttonNames = [...]string{
	"A", "B", "X", "Y",
	"LB", "RB", "LT", "RT",
	"Back", "Start", "LS", "RS",
	"DPad Up", "DPad Down", "DPad Left",
}

// Fixed standard axis layout: 0-1 left stick, 2-3 right stick, 4-5
// triggers. Alternate mapping schemes are not detected.
var axisNames = [...]string{
	"Left Stick X", "Left Stick Y",
	"Right Stick X", "Right Stick Y",
	"LT", "RT",
}

// ButtonName returns the standard-layout name for a button index, or
// "Btn N" for unknown indices.
func ButtonName(index int) string {
	if index >= 0 && index < len(buttonNames) {
		return buttonNames[index]
	}
	return "Btn " + strconv.Itoa(index)
}

// AxisName returns the standard-layout name for an axis index, or
// "Axis N" for unknown indices.
func AxisName(index int) string {
	if index >= 0 && index < len(axisNames) {
		return axisNames[index]
	}
	return "Axis " + strconv.Itoa(index)
}
