package gamepad_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hshopyseo-creator/Gamepad-Tester/gamepad"
)

func TestButtonName(t *testing.T) {
	tests := []struct {
		index    int
		expected string
	}{
		{0, "A"},
		{1, "B"},
		{3, "Y"},
		{9, "Start"},
		{14, "DPad Left"},
		{15, "Btn 15"},
		{20, "Btn 20"},
		{-1, "Btn -1"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, gamepad.ButtonName(tt.index), "index %d", tt.index)
	}
}

func TestAxisName(t *testing.T) {
	tests := []struct {
		index    int
		expected string
	}{
		{0, "Left Stick X"},
		{3, "Right Stick Y"},
		{5, "RT"},
		{6, "Axis 6"},
		{9, "Axis 9"},
		{-2, "Axis -2"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, gamepad.AxisName(tt.index), "index %d", tt.index)
	}
}
