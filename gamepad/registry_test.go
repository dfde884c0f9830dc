package gamepad

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDevice(index int, buttons, axes int) *Device {
	return &Device{
		Index:       index,
		ID:          "pad",
		ButtonCount: buttons,
		AxisCount:   axes,
		Connected:   true,
	}
}

func TestRegistryConnectResetsState(t *testing.T) {
	r := NewRegistry()
	d := newTestDevice(0, 4, 2)
	d.buttons = []ButtonState{{Pressed: true, Value: 1}}
	d.axes = []float64{0.9}

	r.Connect(d)

	require.Len(t, d.buttons, 4)
	require.Len(t, d.axes, 2)
	for i, b := range d.buttons {
		assert.Equal(t, ButtonState{}, b, "button %d", i)
	}
	for i, a := range d.axes {
		assert.Zero(t, a, "axis %d", i)
	}
}

func TestRegistryFirstConnectBecomesActive(t *testing.T) {
	r := NewRegistry()
	assert.False(t, r.AnyConnected())

	r.Connect(newTestDevice(2, 1, 1))
	r.Connect(newTestDevice(0, 1, 1))

	idx, ok := r.ActiveIndex()
	require.True(t, ok)
	assert.Equal(t, 2, idx)
	assert.True(t, r.AnyConnected())
	assert.Equal(t, 2, r.Count())
}

func TestRegistryDisconnectReelection(t *testing.T) {
	r := NewRegistry()
	// Connect 1 first so it starts out active.
	r.Connect(newTestDevice(1, 1, 1))
	r.Connect(newTestDevice(0, 1, 1))
	r.Connect(newTestDevice(2, 1, 1))

	idx, _ := r.ActiveIndex()
	require.Equal(t, 1, idx)

	removed := r.Disconnect(1)
	require.NotNil(t, removed)
	idx, ok := r.ActiveIndex()
	require.True(t, ok)
	assert.Equal(t, 0, idx, "first remaining device in insertion order takes over")
	assert.NotNil(t, r.Get(idx), "active device must exist in the registry")

	r.Disconnect(0)
	r.Disconnect(2)
	_, ok = r.ActiveIndex()
	assert.False(t, ok)
	assert.False(t, r.AnyConnected())
	assert.Equal(t, 0, r.Count())
}

func TestRegistryDisconnectUnknownIndex(t *testing.T) {
	r := NewRegistry()
	r.Connect(newTestDevice(0, 1, 1))
	assert.Nil(t, r.Disconnect(7))
	assert.Equal(t, 1, r.Count())
}

func TestRegistryAllInsertionOrder(t *testing.T) {
	r := NewRegistry()
	r.Connect(newTestDevice(3, 1, 1))
	r.Connect(newTestDevice(1, 1, 1))
	r.Connect(newTestDevice(2, 1, 1))

	var order []int
	for _, d := range r.All() {
		order = append(order, d.Index)
	}
	assert.Equal(t, []int{3, 1, 2}, order)
}

func TestRegistryGetAbsent(t *testing.T) {
	r := NewRegistry()
	assert.Nil(t, r.Get(0))
}
