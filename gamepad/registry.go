package gamepad

// Registry tracks connected devices in insertion order and elects a single
// active device. The active device, when set, always exists in the
// registry; on disconnect the first remaining device takes over.
type Registry struct {
	devices map[int]*Device
	order   []int
	active  int // device index, -1 when none
}

func NewRegistry() *Registry {
	return &Registry{
		devices: make(map[int]*Device),
		active:  -1,
	}
}

// Connect inserts a device keyed by its index and resets all of its button
// and axis state to the released/neutral defaults. If no device is active
// yet, this one becomes active.
func (r *Registry) Connect(d *Device) {
	if _, exists := r.devices[d.Index]; !exists {
		r.order = append(r.order, d.Index)
	}
	d.buttons = make([]ButtonState, d.ButtonCount)
	d.axes = make([]float64, d.AxisCount)
	r.devices[d.Index] = d
	if r.active < 0 {
		r.active = d.Index
	}
}

// Disconnect removes a device and returns it, or nil if the index was not
// tracked. If the removed device was active, the first remaining device in
// insertion order becomes active.
func (r *Registry) Disconnect(index int) *Device {
	d, ok := r.devices[index]
	if !ok {
		return nil
	}
	delete(r.devices, index)
	for i, idx := range r.order {
		if idx == index {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	if r.active == index {
		if len(r.order) > 0 {
			r.active = r.order[0]
		} else {
			r.active = -1
		}
	}
	return d
}

// Get returns the device at index, or nil if absent.
func (r *Registry) Get(index int) *Device {
	return r.devices[index]
}

// All returns the tracked devices in insertion order.
func (r *Registry) All() []*Device {
	out := make([]*Device, 0, len(r.order))
	for _, idx := range r.order {
		out = append(out, r.devices[idx])
	}
	return out
}

func (r *Registry) Count() int {
	return len(r.devices)
}

// Active returns the active device, or nil when none is connected.
func (r *Registry) Active() *Device {
	if r.active < 0 {
		return nil
	}
	return r.devices[r.active]
}

// ActiveIndex returns the active device index and whether one is set.
func (r *Registry) ActiveIndex() (int, bool) {
	return r.active, r.active >= 0
}

// AnyConnected reports whether an active device exists and the registry is
// non-empty.
func (r *Registry) AnyConnected() bool {
	return r.active >= 0 && len(r.devices) > 0
}
