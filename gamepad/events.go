package gamepad

// ButtonEvent is emitted on an edge transition of a button's pressed
// state. Value carries the analog pressure at press time; it is zero for
// release events.
type ButtonEvent struct {
	Device    int
	Button    int
	Name      string
	Value     float64
	Timestamp float64
}

// AxisEvent is emitted when an axis moves beyond the jitter threshold.
// Value has the dead zone applied, Raw is the unfiltered reading.
type AxisEvent struct {
	Device    int
	Axis      int
	Name      string
	Value     float64
	Raw       float64
	Timestamp float64
}

// handlers holds the six callback slots. Each slot keeps at most one
// handler; registering again overwrites the previous one, and events for
// empty slots are dropped.
type handlers struct {
	connect       func(Snapshot)
	disconnect    func(index int, id string)
	fullUpdate    func(Snapshot)
	buttonPress   func(ButtonEvent)
	buttonRelease func(ButtonEvent)
	axisChange    func(AxisEvent)
}

// SetConnectHandler registers the callback invoked when a device connects,
// whether via an explicit notification or discovery mid-poll.
func (m *Manager) SetConnectHandler(fn func(Snapshot)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlers.connect = fn
}

// SetDisconnectHandler registers the callback invoked when a device is
// removed.
func (m *Manager) SetDisconnectHandler(fn func(index int, id string)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlers.disconnect = fn
}

// SetFullUpdateHandler registers the callback invoked once per sampling
// pass with the active device's complete state.
func (m *Manager) SetFullUpdateHandler(fn func(Snapshot)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlers.fullUpdate = fn
}

// SetButtonPressHandler registers the callback for released-to-pressed
// transitions.
func (m *Manager) SetButtonPressHandler(fn func(ButtonEvent)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlers.buttonPress = fn
}

// SetButtonReleaseHandler registers the callback for pressed-to-released
// transitions.
func (m *Manager) SetButtonReleaseHandler(fn func(ButtonEvent)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlers.buttonRelease = fn
}

// SetAxisChangeHandler registers the callback for axis movement beyond the
// dead zone and jitter threshold.
func (m *Manager) SetAxisChangeHandler(fn func(AxisEvent)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlers.axisChange = fn
}
