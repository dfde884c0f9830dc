//go:build linux

package hostinput

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"
	"unsafe"

	"golang.org/x/sys/unix"
)

const inputDir = "/dev/input"

// Joystick interface ioctls (linux/joystick.h).
const (
	jsiocgAxes    = 0x80016a11 // JSIOCGAXES
	jsiocgButtons = 0x80016a12 // JSIOCGBUTTONS
	jsiocgName    = 0x80006a13 + (128 << 16) // JSIOCGNAME(128)
)

const (
	jsEventButton = 0x01
	jsEventAxis   = 0x02
	jsEventInit   = 0x80
)

// jsEvent mirrors struct js_event from the kernel joystick interface.
type jsEvent struct {
	Time   uint32
	Value  int16
	Type   uint8
	Number uint8
}

type linuxDevice struct {
	index int
	file  *os.File
	frame Frame // guarded by linuxSource.mu
}

// linuxSource reads controllers through the kernel joystick interface
// (/dev/input/jsN). Each device gets a reader goroutine folding the event
// stream into the slot's current frame; Slots returns copies of those
// frames. Hotplug is tracked with an inotify watch on /dev/input.
type linuxSource struct {
	mu      sync.Mutex
	logger  *slog.Logger
	devices map[int]*linuxDevice
	notifs  chan Notification
	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// Open scans for already present joystick nodes and starts watching for
// hotplug events.
func Open(logger *slog.Logger) (Source, error) {
	if logger == nil {
		logger = slog.Default()
	}
	ctx, cancel := context.WithCancel(context.Background())
	s := &linuxSource{
		logger:  logger,
		devices: make(map[int]*linuxDevice),
		notifs:  make(chan Notification, 16),
		ctx:     ctx,
		cancel:  cancel,
	}

	entries, err := os.ReadDir(inputDir)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("scan %s: %w", inputDir, err)
	}
	for _, e := range entries {
		if idx, ok := joystickIndex(e.Name()); ok {
			s.attach(idx)
		}
	}

	if err := s.watch(); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

// joystickIndex extracts N from a "jsN" device node name.
func joystickIndex(name string) (int, bool) {
	rest, ok := strings.CutPrefix(name, "js")
	if !ok || rest == "" {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

func (s *linuxSource) attach(index int) {
	s.mu.Lock()
	_, exists := s.devices[index]
	s.mu.Unlock()
	if exists {
		return
	}

	path := filepath.Join(inputDir, fmt.Sprintf("js%d", index))
	f, err := openRetry(path)
	if err != nil {
		s.logger.Warn("failed to open joystick node", "path", path, "error", err)
		return
	}

	var name string
	var buttons, axes uint8
	if err := ioctlName(f, &name); err != nil {
		s.logger.Warn("joystick name ioctl failed", "path", path, "error", err)
		name = path
	}
	if err := ioctlByte(f, jsiocgButtons, &buttons); err != nil {
		s.logger.Warn("joystick button count ioctl failed", "path", path, "error", err)
	}
	if err := ioctlByte(f, jsiocgAxes, &axes); err != nil {
		s.logger.Warn("joystick axis count ioctl failed", "path", path, "error", err)
	}

	dev := &linuxDevice{
		index: index,
		file:  f,
		frame: Frame{
			Index:     index,
			ID:        name,
			Connected: true,
			Buttons:   make([]ButtonSample, buttons),
			Axes:      make([]float64, axes),
			// The joystick interface exposes no force feedback; effects
			// need the evdev node instead.
			Rumble: Capability{},
		},
	}

	s.mu.Lock()
	s.devices[index] = dev
	s.mu.Unlock()

	s.logger.Info("joystick attached", "index", index, "id", name, "buttons", buttons, "axes", axes)
	s.post(Notification{
		Kind:    NotifyConnect,
		Index:   index,
		ID:      name,
		Buttons: int(buttons),
		Axes:    int(axes),
	})

	s.wg.Add(1)
	go s.readEvents(dev)
}

func (s *linuxSource) detach(index int) {
	s.mu.Lock()
	dev, ok := s.devices[index]
	if ok {
		delete(s.devices, index)
	}
	s.mu.Unlock()
	if !ok {
		return
	}
	_ = dev.file.Close()
	s.logger.Info("joystick detached", "index", index, "id", dev.frame.ID)
	s.post(Notification{
		Kind:      NotifyDisconnect,
		Index:     index,
		ID:        dev.frame.ID,
		Timestamp: dev.frame.Timestamp,
	})
}

// readEvents folds the kernel event stream into the slot's frame until the
// device goes away or the source is closed.
func (s *linuxSource) readEvents(dev *linuxDevice) {
	defer s.wg.Done()
	for {
		var e jsEvent
		if err := binary.Read(dev.file, binary.LittleEndian, &e); err != nil {
			select {
			case <-s.ctx.Done():
			default:
				s.detach(dev.index)
			}
			return
		}

		s.mu.Lock()
		switch e.Type &^ jsEventInit {
		case jsEventButton:
			if n := int(e.Number); n < len(dev.frame.Buttons) {
				pressed := e.Value != 0
				value := 0.0
				if pressed {
					value = 1.0
				}
				dev.frame.Buttons[n] = ButtonSample{Pressed: pressed, Value: value}
			}
		case jsEventAxis:
			if n := int(e.Number); n < len(dev.frame.Axes) {
				dev.frame.Axes[n] = normalizeAxis(e.Value)
			}
		}
		dev.frame.Timestamp = float64(e.Time)
		s.mu.Unlock()
	}
}

// normalizeAxis converts a raw int16 axis reading to -1.0..1.0.
func normalizeAxis(raw int16) float64 {
	v := float64(raw) / math.MaxInt16
	if v < -1.0 {
		v = -1.0
	}
	return v
}

func (s *linuxSource) Slots() []*Frame {
	s.mu.Lock()
	defer s.mu.Unlock()
	maxIdx := -1
	for idx := range s.devices {
		if idx > maxIdx {
			maxIdx = idx
		}
	}
	out := make([]*Frame, maxIdx+1)
	for idx, dev := range s.devices {
		out[idx] = dev.frame.Clone()
	}
	return out
}

func (s *linuxSource) Notifications() <-chan Notification {
	return s.notifs
}

func (s *linuxSource) Rumble(ctx context.Context, index int, strong, weak float64, duration time.Duration) error {
	return errors.New("force feedback is not exposed by the joystick interface")
}

func (s *linuxSource) Close() error {
	s.cancel()
	s.mu.Lock()
	for _, dev := range s.devices {
		_ = dev.file.Close()
	}
	s.devices = make(map[int]*linuxDevice)
	s.mu.Unlock()
	s.wg.Wait()
	return nil
}

// post delivers a notification without ever blocking a reader goroutine;
// if the consumer has fallen far behind the oldest entry is dropped.
func (s *linuxSource) post(n Notification) {
	for {
		select {
		case s.notifs <- n:
			return
		default:
			select {
			case <-s.notifs:
			default:
			}
		}
	}
}

// openRetry retries permission errors for a short while; device nodes are
// often created before udev has applied their access rules.
func openRetry(path string) (*os.File, error) {
	var err error
	for i := 0; i < 5; i++ {
		var f *os.File
		if f, err = os.OpenFile(path, os.O_RDONLY, 0); err == nil {
			return f, nil
		}
		if !errors.Is(err, os.ErrPermission) {
			return nil, err
		}
		time.Sleep(200 * time.Millisecond)
	}
	return nil, err
}

func ioctl(f *os.File, req uintptr, arg unsafe.Pointer) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, f.Fd(), req, uintptr(arg))
	if errno != 0 {
		return errno
	}
	return nil
}

func ioctlByte(f *os.File, req uintptr, dest *uint8) error {
	return ioctl(f, req, unsafe.Pointer(dest))
}

func ioctlName(f *os.File, dest *string) error {
	buf := make([]byte, 128)
	if err := ioctl(f, jsiocgName, unsafe.Pointer(&buf[0])); err != nil {
		return err
	}
	if i := strings.IndexByte(string(buf), 0); i >= 0 {
		buf = buf[:i]
	}
	*dest = string(buf)
	return nil
}
