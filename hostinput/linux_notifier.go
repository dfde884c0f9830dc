//go:build linux

package hostinput

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

// watch sets up an inotify watch on /dev/input so joystick nodes appearing
// or vanishing after startup are attached and detached automatically.
func (s *linuxSource) watch() error {
	fd, err := unix.InotifyInit()
	if err != nil {
		return fmt.Errorf("inotify init: %w", err)
	}
	if _, err := unix.InotifyAddWatch(fd, inputDir, unix.IN_CREATE|unix.IN_DELETE|unix.IN_ATTRIB); err != nil {
		_ = unix.Close(fd)
		return fmt.Errorf("inotify watch %s: %w", inputDir, err)
	}

	// Closing the fd unblocks the pending read when the source shuts down.
	go func() {
		<-s.ctx.Done()
		_ = unix.Close(fd)
	}()

	s.wg.Add(1)
	go s.watchLoop(fd)
	return nil
}

func (s *linuxSource) watchLoop(fd int) {
	defer s.wg.Done()
	buf := make([]byte, 4096)
	for {
		n, err := unix.Read(fd, buf)
		if err != nil {
			select {
			case <-s.ctx.Done():
			default:
				s.logger.Warn("inotify read failed", "error", err)
			}
			return
		}

		var offset uint32
		for offset+unix.SizeofInotifyEvent <= uint32(n) {
			event := (*unix.InotifyEvent)(unsafe.Pointer(&buf[offset]))
			nameBytes := buf[offset+unix.SizeofInotifyEvent : offset+unix.SizeofInotifyEvent+event.Len]
			s.handleWatchEvent(event.Mask, trimNul(nameBytes))
			offset += unix.SizeofInotifyEvent + event.Len
		}
	}
}

func (s *linuxSource) handleWatchEvent(mask uint32, name string) {
	idx, ok := joystickIndex(name)
	if !ok {
		return
	}
	switch {
	// IN_ATTRIB matters too: the node is usually readable only after udev
	// has adjusted its permissions.
	case mask&(unix.IN_CREATE|unix.IN_ATTRIB) != 0:
		s.attach(idx)
	case mask&unix.IN_DELETE != 0:
		s.detach(idx)
	}
}

func trimNul(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}
