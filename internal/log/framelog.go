package log

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/hshopyseo-creator/Gamepad-Tester/hostinput"
)

// RawLogger dumps raw device frames, one line per slot per sampling pass.
type RawLogger interface {
	Frame(slot int, f *hostinput.Frame)
}

type rawLogger struct {
	w  io.Writer
	mu sync.Mutex
}

// NewRaw creates a RawLogger writing to w. A nil writer yields a no-op
// logger.
func NewRaw(w io.Writer) RawLogger {
	return &rawLogger{w: w}
}

// Frame emits a single line with the wall clock, slot, device timestamp,
// button bits and raw axis values.
func (r *rawLogger) Frame(slot int, f *hostinput.Frame) {
	if r.w == nil || f == nil {
		return
	}

	var b strings.Builder
	b.WriteString(time.Now().Format("2006/01/02 15:04:05.000"))
	fmt.Fprintf(&b, " slot=%d id=%q ts=%.1f buttons=", slot, f.ID, f.Timestamp)
	for _, btn := range f.Buttons {
		if btn.Pressed {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	b.WriteString(" axes=")
	for i, v := range f.Axes {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "%.3f", v)
	}
	b.WriteByte('\n')

	r.mu.Lock()
	_, _ = io.WriteString(r.w, b.String())
	r.mu.Unlock()
}
