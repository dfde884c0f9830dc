package cmd

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/hshopyseo-creator/Gamepad-Tester/gamepad"
)

// statusLine rewrites a single terminal line with the active device's
// current state on every full update.
type statusLine struct {
	f *os.File
}

func newStatusLine(f *os.File) *statusLine {
	return &statusLine{f: f}
}

func (s *statusLine) Render(snap gamepad.Snapshot) {
	width, _, err := term.GetSize(int(s.f.Fd()))
	if err != nil || width <= 0 {
		width = 80
	}
	line := formatSnapshot(snap)
	if len(line) > width-1 {
		line = line[:width-1]
	}
	fmt.Fprintf(s.f, "\r\x1b[K%s", line)
}

// Clear erases the status line so shutdown output starts on a clean row.
func (s *statusLine) Clear() {
	fmt.Fprint(s.f, "\r\x1b[K")
}

func formatSnapshot(snap gamepad.Snapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%d] %s", snap.Index, snap.ID)

	var pressed []string
	for _, btn := range snap.Buttons {
		if btn.Pressed {
			pressed = append(pressed, btn.Name)
		}
	}
	if len(pressed) > 0 {
		b.WriteString("  pressed: ")
		b.WriteString(strings.Join(pressed, ","))
	}

	b.WriteString("  axes:")
	for _, ax := range snap.Axes {
		fmt.Fprintf(&b, " %+.2f", ax.Value)
	}
	return b.String()
}
