//go:build !linux

package hostinput

import (
	"errors"
	"log/slog"
)

// Open is not implemented on this platform.
func Open(logger *slog.Logger) (Source, error) {
	return nil, errors.New("no gamepad source available on this platform")
}
