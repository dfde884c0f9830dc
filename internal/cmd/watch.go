// Package cmd implements the CLI subcommands.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/hshopyseo-creator/Gamepad-Tester/gamepad"
	"github.com/hshopyseo-creator/Gamepad-Tester/hostinput"
	"github.com/hshopyseo-creator/Gamepad-Tester/internal/log"
)

type Watch struct {
	Interval time.Duration `help:"Sampling interval between frames" default:"16ms" env:"GPTESTER_WATCH_INTERVAL"`
	NoStatus bool          `help:"Disable the live status line even when stdout is a terminal" env:"GPTESTER_WATCH_NO_STATUS"`
}

// Run is called by Kong when the watch command is executed.
func (w *Watch) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	src, err := hostinput.Open(logger)
	if err != nil {
		return fmt.Errorf("open input source: %w", err)
	}
	defer func() { _ = src.Close() }()

	sched := hostinput.NewTickScheduler(w.Interval)
	defer sched.Stop()

	mgr := gamepad.New(src, sched, logger, rawLogger)

	mgr.SetConnectHandler(func(s gamepad.Snapshot) {
		logger.Info("gamepad connected",
			"device", s.Index, "id", s.ID,
			"buttons", len(s.Buttons), "axes", len(s.Axes),
			"rumble", s.Rumble.Supported)
	})
	mgr.SetDisconnectHandler(func(index int, id string) {
		logger.Info("gamepad disconnected", "device", index, "id", id)
	})
	mgr.SetButtonPressHandler(func(e gamepad.ButtonEvent) {
		logger.Info("button pressed", "device", e.Device, "button", e.Name, "value", e.Value)
	})
	mgr.SetButtonReleaseHandler(func(e gamepad.ButtonEvent) {
		logger.Info("button released", "device", e.Device, "button", e.Name)
	})
	mgr.SetAxisChangeHandler(func(e gamepad.AxisEvent) {
		logger.Debug("axis moved", "device", e.Device, "axis", e.Name, "value", e.Value, "raw", e.Raw)
	})

	if !w.NoStatus && term.IsTerminal(int(os.Stdout.Fd())) {
		status := newStatusLine(os.Stdout)
		mgr.SetFullUpdateHandler(status.Render)
		defer status.Clear()
	}

	logger.Info("watching for gamepad input, press Ctrl-C to exit")
	mgr.Start(ctx)
	<-ctx.Done()
	mgr.Stop()
	return nil
}
