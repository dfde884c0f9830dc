package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hshopyseo-creator/Gamepad-Tester/gamepad"
	"github.com/hshopyseo-creator/Gamepad-Tester/hostinput"
	"github.com/hshopyseo-creator/Gamepad-Tester/internal/log"
)

type Rumble struct {
	Pattern  string        `arg:"" optional:"" default:"medium" enum:"light,medium,strong" help:"Intensity pattern"`
	Timeout  time.Duration `help:"How long to wait for a device and for the effect to finish" default:"3s" env:"GPTESTER_RUMBLE_TIMEOUT"`
	Interval time.Duration `help:"Sampling interval between frames" default:"16ms" env:"GPTESTER_RUMBLE_INTERVAL"`
}

// Run plays a vibration pattern on the active device and reports the
// deferred result.
func (r *Rumble) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	src, err := hostinput.Open(logger)
	if err != nil {
		return fmt.Errorf("open input source: %w", err)
	}
	defer func() { _ = src.Close() }()

	sched := hostinput.NewTickScheduler(r.Interval)
	defer sched.Stop()

	mgr := gamepad.New(src, sched, logger, rawLogger)
	mgr.Start(ctx)
	defer mgr.Stop()

	if err := waitForDevice(ctx, mgr, r.Timeout); err != nil {
		return err
	}

	select {
	case ok := <-mgr.Rumble(ctx, gamepad.RumblePattern(r.Pattern)):
		if !ok {
			return errors.New("rumble was not played; the active gamepad has no usable actuator")
		}
		logger.Info("rumble played", "pattern", r.Pattern)
		return nil
	case <-time.After(r.Timeout):
		return errors.New("timed out waiting for the rumble result")
	case <-ctx.Done():
		return ctx.Err()
	}
}

func waitForDevice(ctx context.Context, mgr *gamepad.Manager, timeout time.Duration) error {
	deadline := time.After(timeout)
	tick := time.NewTicker(25 * time.Millisecond)
	defer tick.Stop()
	for {
		if mgr.AnyConnected() {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-deadline:
			return errors.New("no gamepad connected")
		case <-tick.C:
		}
	}
}
