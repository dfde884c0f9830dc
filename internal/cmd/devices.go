package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hshopyseo-creator/Gamepad-Tester/gamepad"
	"github.com/hshopyseo-creator/Gamepad-Tester/hostinput"
	"github.com/hshopyseo-creator/Gamepad-Tester/internal/log"
)

type Devices struct {
	Settle   time.Duration `help:"How long to sample before listing" default:"300ms" env:"GPTESTER_DEVICES_SETTLE"`
	Interval time.Duration `help:"Sampling interval between frames" default:"16ms" env:"GPTESTER_DEVICES_INTERVAL"`
}

// Run samples for a short settle period so hotplug notifications and
// initial device state have arrived, then lists everything the registry
// tracks.
func (d *Devices) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	src, err := hostinput.Open(logger)
	if err != nil {
		return fmt.Errorf("open input source: %w", err)
	}
	defer func() { _ = src.Close() }()

	sched := hostinput.NewTickScheduler(d.Interval)
	defer sched.Stop()

	mgr := gamepad.New(src, sched, logger, rawLogger)
	mgr.Start(context.Background())
	time.Sleep(d.Settle)
	mgr.Stop()

	snaps := mgr.Snapshots()
	if len(snaps) == 0 {
		fmt.Println("no gamepads connected")
		return nil
	}

	active, _ := mgr.ActiveIndex()
	for _, s := range snaps {
		marker := " "
		if s.Index == active {
			marker = "*"
		}
		rumble := "none"
		if s.Rumble.Supported {
			rumble = s.Rumble.Kind
		}
		fmt.Printf("%s %d  %-40s buttons=%d axes=%d rumble=%s\n",
			marker, s.Index, s.ID, len(s.Buttons), len(s.Axes), rumble)
	}
	return nil
}
