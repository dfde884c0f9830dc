// Package config defines the CLI structure for the gamepad tester.
package config

import (
	"github.com/hshopyseo-creator/Gamepad-Tester/internal/cmd"
)

type Log struct {
	Level   string `help:"Log level: trace, debug, info, warn, error" default:"info" env:"GPTESTER_LOG_LEVEL"`
	File    string `help:"Log file path (default: none; logs only to console)" env:"GPTESTER_LOG_FILE"`
	RawFile string `help:"Raw frame log file path (default: none)" env:"GPTESTER_LOG_RAW_FILE"`
}

// CLI is the root command structure for Kong CLI parsing.
type CLI struct {
	// Config is consumed before parsing (see main's findUserConfig) to
	// route the file to the loader matching its extension.
	Config string `help:"Path to a configuration file (JSON, YAML or TOML)" env:"GPTESTER_CONFIG"`

	Log `embed:"" prefix:"log."`

	Watch     cmd.Watch         `cmd:"" help:"Watch gamepad input and print events"`
	Devices   cmd.Devices       `cmd:"" help:"List connected gamepads"`
	Rumble    cmd.Rumble        `cmd:"" help:"Play a vibration pattern on the active gamepad"`
	ConfigCmd cmd.ConfigCommand `cmd:"" name:"config" help:"Manage configuration files"`
}
