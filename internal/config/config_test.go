package config

import (
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The grammar carries both a --config flag and a config subcommand; kong
// rejects the whole struct if their resolved names collide.
func TestCLIGrammar(t *testing.T) {
	var cli CLI
	parser, err := kong.New(&cli, kong.Name("gamepad-tester"), kong.Exit(func(int) {}))
	require.NoError(t, err)

	ctx, err := parser.Parse([]string{"--config", "settings.json", "config", "init", "watch"})
	require.NoError(t, err)
	assert.Equal(t, "settings.json", cli.Config)
	assert.True(t, strings.HasPrefix(ctx.Command(), "config init"))
}

func TestCLIParsesLogFlags(t *testing.T) {
	var cli CLI
	parser, err := kong.New(&cli, kong.Name("gamepad-tester"), kong.Exit(func(int) {}))
	require.NoError(t, err)

	_, err = parser.Parse([]string{"--log.level", "debug", "devices"})
	require.NoError(t, err)
	assert.Equal(t, "debug", cli.Log.Level)
}
