package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("positional records path", func(t *testing.T) {
		out := &bytes.Buffer{}
		cfg, exit, err := Parse([]string{"records.hcl"}, out)
		require.NoError(t, err)
		assert.False(t, exit)
		require.NotNil(t, cfg)
		assert.Equal(t, "records.hcl", cfg.RecordsPath)
	})

	t.Run("flags populate the config", func(t *testing.T) {
		out := &bytes.Buffer{}
		args := []string{
			"-records", "data",
			"-root", "r0",
			"-format", "json",
			"-max-depth", "5",
			"-strict-cycles",
			"-lenient",
			"-log-level", "debug",
			"-log-format", "json",
		}
		cfg, exit, err := Parse(args, out)
		require.NoError(t, err)
		assert.False(t, exit)
		assert.Equal(t, "data", cfg.RecordsPath)
		assert.Equal(t, "r0", cfg.RootID)
		assert.Equal(t, "json", cfg.Format)
		assert.Equal(t, 5, cfg.MaxDepth)
		assert.True(t, cfg.StrictCycles)
		assert.True(t, cfg.Lenient)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "json", cfg.LogFormat)
	})

	t.Run("shorthand flag", func(t *testing.T) {
		cfg, _, err := Parse([]string{"-r", "short"}, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Equal(t, "short", cfg.RecordsPath)
	})

	t.Run("no path prints usage and exits cleanly", func(t *testing.T) {
		out := &bytes.Buffer{}
		cfg, exit, err := Parse(nil, out)
		require.NoError(t, err)
		assert.True(t, exit)
		assert.Nil(t, cfg)
		assert.Contains(t, out.String(), "Usage:")
	})

	t.Run("help flag exits cleanly", func(t *testing.T) {
		out := &bytes.Buffer{}
		_, exit, err := Parse([]string{"-h"}, out)
		require.NoError(t, err)
		assert.True(t, exit)
	})

	t.Run("invalid values", func(t *testing.T) {
		cases := map[string][]string{
			"format":     {"-records", "x", "-format", "yaml"},
			"log-format": {"-records", "x", "-log-format", "xml"},
			"log-level":  {"-records", "x", "-log-level", "loud"},
			"max-depth":  {"-records", "x", "-max-depth", "-2"},
		}
		for name, args := range cases {
			t.Run(name, func(t *testing.T) {
				_, _, err := Parse(args, &bytes.Buffer{})
				var exitErr *ExitError
				require.ErrorAs(t, err, &exitErr)
				assert.Equal(t, 2, exitErr.Code)
			})
		}
	})

	t.Run("unknown flag", func(t *testing.T) {
		_, _, err := Parse([]string{"--nope"}, &bytes.Buffer{})
		var exitErr *ExitError
		require.ErrorAs(t, err, &exitErr)
		assert.Equal(t, 2, exitErr.Code)
	})
}
