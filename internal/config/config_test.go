package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Defaults without a file", func(t *testing.T) {
		// Given: a path that does not exist
		path := filepath.Join(t.TempDir(), "missing.yml")

		// When: loading the config
		conf, err := Load(path)

		// Then: the defaults are used
		require.NoError(t, err)
		assert.Equal(t, &Config{
			LogLevel:  "info",
			LogFormat: "json",
			LogFile:   "noughts.log",
			UI: UI{
				Title: "Noughts and Crosses",
			},
		}, conf)
	})

	t.Run("Values from file", func(t *testing.T) {
		// Given: a config file overriding some values
		path := writeConfig(t, "log-level: debug\nlog-format: text\nui:\n  title: Tic Tac Toe\n  disable-mouse: true\n")

		// When: loading the config
		conf, err := Load(path)

		// Then: file values win and the rest keep their defaults
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "text", conf.LogFormat)
		assert.Equal(t, "noughts.log", conf.LogFile)
		assert.Equal(t, "Tic Tac Toe", conf.UI.Title)
		assert.True(t, conf.UI.DisableMouse)
		assert.False(t, conf.UI.Inline)
	})

	t.Run("Environment overrides file", func(t *testing.T) {
		// Given: a config file and an environment override
		path := writeConfig(t, "log-level: debug\n")
		t.Setenv("NOUGHTS_LOG_LEVEL", "error")

		// When: loading the config
		conf, err := Load(path)

		// Then: the environment value is used
		require.NoError(t, err)
		assert.Equal(t, "error", conf.LogLevel)
	})

	t.Run("Malformed file", func(t *testing.T) {
		// Given: a file that is not valid YAML
		path := writeConfig(t, "log-level: [debug\n")

		// When: loading the config
		_, err := Load(path)

		// Then: an error is returned
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unable to load config file")
	})
}

func TestMustLoad(t *testing.T) {
	path := writeConfig(t, "ui: [\n")

	assert.Panics(t, func() {
		MustLoad(path)
	})
}
