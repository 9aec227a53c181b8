package commands

import (
	"bytes"
	"log/slog"
	"testing"

	"monetrix-dashboard/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestNewRootCommand_RegistersSubcommands(t *testing.T) {
	root := NewRootCommand()

	var names []string
	for _, cmd := range root.Commands() {
		names = append(names, cmd.Name())
	}

	assert.ElementsMatch(t, []string{"serve", "aggregate", "import", "migrate"}, names)
	assert.True(t, root.SilenceUsage)
}

func TestParseLogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"DEBUG":   slog.LevelDebug,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"info":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}

	for input, expected := range tests {
		assert.Equal(t, expected, parseLogLevel(input), "level %q", input)
	}
}

func TestSetupLogger(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	t.Run("production logs JSON", func(t *testing.T) {
		var buf bytes.Buffer
		logger := setupLogger(&buf, config.ServerConfig{Environment: "production", LogLevel: "info"})

		logger.Info("snapshot stored", "client_id", "c1")
		logger.Debug("hidden")

		assert.Contains(t, buf.String(), `"msg":"snapshot stored"`)
		assert.Contains(t, buf.String(), `"client_id":"c1"`)
		assert.NotContains(t, buf.String(), "hidden")
	})

	t.Run("development logs text", func(t *testing.T) {
		var buf bytes.Buffer
		logger := setupLogger(&buf, config.ServerConfig{Environment: "development", LogLevel: "debug"})

		logger.Debug("visible", "client_id", "c1")

		assert.Contains(t, buf.String(), "msg=visible")
		assert.Contains(t, buf.String(), "client_id=c1")
	})
}
