package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/foyerlabs/menage/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"WARN", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"", zerolog.InfoLevel},
		{"bogus", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, parseLevel(tt.input), "parseLevel(%q)", tt.input)
	}
}

func TestSetupWithOutput_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := SetupWithOutput(config.LogConfig{Level: "info", Format: "json"}, &buf)

	logger.Info().Str("module", "recettes").Msg("hello")

	out := buf.String()
	assert.Contains(t, out, `"module":"recettes"`)
	assert.Contains(t, out, `"message":"hello"`)
}

func TestSetupWithOutput_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := SetupWithOutput(config.LogConfig{Level: "warn", Format: "json"}, &buf)

	logger.Info().Msg("dropped")
	logger.Warn().Msg("kept")

	out := buf.String()
	assert.NotContains(t, out, "dropped")
	assert.Contains(t, out, "kept")
}

func TestSetupWithOutput_ConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := SetupWithOutput(config.LogConfig{Level: "info", Format: "console", NoColor: true}, &buf)

	logger.Info().Msg("console line")

	assert.Contains(t, buf.String(), "console line")
}
