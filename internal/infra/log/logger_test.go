package logs

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"autosphere/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		{input: "debug", want: slog.LevelDebug},
		{input: "INFO", want: slog.LevelInfo},
		{input: "", want: slog.LevelInfo},
		{input: "warn", want: slog.LevelWarn},
		{input: "error", want: slog.LevelError},
		{input: "verbose", want: slog.LevelInfo, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseLogLevel(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewWithWriter_JSON(t *testing.T) {
	cfg := config.Default()
	cfg.Env.ServiceName = "autosphere"
	cfg.Env.Log.Level = "warn"

	buf := &bytes.Buffer{}
	logger, err := NewWithWriter(cfg, buf)
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown", slog.String("key", "cars_inventory"))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "shown", record["msg"])
	assert.Equal(t, "autosphere", record["service"])
	assert.Equal(t, "cars_inventory", record["key"])
}

func TestNewWithWriter_Pretty(t *testing.T) {
	cfg := config.Default()
	cfg.Env.Log.Pretty = true

	buf := &bytes.Buffer{}
	logger, err := NewWithWriter(cfg, buf)
	require.NoError(t, err)

	logger.Info("hello")
	assert.Contains(t, buf.String(), "msg=hello")
}

func TestNewWithWriter_InvalidLevel(t *testing.T) {
	cfg := config.Default()
	cfg.Env.Log.Level = "loud"

	_, err := NewWithWriter(cfg, &bytes.Buffer{})
	assert.Error(t, err)
}
