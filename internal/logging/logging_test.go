package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "", want: slog.LevelInfo},
		{in: "INFO", want: slog.LevelInfo},
		{in: "debug", want: slog.LevelDebug},
		{in: " warning ", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "trace", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer

	logger, err := New(&buf, "warn", FormatJSON)
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown", "root", "doc")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "shown", entry["msg"])
	assert.Equal(t, "doc", entry["root"])
}

func TestNew_Text(t *testing.T) {
	var buf bytes.Buffer

	logger, err := New(&buf, "info", FormatText)
	require.NoError(t, err)

	logger.Info("hello", "n", 1)
	assert.Contains(t, buf.String(), "msg=hello")
	assert.Contains(t, buf.String(), "n=1")
}

func TestNew_AutoNonTerminal(t *testing.T) {
	// обычный файл не терминал, значит JSON
	f, err := os.Create(filepath.Join(t.TempDir(), "log.json"))
	require.NoError(t, err)
	defer f.Close()

	logger, err := New(f, "", FormatAuto)
	require.NoError(t, err)
	logger.Info("x")

	data, err := os.ReadFile(f.Name())
	require.NoError(t, err)
	assert.True(t, json.Valid(bytes.TrimSpace(data)))

	var buf bytes.Buffer
	logger, err = New(&buf, "", "")
	require.NoError(t, err)
	logger.Info("y")
	assert.True(t, json.Valid(bytes.TrimSpace(buf.Bytes())))
}

func TestNew_Errors(t *testing.T) {
	_, err := New(&bytes.Buffer{}, "loud", FormatJSON)
	assert.Error(t, err)

	_, err = New(&bytes.Buffer{}, "info", "xml")
	assert.Error(t, err)
}
