package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		log       func(logger Logger)
		want      []string
	}{
		{
			"info",
			0,
			func(logger Logger) { logger.Info("something", "foo", "bar") },
			[]string{"level=INFO", "msg=something", "foo=bar", "logger=test"},
		},
		{
			"error",
			0,
			func(logger Logger) { logger.Error("spilt me beer", errors.New("woops")) },
			[]string{"level=ERROR", "woops"},
		},
		{
			"debug",
			1,
			func(logger Logger) { logger.Debug("something") },
			[]string{"msg=something"},
		},
		{
			"with values",
			0,
			func(logger Logger) { logger.With("component", "db").Info("connected") },
			[]string{"component=db", "msg=connected"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got bytes.Buffer
			logger, err := NewWithWriter(&got, "test", Config{Format: "text", Verbosity: tt.verbosity})
			require.NoError(t, err)
			tt.log(logger)
			for _, want := range tt.want {
				assert.Contains(t, got.String(), want)
			}
		})
	}
}

func TestLoggerHidesDebug(t *testing.T) {
	var got bytes.Buffer
	logger, err := NewWithWriter(&got, "test", Config{})
	require.NoError(t, err)

	logger.Debug("should not see this")

	assert.Empty(t, got.String())
}

func TestLoggerJSON(t *testing.T) {
	var got bytes.Buffer
	logger, err := NewWithWriter(&got, "test", Config{Format: "json"})
	require.NoError(t, err)

	logger.Info("something", "foo", "bar")

	var line map[string]any
	require.NoError(t, json.Unmarshal(got.Bytes(), &line))
	assert.Equal(t, "something", line["msg"])
	assert.Equal(t, "bar", line["foo"])
	assert.Equal(t, "test", line["logger"])
}

func TestLoggerUnknownFormat(t *testing.T) {
	_, err := New("test", Config{Format: "xml"})
	assert.Error(t, err)
}
