package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"log"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lastRecord(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")

	var record map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[len(lines)-1]), &record))

	return record
}

func TestLogger(t *testing.T) { //nolint:paralleltest
	var buf bytes.Buffer

	ConfigureLoggingWithOptions(Options{
		Subsystem: "sortedmerge",
		JSON:      true,
		MinLevel:  slog.LevelDebug,
		Output:    &buf,
	})

	Get().Info("default subsystem")
	assert.Equal(t, "sortedmerge", lastRecord(t, &buf)["subsystem"])

	ctx := WithSubsystem(t.Context(), "bulk")
	Get(ctx).Info("overridden subsystem")
	assert.Equal(t, "bulk", lastRecord(t, &buf)["subsystem"])

	ctx = With(With(ctx, "input", "a.txt"), "strategy", "natural")
	Get(ctx).Debug("with values")

	record := lastRecord(t, &buf)
	assert.Equal(t, "a.txt", record["input"])
	assert.Equal(t, "natural", record["strategy"])

	Get(ctx).Error("annotated", "error", AnnotateError(errors.New("boom"), "line", 3))

	record = lastRecord(t, &buf)
	assert.Equal(t, "boom", record["error"])
	assert.InDelta(t, 3, record["line"], 0)

	before := buf.Len()
	Get(WithMuted(ctx, true)).Error("should not appear")
	assert.Equal(t, before, buf.Len())

	Get(nil, ctx).Info("first non-nil context wins") //nolint:staticcheck
	assert.Equal(t, "bulk", lastRecord(t, &buf)["subsystem"])
}

func TestLegacy(t *testing.T) { //nolint:paralleltest
	var buf bytes.Buffer

	ConfigureLoggingWithOptions(Options{
		Subsystem:   "sortedmerge",
		JSON:        true,
		LegacyLevel: slog.LevelWarn,
		Output:      &buf,
	})

	log.Println("from the log package")

	record := lastRecord(t, &buf)
	assert.Equal(t, "WARN", record["level"])
	assert.Equal(t, "from the log package", record["msg"])
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		expected slog.Level
		wantErr  bool
	}{
		{name: "debug", expected: slog.LevelDebug},
		{name: "INFO", expected: slog.LevelInfo},
		{name: "", expected: slog.LevelInfo},
		{name: "warning", expected: slog.LevelWarn},
		{name: " error ", expected: slog.LevelError},
		{name: "loud", expected: slog.LevelInfo, wantErr: true},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			level, err := ParseLevel(testCase.name)
			if testCase.wantErr {
				require.ErrorIs(t, err, ErrInvalidLevel)
			} else {
				require.NoError(t, err)
			}

			assert.Equal(t, testCase.expected, level)
		})
	}
}
