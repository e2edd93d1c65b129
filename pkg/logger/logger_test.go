package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func logLine(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line), "logger output should be valid JSON")
	return line
}

func TestNewWithWriter_StructuredJSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("info", &buf)

	log.Info().Str("vendor_id", "v_1").Msg("vendor refreshed")

	line := logLine(t, &buf)
	assert.Equal(t, "vendor refreshed", line["message"])
	assert.Equal(t, "v_1", line["vendor_id"])
	assert.Equal(t, "info", line["level"])
	assert.Contains(t, line, "time")
}

func TestComponent_TagsEveryLine(t *testing.T) {
	var buf bytes.Buffer
	log := Component(NewWithWriter("info", &buf), "backend_client")

	log.Warn().Msg("retrying")

	line := logLine(t, &buf)
	assert.Equal(t, "backend_client", line["component"])
	assert.Equal(t, "warn", line["level"])
}

func TestComponent_DerivedLoggersAreIndependent(t *testing.T) {
	var first, second bytes.Buffer
	root := NewWithWriter("info", &first)

	cards := Component(root, "card_gateway").Output(&second)
	cards.Info().Msg("confirm sent")

	assert.Empty(t, first.String(), "root writer should not see the derived logger's output")
	line := logLine(t, &second)
	assert.Equal(t, "card_gateway", line["component"])
}

func TestLevels_Filtering(t *testing.T) {
	cases := []struct {
		level    string
		debugOut bool
		infoOut  bool
	}{
		{"debug", true, true},
		{"info", false, true},
		{"warn", false, false},
		{"error", false, false},
		{"not-a-level", false, true}, // unknown levels default to info
		{"", false, true},
	}

	for _, tc := range cases {
		t.Run(tc.level, func(t *testing.T) {
			var buf bytes.Buffer
			log := NewWithWriter(tc.level, &buf)

			log.Debug().Msg("d")
			assert.Equal(t, tc.debugOut, buf.Len() > 0, "debug at level %q", tc.level)

			buf.Reset()
			log.Info().Msg("i")
			assert.Equal(t, tc.infoOut, buf.Len() > 0, "info at level %q", tc.level)
		})
	}
}

func TestNew_PrettyMode(t *testing.T) {
	// Just ensure it doesn't panic — pretty mode writes to stdout.
	log := New("info", true)
	log.Info().Msg("pretty mode test")
}
