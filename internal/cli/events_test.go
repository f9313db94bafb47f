package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadEvents(t *testing.T) {
	stream := strings.Join([]string{
		"event: connected",
		`data: {"status":"connected"}`,
		"",
		": keepalive",
		"",
		"event: tile-placed",
		"data: line one",
		"data: line two",
		"",
		"data: orphan data without a name",
		"",
	}, "\n")

	type got struct{ event, data string }
	var events []got
	err := readEvents(strings.NewReader(stream), func(event, data string) {
		events = append(events, got{event, data})
	})
	require.NoError(t, err)

	assert.Equal(t, []got{
		{"connected", `{"status":"connected"}`},
		{"tile-placed", "line one\nline two"},
	}, events)
}

func TestPrintEvent(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("text uses the event message", func(t *testing.T) {
		buf := &bytes.Buffer{}
		printEvent(buf, now, "action-taken", `{"type":"action-taken","message":"Took action prod_wood"}`, false)
		assert.Equal(t, "[2024-01-01 12:00:00] action-taken: Took action prod_wood\n", buf.String())
	})

	t.Run("text truncates raw data", func(t *testing.T) {
		buf := &bytes.Buffer{}
		printEvent(buf, now, "raw", strings.Repeat("x", 120), false)
		assert.Contains(t, buf.String(), strings.Repeat("x", 100)+"...")
	})

	t.Run("json", func(t *testing.T) {
		buf := &bytes.Buffer{}
		printEvent(buf, now, "connected", "{}", true)
		assert.JSONEq(t, `{"time":"2024-01-01T12:00:00Z","event":"connected","data":"{}"}`, buf.String())
	})
}
