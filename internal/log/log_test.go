package log

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebugDisabledWritesNothing(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, false)

	l.Debug("orbs", "pool initialized", Context{"count": 14})

	assert.Empty(t, buf.String())
}

func TestDebugWritesJSONLine(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, true)
	l.now = func() time.Time { return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC) }

	l.Debug("viewport", "resized", Context{"width": 800})

	var msg Message
	require.NoError(t, json.Unmarshal(buf.Bytes(), &msg))
	assert.Equal(t, "2024-03-01T12:00:00Z", msg.Time)
	assert.Equal(t, "viewport", msg.Service)
	assert.Equal(t, "resized", msg.Message)
	assert.Equal(t, float64(800), msg.Context["width"])
}

func TestErrorIncludesCause(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, false)

	l.Error(errors.New("disk full"), "writing snapshot")

	assert.True(t, strings.Contains(buf.String(), "writing snapshot: disk full"))
}
