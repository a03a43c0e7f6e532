package log

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	l, err := ParseLevel("DEBUG")
	require.NoError(t, err)
	assert.Equal(t, LevelDebug, l)

	l, err = ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, LevelInfo, l)

	_, err = ParseLevel("verbose")
	assert.Error(t, err)
}

func TestLevelsAndOutput(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	SetLevel(LevelInfo)
	t.Cleanup(func() { SetLevel(LevelInfo) })

	Debug("hidden")
	Info("tick done", "meetings", 3)
	Error("send failed", errors.New("boom"), "chat_id", "123")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "meetings=3")
	assert.Contains(t, out, "err=boom")
	assert.Contains(t, out, "chat_id=123")

	buf.Reset()
	SetLevel(LevelDebug)
	Cron().Info("skip")
	assert.Contains(t, buf.String(), "cron: skip")

	buf.Reset()
	Telegram().Printf("Failed to get updates, retrying in %d seconds...", 3)
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "retrying in 3 seconds")
}
