package log

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	for value, expected := range map[string]LogLevel{
		"trace":   TRACE,
		"DEBUG":   DEBUG,
		"info":    INFO,
		"warning": WARN,
		"warn":    WARN,
		"err":     ERROR,
	} {
		l, err := ParseLevel(value)
		assert.NoError(t, err, value)
		assert.Equal(t, expected, l, value)
	}
	_, err := ParseLevel("loud")
	assert.EqualError(t, err, "loud: invalid log level")
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "warn", WARN.String())
	assert.Equal(t, "level(3)", LogLevel(3).String())
}

func TestInitFiltersLevels(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.log")
	f, err := os.Create(path)
	require.NoError(t, err)

	require.NoError(t, Init(f, false, INFO))
	defer Init(nil, false, TRACE) //nolint:errcheck // test cleanup

	assert.False(t, Enabled(DEBUG))
	assert.True(t, Enabled(WARN))

	l := NewLogger("panes", 3)
	l.Debugf("hidden %d", 1)
	l.Warnf("shown %d", 2)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "WARN  ")
	assert.Contains(t, string(data), "[panes] shown 2")
}

func TestInitNilDisables(t *testing.T) {
	require.NoError(t, Init(nil, false, TRACE))
	assert.False(t, Enabled(ERROR))
	// must not panic
	Errorf("nowhere")
}
