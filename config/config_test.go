package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.sr.ht/~rjarry/dirtyview/lib/log"
)

func TestLoadConfigDefaults(t *testing.T) {
	conf, err := LoadConfig([]byte(""))
	require.NoError(t, err)
	assert.Equal(t, KnownPanes, conf.Ui.Panes)
	assert.Equal(t, time.Second, conf.Ui.TickInterval)
	assert.Equal(t, ' ', conf.Ui.BorderChar)
	assert.False(t, conf.Ui.MouseEnabled)
	assert.Equal(t, log.INFO, conf.General.LogLevel)
}

func TestLoadConfig(t *testing.T) {
	conf, err := LoadConfig([]byte(`
[general]
log-file = ~/dirtyview.log
log-level = trace

[ui]
panes = flags, clock
tick-interval = 250ms
mouse-enabled = true
border-char = -
`))
	require.NoError(t, err)
	assert.Equal(t, "~/dirtyview.log", conf.General.LogFile)
	assert.Equal(t, log.TRACE, conf.General.LogLevel)
	assert.Equal(t, []string{"flags", "clock"}, conf.Ui.Panes)
	assert.Equal(t, 250*time.Millisecond, conf.Ui.TickInterval)
	assert.True(t, conf.Ui.MouseEnabled)
	assert.Equal(t, '-', conf.Ui.BorderChar)
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		conf string
		err  string
	}{
		{
			name: "log-level",
			conf: "[general]\nlog-level = loud\n",
			err:  "log-level: loud: invalid log level",
		},
		{
			name: "unknown pane",
			conf: "[ui]\npanes = clock,inbox\n",
			err:  `panes: unknown pane "inbox"`,
		},
		{
			name: "duplicate pane",
			conf: "[ui]\npanes = clock,counter,clock\n",
			err:  `panes: duplicate pane "clock"`,
		},
		{
			name: "empty panes",
			conf: "[ui]\npanes =\n",
			err:  "panes: at least one pane is required",
		},
		{
			name: "blank panes",
			conf: "[ui]\npanes =   \n",
			err:  "panes: at least one pane is required",
		},
		{
			name: "zero tick-interval",
			conf: "[ui]\ntick-interval = 0s\n",
			err:  "tick-interval: must be positive",
		},
		{
			name: "negative tick-interval",
			conf: "[ui]\ntick-interval = -1s\n",
			err:  "tick-interval: must be positive",
		},
		{
			name: "border-char",
			conf: "[ui]\nborder-char = ab\n",
			err:  "border-char: value must be 1 character long",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := LoadConfig([]byte(test.conf))
			assert.EqualError(t, err, test.err)
		})
	}
}

func TestLoadConfigBadTickInterval(t *testing.T) {
	_, err := LoadConfig([]byte("[ui]\ntick-interval = often\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tick-interval: ")
}

func TestLoadConfigFromFileMissing(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "nope.conf")
	conf, err := LoadConfigFromFile(&fn)
	require.NoError(t, err)
	assert.Equal(t, fn, conf.Filename)
	assert.Equal(t, KnownPanes, conf.Ui.Panes)
}

func TestLoadConfigFromFileError(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "bad.conf")
	require.NoError(t, os.WriteFile(fn, []byte("[ui]\npanes = foo\n"), 0o600))
	_, err := LoadConfigFromFile(&fn)
	require.Error(t, err)
	assert.Contains(t, err.Error(), fn)
	assert.Contains(t, err.Error(), `unknown pane "foo"`)
}

func TestReloadUi(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "dirtyview.conf")
	require.NoError(t, os.WriteFile(fn, []byte("[ui]\npanes = counter\n"), 0o600))

	ui, err := ReloadUi(fn)
	require.NoError(t, err)
	assert.Equal(t, []string{"counter"}, ui.Panes)

	require.NoError(t, os.WriteFile(fn, []byte("[general]\nlog-level = debug\n"), 0o600))
	ui, err = ReloadUi(fn)
	require.NoError(t, err)
	assert.Equal(t, KnownPanes, ui.Panes)
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/etc/xdg")
	assert.Equal(t, "/etc/xdg/dirtyview/dirtyview.conf", DefaultPath())
}
