package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-ini/ini"
)

// Panes that can be listed in [ui].panes. The status line is always shown
// and cannot be configured.
var KnownPanes = []string{"clock", "counter", "flags"}

type UIConfig struct {
	Panes        []string      `ini:"-"`
	TickInterval time.Duration `ini:"-"`
	MouseEnabled bool          `ini:"mouse-enabled"`
	BorderChar   rune          `ini:"-"`
}

func defaultUIConfig() UIConfig {
	return UIConfig{
		Panes:        append([]string(nil), KnownPanes...),
		TickInterval: time.Second,
		BorderChar:   ' ',
	}
}

func (config *DirtyviewConfig) parseUi(file *ini.File) error {
	sec, err := file.GetSection("ui")
	if err != nil {
		return nil
	}
	ui, err := parseUiSection(sec)
	if err != nil {
		return err
	}
	config.Ui = *ui
	return nil
}

func parseUiSection(sec *ini.Section) (*UIConfig, error) {
	ui := defaultUIConfig()
	if err := sec.MapTo(&ui); err != nil {
		return nil, err
	}
	if key, err := sec.GetKey("panes"); err == nil {
		value := strings.TrimSpace(key.String())
		if value == "" {
			return nil, fmt.Errorf("panes: at least one pane is required")
		}
		ui.Panes = strings.Split(value, ",")
	}
	if key, err := sec.GetKey("tick-interval"); err == nil {
		d, err := key.Duration()
		if err != nil {
			return nil, fmt.Errorf("tick-interval: %w", err)
		}
		if d <= 0 {
			return nil, fmt.Errorf("tick-interval: must be positive")
		}
		ui.TickInterval = d
	}
	if key, err := sec.GetKey("border-char"); err == nil {
		runes := []rune(key.String())
		if len(runes) != 1 {
			return nil, fmt.Errorf("border-char: value must be 1 character long")
		}
		ui.BorderChar = runes[0]
	}
	if err := ui.validate(); err != nil {
		return nil, err
	}
	return &ui, nil
}

func (ui *UIConfig) validate() error {
	if len(ui.Panes) == 0 {
		return fmt.Errorf("panes: at least one pane is required")
	}
	seen := make(map[string]bool)
	for i, name := range ui.Panes {
		name = strings.TrimSpace(name)
		ui.Panes[i] = name
		if !isKnownPane(name) {
			return fmt.Errorf("panes: unknown pane %q", name)
		}
		if seen[name] {
			return fmt.Errorf("panes: duplicate pane %q", name)
		}
		seen[name] = true
	}
	if ui.TickInterval <= 0 {
		return fmt.Errorf("tick-interval: must be positive")
	}
	return nil
}

func isKnownPane(name string) bool {
	for _, p := range KnownPanes {
		if p == name {
			return true
		}
	}
	return false
}
