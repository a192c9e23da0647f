package app

import (
	"context"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"git.sr.ht/~rjarry/dirtyview/config"
	"git.sr.ht/~rjarry/dirtyview/lib/ui"
	"git.sr.ht/~rjarry/dirtyview/lib/log"
)

// Name of the status line pane, always displayed last.
const STATUS = "status"

type Dirtyview struct {
	mu      sync.Mutex
	conf    config.UIConfig
	panes   *ui.Panes
	clock   *Clock
	counter *Counter
	ui      *ui.UI
	// new clock periods for the ticker goroutine
	tick   chan time.Duration
	logger log.Logger
}

func New(conf *config.UIConfig) *Dirtyview {
	d := &Dirtyview{
		conf:    *conf,
		panes:   ui.NewPanes(),
		clock:   NewClock(time.Now),
		counter: NewCounter(),
		tick:    make(chan time.Duration, 1),
		logger:  log.NewLogger("app", 3),
	}
	d.build()
	return d
}

func (d *Dirtyview) build() {
	// detach from the previous layout, if any
	d.clock.OnInvalidate(nil)
	d.counter.OnInvalidate(nil)
	for _, name := range d.conf.Panes {
		var content ui.Drawable
		switch name {
		case "clock":
			content = d.clock
		case "counter":
			content = d.counter
		case "flags":
			content = NewFlagsView(d.panes)
		default:
			d.logger.Warnf("ignoring unknown pane %q", name)
			continue
		}
		d.panes.Add(name, ui.PaneSpec{Strategy: ui.SIZE_WEIGHT, Size: 1},
			ui.NewBordered(name, d.conf.BorderChar, content))
		if name == "flags" {
			d.panes.Follow(name)
		}
	}
	d.panes.Add(STATUS, ui.PaneSpec{Strategy: ui.SIZE_EXACT, Size: 1},
		NewStatusLine(d.panes))
	d.panes.Follow(STATUS)
}

// Initialize is called by the UI once the screen is ready.
func (d *Dirtyview) Initialize(u *ui.UI) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.ui = u
}

func (d *Dirtyview) Panes() *ui.Panes {
	return d.panes
}

func (d *Dirtyview) Counter() *Counter {
	return d.counter
}

func (d *Dirtyview) Clock() *Clock {
	return d.clock
}

func (d *Dirtyview) Draw(ctx *ui.Context) {
	d.panes.Draw(ctx)
}

func (d *Dirtyview) Invalidate() {
	d.panes.Invalidate()
}

func (d *Dirtyview) exit() {
	d.mu.Lock()
	u := d.ui
	d.mu.Unlock()
	if u != nil {
		u.Exit()
	}
}

func (d *Dirtyview) Event(event tcell.Event) bool {
	key, ok := event.(*tcell.EventKey)
	if !ok {
		return false
	}
	switch {
	case key.Key() == tcell.KeyCtrlC,
		key.Key() == tcell.KeyRune && key.Rune() == 'q':
		d.exit()
		return true
	case key.Key() == tcell.KeyCtrlL,
		key.Key() == tcell.KeyRune && key.Rune() == 'r':
		d.logger.Debugf("full redraw requested")
		d.panes.Invalidate()
		return true
	case key.Key() == tcell.KeyRune && key.Rune() == 'c':
		d.logger.Debugf("marking all panes clean")
		d.panes.CleanAll()
		d.panes.InvalidatePane(STATUS)
		return true
	}
	return d.panes.Event(event)
}

// Reload replaces the displayed panes. It must run on the main goroutine.
func (d *Dirtyview) Reload(conf *config.UIConfig) {
	d.logger.Infof("reloading panes %v", conf.Panes)
	d.conf = *conf
	d.panes.Clear()
	d.build()
	select {
	case d.tick <- conf.TickInterval:
	default:
	}
}

// Start updates the clock every tick-interval until ctx is done.
func (d *Dirtyview) Start(ctx context.Context) {
	period := d.conf.TickInterval
	go func() {
		defer log.PanicHandler()
		ticker := time.NewTicker(period)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case period := <-d.tick:
				ticker.Reset(period)
			case <-ticker.C:
				d.clock.Update()
			}
		}
	}()
}
