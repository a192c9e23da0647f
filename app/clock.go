package app

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"git.sr.ht/~rjarry/dirtyview/lib/ui"
)

type Clock struct {
	*ui.Text
	now func() time.Time
}

func NewClock(now func() time.Time) *Clock {
	c := &Clock{
		Text: ui.NewText("", tcell.StyleDefault.Bold(true)),
		now:  now,
	}
	c.Text.Strategy(ui.TEXT_CENTER)
	c.Update()
	return c
}

// Update refreshes the displayed time. The pane is only flagged dirty when
// the text actually changes.
func (c *Clock) Update() {
	c.Text.Text(c.now().Format("15:04:05"))
}
