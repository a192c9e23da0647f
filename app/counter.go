package app

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"git.sr.ht/~rjarry/dirtyview/lib/ui"
)

// Counter counts space key presses, + and - adjust it as well.
type Counter struct {
	ui.Invalidatable
	mu    sync.Mutex
	value int
}

func NewCounter() *Counter {
	return &Counter{}
}

func (c *Counter) Value() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

func (c *Counter) add(n int) {
	c.mu.Lock()
	c.value += n
	c.mu.Unlock()
	c.Invalidate()
}

func (c *Counter) Draw(ctx *ui.Context) {
	text := fmt.Sprintf("presses: %d", c.Value())
	ctx.Printf(1, 0, tcell.StyleDefault, "%s", text)
}

func (c *Counter) Invalidate() {
	c.DoInvalidate(c)
}

func (c *Counter) Event(event tcell.Event) bool {
	key, ok := event.(*tcell.EventKey)
	if !ok || key.Key() != tcell.KeyRune {
		return false
	}
	switch key.Rune() {
	case ' ', '+':
		c.add(1)
	case '-':
		c.add(-1)
	default:
		return false
	}
	return true
}
