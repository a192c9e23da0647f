package ui

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

const (
	TEXT_LEFT = iota
	TEXT_CENTER
	TEXT_RIGHT
)

type Text struct {
	Invalidatable
	mu       sync.Mutex
	text     string
	strategy uint
	style    tcell.Style
}

func NewText(text string, style tcell.Style) *Text {
	return &Text{
		text:  text,
		style: style,
	}
}

// Text replaces the displayed text. It may be called from any goroutine.
func (t *Text) Text(text string) *Text {
	t.mu.Lock()
	changed := t.text != text
	t.text = text
	t.mu.Unlock()
	if changed {
		t.Invalidate()
	}
	return t
}

func (t *Text) Strategy(strategy uint) *Text {
	t.mu.Lock()
	t.strategy = strategy
	t.mu.Unlock()
	t.Invalidate()
	return t
}

func (t *Text) Draw(ctx *Context) {
	t.mu.Lock()
	text, strategy, style := t.text, t.strategy, t.style
	t.mu.Unlock()

	text = runewidth.Truncate(text, ctx.Width(), "…")
	size := runewidth.StringWidth(text)
	x := 0
	if strategy == TEXT_CENTER {
		x = (ctx.Width() - size) / 2
	}
	if strategy == TEXT_RIGHT {
		x = ctx.Width() - size
	}
	ctx.Fill(0, 0, ctx.Width(), ctx.Height(), ' ', style)
	ctx.Printf(x, 0, style, "%s", text)
}

func (t *Text) Invalidate() {
	t.DoInvalidate(t)
}
