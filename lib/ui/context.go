package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// A context allows you to draw in a sub-region of the terminal
type Context struct {
	screen tcell.Screen
	x, y   int
	width  int
	height int
}

func NewContext(width, height int, screen tcell.Screen) *Context {
	return &Context{screen, 0, 0, width, height}
}

func (ctx *Context) Width() int {
	return ctx.width
}

func (ctx *Context) Height() int {
	return ctx.height
}

func (ctx *Context) Subcontext(x, y, width, height int) *Context {
	if x < 0 || y < 0 {
		panic(fmt.Errorf("Attempted to create context with negative offset"))
	}
	if x+width > ctx.width {
		width = ctx.width - x
	}
	if y+height > ctx.height {
		height = ctx.height - y
	}
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Context{ctx.screen, ctx.x + x, ctx.y + y, width, height}
}

func (ctx *Context) SetCell(x, y int, ch rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= ctx.width || y >= ctx.height {
		// no-op when dims are inadequate
		return
	}
	ctx.screen.SetContent(ctx.x+x, ctx.y+y, ch, nil, style)
}

// Printf writes a formatted string at x, y, wrapping at the right edge of the
// context. It returns the display width of the formatted string.
func (ctx *Context) Printf(x, y int, style tcell.Style,
	format string, a ...interface{},
) int {
	str := fmt.Sprintf(format, a...)
	if x >= ctx.width || y >= ctx.height {
		return 0
	}

	oldX := x
	newline := func() bool {
		x = oldX
		y++
		return y < ctx.height
	}
	for _, ch := range str {
		switch ch {
		case '\n':
			if !newline() {
				return runewidth.StringWidth(str)
			}
		case '\r':
			x = oldX
		default:
			ctx.SetCell(x, y, ch, style)
			x += runewidth.RuneWidth(ch)
			if x >= ctx.width {
				if !newline() {
					return runewidth.StringWidth(str)
				}
			}
		}
	}
	return runewidth.StringWidth(str)
}

func (ctx *Context) Fill(x, y, width, height int, ch rune, style tcell.Style) {
	for row := y; row < y+height && row < ctx.height; row++ {
		for col := x; col < x+width && col < ctx.width; col++ {
			ctx.SetCell(col, row, ch, style)
		}
	}
}
