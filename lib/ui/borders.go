package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Bordered draws a one line title bar above its content.
type Bordered struct {
	Invalidatable
	title   string
	fill    rune
	style   tcell.Style
	content Drawable
}

func NewBordered(title string, fill rune, content Drawable) *Bordered {
	b := &Bordered{
		title:   title,
		fill:    fill,
		style:   tcell.StyleDefault.Reverse(true),
		content: content,
	}
	if inv, ok := content.(interface{ OnInvalidate(func(d Drawable)) }); ok {
		inv.OnInvalidate(b.contentInvalidated)
	}
	return b
}

func (bordered *Bordered) contentInvalidated(d Drawable) {
	bordered.Invalidate()
}

func (bordered *Bordered) Children() []Drawable {
	return []Drawable{bordered.content}
}

func (bordered *Bordered) Invalidate() {
	bordered.DoInvalidate(bordered)
}

func (bordered *Bordered) Draw(ctx *Context) {
	if ctx.Height() == 0 {
		return
	}
	ctx.Fill(0, 0, ctx.Width(), 1, bordered.fill, bordered.style)
	if bordered.title != "" && ctx.Width() > 2 {
		title := runewidth.Truncate(bordered.title, ctx.Width()-2, "…")
		ctx.Printf(1, 0, bordered.style, "%s", title)
	}
	bordered.content.Draw(ctx.Subcontext(0, 1, ctx.Width(), ctx.Height()-1))
}

func (bordered *Bordered) Event(event tcell.Event) bool {
	if i, ok := bordered.content.(Interactive); ok {
		return i.Event(event)
	}
	return false
}
