package app

import (
	"github.com/gdamore/tcell/v2"

	"git.sr.ht/~rjarry/dirtyview/lib/ui"
)

// StatusLine displays the raw tracker state.
type StatusLine struct {
	ui.Invalidatable
	panes *ui.Panes
}

func NewStatusLine(panes *ui.Panes) *StatusLine {
	return &StatusLine{panes: panes}
}

func (s *StatusLine) Draw(ctx *ui.Context) {
	style := tcell.StyleDefault.Reverse(true)
	ctx.Fill(0, 0, ctx.Width(), ctx.Height(), ' ', style)
	ctx.Printf(0, 0, style, "%s", s.panes.Tracker().DebugString())
}

func (s *StatusLine) Invalidate() {
	s.DoInvalidate(s)
}
