package app

import (
	"github.com/gdamore/tcell/v2"

	"git.sr.ht/~rjarry/dirtyview/lib/ui"
)

// FlagsView lists the recorded panes along with the state they were in
// before the current redraw and how many times they were drawn.
type FlagsView struct {
	ui.Invalidatable
	panes *ui.Panes
}

func NewFlagsView(panes *ui.Panes) *FlagsView {
	return &FlagsView{panes: panes}
}

func (f *FlagsView) Draw(ctx *ui.Context) {
	keys, states := f.panes.Observed()
	if len(keys) == 0 {
		ctx.Printf(1, 0, tcell.StyleDefault.Dim(true), "(everything dirty)")
		return
	}
	for i, k := range keys {
		if i >= ctx.Height() {
			break
		}
		state, style := "clean", tcell.StyleDefault
		if states[i] {
			state, style = "dirty", tcell.StyleDefault.Foreground(tcell.ColorRed)
		}
		ctx.Printf(1, i, style, "%-10s %s %5d", k, state, f.panes.Draws(k))
	}
}

func (f *FlagsView) Invalidate() {
	f.DoInvalidate(f)
}
