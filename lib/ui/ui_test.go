package ui

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScreen(t *testing.T, width, height int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(width, height)
	t.Cleanup(screen.Fini)
	return screen
}

// row returns the text displayed on line y, right trimmed.
func row(screen tcell.SimulationScreen, y int) string {
	screen.Show()
	cells, width, _ := screen.GetContents()
	var b strings.Builder
	for x := 0; x < width; x++ {
		runes := cells[y*width+x].Runes
		if len(runes) == 0 {
			b.WriteRune(' ')
		} else {
			b.WriteRune(runes[0])
		}
	}
	return strings.TrimRight(b.String(), " ")
}

type countingDrawable struct {
	Invalidatable
	label string
	draws int
}

func (c *countingDrawable) Draw(ctx *Context) {
	c.draws++
	ctx.Printf(0, 0, tcell.StyleDefault, "%s %d", c.label, c.draws)
}

func (c *countingDrawable) Invalidate() {
	c.DoInvalidate(c)
}

func TestContextPrintfWraps(t *testing.T) {
	screen := newScreen(t, 10, 3)
	ctx := NewContext(10, 3, screen)
	sub := ctx.Subcontext(2, 1, 4, 2)

	n := sub.Printf(0, 0, tcell.StyleDefault, "abcdefghij")
	assert.Equal(t, 10, n)
	assert.Equal(t, "", row(screen, 0))
	assert.Equal(t, "  abcd", row(screen, 1))
	assert.Equal(t, "  efgh", row(screen, 2))
}

func TestContextSubcontextClips(t *testing.T) {
	screen := newScreen(t, 10, 3)
	ctx := NewContext(10, 3, screen)
	sub := ctx.Subcontext(8, 2, 5, 5)
	assert.Equal(t, 2, sub.Width())
	assert.Equal(t, 1, sub.Height())

	sub.Fill(0, 0, 5, 5, '#', tcell.StyleDefault)
	assert.Equal(t, "        ##", row(screen, 2))
	assert.Equal(t, "", row(screen, 1))

	assert.Panics(t, func() { ctx.Subcontext(-1, 0, 1, 1) })
}

func TestTextStrategy(t *testing.T) {
	screen := newScreen(t, 11, 1)
	ctx := NewContext(11, 1, screen)
	text := NewText("abc", tcell.StyleDefault)

	text.Draw(ctx)
	assert.Equal(t, "abc", row(screen, 0))

	text.Strategy(TEXT_CENTER).Draw(ctx)
	assert.Equal(t, "    abc", row(screen, 0))

	text.Strategy(TEXT_RIGHT).Draw(ctx)
	assert.Equal(t, "        abc", row(screen, 0))

	text.Strategy(TEXT_LEFT).Text("a long line of text").Draw(ctx)
	assert.Equal(t, "a long lin…", row(screen, 0))
}

func TestTextInvalidatesOwnerOnChange(t *testing.T) {
	text := NewText("abc", tcell.StyleDefault)
	calls := 0
	text.OnInvalidate(func(Drawable) { calls++ })

	text.Text("abc")
	assert.Equal(t, 0, calls)
	text.Text("def")
	assert.Equal(t, 1, calls)
}

func TestBordered(t *testing.T) {
	screen := newScreen(t, 12, 3)
	ctx := NewContext(12, 3, screen)
	content := &countingDrawable{label: "body"}
	b := NewBordered("title", '-', content)

	b.Draw(ctx)
	assert.Equal(t, "-title------", row(screen, 0))
	assert.Equal(t, "body 1", row(screen, 1))
	assert.Len(t, b.Children(), 1)

	calls := 0
	b.OnInvalidate(func(Drawable) { calls++ })
	content.Invalidate()
	assert.Equal(t, 1, calls)
}

func TestInvalidateNeverBlocks(t *testing.T) {
	for i := 0; i < 10; i++ {
		Invalidate()
	}
	assert.True(t, IsInvalid())
}
