package ui

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"git.sr.ht/~rjarry/dirtyview/lib/dirty"
	"git.sr.ht/~rjarry/dirtyview/lib/log"
)

const (
	SIZE_EXACT = iota
	SIZE_WEIGHT
)

// Specifies the height of a single pane
type PaneSpec struct {
	// One of SIZE_EXACT or SIZE_WEIGHT
	Strategy int
	// Number of rows for SIZE_EXACT. For SIZE_WEIGHT, the rows left after
	// all exact panes are measured are distributed amongst the remainder
	// weighted by this value.
	Size int
}

type pane struct {
	name    string
	spec    PaneSpec
	content Drawable
	draws   int
}

// Panes stacks named drawables vertically and only draws again the ones
// whose name is flagged dirty in its tracker.
type Panes struct {
	mu     sync.Mutex
	panes  []*pane
	flags  *dirty.Locked
	width  int
	height int
	// dirty state of every recorded pane name before the last Draw
	observedKeys   []string
	observedStates []bool
	followers      []string
	logger         log.Logger
}

func NewPanes() *Panes {
	return &Panes{
		flags:  dirty.NewLocked(),
		logger: log.NewLogger("panes", 3),
	}
}

// Add appends a pane. Names must be unique and not empty.
func (p *Panes) Add(name string, spec PaneSpec, content Drawable) {
	if name == "" {
		panic("pane name cannot be empty")
	}
	p.mu.Lock()
	for _, existing := range p.panes {
		if existing.name == name {
			p.mu.Unlock()
			panic("duplicate pane: " + name)
		}
	}
	p.panes = append(p.panes, &pane{name: name, spec: spec, content: content})
	p.mu.Unlock()

	if inv, ok := content.(interface{ OnInvalidate(func(d Drawable)) }); ok {
		inv.OnInvalidate(func(Drawable) {
			p.InvalidatePane(name)
		})
	}
	p.InvalidatePane(name)
}

// Clear removes every pane and forgets their recorded state.
func (p *Panes) Clear() {
	p.mu.Lock()
	p.panes = nil
	p.followers = nil
	p.mu.Unlock()
	p.Invalidate()
}

// Follow makes the named pane dirty whenever any other pane is.
func (p *Panes) Follow(name string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.followers = append(p.followers, name)
}

// InvalidatePane flags name for redraw, along with the panes following
// every other, and requests a render.
func (p *Panes) InvalidatePane(name string) {
	p.mu.Lock()
	followers := p.followers
	p.mu.Unlock()

	p.flags.MarkDirty(name)
	for _, f := range followers {
		if f != name {
			p.flags.MarkDirty(f)
		}
	}
	Invalidate()
}

// Invalidate forgets every recorded flag so that all panes are drawn again.
func (p *Panes) Invalidate() {
	p.flags.MarkDirty("")
	Invalidate()
}

// CleanAll marks every recorded pane as up to date without drawing it.
func (p *Panes) CleanAll() {
	p.flags.MarkClean("")
}

func (p *Panes) Tracker() *dirty.Locked {
	return p.flags
}

func (p *Panes) Names() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	names := make([]string, len(p.panes))
	for i, pn := range p.panes {
		names[i] = pn.name
	}
	return names
}

// Draws returns how many times the named pane was drawn.
func (p *Panes) Draws(name string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, pn := range p.panes {
		if pn.name == name {
			return pn.draws
		}
	}
	return 0
}

// Observed returns the pane names recorded in the tracker along with their
// dirty state as seen at the beginning of the last Draw.
func (p *Panes) Observed() ([]string, []bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.observedKeys, p.observedStates
}

func (p *Panes) Children() []Drawable {
	p.mu.Lock()
	defer p.mu.Unlock()
	children := make([]Drawable, len(p.panes))
	for i, pn := range p.panes {
		children[i] = pn.content
	}
	return children
}

type paneLayout struct {
	offset int
	size   int
}

func (p *Panes) layout(height int) []paneLayout {
	layout := make([]paneLayout, len(p.panes))
	exact := 0
	weight := 0
	for _, pn := range p.panes {
		if pn.spec.Strategy == SIZE_EXACT {
			exact += pn.spec.Size
		} else {
			weight += pn.spec.Size
		}
	}
	extra := height - exact
	if extra < 0 {
		extra = 0
	}
	offset := 0
	remaining := extra
	lastWeighted := -1
	for i, pn := range p.panes {
		if pn.spec.Strategy == SIZE_WEIGHT {
			lastWeighted = i
		}
	}
	for i, pn := range p.panes {
		size := pn.spec.Size
		if pn.spec.Strategy == SIZE_WEIGHT {
			if i == lastWeighted {
				// the last weighted pane absorbs rounding leftovers
				size = remaining
			} else if weight > 0 {
				size = extra * pn.spec.Size / weight
			}
			remaining -= size
		}
		if offset+size > height {
			size = height - offset
		}
		if size < 0 {
			size = 0
		}
		layout[i] = paneLayout{offset: offset, size: size}
		offset += size
	}
	return layout
}

func (p *Panes) Draw(ctx *Context) {
	if ctx.Width() != p.width || ctx.Height() != p.height {
		p.width, p.height = ctx.Width(), ctx.Height()
		p.flags.MarkDirty("")
	}
	keys, states := p.flags.Snapshot()

	p.mu.Lock()
	p.observedKeys, p.observedStates = keys, states
	panes := make([]*pane, len(p.panes))
	copy(panes, p.panes)
	layout := p.layout(ctx.Height())
	p.mu.Unlock()

	p.logger.Tracef("draw %v", p.flags)

	for i, pn := range panes {
		if !p.flags.TakeDirty(pn.name) {
			continue
		}
		sub := ctx.Subcontext(0, layout[i].offset, ctx.Width(), layout[i].size)
		sub.Fill(0, 0, sub.Width(), sub.Height(), ' ', tcell.StyleDefault)
		pn.content.Draw(sub)

		p.mu.Lock()
		pn.draws++
		p.mu.Unlock()
	}
}

func (p *Panes) Event(event tcell.Event) bool {
	for _, child := range p.Children() {
		if i, ok := child.(Interactive); ok && i.Event(event) {
			return true
		}
	}
	return false
}
