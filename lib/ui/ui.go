package ui

import (
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
)

const (
	// nominal state, UI is up to date
	CLEAN int32 = iota
	// UI render has been queued in Redraw channel
	DIRTY
)

// State of the UI. Any value other than 0 means the UI is in a dirty state.
// This should only be accessed via atomic operations to maintain thread safety
var uiState int32

var Callbacks = make(chan func(), 50)

// QueueFunc queues a function to be called in the main goroutine. This can be
// used to prevent race conditions from delayed functions
func QueueFunc(fn func()) {
	Callbacks <- fn
}

// Use a buffered channel of size 1 to avoid blocking callers of Invalidate()
var Redraw = make(chan bool, 1)

// Invalidate requests a render as soon as possible. Invalidate can be called
// from any goroutine and will never block.
func Invalidate() {
	if atomic.SwapInt32(&uiState, DIRTY) != DIRTY {
		select {
		case Redraw <- true:
		default:
		}
	}
}

// IsInvalid reports whether a render is pending.
func IsInvalid() bool {
	return atomic.LoadInt32(&uiState) != CLEAN
}

type UI struct {
	Content DrawableInteractive
	Quit    chan struct{}
	Events  chan tcell.Event
	ctx     *Context
	screen  tcell.Screen
	exit    int32
}

// Initialize takes ownership of screen, which is created from the terminal
// when nil.
func Initialize(content DrawableInteractive, screen tcell.Screen) (*UI, error) {
	if screen == nil {
		var err error
		if screen, err = tcell.NewScreen(); err != nil {
			return nil, err
		}
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	screen.Clear()
	screen.HideCursor()

	width, height := screen.Size()

	state := UI{
		Content: content,
		screen:  screen,
		// Use unbuffered channels (always blocking unless somebody can
		// read immediately) We are merely using this as a proxy to
		// tcell screen internal event channel.
		Events: make(chan tcell.Event),
		Quit:   make(chan struct{}),
	}
	state.ctx = NewContext(width, height, screen)

	Invalidate()
	if root, ok := content.(RootDrawable); ok {
		root.Initialize(&state)
	}
	go state.screen.ChannelEvents(state.Events, state.Quit)

	return &state, nil
}

func (state *UI) Exit() {
	if atomic.SwapInt32(&state.exit, 1) == 0 {
		close(state.Quit)
	}
}

func (state *UI) ShouldExit() bool {
	return atomic.LoadInt32(&state.exit) == 1
}

func (state *UI) Close() {
	state.screen.Fini()
}

// Render draws the content if a render was requested since the last one.
func (state *UI) Render() bool {
	if atomic.SwapInt32(&uiState, CLEAN) == CLEAN {
		return false
	}
	state.Content.Draw(state.ctx)
	state.screen.Show()
	return true
}

func (state *UI) EnableMouse() {
	state.screen.EnableMouse()
}

func (state *UI) HandleEvent(event tcell.Event) {
	if event, ok := event.(*tcell.EventResize); ok {
		state.screen.Clear()
		width, height := event.Size()
		state.ctx = NewContext(width, height, state.screen)
		Invalidate()
	}
	state.Content.Event(event)
}
