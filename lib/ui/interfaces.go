package ui

import (
	"github.com/gdamore/tcell/v2"
)

type Drawable interface {
	// Called when this renderable should draw itself
	Draw(ctx *Context)
	// Invalidates the drawable
	Invalidate()
}

type Interactive interface {
	// Returns true if the event was handled by this component
	Event(event tcell.Event) bool
}

type DrawableInteractive interface {
	Drawable
	Interactive
}

// Content that is notified with the UI right after initialization
type RootDrawable interface {
	Initialize(ui *UI)
}

// A drawable which contains other drawables
type Container interface {
	Drawable
	// Return all of the drawables which are children of this one (do not
	// recurse into your grandchildren).
	Children() []Drawable
}
