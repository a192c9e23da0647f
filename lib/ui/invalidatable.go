package ui

import (
	"sync/atomic"
)

// Invalidatable is embedded by drawables that let their owner know when they
// need to be drawn again.
type Invalidatable struct {
	onInvalidate atomic.Value
}

func (i *Invalidatable) OnInvalidate(f func(d Drawable)) {
	i.onInvalidate.Store(f)
}

// DoInvalidate notifies the owner of d, or requests a full render when d
// has no owner.
func (i *Invalidatable) DoInvalidate(d Drawable) {
	if f, ok := i.onInvalidate.Load().(func(d Drawable)); ok && f != nil {
		f(d)
		return
	}
	Invalidate()
}
