package dirty

import "sync"

// Locked is a Tracker guarded by a mutex. Every method holds the lock for
// its whole duration.
type Locked struct {
	mu sync.Mutex
	t  Tracker
}

func NewLocked() *Locked {
	return &Locked{}
}

func (l *Locked) MarkDirty(name string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.t.MarkDirty(name)
}

func (l *Locked) IsDirty(name string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.t.IsDirty(name)
}

func (l *Locked) MarkClean(name string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.t.MarkClean(name)
}

func (l *Locked) AllKeys() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.t.AllKeys()
}

func (l *Locked) DirtyCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.t.DirtyCount()
}

func (l *Locked) DebugString() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.t.DebugString()
}

func (l *Locked) String() string {
	return l.DebugString()
}

// Snapshot returns the dirty state of every recorded name, in recording
// order, as observed under a single acquisition of the lock.
func (l *Locked) Snapshot() ([]string, []bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	keys := l.t.AllKeys()
	states := make([]bool, len(keys))
	for i, k := range keys {
		states[i] = l.t.IsDirty(k)
	}
	return keys, states
}

// TakeDirty reports whether name is dirty and marks it clean in one step.
func (l *Locked) TakeDirty(name string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	d := l.t.IsDirty(name)
	if d {
		l.t.MarkClean(name)
	}
	return d
}
