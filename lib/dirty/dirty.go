package dirty

import (
	"strconv"
	"strings"
)

// Tracker records which named pieces of state need to be reprocessed.
//
// A tracker with no recorded names is considered entirely dirty, and a name
// that was never recorded is dirty as well: state that was never explicitly
// cleaned is always processed at least once.
//
// Tracker is not safe for concurrent use, see Locked.
type Tracker struct {
	flags map[string]bool
	// names in the order they were first recorded
	order      []string
	dirtyCount int
}

func New() *Tracker {
	return &Tracker{flags: make(map[string]bool)}
}

func (t *Tracker) set(name string, value bool) {
	if t.flags == nil {
		t.flags = make(map[string]bool)
	}
	if _, ok := t.flags[name]; !ok {
		t.order = append(t.order, name)
	}
	t.flags[name] = value
}

func (t *Tracker) count() {
	c := 0
	for _, v := range t.flags {
		if v {
			c++
		}
	}
	t.dirtyCount = c
}

// MarkDirty flags name as needing to be reprocessed. An empty name forgets
// every recorded flag which makes all names, known or not, dirty.
func (t *Tracker) MarkDirty(name string) {
	if name != "" {
		t.set(name, true)
	} else {
		t.flags = make(map[string]bool)
		t.order = nil
	}
	t.count()
}

// IsDirty reports whether name needs to be reprocessed. With an empty name,
// it reports whether anything does.
func (t *Tracker) IsDirty(name string) bool {
	if name == "" {
		return len(t.flags) == 0 || t.dirtyCount > 0
	}
	if v, ok := t.flags[name]; ok && !v {
		return false
	}
	return true
}

// MarkClean flags name as up to date. An empty name cleans every recorded
// flag but keeps them recorded.
func (t *Tracker) MarkClean(name string) {
	if name != "" {
		t.set(name, false)
	} else {
		for k := range t.flags {
			t.flags[k] = false
		}
	}
	t.count()
}

// AllKeys returns the recorded names in the order they were first recorded.
func (t *Tracker) AllKeys() []string {
	keys := make([]string, len(t.order))
	copy(keys, t.order)
	return keys
}

// DirtyCount returns the number of recorded names currently flagged dirty.
func (t *Tracker) DirtyCount() int {
	return t.dirtyCount
}

// DebugString returns a compact snapshot such as "c:1,a:false,b:true,".
func (t *Tracker) DebugString() string {
	var b strings.Builder
	b.WriteString("c:")
	b.WriteString(strconv.Itoa(t.dirtyCount))
	b.WriteByte(',')
	for _, k := range t.order {
		b.WriteString(k)
		b.WriteByte(':')
		b.WriteString(strconv.FormatBool(t.flags[k]))
		b.WriteByte(',')
	}
	return b.String()
}

func (t *Tracker) String() string {
	return t.DebugString()
}
