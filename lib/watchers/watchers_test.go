package watchers

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dirtyview.conf")
	require.NoError(t, os.WriteFile(path, []byte("[ui]\n"), 0o600))

	changes := make(chan string, 16)
	fw, err := WatchFile(path, func(p string) { changes <- p })
	require.NoError(t, err)
	defer fw.Close()

	// unrelated files are ignored
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other"), []byte("x"), 0o600))
	require.NoError(t, os.WriteFile(path, []byte("[ui]\npanes = clock\n"), 0o600))

	select {
	case p := <-changes:
		assert.Equal(t, path, p)
	case <-time.After(5 * time.Second):
		t.Fatal("no change notified")
	}

	assert.NoError(t, fw.Close())
	assert.NoError(t, fw.Close())
}

func TestWatchFileMissingDirectory(t *testing.T) {
	_, err := WatchFile(filepath.Join(t.TempDir(), "nope", "file"), func(string) {})
	assert.Error(t, err)
}

type fakeWatcher struct {
	ch chan *FSEvent
}

func (f *fakeWatcher) Events() chan *FSEvent { return f.ch }
func (f *fakeWatcher) Add(string) error      { return nil }
func (f *fakeWatcher) Remove(string) error   { return nil }
func (f *fakeWatcher) Close() error          { return nil }

func TestFileWatcherIgnoresMovedAway(t *testing.T) {
	fake := &fakeWatcher{ch: make(chan *FSEvent)}
	changes := make(chan string, 16)
	fw := newFileWatcher(fake, "/etc/dirtyview.conf", func(p string) { changes <- p })
	defer fw.Close()

	fake.ch <- &FSEvent{Operation: FSRename, Path: "/etc/dirtyview.conf"}
	fake.ch <- &FSEvent{Operation: FSRemove, Path: "/etc/dirtyview.conf"}
	fake.ch <- &FSEvent{Operation: FSCreate, Path: "/etc/dirtyview.conf~"}
	// each send returns once the previous event was fully handled
	assert.Empty(t, changes)

	fake.ch <- &FSEvent{Operation: FSCreate, Path: "/etc/dirtyview.conf"}
	select {
	case p := <-changes:
		assert.Equal(t, "/etc/dirtyview.conf", p)
	case <-time.After(5 * time.Second):
		t.Fatal("no change notified")
	}
}
