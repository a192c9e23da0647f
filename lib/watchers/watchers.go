package watchers

import (
	"fmt"
	"path/filepath"
	"runtime"
	"sync"

	"git.sr.ht/~rjarry/dirtyview/lib/log"
)

// FSWatcher is a file system watcher
type FSWatcher interface {
	Events() chan *FSEvent
	// Adds a directory or file to the watcher
	Add(string) error
	// Removes a directory or file from the watcher
	Remove(string) error
	Close() error
}

type FSOperation int

const (
	FSCreate FSOperation = iota
	FSWrite
	FSRemove
	FSRename
)

type FSEvent struct {
	Operation FSOperation
	Path      string
}

type WatcherFactoryFunc func() (FSWatcher, error)

var watcherFactory WatcherFactoryFunc

func RegisterWatcherFactory(fn WatcherFactoryFunc) {
	watcherFactory = fn
}

func NewWatcher() (FSWatcher, error) {
	if watcherFactory == nil {
		return nil, fmt.Errorf("Unsupported OS: %s", runtime.GOOS)
	}
	return watcherFactory()
}

// FileWatcher calls a function every time a single file is written or
// replaced.
type FileWatcher struct {
	w        FSWatcher
	path     string
	onChange func(path string)
	done     chan struct{}
	once     sync.Once
}

// WatchFile watches the directory containing path so that editors that
// replace files by renaming them are noticed as well.
func WatchFile(path string, onChange func(path string)) (*FileWatcher, error) {
	w, err := NewWatcher()
	if err != nil {
		return nil, err
	}
	path = filepath.Clean(path)
	if err := w.Add(filepath.Dir(path)); err != nil {
		w.Close()
		return nil, err
	}
	return newFileWatcher(w, path, onChange), nil
}

func newFileWatcher(w FSWatcher, path string, onChange func(path string)) *FileWatcher {
	fw := &FileWatcher{
		w:        w,
		path:     path,
		onChange: onChange,
		done:     make(chan struct{}),
	}
	go fw.watch()
	return fw
}

func (fw *FileWatcher) watch() {
	defer log.PanicHandler()
	for {
		select {
		case <-fw.done:
			return
		case ev, ok := <-fw.w.Events():
			if !ok {
				return
			}
			if filepath.Clean(ev.Path) != fw.path {
				continue
			}
			// a rename is reported on the old name, the new file shows
			// up as a create
			switch ev.Operation {
			case FSCreate, FSWrite:
				log.Debugf("%s changed", fw.path)
				fw.onChange(fw.path)
			}
		}
	}
}

func (fw *FileWatcher) Close() error {
	var err error
	fw.once.Do(func() {
		close(fw.done)
		err = fw.w.Close()
	})
	return err
}
