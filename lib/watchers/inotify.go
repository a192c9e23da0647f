package watchers

import (
	"github.com/fsnotify/fsnotify"

	"git.sr.ht/~rjarry/dirtyview/lib/log"
)

func init() {
	RegisterWatcherFactory(newInotifyWatcher)
}

type inotifyWatcher struct {
	w    *fsnotify.Watcher
	ch   chan *FSEvent
	done chan struct{}
}

func newInotifyWatcher() (FSWatcher, error) {
	watcher := &inotifyWatcher{
		ch:   make(chan *FSEvent),
		done: make(chan struct{}),
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	watcher.w = w

	go watcher.watch()
	return watcher, nil
}

func (w *inotifyWatcher) watch() {
	defer log.PanicHandler()
	defer close(w.ch)
	for {
		select {
		case err, ok := <-w.w.Errors:
			if !ok {
				return
			}
			log.Warnf("fsnotify: %v", err)
		case ev, ok := <-w.w.Events:
			if !ok {
				return
			}
			var op FSOperation
			switch {
			case ev.Op&fsnotify.Create != 0:
				op = FSCreate
			case ev.Op&fsnotify.Write != 0:
				op = FSWrite
			case ev.Op&fsnotify.Remove != 0:
				op = FSRemove
			case ev.Op&fsnotify.Rename != 0:
				op = FSRename
			default:
				continue
			}
			select {
			case w.ch <- &FSEvent{Operation: op, Path: ev.Name}:
			case <-w.done:
				return
			}
		}
	}
}

func (w *inotifyWatcher) Events() chan *FSEvent {
	return w.ch
}

func (w *inotifyWatcher) Add(p string) error {
	return w.w.Add(p)
}

func (w *inotifyWatcher) Remove(p string) error {
	return w.w.Remove(p)
}

func (w *inotifyWatcher) Close() error {
	close(w.done)
	return w.w.Close()
}
