package presets

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/go-drift/motion/pkg/errors"
)

// debounceWindow collapses the burst of filesystem events an editor
// emits around one save into a single reload.
const debounceWindow = 100 * time.Millisecond

// Watcher hot-reloads a preset file. Each time the file changes on disk
// it is re-parsed and, when valid, handed to the reload callback; a
// file that fails to parse is reported and the previous library stays
// in effect.
type Watcher struct {
	watcher *fsnotify.Watcher
	path    string
	reload  func(*Library)
	closeCh chan struct{}
	once    sync.Once
}

// Watch observes the preset file at path and invokes onReload with each
// successfully parsed revision. The callback runs on the watcher's
// goroutine. Watch does not perform an initial load; call Load first
// for the starting state.
func Watch(path string, onReload func(*Library)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// Watch the directory, not the file: editors save by renaming a
	// temp file over the target, which silently drops a file watch.
	if err := fw.Add(filepath.Dir(path)); err != nil {
		_ = fw.Close()
		return nil, err
	}

	w := &Watcher{
		watcher: fw,
		path:    filepath.Clean(path),
		reload:  onReload,
		closeCh: make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Close stops watching. It is idempotent.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) run() {
	var last time.Time
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			now := time.Now()
			if now.Sub(last) < debounceWindow {
				continue
			}
			last = now

			lib, err := Load(w.path)
			if err != nil {
				errors.Report(&errors.Error{
					Op:   "presets.Watch",
					Kind: errors.KindConfig,
					Err:  err,
				})
				continue
			}
			w.reload(lib)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			errors.Report(&errors.Error{
				Op:   "presets.Watch",
				Kind: errors.KindConfig,
				Err:  err,
			})
		case <-w.closeCh:
			return
		}
	}
}
