package assets

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

var ErrWatcherClosed = errors.New("watcher closed")

// Change is a file that was created, written or removed.
type Change struct {
	Path    string
	Removed bool
}

// Watcher watches a directory tree and reports file changes. The callback
// runs on the watcher's goroutine; hand the work to the game loop with
// Loop.Post.
type Watcher struct {
	fs       *fsnotify.Watcher
	onChange func(Change)
	log      *log.Logger

	done      chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// Watch starts watching root and every directory below it, including ones
// created later.
func Watch(root string, onChange func(Change), logger *log.Logger) (*Watcher, error) {
	if logger == nil {
		logger = log.Default()
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fs:       fsw,
		onChange: onChange,
		log:      logger,
		done:     make(chan struct{}),
	}
	if err := w.addRecursive(root); err != nil {
		fsw.Close()
		return nil, err
	}

	w.wg.Add(1)
	go w.run()
	return w, nil
}

// Close stops the watcher and waits for its goroutine.
func (w *Watcher) Close() error {
	err := ErrWatcherClosed
	w.closeOnce.Do(func() {
		close(w.done)
		w.wg.Wait()
		err = w.fs.Close()
	})
	return err
}

func (w *Watcher) run() {
	defer w.wg.Done()
	for {
		select {
		case e, ok := <-w.fs.Events:
			if !ok {
				return
			}
			w.handle(e)

		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.log.Error("asset watcher", "err", err)

		case <-w.done:
			return
		}
	}
}

func (w *Watcher) handle(e fsnotify.Event) {
	if e.Has(fsnotify.Remove) || e.Has(fsnotify.Rename) {
		// A removed directory can't be stat'ed, so try to unwatch every path.
		_ = w.fs.Remove(e.Name)
		w.onChange(Change{Path: e.Name, Removed: true})
		return
	}

	info, err := os.Stat(e.Name)
	if err != nil {
		return
	}
	if info.IsDir() {
		if e.Has(fsnotify.Create) {
			if err := w.addRecursive(e.Name); err != nil {
				w.log.Warn("watch new directory", "path", e.Name, "err", err)
			}
		}
		return
	}
	if e.Has(fsnotify.Create) || e.Has(fsnotify.Write) {
		w.onChange(Change{Path: e.Name})
	}
}

func (w *Watcher) addRecursive(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.fs.Add(path)
		}
		return nil
	})
}
