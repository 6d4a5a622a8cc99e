// Package hotreload watches shader files and reports when they settle after a change.
package hotreload

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/bloeys/glpyramid/logging"
	"github.com/fsnotify/fsnotify"
)

const (
	DefaultDebounce = 100 * time.Millisecond
)

// Watcher calls OnChange once per burst of writes to any watched file.
// OnChange runs on the watcher's goroutine.
type Watcher struct {
	fsw      *fsnotify.Watcher
	files    map[string]struct{}
	debounce time.Duration
	onChange func()

	done      chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// New starts watching paths. Their directories are watched so editors that
// replace files on save are still seen.
func New(paths []string, debounce time.Duration, onChange func()) (*Watcher, error) {

	if len(paths) == 0 {
		return nil, errors.New("no files to watch")
	}

	if onChange == nil {
		return nil, errors.New("onChange must not be nil")
	}

	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	w := &Watcher{
		fsw:      fsw,
		files:    make(map[string]struct{}, len(paths)),
		debounce: debounce,
		onChange: onChange,
		done:     make(chan struct{}),
	}

	dirs := make(map[string]struct{})
	for _, p := range paths {

		abs, err := filepath.Abs(p)
		if err != nil {
			fsw.Close()
			return nil, fmt.Errorf("failed to resolve '%s': %w", p, err)
		}

		w.files[abs] = struct{}{}
		dirs[filepath.Dir(abs)] = struct{}{}
	}

	for dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			fsw.Close()
			return nil, fmt.Errorf("failed to watch '%s': %w", dir, err)
		}
	}

	w.wg.Add(1)
	go w.run()

	return w, nil
}

func (w *Watcher) isWatched(name string) bool {

	abs, err := filepath.Abs(name)
	if err != nil {
		return false
	}

	_, ok := w.files[abs]
	return ok
}

func (w *Watcher) run() {

	defer w.wg.Done()

	// nil until a change arrives, then it fires once the burst is over
	var settle <-chan time.Time

	for {
		select {

		case e, ok := <-w.fsw.Events:
			if !ok {
				return
			}

			if e.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 || !w.isWatched(e.Name) {
				continue
			}

			logging.DebugLog.With("shader file changed", "file", e.Name, "op", e.Op.String())
			settle = time.After(w.debounce)

		case <-settle:
			settle = nil
			w.onChange()

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			logging.ErrLog.Printf("Shader watcher error: %v\n", err)

		case <-w.done:
			return
		}
	}
}

// Close stops the watcher and waits for its goroutine. Safe to call more than once.
func (w *Watcher) Close() error {

	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		err = w.fsw.Close()
		w.wg.Wait()
	})

	return err
}
