// Package bundlewatch reports changes to the language server bundle on disk.
package bundlewatch

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const _defaultDebounce = time.Second

// Module provides the Watcher.
var Module = fx.Provide(New)

// Watcher reports changes to a single file.
type Watcher interface {
	// Watch calls onChange once writes to path have settled. The returned func ends the watch.
	Watch(path string, onChange func()) (stop func() error, err error)
}

// Params are the dependencies of the Watcher.
type Params struct {
	fx.In

	Logger *zap.SugaredLogger
}

type watcher struct {
	logger   *zap.SugaredLogger
	debounce time.Duration
}

// New creates a new Watcher.
func New(p Params) Watcher {
	return &watcher{
		logger:   p.Logger,
		debounce: _defaultDebounce,
	}
}

func (w *watcher) Watch(path string, onChange func()) (func() error, error) {
	path = filepath.Clean(path)

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create file system watcher: %w", err)
	}
	// Bundles are usually replaced rather than written in place, so the parent is watched.
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watching %q: %w", path, err)
	}

	ww := &watch{
		path:     path,
		watcher:  fsw,
		onChange: onChange,
		debounce: w.debounce,
		logger:   w.logger.With("path", path),
		stopped:  make(chan struct{}),
	}
	ww.wg.Add(1)
	go ww.run()

	return ww.stop, nil
}

type watch struct {
	path     string
	watcher  *fsnotify.Watcher
	onChange func()
	debounce time.Duration
	logger   *zap.SugaredLogger

	mu       sync.Mutex
	timer    *time.Timer
	stopped  chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

func (w *watch) run() {
	defer w.wg.Done()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.consume(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Errorf("bundle watcher error: %v", err)
		case <-w.stopped:
			return
		}
	}
}

func (w *watch) consume(event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.path {
		return
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	select {
	case <-w.stopped:
		return
	default:
	}

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		w.logger.Infow("language server bundle changed")
		w.onChange()
	})
}

func (w *watch) stop() error {
	var err error
	w.stopOnce.Do(func() {
		w.mu.Lock()
		close(w.stopped)
		if w.timer != nil {
			w.timer.Stop()
		}
		w.mu.Unlock()

		err = w.watcher.Close()
		w.wg.Wait()
	})
	return err
}
