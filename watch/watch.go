// Package watch rebuilds a chord table whenever its data file changes on disk.
package watch

import (
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/fsnotify/fsnotify"
	"github.com/jsphweid/chordex/chord"
	"github.com/jsphweid/chordex/data"
)

// editors often write a file several times per save
const debounceInterval = 100 * time.Millisecond

// Load reads and builds a table from a user data file.
func Load(path string) (*chord.Table, error) {
	defs, err := data.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return chord.BuildStrict(defs)
}

type Watcher struct {
	fw      *fsnotify.Watcher
	path    string
	logger  *slog.Logger
	done    chan struct{}
	stopped bool
	mu      sync.Mutex
}

// New watches the directory holding path rather than the file itself, so
// the watch survives editors that save by renaming a temp file over it.
func New(path string, logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = slog.Default()
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, err
	}
	return &Watcher{
		fw:     fw,
		path:   abs,
		logger: logger,
		done:   make(chan struct{}),
	}, nil
}

// Start calls onReload with a freshly built table after each burst of
// changes. A file that fails to load is logged and skipped.
func (w *Watcher) Start(onReload func(*chord.Table)) {
	debounced := debounce.New(debounceInterval)
	reload := func() {
		t, err := Load(w.path)
		if err != nil {
			w.logger.Warn("Failed to reload chord data", slog.String("path", w.path), slog.String("error", err.Error()))
			return
		}
		w.logger.Info("Reloaded chord data", slog.String("path", w.path), slog.Int("names", t.Len()))
		onReload(t)
	}

	go func() {
		for {
			select {
			case event, ok := <-w.fw.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != w.path {
					continue
				}
				if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
					debounced(reload)
				}

			case err, ok := <-w.fw.Errors:
				if !ok {
					return
				}
				w.logger.Warn("Watcher error", slog.String("error", err.Error()))

			case <-w.done:
				return
			}
		}
	}()
}

// Stop ends watching. Safe to call multiple times.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped {
		return nil
	}
	w.stopped = true
	close(w.done)
	return w.fw.Close()
}
