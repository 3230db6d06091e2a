package config

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/philipp01105/logfile"
)

// DefaultDebounce is the delay between the last file event and the reload.
const DefaultDebounce = 100 * time.Millisecond

// ReloadFunc is called after every reload attempt with the new config, or
// with the error that kept the previous filters in place.
type ReloadFunc func(cfg *Config, err error)

// Watcher reloads a config file on change and applies its level filters to
// a Logfile. Routers are not rebuilt.
type Watcher struct {
	path     string
	lf       *logfile.Logfile
	onReload ReloadFunc
	debounce time.Duration

	watcher *fsnotify.Watcher
	ctx     context.Context
	cancel  context.CancelFunc
	done    chan struct{}

	mu    sync.Mutex
	timer *time.Timer
}

// WatchOption configures a Watcher.
type WatchOption func(*Watcher)

// WithDebounce sets the debounce delay.
func WithDebounce(d time.Duration) WatchOption {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithReloadFunc registers a callback for reload results.
func WithReloadFunc(fn ReloadFunc) WatchOption {
	return func(w *Watcher) {
		w.onReload = fn
	}
}

// Watch starts watching path for changes. The directory is watched rather
// than the file so editors that replace the file are handled.
func Watch(path string, lf *logfile.Logfile, opts ...WatchOption) (*Watcher, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	if _, err := FormatFromPath(path); err != nil {
		return nil, err
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: create watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(path)); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("config: watch %s: %w", filepath.Dir(path), err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		path:     path,
		lf:       lf,
		debounce: DefaultDebounce,
		watcher:  fw,
		ctx:      ctx,
		cancel:   cancel,
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	go w.run()
	return w, nil
}

// Reload re-reads the file and swaps the filters. On error the current
// filters stay in effect.
func (w *Watcher) Reload() (*Config, error) {
	cfg, err := LoadFile(w.path)
	if err != nil {
		return nil, err
	}
	w.lf.SetFilters(cfg.Filters()...)
	return cfg, nil
}

// Stop stops watching. It waits for the event loop to exit and cancels a
// pending reload.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	w.mu.Unlock()

	w.cancel()
	err := w.watcher.Close()
	<-w.done
	return err
}

func (w *Watcher) run() {
	defer close(w.done)
	name := filepath.Base(w.path)

	for {
		select {
		case <-w.ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != name {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				w.schedule()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			if w.onReload != nil {
				w.onReload(nil, fmt.Errorf("config: watch error: %w", err))
			}
		}
	}
}

func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		select {
		case <-w.ctx.Done():
			return
		default:
		}
		cfg, err := w.Reload()
		if w.onReload != nil {
			w.onReload(cfg, err)
		}
	})
}
