package config

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const reloadDebounce = 150 * time.Millisecond

// ReloadedMsg carries the result of re-reading the config after a change.
// Err is set when the new file is unreadable or invalid; Config is nil then.
type ReloadedMsg struct {
	Config *Config
	Err    error
}

// Watcher re-loads the configuration when one of its files changes.
// Directories are watched rather than files so editors that replace the
// file on save are still seen.
type Watcher struct {
	explicit string
	files    map[string]bool
	notify   func(ReloadedMsg)

	fsWatcher *fsnotify.Watcher
	done      chan struct{}
	wg        sync.WaitGroup

	mu    sync.Mutex
	timer *time.Timer
}

// NewWatcher watches the standard config paths plus explicit.
// notify is called from the watcher goroutine.
func NewWatcher(explicit string, notify func(ReloadedMsg)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create config watcher: %w", err)
	}

	paths := getConfigPaths()
	if explicit != "" {
		paths = append(paths, expandPath(explicit))
	}

	w := &Watcher{
		explicit:  explicit,
		files:     make(map[string]bool),
		notify:    notify,
		fsWatcher: fsw,
		done:      make(chan struct{}),
	}

	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			continue
		}
		w.files[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		// Missing directories are skipped; there is nothing to reload.
		_ = fsw.Add(dir)
	}

	if len(fsw.WatchList()) == 0 {
		fsw.Close()
		return nil, fmt.Errorf("config watcher: no config directory exists")
	}

	w.wg.Add(1)
	go w.loop()
	return w, nil
}

func (w *Watcher) loop() {
	defer w.wg.Done()
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if !w.files[filepath.Clean(event.Name)] {
				continue
			}
			if event.Op.Has(fsnotify.Write) || event.Op.Has(fsnotify.Create) ||
				event.Op.Has(fsnotify.Rename) || event.Op.Has(fsnotify.Remove) {
				w.schedule()
			}
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.notify(ReloadedMsg{Err: fmt.Errorf("config watcher: %w", err)})
		}
	}
}

// schedule coalesces bursts of events into a single reload.
func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(reloadDebounce, w.reload)
}

func (w *Watcher) reload() {
	select {
	case <-w.done:
		return
	default:
	}
	cfg, err := Load(w.explicit)
	w.notify(ReloadedMsg{Config: cfg, Err: err})
}

// Close stops watching. Pending reloads are dropped.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()

	close(w.done)
	err := w.fsWatcher.Close()
	w.wg.Wait()
	return err
}
