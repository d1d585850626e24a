// Package watch reports changes to a single file, coalescing bursts of
// filesystem events into one notification.
package watch

import (
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// FileWatcher watches one file and calls onChange after its content settles.
type FileWatcher struct {
	watcher  *fsnotify.Watcher
	filePath string
	debounce time.Duration
	onChange func()
	logger   *slog.Logger

	done    chan struct{}
	mu      sync.Mutex
	running bool
	closed  bool
	timer   *time.Timer
}

// New creates a watcher for filePath. onChange runs on a timer goroutine;
// callers that touch UI state must hand off to their own loop.
func New(filePath string, debounce time.Duration, onChange func(), logger *slog.Logger) (*FileWatcher, error) {
	if logger == nil {
		logger = slog.Default()
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(filePath)
	if err != nil {
		_ = watcher.Close()
		return nil, err
	}

	return &FileWatcher{
		watcher:  watcher,
		filePath: abs,
		debounce: debounce,
		onChange: onChange,
		logger:   logger,
		done:     make(chan struct{}),
	}, nil
}

// Start begins watching the file for changes.
func (fw *FileWatcher) Start() error {
	fw.mu.Lock()
	if fw.running {
		fw.mu.Unlock()
		return nil
	}
	fw.running = true
	fw.mu.Unlock()

	// Watch the directory so replace-by-rename saves are seen too
	dir := filepath.Dir(fw.filePath)
	if err := fw.watcher.Add(dir); err != nil {
		fw.mu.Lock()
		fw.running = false
		fw.mu.Unlock()
		return err
	}

	go fw.watch()
	return nil
}

func (fw *FileWatcher) watch() {
	filename := filepath.Base(fw.filePath)

	for {
		select {
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}

			if filepath.Base(event.Name) != filename {
				continue
			}

			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				fw.logger.Debug("image file changed", "file", fw.filePath, "op", event.Op.String())
				fw.schedule()
			}

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			fw.logger.Warn("file watcher error", "error", err)

		case <-fw.done:
			return
		}
	}
}

// schedule restarts the debounce timer.
func (fw *FileWatcher) schedule() {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	if !fw.running {
		return
	}
	if fw.timer != nil {
		fw.timer.Stop()
	}
	fw.timer = time.AfterFunc(fw.debounce, fw.fire)
}

func (fw *FileWatcher) fire() {
	fw.mu.Lock()
	running := fw.running
	fw.timer = nil
	fw.mu.Unlock()

	if running {
		fw.onChange()
	}
}

// Path returns the absolute path being watched.
func (fw *FileWatcher) Path() string {
	return fw.filePath
}

// Stop stops the file watcher and releases it, whether or not Start
// succeeded. A pending notification is dropped.
func (fw *FileWatcher) Stop() error {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	if fw.closed {
		return nil
	}
	fw.closed = true

	if fw.running {
		fw.running = false
		close(fw.done)
	}
	if fw.timer != nil {
		fw.timer.Stop()
		fw.timer = nil
	}
	return fw.watcher.Close()
}
