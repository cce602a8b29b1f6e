// Package watch re-exports a design's artifacts whenever its YAML file
// changes on disk. Editors save in bursts, so events are debounced before a
// reload is attempted; a design that fails validation is reported and
// skipped, never partially exported.
package watch

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"biodesign/internal/design"
	"biodesign/internal/export"
)

// Stats tracks watcher activity, mainly for tests.
type Stats struct {
	Events        int
	Exports       int
	InvalidLoads  int
	Errors        int
	LastEventTime time.Time
}

// Watcher watches one design file and exports its artifacts on change.
type Watcher struct {
	mu       sync.Mutex
	watcher  *fsnotify.Watcher
	path     string // design file, absolute
	outDir   string
	debounce time.Duration
	logger   *zap.Logger
	pending  bool
	lastSeen time.Time
	stopCh   chan struct{}
	doneCh   chan struct{}
	running  bool
	stats    Stats
}

// New creates a watcher for the design file at path, exporting into outDir.
func New(path, outDir string, logger *zap.Logger) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		watcher:  fw,
		path:     abs,
		outDir:   outDir,
		debounce: 300 * time.Millisecond,
		logger:   logger,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// Start begins watching and performs one initial export. Non-blocking.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	// Watch the directory, not the file: editors replace files on save and
	// a file watch would be lost after the first rename.
	if err := w.watcher.Add(filepath.Dir(w.path)); err != nil {
		// Back out so a later Stop does not wait on a loop that never ran.
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
		w.watcher.Close()
		return err
	}

	w.export(ctx)
	go w.run(ctx)
	return nil
}

// Stop stops the watcher and waits for the loop to drain.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	<-w.doneCh

	if err := w.watcher.Close(); err != nil {
		w.logger.Warn("error closing watcher", zap.Error(err))
	}
}

// Snapshot returns a copy of the activity counters.
func (w *Watcher) Snapshot() Stats {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stats
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watch error", zap.Error(err))
			w.mu.Lock()
			w.stats.Errors++
			w.mu.Unlock()

		case <-ticker.C:
			if w.takePending() {
				w.export(ctx)
			}
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.path {
		return
	}
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return
	}

	w.mu.Lock()
	w.stats.Events++
	w.stats.LastEventTime = time.Now()
	w.pending = true
	w.lastSeen = time.Now()
	w.mu.Unlock()
}

// takePending reports whether a debounced event is ready to process and
// clears it.
func (w *Watcher) takePending() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.pending || time.Since(w.lastSeen) < w.debounce {
		return false
	}
	w.pending = false
	return true
}

func (w *Watcher) export(ctx context.Context) {
	d, err := design.Load(w.path)
	if err != nil {
		w.logger.Warn("design not exportable", zap.String("path", w.path), zap.Error(err))
		w.mu.Lock()
		w.stats.InvalidLoads++
		w.mu.Unlock()
		return
	}

	if err := export.WriteAll(ctx, w.outDir, d); err != nil {
		w.logger.Error("export failed", zap.String("dir", w.outDir), zap.Error(err))
		w.mu.Lock()
		w.stats.Errors++
		w.mu.Unlock()
		return
	}

	w.mu.Lock()
	w.stats.Exports++
	w.mu.Unlock()
	w.logger.Info("exported design artifacts", zap.String("design", w.path), zap.String("dir", w.outDir))
}
