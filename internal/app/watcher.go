package app

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bft-labs/secpad/internal/domain"
	"github.com/bft-labs/secpad/internal/ports"
)

// DefaultDebounce is the delay between the last relevant event and the pass it triggers.
const DefaultDebounce = 200 * time.Millisecond

// Watcher re-runs a Runner whenever section files appear in its directory.
type Watcher struct {
	runner   *Runner
	logger   ports.Logger
	debounce time.Duration

	// onPass is called after every pass; used by tests.
	onPass func(domain.Report, error)
}

// NewWatcher creates a watcher around runner.
// A non-positive debounce selects DefaultDebounce.
func NewWatcher(runner *Runner, logger ports.Logger, debounce time.Duration) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{
		runner:   runner,
		logger:   logger,
		debounce: debounce,
	}
}

// Run watches the runner's directory until ctx is canceled.
// It performs one pass right away and another after each burst of Create or
// Rename events on .js entries. Pass failures are logged; they do not stop
// the watcher. Passes never overlap since they run on the watch goroutine.
func (w *Watcher) Run(ctx context.Context) error {
	dir := w.runner.Dir()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	w.logger.Info("watching directory", ports.String("dir", dir), ports.Duration("debounce", w.debounce))
	w.pass(ctx)

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !relevant(event) {
				continue
			}
			w.logger.Debug("directory changed", ports.String("name", filepath.Base(event.Name)), ports.String("op", event.Op.String()))
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			w.pass(ctx)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watcher error", ports.Err(err))
		}
	}
}

func (w *Watcher) pass(ctx context.Context) {
	report, err := w.runner.Run(ctx)
	if err != nil && ctx.Err() == nil {
		w.logger.Error("pass failed", ports.String("dir", report.Dir), ports.Err(err))
	}
	if w.onPass != nil {
		w.onPass(report, err)
	}
}

// relevant reports whether event may have produced a section file to rename.
func relevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Create|fsnotify.Rename) == 0 {
		return false
	}
	return strings.HasSuffix(filepath.Base(event.Name), domain.Extension)
}
