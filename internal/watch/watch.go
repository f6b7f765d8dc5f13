// Package watch re-runs introspection when schema files change.
package watch

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/leapstack-labs/leapgql/internal/loader"
)

// DefaultDebounce is the quiet period before a batch of changes is handled.
const DefaultDebounce = 100 * time.Millisecond

// ChangeFunc handles a batch of changed paths. An error is logged and the
// watcher keeps running.
type ChangeFunc func(ctx context.Context, changed []string) error

// Config holds configuration for creating a Watcher.
type Config struct {
	// Pattern selects the watched schema files
	Pattern string
	// Debounce is the quiet period (default DefaultDebounce)
	Debounce time.Duration
	// OnChange is called once per debounced batch
	OnChange ChangeFunc
	// Logger for structured logging (optional, defaults to discard)
	Logger *slog.Logger
}

// Watcher watches the directory tree a pattern is anchored at.
type Watcher struct {
	matcher  *loader.Matcher
	debounce time.Duration
	onChange ChangeFunc
	logger   *slog.Logger
}

// New creates a Watcher.
func New(cfg Config) (*Watcher, error) {
	if cfg.OnChange == nil {
		return nil, fmt.Errorf("change handler is required")
	}

	matcher, err := loader.NewMatcher(cfg.Pattern)
	if err != nil {
		return nil, err
	}

	debounce := cfg.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Watcher{
		matcher:  matcher,
		debounce: debounce,
		onChange: cfg.OnChange,
		logger:   logger,
	}, nil
}

// Run watches until ctx is cancelled. Changes to matching files are collected
// and handed to the change handler after the debounce period. Handler calls
// never overlap.
func (w *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	root := w.matcher.Root()
	if err := w.addRoot(watcher); err != nil {
		return fmt.Errorf("failed to watch %s: %w", root, err)
	}

	w.logger.Info("watching for changes", "root", root, "recursive", w.matcher.Recursive())

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	pending := make(map[string]bool)

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if event.Has(fsnotify.Create) && w.matcher.Recursive() {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := watchDirRecursive(watcher, event.Name); err != nil {
						w.logger.Warn("failed to watch new directory", "path", event.Name, "error", err)
					}
					continue
				}
			}

			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			if !w.matcher.Match(event.Name) {
				continue
			}

			w.logger.Debug("file changed", "path", event.Name, "op", event.Op.String())
			pending[event.Name] = true
			timer.Reset(w.debounce)

		case <-timer.C:
			changed := make([]string, 0, len(pending))
			for p := range pending {
				changed = append(changed, p)
			}
			sort.Strings(changed)
			pending = make(map[string]bool)

			if err := w.onChange(ctx, changed); err != nil {
				w.logger.Error("change handler failed", "error", err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("watcher error", "error", err)
		}
	}
}

// addRoot registers the pattern's root directory, and its subdirectories
// when matches can lie below it.
func (w *Watcher) addRoot(watcher *fsnotify.Watcher) error {
	root := w.matcher.Root()
	if w.matcher.Recursive() {
		return watchDirRecursive(watcher, root)
	}
	return watcher.Add(root)
}

// watchDirRecursive adds a directory and all subdirectories to the watcher.
func watchDirRecursive(watcher *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
}
