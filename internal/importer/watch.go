package importer

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultSettle is how long a file must stay unchanged before it is handed
// to the callback.
const DefaultSettle = 500 * time.Millisecond

// FileHandler is called once per settled file.
type FileHandler func(ctx context.Context, path string) error

// Watcher hands new or rewritten supported files in one directory to a
// FileHandler. Editors and copy tools emit several events per file, so a
// path is only handled after it has been quiet for Settle.
type Watcher struct {
	dir    string
	opts   Options
	handle FileHandler
	log    *slog.Logger
	Settle time.Duration
}

// NewWatcher creates a Watcher for dir.
func NewWatcher(log *slog.Logger, dir string, opts Options, handle FileHandler) *Watcher {
	return &Watcher{
		dir:    dir,
		opts:   opts,
		handle: handle,
		log:    log.With("component", "import_watcher", "dir", dir),
		Settle: DefaultSettle,
	}
}

// Run watches until ctx is cancelled. Handler errors are logged and do not
// stop the watcher.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(w.dir); err != nil {
		return fmt.Errorf("watch %s: %w", w.dir, err)
	}

	w.log.InfoContext(ctx, "watching for prompt files")

	pending := make(map[string]time.Time)
	ticker := time.NewTicker(w.Settle / 2)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Write) {
				continue
			}
			if !w.opts.Supported(ev.Name) {
				continue
			}
			pending[ev.Name] = time.Now()

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.log.ErrorContext(ctx, "watch error", slog.String("error", err.Error()))

		case now := <-ticker.C:
			for path, last := range pending {
				if now.Sub(last) < w.Settle {
					continue
				}
				delete(pending, path)
				w.dispatch(ctx, path)
			}
		}
	}
}

func (w *Watcher) dispatch(ctx context.Context, path string) {
	log := w.log.With(slog.String("file", filepath.Base(path)))
	if err := w.handle(ctx, path); err != nil {
		log.ErrorContext(ctx, "import failed", slog.String("error", err.Error()))
		return
	}
	log.InfoContext(ctx, "file imported")
}
