package dotenv

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher re-applies a .env file whenever it is written or created. Keys
// already present are never overwritten, so only newly added keys reach the
// mapping. Reloads after a change ignore a last line without a trailing
// newline, since it may be a value that is still being written.
type Watcher struct {
	loader   *Loader
	filename string
	// OnLoad is called after every load, including the initial one
	OnLoad func(LoadResult, error)
}

// NewWatcher creates a watcher for filename using loader
func NewWatcher(loader *Loader, filename string) *Watcher {
	if filename == "" {
		filename = DefaultFilename
	}
	return &Watcher{loader: loader, filename: filename}
}

// Run loads the file once and then reloads it on change until ctx is done.
// The parent directory is watched so editors that replace the file are seen.
func (w *Watcher) Run(ctx context.Context) error {
	path, err := Resolve(w.filename)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(path), err)
	}

	w.reload(path, false)

	log := w.loader.logger()
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				log.Debugf("Modified file: %s", event.Name)
				w.reload(path, true)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warnf("Watcher error: %v", err)
		}
	}
}

func (w *Watcher) reload(path string, changed bool) {
	result, err := w.loader.load(path, ParseOptions{
		StripQuotes:      w.loader.StripQuotes,
		SkipUnterminated: changed,
	})
	if err != nil {
		w.loader.logger().Warnf("Failed to reload %s: %v", path, err)
	}
	if w.OnLoad != nil {
		w.OnLoad(result, err)
	}
}
