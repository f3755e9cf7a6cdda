package load

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchDebounce is the quiet period after the last file event before
// the change callback runs. Editors tend to emit bursts of events.
var watchDebounce = 100 * time.Millisecond

// Watch observes the schema files at the given paths and calls onChange
// after each (debounced) modification until ctx is done. A non-nil error
// returned from onChange stops the watch and is returned to the caller.
func Watch(ctx context.Context, paths []string, onChange func(context.Context) error) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("load: create watcher: %w", err)
	}
	defer w.Close()

	// Files are watched through their parent directory, since many
	// editors replace files on save instead of writing them in place.
	files := make(map[string]struct{})
	dirs := make(map[string]struct{})
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return fmt.Errorf("load: %w", err)
		}
		info, err := os.Stat(abs)
		if err != nil {
			return fmt.Errorf("load: %w", err)
		}
		dir := abs
		if !info.IsDir() {
			dir = filepath.Dir(abs)
			files[abs] = struct{}{}
		} else {
			dirs[abs] = struct{}{}
		}
		if err := w.Add(dir); err != nil {
			return fmt.Errorf("load: watch %s: %w", dir, err)
		}
	}
	relevant := func(ev fsnotify.Event) bool {
		if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
			return false
		}
		if _, ok := files[ev.Name]; ok {
			return true
		}
		_, ok := dirs[filepath.Dir(ev.Name)]
		return ok && IsSchemaFile(ev.Name)
	}

	var (
		timer *time.Timer
		fire  = make(chan struct{}, 1)
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
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("load: watch: %w", err)
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !relevant(ev) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(watchDebounce, func() {
				select {
				case fire <- struct{}{}:
				default:
				}
			})
		case <-fire:
			if err := onChange(ctx); err != nil {
				return err
			}
		}
	}
}
