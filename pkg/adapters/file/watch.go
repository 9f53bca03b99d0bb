package file

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DebounceWindow is how long a theme must be quiet before its change is reported.
var DebounceWindow = 100 * time.Millisecond

// Watch implements ports.Watchable. It reports the name of each theme whose
// document was created, written, removed or renamed.
func (s *Source) Watch(ctx context.Context) (<-chan string, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(s.Dir); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", s.Dir, err)
	}

	ch := make(chan string, 1)

	go func() {
		defer close(ch)
		defer watcher.Close()

		pending := make(map[string]time.Time)
		ticker := time.NewTicker(DebounceWindow / 2)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
					continue
				}
				if name, ok := themeName(filepath.Base(event.Name)); ok {
					pending[name] = time.Now()
				}
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
			case now := <-ticker.C:
				for name, at := range pending {
					if now.Sub(at) < DebounceWindow {
						continue
					}
					delete(pending, name)
					select {
					case ch <- name:
					case <-ctx.Done():
						return
					}
				}
			}
		}
	}()

	return ch, nil
}
