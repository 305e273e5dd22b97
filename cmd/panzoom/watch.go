package main

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/phanxgames/panzoom"
)

const reloadDebounce = 100 * time.Millisecond

// watchOptions reloads path whenever it changes and hands the decoded
// Options to onLoad. Decode errors go to onError. The watch runs in its own
// goroutine until ctx is done. The directory is watched so editors that
// replace the file on save keep working.
func watchOptions(ctx context.Context, path string, onLoad func(panzoom.Options), onError func(error)) error {
	if ctx == nil {
		ctx = context.Background()
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return fmt.Errorf("watch %s: %w", path, err)
	}

	go func() {
		defer watcher.Close()
		debounce := time.NewTimer(0)
		<-debounce.C // drain initial timer
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != abs {
					continue
				}
				if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
					debounce.Reset(reloadDebounce)
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				onError(err)
			case <-debounce.C:
				opts, err := panzoom.LoadOptionsFile(abs)
				if err != nil {
					onError(err)
					continue
				}
				onLoad(opts)
			}
		}
	}()
	return nil
}
