// Copyright © 2025 The Gotheme Project.

package config

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/zosmac/gocore"
)

// Watch notifies when the record at path is created, written, renamed or
// removed. The containing directory is watched as editors and atomic
// writers replace the file rather than write it in place. It is created if
// missing. Notifications coalesce, so a burst of events yields at least one
// receive.
func Watch(ctx context.Context, path string) (<-chan struct{}, error) {
	path, err := filepath.Abs(path)
	if err != nil {
		return nil, gocore.Error("Abs", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, gocore.Error("MkdirAll", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, gocore.Error("NewWatcher", err)
	}
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, gocore.Error("watch "+dir, err)
	}

	ch := make(chan struct{}, 1)
	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != path || event.Op == fsnotify.Chmod {
					continue
				}
				select {
				case ch <- struct{}{}:
				default:
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				gocore.Error("watch "+path, err).Warn()
			}
		}
	}()

	return ch, nil
}
