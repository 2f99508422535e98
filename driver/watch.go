// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package driver

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch watches the directory of the document and the given shader
// directories until ctx is done, requesting a reload on the next
// [Driver.Frame] whenever a file in them is written, created or
// renamed.  It is meant to be run on its own goroutine.
func (dr *Driver) Watch(ctx context.Context, dirs ...string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	dirs = append([]string{filepath.Dir(dr.Path)}, dirs...)
	for _, dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return err
		}
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !IsReloadEvent(event) {
				continue
			}
			if Debug {
				slog.Info("driver: file changed", "name", event.Name, "op", event.Op)
			}
			dr.RequestReload(event.Name)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("driver: watching", "err", err)
		}
	}
}

// IsReloadEvent returns true if the event changes the contents of a file.
func IsReloadEvent(event fsnotify.Event) bool {
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}

// RequestReload asks the next [Driver.Frame] to reload the document.
// It never blocks, and requests made before that frame are merged.
// It is safe to call from any goroutine.
func (dr *Driver) RequestReload(name string) {
	select {
	case dr.reload <- name:
	default:
	}
}
