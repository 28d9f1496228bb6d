// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// watch calls fn whenever one of the given files is written or
// created, until the context is done. Errors from fn are logged.
// The parent directories are watched so that files replaced by
// editors are still seen.
func watch(ctx context.Context, files []string, fn func() error) error {
	if len(files) == 0 {
		return errors.New("watch: no config file or image file to watch")
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	want := map[string]bool{}
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			return err
		}
		want[abs] = true
		if err := watcher.Add(filepath.Dir(abs)); err != nil {
			return err
		}
	}
	slog.Info("watching for changes", "files", files)
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 || !want[filepath.Clean(event.Name)] {
				continue
			}
			slog.Debug("file changed", "file", event.Name, "op", event.Op)
			if err := fn(); err != nil {
				slog.Error("generating theme", "err", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("file watcher", "err", err)
		}
	}
}
