// go-nfcd
// Copyright (c) 2026 The go-nfcd Contributors.
// SPDX-License-Identifier: BSD-3-Clause
//
// This file is part of go-nfcd. You may use this file under the terms
// of the BSD license as described in the LICENSE file.

package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// Watch invokes onChange whenever a .conf file in dir is created,
// modified, renamed or removed, until ctx is cancelled. Callers
// typically reload their handler configuration from the callback.
func Watch(ctx context.Context, dir string, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if strings.HasSuffix(event.Name, ".conf") {
				onChange()
			}
		case _, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			// Watch errors are transient; keep watching
		}
	}
}
