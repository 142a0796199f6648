// ============================================================================
// currencyedit - Currency input for the terminal
// ============================================================================
//
// Package:     config
// Description: Hot reload of the configuration file via fsnotify
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package config

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	mdwerror "github.com/msto63/currencyedit/foundation/core/error"
)

// ReloadFunc receives a freshly loaded configuration or the load error
type ReloadFunc func(cfg *Config, err error)

// Watch reloads path whenever it changes and hands the result to fn. Bursts
// of events within debounce are folded into one reload. Watch blocks until
// ctx is cancelled.
//
// The directory is watched rather than the file so editors that replace the
// file on save are followed.
func Watch(ctx context.Context, path string, debounce time.Duration, fn ReloadFunc) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return mdwerror.Wrap(err, "failed to resolve config path").
			WithCode(mdwerror.CodeWatchFailed).
			WithOperation("config.Watch").
			WithDetail("path", path)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return mdwerror.Wrap(err, "failed to create watcher").
			WithCode(mdwerror.CodeWatchFailed).
			WithOperation("config.Watch")
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return mdwerror.Wrap(err, "failed to watch directory").
			WithCode(mdwerror.CodeWatchFailed).
			WithOperation("config.Watch").
			WithDetail("dir", filepath.Dir(abs))
	}

	if debounce <= 0 {
		debounce = 200 * time.Millisecond
	}
	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			timer.Reset(debounce)

		case <-timer.C:
			fn(Load(abs))

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fn(nil, mdwerror.Wrap(err, "watcher error").
				WithCode(mdwerror.CodeWatchFailed).
				WithOperation("config.Watch"))
		}
	}
}
