// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// watchDebounce coalesces the burst of events editors emit for a single save.
const watchDebounce = 200 * time.Millisecond

// watch runs analyse once, then again after every change to the input file, until ctx ends.
// The parent directory is watched so that editors replacing the file are still seen.
// Analysis failures are logged and do not stop the loop.
func (a *app) watch(ctx context.Context, w io.Writer) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("routegraph: watch: %w", err)
	}
	defer fw.Close()

	target, err := filepath.Abs(a.cfg.Input)
	if err != nil {
		return fmt.Errorf("routegraph: watch: %w", err)
	}
	if err = fw.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("routegraph: watch: %w", err)
	}

	a.rerun(ctx, w)

	timer := time.NewTimer(watchDebounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				timer.Reset(watchDebounce)
			}

		case <-timer.C:
			a.log.Info("input changed, recomputing", zap.String("input", a.cfg.Input))
			a.rerun(ctx, w)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			a.log.Warn("watch error", zap.Error(err))
		}
	}
}

func (a *app) rerun(ctx context.Context, w io.Writer) {
	if err := a.analyse(ctx, w); err != nil {
		a.log.Error("analysis failed", zap.Error(err))
	}
}
