package main

import (
	"context"
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/syssam/keystring/compiler/gen"
)

// debouncePeriod coalesces the burst of events editors fire on save.
const debouncePeriod = 500 * time.Millisecond

// watch generates once, then keeps regenerating whenever an input file
// changes, until ctx is canceled. Generation errors are logged rather
// than fatal: a half-saved catalogue should not kill the watch.
func watch(ctx context.Context, log *zap.SugaredLogger, cfg *gen.Config, inputs []string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	for _, in := range inputs {
		if err := watcher.Add(in); err != nil {
			return fmt.Errorf("watch %s: %w", in, err)
		}
	}

	regenerate := func() {
		if err := gen.Generate(ctx, cfg, inputs...); err != nil {
			log.Errorw("generation failed", "error", err)
			return
		}
		log.Infow("regenerated", "dir", cfg.OutputDir, "inputs", len(inputs))
	}
	regenerate()
	log.Infow("watching", "inputs", inputs)

	var debounce *time.Timer
	defer func() {
		if debounce != nil {
			debounce.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			log.Infow("stopping watch")
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			// Editors often replace the file on save, which drops the
			// kernel watch on the old inode.
			if event.Op&(fsnotify.Rename|fsnotify.Create) != 0 {
				if err := watcher.Add(event.Name); err != nil {
					log.Debugw("re-add watch", "file", event.Name, "error", err)
				}
			}
			log.Debugw("input changed", "file", event.Name, "op", event.Op.String())
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(debouncePeriod, regenerate)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warnw("watch error", "error", err)
		}
	}
}
