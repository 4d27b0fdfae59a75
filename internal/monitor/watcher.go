package monitor

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/flowave-io/webwasp/pkg/log"
)

// WatchFileLogging blocks until ctx ends, logging every change to path.
func WatchFileLogging(ctx context.Context, path string) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return err
	}

	log.Info("Watching for changes to", abs)
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) == abs {
				log.Info(event.Op.String(), event.Name)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Error("watch:", err)
		}
	}
}
