package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	tt "github.com/cotlang/cotup/internal/types"
)

// debounce interval after a write event, so editors that write a file
// in several bursts trigger one conversion.
const watchSettle = 100 * time.Millisecond

// StartWatching registers dirs with a filesystem watcher and converts
// parity-test files as they change.
func (e *Engine) StartWatching(dirs []string) error {
	if e.isWatching {
		return fmt.Errorf("already watching")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	e.watcher = watcher
	e.watchDirs = dirs

	for _, dir := range e.watchDirs {
		err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() {
				return e.watcher.Add(path)
			}
			return nil
		})
		if err != nil {
			return fmt.Errorf("error adding directory to watcher: %w", err)
		}
	}

	e.isWatching = true
	go e.watchLoop()
	return nil
}

// StopWatching stops the watch loop and releases the watcher.
func (e *Engine) StopWatching() error {
	if !e.isWatching {
		e.logger.Warn("not watching")
		return nil
	}

	e.isWatching = false
	return e.watcher.Close()
}

func (e *Engine) watchLoop() {
	for e.isWatching {
		select {
		case event, ok := <-e.watcher.Events:
			if !ok {
				return
			}
			e.handleFileEvent(event)
		case err, ok := <-e.watcher.Errors:
			if !ok {
				return
			}
			e.logger.Error("watch error", zap.Error(err))
		}
	}
}

func (e *Engine) handleFileEvent(event fsnotify.Event) {
	if event.Op&fsnotify.Write != fsnotify.Write {
		return
	}
	if !strings.HasSuffix(event.Name, e.extension) {
		return
	}

	time.Sleep(watchSettle)
	result := e.Run(event.Name)
	e.reportResult(result)
}

func (e *Engine) reportResult(r tt.Result) {
	switch r.Status {
	case tt.Converted:
		e.logger.Info("converted", zap.String("file", r.Path), zap.String("label", r.Label))
	case tt.Unchanged:
		if r.Err != nil {
			e.logger.Warn("skipped", zap.String("file", r.Path), zap.Error(r.Err))
		}
	case tt.Failed:
		e.logger.Error("failed", zap.String("file", r.Path), zap.Error(r.Err))
	}
}
