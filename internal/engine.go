package internal

import (
	"errors"
	"fmt"
	"os"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/cotlang/cotup/internal/rewrite"
	tt "github.com/cotlang/cotup/internal/types"
)

// Engine drives the conversion of a single parity-test file: read,
// derive the label, transform, and write back when something changed.
type Engine struct {
	labeler *rewrite.Labeler
	dryRun  bool
	logger  *zap.Logger

	watcher    *fsnotify.Watcher
	watchDirs  []string
	isWatching bool
	extension  string
}

// NewEngine creates a conversion engine. extraCategories extends the
// built-in label category table; extension overrides the default .cot
// when non-empty. In dry-run mode files are never written.
func NewEngine(logger *zap.Logger, extraCategories map[string]string, extension string, dryRun bool) *Engine {
	if extension == "" {
		extension = rewrite.DefaultExtension
	}
	return &Engine{
		labeler:   rewrite.NewLabeler(extraCategories, extension),
		dryRun:    dryRun,
		logger:    logger,
		extension: extension,
	}
}

// Extension returns the file extension the engine converts.
func (e *Engine) Extension() string { return e.extension }

// Run converts one file on disk. Unreadable or unwritable files come
// back as Failed; files without a recognizable legacy construct come
// back Unchanged with a diagnostic error attached. Neither aborts a
// surrounding batch.
func (e *Engine) Run(path string) tt.Result {
	src, err := os.ReadFile(path)
	if err != nil {
		return tt.Result{Path: path, Status: tt.Failed, Err: fmt.Errorf("reading %s: %w", path, err)}
	}

	result := e.RunSource(path, src)
	if result.Status != tt.Converted || e.dryRun {
		return result
	}

	if err := os.WriteFile(path, []byte(result.Output), 0o644); err != nil {
		return tt.Result{Path: path, Label: result.Label, Status: tt.Failed, Err: fmt.Errorf("writing %s: %w", path, err)}
	}
	return result
}

// RunSource converts in-memory source attributed to path, without
// touching the filesystem.
func (e *Engine) RunSource(path string, src []byte) tt.Result {
	label := e.labeler.DeriveLabel(path)

	out, err := rewrite.Transform(string(src), label)
	switch {
	case errors.Is(err, rewrite.ErrNoEntryPoint), errors.Is(err, rewrite.ErrBodyNotRecognized):
		return tt.Result{Path: path, Label: label, Status: tt.Unchanged, Err: err}
	case err != nil:
		return tt.Result{Path: path, Label: label, Status: tt.Failed, Err: err}
	}

	if out == string(src) {
		return tt.Result{Path: path, Label: label, Status: tt.Unchanged}
	}
	return tt.Result{Path: path, Label: label, Status: tt.Converted, Output: out}
}
