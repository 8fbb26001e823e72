// Package convert is the public batch API of cotup. It discovers
// parity-test files, feeds them through a conversion engine and
// aggregates per-file results.
package convert

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"sort"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/cotlang/cotup/internal"
	tt "github.com/cotlang/cotup/internal/types"
	"github.com/cotlang/cotup/scanner"
)

// Converter is the engine contract the batch functions need.
type Converter interface {
	Run(path string) tt.Result
	Extension() string
}

// New builds a conversion engine from an optional configuration file.
// An empty configPath selects the built-in defaults.
func New(logger *zap.Logger, configPath string, dryRun bool) (*internal.Engine, error) {
	config, err := LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	return internal.NewEngine(logger, config.Categories, config.Extension, dryRun), nil
}

// ProcessFiles converts every path in paths, descending into
// directories. A failing file never aborts the batch; its Result
// carries the error instead.
func ProcessFiles(ctx context.Context, logger *zap.Logger, conv Converter, paths []string) ([]tt.Result, error) {
	var all []tt.Result
	for _, path := range paths {
		results, err := ProcessPath(ctx, logger, conv, path)
		if err != nil {
			if logger != nil {
				logger.Error("error processing path", zap.String("path", path), zap.Error(err))
			}
			return nil, err
		}
		all = append(all, results...)
	}
	return all, nil
}

// ProcessPath converts a single file, or every matching file under a
// directory. Directory batches run on a bounded worker pool; results
// come back sorted by path so output is deterministic.
func ProcessPath(ctx context.Context, logger *zap.Logger, conv Converter, path string) ([]tt.Result, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error accessing %s: %w", path, err)
	}

	if !info.IsDir() {
		return []tt.Result{conv.Run(path)}, nil
	}

	files, err := scanner.New(path, conv.Extension()).Scan()
	if err != nil {
		return nil, fmt.Errorf("error walking directory %s: %w", path, err)
	}
	if len(files) == 0 {
		return nil, nil
	}

	resultChan := make(chan tt.Result, len(files))
	maxWorkers := runtime.NumCPU()
	sem := make(chan struct{}, maxWorkers)

	bar := progressbar.NewOptions(len(files),
		progressbar.OptionSetDescription(path),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))

	for _, filePath := range files {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
			sem <- struct{}{}
			go func(fp string) {
				defer func() { <-sem }()
				resultChan <- conv.Run(fp)
				bar.Add(1)
			}(filePath)
		}
	}

	results := make([]tt.Result, 0, len(files))
	for range files {
		results = append(results, <-resultChan)
	}
	fmt.Println()

	sort.Slice(results, func(i, j int) bool { return results[i].Path < results[j].Path })
	return results, nil
}

// Config carries the tunables of a conversion run.
type Config struct {
	Name       string            `yaml:"name"`
	Extension  string            `yaml:"extension"`
	Categories map[string]string `yaml:"categories"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{Name: "cotup"}
}

// LoadConfig reads a YAML configuration file. An empty path yields the
// defaults.
func LoadConfig(path string) (Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}

	config := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		return config, err
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(&config); err != nil {
		return config, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return config, nil
}
