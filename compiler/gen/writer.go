package gen

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Target pairs one input catalogue with the file it generates inside
// Config.OutputDir.
type Target struct {
	Input string // path of the .keys input file
	File  string // output file name, relative to Config.OutputDir
}

// Metrics tracks what a generation run produced.
type Metrics struct {
	FilesGenerated int
	TotalBytes     int64
}

// Writer renders targets fully in memory and writes each output file in
// a single call. A failed target writes nothing, so a previously
// generated file is never left half overwritten.
type Writer struct {
	cfg *Config

	mu      sync.Mutex
	metrics Metrics
}

// NewWriter creates a writer for the given config.
func NewWriter(cfg *Config) *Writer {
	return &Writer{cfg: cfg}
}

// Metrics returns the generation metrics.
func (w *Writer) Metrics() Metrics {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.metrics
}

// GenerateAll generates every target, running up to Config.Workers
// targets in parallel. The first failure cancels the remaining work.
func (w *Writer) GenerateAll(ctx context.Context, targets ...Target) error {
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(w.cfg.Workers)

	for _, t := range targets {
		eg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
				return w.generate(t)
			}
		})
	}

	return eg.Wait()
}

// generate runs the whole pipeline for a single target: read, parse,
// validate, emit, then write once.
func (w *Writer) generate(t Target) error {
	src, err := os.ReadFile(t.Input)
	if err != nil {
		return fmt.Errorf("keystring: read input: %w", err)
	}
	out, err := Build(string(src), w.cfg)
	if err != nil {
		return fmt.Errorf("%s: %w", t.Input, err)
	}
	if err := os.MkdirAll(w.cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("keystring: create output directory: %w", err)
	}
	path := filepath.Join(w.cfg.OutputDir, t.File)
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("keystring: write %s: %w", path, err)
	}

	w.mu.Lock()
	w.metrics.FilesGenerated++
	w.metrics.TotalBytes += int64(len(out))
	w.mu.Unlock()

	return nil
}
