package gen

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/syssam/keystring/compiler/load"
)

// Build compiles one catalogue's raw text into generated Go source
// without touching the filesystem: parse, validate, emit.
func Build(src string, cfg *Config) ([]byte, error) {
	forest := load.Parse(src)
	if len(forest) == 0 {
		return nil, ErrEmptyInput
	}
	if err := Validate(forest); err != nil {
		return nil, err
	}
	return Emit(forest, cfg)
}

// Generate runs the full pipeline for the given input files. A single
// input generates DefaultFileName; multiple inputs each generate a file
// named after the input's base name, so catalogues stay separable on
// the consuming side.
func Generate(ctx context.Context, cfg *Config, inputs ...string) error {
	if cfg == nil {
		return NewConfigError("Config", nil, "missing configuration")
	}
	if len(inputs) == 0 {
		return NewConfigError("Inputs", nil, "no input files given")
	}

	targets := make([]Target, len(inputs))
	for i, in := range inputs {
		name := DefaultFileName
		if len(inputs) > 1 {
			name = outputName(in)
		}
		targets[i] = Target{Input: in, File: name}
	}
	return NewWriter(cfg).GenerateAll(ctx, targets...)
}

// outputName derives the generated file name from an input path:
// "conf/app.keys" becomes "app.go".
func outputName(input string) string {
	base := filepath.Base(input)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return base + ".go"
}
