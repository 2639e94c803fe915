package gen

import (
	"path/filepath"
	"runtime"
)

// Defaults for code generation. They mirror the conventional layout host
// projects include the generated file from.
const (
	// DefaultOutputDir is the directory the generated file is written to
	// when no override is given.
	DefaultOutputDir = "generated/keygen"
	// DefaultFileName is the generated file name for a single input.
	DefaultFileName = "keygen.go"
	// DefaultSeparator joins path segments in generated values.
	DefaultSeparator = "."
	// DefaultHeader is the generated-file marker emitted at the top of
	// the output.
	DefaultHeader = "Code generated by keystring. DO NOT EDIT."
)

// ReservedName is the self-path member emitted first inside every
// grouping, holding the grouping's own full path. No key segment may
// equal it.
const ReservedName = "_BASE"

// Config controls code generation.
type Config struct {
	// OutputDir is the directory the generated file is written to.
	OutputDir string
	// Package is the package name of the generated file. When empty the
	// base name of OutputDir is used.
	Package string
	// Separator joins path segments in generated string values.
	Separator string
	// Warnings keeps lint warnings enabled in the generated file. When
	// false, the unused-declaration and identifier-casing suppression
	// directives are emitted, since declaration names are taken verbatim
	// from user input.
	Warnings bool
	// Header overrides the generated-file marker line.
	Header string
	// Workers bounds concurrent generation when multiple inputs are given.
	Workers int
}

// Option configures code generation.
type Option func(*Config) error

// WithOutputDir sets the directory the generated file is written to.
func WithOutputDir(dir string) Option {
	return func(c *Config) error {
		if dir == "" {
			return NewConfigError("OutputDir", nil, "output directory cannot be empty")
		}
		c.OutputDir = dir
		return nil
	}
}

// WithPackage sets the package name of the generated file.
func WithPackage(pkg string) Option {
	return func(c *Config) error {
		if !validIdent(pkg) {
			return NewConfigError("Package", pkg, "package name must be a legal Go identifier")
		}
		c.Package = pkg
		return nil
	}
}

// WithSeparator sets the separator joining segments in generated values,
// for example ".", ":" or "/".
func WithSeparator(sep string) Option {
	return func(c *Config) error {
		if sep == "" {
			return NewConfigError("Separator", nil, "separator cannot be empty")
		}
		c.Separator = sep
		return nil
	}
}

// WithWarnings keeps lint warnings enabled in the generated file instead
// of emitting the suppression directives.
func WithWarnings(enabled bool) Option {
	return func(c *Config) error {
		c.Warnings = enabled
		return nil
	}
}

// WithHeader overrides the generated-file marker line.
func WithHeader(header string) Option {
	return func(c *Config) error {
		if header == "" {
			return NewConfigError("Header", nil, "header cannot be empty")
		}
		c.Header = header
		return nil
	}
}

// WithWorkers bounds concurrent generation of multiple inputs.
func WithWorkers(n int) Option {
	return func(c *Config) error {
		if n < 1 {
			return NewConfigError("Workers", n, "worker count must be at least 1")
		}
		c.Workers = n
		return nil
	}
}

// Apply applies the given options to the config.
func (c *Config) Apply(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	return nil
}

// NewConfig creates a Config with defaults and applies the given options.
func NewConfig(opts ...Option) (*Config, error) {
	c := &Config{
		OutputDir: DefaultOutputDir,
		Separator: DefaultSeparator,
		Header:    DefaultHeader,
		Workers:   runtime.GOMAXPROCS(0),
	}
	if err := c.Apply(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

// MustNewConfig creates a new Config with the given options.
// It panics if any option fails.
func MustNewConfig(opts ...Option) *Config {
	c, err := NewConfig(opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// pkg returns the package name of the generated file.
func (c *Config) pkg() string {
	if c.Package != "" {
		return c.Package
	}
	return filepath.Base(c.OutputDir)
}
