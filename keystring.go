// Package keystring generates Go declarations for a fixed catalogue of
// dotted string keys, giving host projects compile-time-checked access
// to event names, config keys, message codes, and similar identifiers.
//
// The input is a plain text file in either of two equivalent notations,
// freely mixable line by line. Indented:
//
//	config
//	    server
//	        host
//	        port
//
// or fully dotted:
//
//	config.server.host
//	config.server.port
//
// Both declare the same forest. Generation is typically wired through
// go:generate or a build script:
//
//	if err := keystring.Generate("app.keys"); err != nil {
//		log.Fatal(err)
//	}
//
// and the generated file lands in generated/keygen by default. See
// compiler/load for the input grammar and compiler/gen for rendering
// and configuration options.
package keystring

import (
	"context"

	"github.com/syssam/keystring/compiler/gen"
)

// Option configures code generation. See the With* functions in
// compiler/gen.
type Option = gen.Option

// Generate parses the key catalogue at inputPath and writes the
// generated file to the default location, generated/keygen/keygen.go.
func Generate(inputPath string) error {
	return GenerateWithConfig(inputPath, "")
}

// GenerateWithConfig is Generate with control over the destination and
// rendering. A non-empty outputDir overrides the default output
// directory; opts adjust the package name, separator, warnings, and
// header. The run is all-or-nothing: on any failure no file is written.
func GenerateWithConfig(inputPath, outputDir string, opts ...Option) error {
	if outputDir != "" {
		opts = append([]Option{gen.WithOutputDir(outputDir)}, opts...)
	}
	cfg, err := gen.NewConfig(opts...)
	if err != nil {
		return err
	}
	return gen.Generate(context.Background(), cfg, inputPath)
}
