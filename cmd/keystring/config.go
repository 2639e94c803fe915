package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/syssam/keystring/compiler/gen"
)

// defaultConfigFile is picked up from the working directory when no
// --config flag is given.
const defaultConfigFile = ".keystring.yaml"

// projectConfig is the optional project file. It supplies defaults for
// the command line; flags that were set explicitly win.
type projectConfig struct {
	Inputs    []string `yaml:"inputs"`
	Output    string   `yaml:"output"`
	Package   string   `yaml:"package"`
	Separator string   `yaml:"separator"`
	Warnings  bool     `yaml:"warnings"`
	Header    string   `yaml:"header"`
}

// loadProjectConfig reads the project file. A missing file is only an
// error when the path was given explicitly.
func loadProjectConfig(path string) (*projectConfig, error) {
	explicit := path != ""
	if !explicit {
		path = defaultConfigFile
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) && !explicit {
		return &projectConfig{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := &projectConfig{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// options merges the project file with the command-line flags into
// generation options. Precedence: flag over file over default.
func (p *projectConfig) options(cmd *cobra.Command) []gen.Option {
	var opts []gen.Option

	output := p.Output
	if cmd.Flags().Changed("output") {
		output = flagOutput
	}
	if output != "" {
		opts = append(opts, gen.WithOutputDir(output))
	}

	pkg := p.Package
	if cmd.Flags().Changed("package") {
		pkg = flagPackage
	}
	if pkg != "" {
		opts = append(opts, gen.WithPackage(pkg))
	}

	sep := p.Separator
	if cmd.Flags().Changed("separator") {
		sep = flagSeparator
	}
	if sep != "" {
		opts = append(opts, gen.WithSeparator(sep))
	}

	warnings := p.Warnings
	if cmd.Flags().Changed("warnings") {
		warnings = flagWarnings
	}
	if warnings {
		opts = append(opts, gen.WithWarnings(true))
	}

	header := p.Header
	if cmd.Flags().Changed("header") {
		header = flagHeader
	}
	if header != "" {
		opts = append(opts, gen.WithHeader(header))
	}

	return opts
}
