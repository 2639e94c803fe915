// keystring generates Go key-catalogue declarations from .keys files.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/syssam/keystring/compiler/gen"
)

var (
	flagOutput    string
	flagPackage   string
	flagSeparator string
	flagWarnings  bool
	flagHeader    string
	flagConfig    string
	flagWatch     bool
	flagJSON      bool
	flagVerbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "keystring [flags] <input.keys>...",
	Short: "Generate Go string-key declarations from key catalogue files",
	Long: `Generate Go declarations for a catalogue of dotted string keys.

Each input file lists key paths, either indented:

  config
      server
          host

or fully dotted (config.server.host), mixable line by line. The output
is a single Go file declaring every path as a compile-time-checked
identifier holding its own dotted path.

Inputs and settings may also come from a .keystring.yaml project file;
flags take precedence over it.

Examples:
  keystring app.keys                      # write generated/keygen/keygen.go
  keystring -o internal/keys app.keys     # custom output directory
  keystring --separator : app.keys        # colon-joined values
  keystring --watch app.keys              # regenerate on change`,
	RunE:          run,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "output directory (default "+gen.DefaultOutputDir+")")
	rootCmd.Flags().StringVarP(&flagPackage, "package", "p", "", "package name of the generated file (default: base of output dir)")
	rootCmd.Flags().StringVarP(&flagSeparator, "separator", "s", "", "separator joining segments in generated values (default \""+gen.DefaultSeparator+"\")")
	rootCmd.Flags().BoolVar(&flagWarnings, "warnings", false, "keep lint warnings enabled in the generated file")
	rootCmd.Flags().StringVar(&flagHeader, "header", "", "override the generated-file marker line")
	rootCmd.Flags().StringVarP(&flagConfig, "config", "c", "", "project config file (default "+defaultConfigFile+" if present)")
	rootCmd.Flags().BoolVarP(&flagWatch, "watch", "w", false, "keep running and regenerate when inputs change")
	rootCmd.Flags().BoolVar(&flagJSON, "json", false, "log in JSON instead of console format")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	log, err := newLogger(flagJSON, flagVerbose)
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	project, err := loadProjectConfig(flagConfig)
	if err != nil {
		return err
	}

	inputs := args
	if len(inputs) == 0 {
		inputs = project.Inputs
	}
	if len(inputs) == 0 {
		return fmt.Errorf("no input files: pass them as arguments or list them in %s", defaultConfigFile)
	}

	cfg, err := gen.NewConfig(project.options(cmd)...)
	if err != nil {
		return err
	}

	if flagWatch {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return watch(ctx, log, cfg, inputs)
	}

	if err := gen.Generate(cmd.Context(), cfg, inputs...); err != nil {
		return err
	}
	log.Infow("generated", "dir", cfg.OutputDir, "inputs", len(inputs))
	return nil
}

// newLogger builds the global CLI logger: JSON for machine consumption,
// console otherwise.
func newLogger(jsonOutput, verbose bool) (*zap.SugaredLogger, error) {
	level := zap.InfoLevel
	if verbose {
		level = zap.DebugLevel
	}

	var config zap.Config
	if jsonOutput {
		config = zap.NewProductionConfig()
	} else {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	config.Level = zap.NewAtomicLevelAt(level)

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("initialize logger: %w", err)
	}
	return logger.Sugar(), nil
}
