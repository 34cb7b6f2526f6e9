package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/zunder/foundation/core/config"
	zderror "github.com/msto63/zunder/foundation/core/error"
	zdlog "github.com/msto63/zunder/foundation/core/log"
	"github.com/msto63/zunder/foundation/ocl"
)

var (
	cfgFile   string
	logLevel  string
	logFormat string

	// cfg and logger are set before any subcommand runs
	cfg    *config.EngineConfig
	logger *zdlog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "zunder",
	Short: "zunder - command lines for object graphs",
	Long: `zunder turns object graphs into command lines. Tokens are consumed
step by step against a live value: functions are called, sequences indexed,
mappings looked up and members accessed.

Built-in graphs:
  calc       - registered functions
  greeter    - a constructor whose arguments are flags
  inventory  - a struct reached by reflection
  colors     - nested mappings, tuples and lists`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
}

func Execute() error {
	err := rootCmd.Execute()
	var exit *ocl.ExitError
	if err != nil && !errors.As(err, &exit) {
		printError(os.Stderr, err)
	}
	return err
}

// ExitCode returns the process status for an error returned by Execute
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exit *ocl.ExitError
	if errors.As(err, &exit) {
		return exit.Code
	}
	return zderror.GetCode(err).ExitCode()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./zunder.toml or the user config dir)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format (console, text, json, logfmt)")
}

// loadConfig reads the config file, applies environment and flag overrides
// and installs the logger
func loadConfig(cmd *cobra.Command, args []string) error {
	var err error
	if cfgFile != "" {
		cfg, err = config.Load(cfgFile)
		if err == nil {
			err = cfg.ApplyEnv(config.EnvPrefix)
		}
	} else {
		cfg, _, err = config.Discover(config.DefaultDiscoveryOptions())
	}
	if err != nil {
		return err
	}

	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if logFormat != "" {
		cfg.Log.Format = logFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err = cfg.Logger()
	if err != nil {
		return err
	}
	zdlog.SetDefault(logger)
	return nil
}

func printError(w io.Writer, err error) {
	code := zderror.GetCode(err)
	if code == zderror.CodeUnknown {
		fmt.Fprintf(w, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(w, "Error [%s]: %v\n", code, err)
	if zderror.HasCode(err, zderror.CodeUsage) {
		fmt.Fprintln(w, "Run 'zunder --help' for usage.")
	}
}
