package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/currencyedit/foundation/core/error"
	"github.com/msto63/currencyedit/pkg/core/config"
	"github.com/msto63/currencyedit/pkg/core/logging"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "currencyedit",
	Short: "currencyedit - currency input for the terminal",
	Long: `currencyedit formats currency amounts while they are typed.

Digits are grouped in threes, the fraction is limited to the configured
number of digits and the value is clamped into its bounds when the input
loses focus.

Commands:
  tui      - interactive demo with one input per configured field
  format   - format a single value with a field configuration
  replay   - replay a keystroke script against a headless field
  check    - check config, log file and clipboard`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $CURRENCYEDIT_CONFIG or ./configs/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// loadConfig reads --config, the environment or the default locations and
// falls back to the built-in defaults when no file exists
func loadConfig() (*config.Config, string, error) {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		return cfg, cfgFile, err
	}

	path := os.Getenv(config.EnvConfigPath)
	if path == "" {
		for _, p := range config.DefaultPaths() {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}
	if path == "" {
		return config.Default(), "", nil
	}

	cfg, err := config.Load(path)
	if mdwerror.HasCode(err, mdwerror.CodeNotFound) {
		return config.Default(), "", nil
	}
	return cfg, path, err
}

// newLogger builds the CLI logger; --verbose forces debug level
func newLogger(cfg *config.Config, quiet bool) (*logging.Logger, error) {
	lc := logging.FromConfig(cfg.General.Name, cfg.Logging)
	if verbose {
		lc.Level = "debug"
	}
	if quiet {
		return logging.NewQuietLogger(lc)
	}
	return logging.NewLogger(lc)
}

func printError(msg string, err error) {
	writeError(os.Stderr, msg, err, verbose)
}

// writeError prints a one-line error. With detailed set, coded errors severe
// enough to alert add their code, operation and details.
func writeError(w io.Writer, msg string, err error, detailed bool) {
	fmt.Fprintf(w, "error: %s: %v\n", msg, err)
	var coded *mdwerror.Error
	if detailed && errors.As(err, &coded) && coded.Severity().ShouldAlert() {
		fmt.Fprintln(w, coded.String())
	}
}
