package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/currencyedit/internal/field"
	"github.com/msto63/currencyedit/internal/replay"
)

var replayCmd = &cobra.Command{
	Use:   "replay SCRIPT",
	Short: "Replay a keystroke script against a headless field",
	Long: `Replay a YAML keystroke script and print the field after every step.

A script names a field of the config or carries its own attributes:

  field: price
  config:
    digits_after_dot: 2
    min_value: "100.125"
  steps:
    - type: "1234"
    - cursor: 2
    - backspace: 1
    - paste: "25 000,5"
    - focus: false

Rejected steps are marked with "!".`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	rootCmd.AddCommand(replayCmd)
}

func runReplay(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		printError("loading config", err)
		return err
	}

	script, err := replay.Load(args[0])
	if err != nil {
		printError("loading script", err)
		return err
	}

	fc, err := script.Resolve(cfg)
	if err != nil {
		printError("resolving field", err)
		return err
	}
	fieldCfg, err := fc.Build()
	if err != nil {
		printError("field configuration", err)
		return err
	}

	logger, err := newLogger(cfg, false)
	if err != nil {
		printError("creating logger", err)
		return err
	}
	defer logger.Close()

	results, err := replay.Run(script, fieldCfg, field.WithName(fc.Name), field.WithLogger(logger.Logger))
	if err != nil {
		printError("replaying script", err)
		return err
	}
	return replay.Print(cmd.OutOrStdout(), results, fieldCfg.Currency.Symbol())
}
