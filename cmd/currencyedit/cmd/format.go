package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/currencyedit/foundation/core/error"
	"github.com/msto63/currencyedit/foundation/utils/mathx"
	"github.com/msto63/currencyedit/internal/field"
	"github.com/msto63/currencyedit/pkg/core/config"
)

var (
	formatField    string
	formatDigits   int
	formatMin      string
	formatMax      string
	formatCurrency string
)

var formatCmd = &cobra.Command{
	Use:   "format VALUE",
	Short: "Format a value with a field configuration",
	Long: `Format a value the way a currency input shows it.

The value is typed into a focused field first, which shows the live text,
the ghost zeros and the bound state. The field is then left, which truncates,
clamps and pads the value.

Examples:
  currencyedit format 1234567.891 --digits 2
  currencyedit format 50 --field price --min 100.125`,
	Args: cobra.ExactArgs(1),
	RunE: runFormat,
}

func init() {
	formatCmd.Flags().StringVarP(&formatField, "field", "f", "", "field from the config (default: first field)")
	formatCmd.Flags().IntVarP(&formatDigits, "digits", "d", 0, "digits after the point, -1 for unlimited")
	formatCmd.Flags().StringVar(&formatMin, "min", "", "minimum value")
	formatCmd.Flags().StringVar(&formatMax, "max", "", "maximum value")
	formatCmd.Flags().StringVarP(&formatCurrency, "currency", "c", "", "currency (RUB, EUR, USD)")
	rootCmd.AddCommand(formatCmd)
}

func runFormat(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		printError("loading config", err)
		return err
	}

	fc, err := formatFieldConfig(cmd, cfg)
	if err != nil {
		printError("field configuration", err)
		return err
	}
	fieldCfg, err := fc.Build()
	if err != nil {
		printError("field configuration", err)
		return err
	}

	value, err := mathx.NewDecimal(args[0])
	if err != nil {
		printError("parsing value", err)
		return err
	}

	logger, err := newLogger(cfg, false)
	if err != nil {
		printError("creating logger", err)
		return err
	}
	defer logger.Close()

	buf := field.NewBuffer()
	f, err := field.New(buf, fieldCfg, field.WithName(fc.Name), field.WithLogger(logger.Logger))
	if err != nil {
		printError("creating field", err)
		return err
	}

	out := cmd.OutOrStdout()
	f.SetFocused(true)
	if f.SetText(args[0]) {
		fmt.Fprintf(out, "typed:    %q  ghost=%q  state=%s\n", f.Text(), f.GhostZeros(), f.State())
	} else {
		fmt.Fprintf(out, "typed:    rejected by the input filter\n")
		f.SetFocused(false)
		if err := f.SetValue(value); err != nil {
			printError("setting value", err)
			return err
		}
	}
	f.SetFocused(false)

	committed := "<nil>"
	if c, ok := f.Stream().Load(); ok && c.Value != nil {
		committed = c.Value.String()
	}
	fmt.Fprintf(out, "applied:  %q  value=%s  state=%s\n",
		f.Text()+spaces(fieldCfg.Spacing)+f.Glyph(), committed, f.State())
	return nil
}

// formatFieldConfig picks the configured field and applies flag overrides
func formatFieldConfig(cmd *cobra.Command, cfg *config.Config) (config.FieldConfig, error) {
	fc := cfg.Fields[0]
	if formatField != "" {
		var ok bool
		if fc, ok = cfg.FieldByName(formatField); !ok {
			return fc, mdwerror.New("unknown field \""+formatField+"\"").
				WithCode(mdwerror.CodeNotFound).
				WithDetail("field", formatField)
		}
	}

	flags := cmd.Flags()
	if flags.Changed("digits") {
		digits := formatDigits
		fc.Digits = &digits
	}
	if flags.Changed("min") {
		lo, err := mathx.NewDecimal(formatMin)
		if err != nil {
			return fc, err
		}
		fc.Min = &lo
	}
	if flags.Changed("max") {
		hi, err := mathx.NewDecimal(formatMax)
		if err != nil {
			return fc, err
		}
		fc.Max = &hi
	}
	if flags.Changed("currency") {
		currency, err := mathx.ParseCurrencyType(formatCurrency)
		if err != nil {
			return fc, err
		}
		fc.Currency = currency
	}
	return fc, nil
}

func spaces(n int) string {
	return fmt.Sprintf("%*s", n, "")
}
