package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/currencyedit/foundation/core/error"
	"github.com/msto63/currencyedit/internal/field"
	"github.com/msto63/currencyedit/internal/format"
	"github.com/msto63/currencyedit/internal/tui/currencyinput"
	"github.com/msto63/currencyedit/pkg/core/config"
	"github.com/msto63/currencyedit/pkg/core/health"
	"github.com/msto63/currencyedit/pkg/core/version"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check config, log file and clipboard",
	Long: `Check the environment the demo runs in.

  config     - the config file loads and validates
  fields     - every field attaches and commits its start value
  log        - the log file can be written
  clipboard  - the system clipboard can be read (paste)

A missing clipboard only degrades the result.`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, path, loadErr := loadConfig()

	registry := health.NewRegistry("currencyedit", version.Application)
	registry.Register(health.ErrorCheck("config", health.StatusUnhealthy, func(ctx context.Context) (string, error) {
		if loadErr != nil {
			return "", loadErr
		}
		if path == "" {
			return "defaults", nil
		}
		return path, nil
	}))

	if loadErr == nil {
		registry.RegisterFunc("fields", func(ctx context.Context) health.CheckResult {
			return checkFields(cfg)
		})
		registry.Register(health.FileWritableCheck("log", cfg.Logging.File))
	}

	registry.Register(health.ErrorCheck("clipboard", health.StatusDegraded, func(ctx context.Context) (string, error) {
		if _, err := (currencyinput.SystemClipboard{}).ReadAll(); err != nil {
			return "", err
		}
		return "readable", nil
	}))

	report := registry.CheckWithTimeout(5 * time.Second)
	if err := report.Write(cmd.OutOrStdout()); err != nil {
		return err
	}
	if report.Status == health.StatusUnhealthy {
		return mdwerror.New("environment check failed").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("cmd.check")
	}
	return nil
}

// checkFields attaches every configured field to a headless buffer and
// types its start text back through the input filter
func checkFields(cfg *config.Config) health.CheckResult {
	result := health.CheckResult{Name: "fields", Status: health.StatusUnhealthy}
	for _, fc := range cfg.Fields {
		if err := attachField(fc); err != nil {
			result.Message = err.Error()
			return result
		}
	}

	rules, hits, misses := format.RuleStats()
	result.Status = health.StatusHealthy
	result.Message = fmt.Sprintf("%d fields, %d filter rules", len(cfg.Fields), rules)
	result.Details = map[string]interface{}{"rule_hits": hits, "rule_misses": misses}
	return result
}

func attachField(fc config.FieldConfig) error {
	fieldCfg, err := fc.Build()
	if err != nil {
		return err
	}
	f, err := field.New(field.NewBuffer(), fieldCfg, field.WithName(fc.Name))
	if err != nil {
		return err
	}
	f.SetFocused(true)
	defer f.SetFocused(false)
	if text := f.Text(); !f.SetText(text) {
		return mdwerror.Newf("field %q rejects its own start text %q", fc.Name, text).
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("cmd.check")
	}
	return nil
}
