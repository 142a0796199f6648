package cmd

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/currencyedit/foundation/core/log"
	"github.com/msto63/currencyedit/internal/tui"
	"github.com/msto63/currencyedit/pkg/core/config"
)

var watchConfig bool

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Start the interactive demo",
	Long: `Start the terminal demo with one currency input per configured field.

Navigation:
  Tab/Shift+Tab  - move between fields (leaving a field applies it)
  Enter          - apply the focused field
  Ctrl+V         - paste an amount
  Ctrl+U         - clear the field
  Esc/Ctrl+C     - quit

With --watch the config file is reloaded whenever it changes.`,
	RunE: runTUI,
}

func init() {
	tuiCmd.Flags().BoolVarP(&watchConfig, "watch", "w", false, "reload fields when the config file changes")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, path, err := loadConfig()
	if err != nil {
		printError("loading config", err)
		return err
	}

	logger, err := newLogger(cfg, true)
	if err != nil {
		printError("creating logger", err)
		return err
	}
	defer logger.Close()

	model, err := tui.NewModel(cfg, tui.WithLogger(logger.Logger))
	if err != nil {
		printError("building fields", err)
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	if watchConfig && path != "" {
		go func() {
			err := config.Watch(ctx, path, cfg.UI.ReloadDebounce.Duration, func(next *config.Config, err error) {
				p.Send(tui.ConfigChangedMsg{Config: next, Err: err})
			})
			if err != nil {
				logger.ErrorWithErr("config watcher stopped", err)
				p.Send(tui.ConfigChangedMsg{Err: err})
			}
		}()
		logger.Info("watching config", mdwlog.String("path", path))
	}

	if _, err := p.Run(); err != nil {
		printError("running tui", err)
		return err
	}
	return nil
}
