package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/packlist/internal/config"
	"github.com/idilsaglam/packlist/internal/logging"
	"github.com/idilsaglam/packlist/internal/model"
	"github.com/idilsaglam/packlist/internal/packing"
	"github.com/idilsaglam/packlist/internal/tui"
	"github.com/idilsaglam/packlist/internal/ui"
)

// Runner starts the interactive list and returns the items left at exit.
type Runner func(ctx context.Context, cfg config.Config) ([]model.Item, error)

// NewRootCmd builds the packlist command. Flags default to the
// PACKLIST_* environment and override it.
func NewRootCmd(run Runner) *cobra.Command {
	return newRootCmd(run, config.Defaults())
}

func newRootCmd(run Runner, cfg config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "packlist",
		Short: "A packing list for your next trip",
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.NoArgs(cmd, args); err != nil {
				return fmt.Errorf("%w: %v", config.ErrInvalid, err)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: strings.TrimSpace(`
  # Start with an empty list
  packlist

  # Plain ASCII output, trace every change to a log file
  packlist --theme mono --trace --log-file /tmp/packlist.log
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}
			items, err := run(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			th, _ := ui.ThemeByName(cfg.Theme)
			ui.OK(cmd.OutOrStdout(), th, packing.ComputeStats(items).Message())
			return nil
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", config.ErrInvalid, err)
	})

	cmd.Flags().StringVar(&cfg.Theme, "theme", cfg.Theme, "Color theme ("+strings.Join(ui.ThemeNames, "|")+")")
	cmd.Flags().StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "Append JSON logs to this file (default: no logging)")
	cmd.Flags().BoolVar(&cfg.Trace, "trace", cfg.Trace, "Log every list change at debug level")
	cmd.Flags().BoolVar(&cfg.AltScreen, "alt-screen", cfg.AltScreen, "Use the terminal's alternate screen")

	return cmd
}

// RunTUI is the production Runner.
func RunTUI(ctx context.Context, cfg config.Config) ([]model.Item, error) {
	th, err := ui.ThemeByName(cfg.Theme)
	if err != nil {
		return nil, err
	}
	log, closer, err := logging.Open(logging.Options{FilePath: cfg.LogFile, Trace: cfg.Trace})
	if err != nil {
		return nil, err
	}
	defer closer.Close()

	log.Info("start", "theme", th.Name, "alt_screen", cfg.AltScreen)
	items, err := tui.Run(ctx, tui.Options{
		Theme:     th,
		Logger:    log,
		IDs:       packing.NewClockIDs(nil),
		AltScreen: cfg.AltScreen,
	})
	if err != nil {
		log.Error("tui", "err", err)
		return nil, err
	}
	log.Info("exit", "items", len(items))
	return items, nil
}

// Execute runs the command line and returns an exit code (0 ok, 1 error,
// 2 usage or configuration).
func Execute(ctx context.Context, args []string) int {
	cmd := NewRootCmd(RunTUI)
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(ctx); err != nil {
		th, _ := ui.ThemeByName("")
		ui.Fail(os.Stderr, th, err.Error())
		return exitCode(err)
	}
	return 0
}

func exitCode(err error) int {
	if errors.Is(err, config.ErrInvalid) {
		return 2
	}
	return 1
}
