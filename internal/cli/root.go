package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/apereda/gradus/internal/console"
	"github.com/apereda/gradus/internal/infra/logger"
	"github.com/apereda/gradus/internal/ui/tui"
	"github.com/apereda/gradus/internal/usecase"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool
	var useTUI bool

	cmd := &cobra.Command{
		Use:          "gradus",
		Short:        "Gradus — interactive Celsius/Fahrenheit converter",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			wd, err := os.Getwd()
			if err != nil {
				wd = "."
			}
			wd, _ = filepath.Abs(wd)

			cleanup, _ := logger.Setup(logger.Config{
				Root:  wd,
				Debug: debug,
			})
			if cleanup != nil {
				defer func() { _ = cleanup() }()
			}

			uc := usecase.NewConvertTemperature(logger.L())

			if useTUI {
				return tui.Run(tui.Deps{
					Converter: uc,
					Logger:    logger.L(),
				})
			}

			s := console.NewSession(os.Stdin, os.Stdout, uc, logger.L())
			return s.Run(cmd.Context())
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging to .gradus/logs/gradus.log")
	cmd.Flags().BoolVar(&useTUI, "tui", false, "use the full-screen TUI instead of the plain menu")

	cmd.AddCommand(convertCmd())
	cmd.AddCommand(versionCmd())
	return cmd
}
