package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Lixing-Zhang/chefs-menu/internal/repository"
	"github.com/Lixing-Zhang/chefs-menu/internal/service"
	"github.com/Lixing-Zhang/chefs-menu/internal/shell"
	"github.com/Lixing-Zhang/chefs-menu/pkg/logger"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		logLevel string
		seed     bool
	)

	cmd := &cobra.Command{
		Use:          "menu",
		Short:        "Interactive chef's menu",
		Long:         "Enter dishes, list them, filter by course and see average prices. The menu is kept in memory until you quit.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			// Logs go to stderr so they never interleave with the menu output.
			log := logger.NewWithWriter(cmd.ErrOrStderr(), logLevel)
			menuService := service.NewMenuService(repository.NewInMemoryDishRepository())

			if seed {
				if _, err := menuService.SeedSample(ctx); err != nil {
					return fmt.Errorf("seed sample menu: %w", err)
				}
			}

			return shell.New(menuService, cmd.InOrStdin(), cmd.OutOrStdout(), log).Run(ctx)
		},
	}

	cmd.Flags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	cmd.Flags().BoolVar(&seed, "seed", false, "start with a sample menu")

	return cmd
}
