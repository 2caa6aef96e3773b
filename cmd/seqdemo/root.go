package main

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/huynhanx03/go-collections/pkg/logger"
	"github.com/huynhanx03/go-collections/pkg/scenario"
	"github.com/huynhanx03/go-collections/pkg/settings"
)

// env is what every subcommand runs with once the config is loaded.
type env struct {
	cfg *settings.Config
	log *zap.Logger
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		e          env
	)

	root := &cobra.Command{
		Use:           "seqdemo",
		Short:         "Run the array stack and queue demonstration scenarios",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := settings.Load(configPath)
			if err != nil {
				return err
			}
			log, err := logger.New(cfg.Logger)
			if err != nil {
				return err
			}
			e = env{cfg: cfg, log: log}
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if e.log != nil {
				_ = e.log.Sync()
			}
		},
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a TOML config file")

	root.AddCommand(
		scenarioCmd("queue", "Sliding-window enqueue/dequeue over the array queue", &e,
			func(ctx context.Context, e *env) error {
				_, err := scenario.QueueWindow(ctx, e.cfg.Scenario, e.log)
				return err
			}),
		scenarioCmd("stack", "Push, peek, search and pop on the array stack", &e,
			func(ctx context.Context, e *env) error {
				_, err := scenario.StackTour(ctx, e.cfg.Scenario, e.log)
				return err
			}),
		scenarioCmd("resize", "Time element-by-element against bulk copy on reallocation", &e,
			func(ctx context.Context, e *env) error {
				_, err := scenario.ResizeTiming(ctx, e.cfg.Scenario, e.log)
				return err
			}),
		scenarioCmd("all", "Run every scenario concurrently", &e,
			func(ctx context.Context, e *env) error {
				_, err := scenario.RunAll(ctx, e.cfg.Scenario, e.log)
				return err
			}),
	)
	return root
}

func scenarioCmd(use, short string, e *env, run func(context.Context, *env) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := run(cmd.Context(), e); err != nil {
				e.log.Error("scenario failed", zap.String("scenario", use), zap.Error(err))
				return err
			}
			return nil
		},
	}
}
