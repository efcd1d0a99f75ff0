package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/LBuyana/talentflow-app/internal/config"
	logpkg "github.com/LBuyana/talentflow-app/internal/logger"
	"github.com/LBuyana/talentflow-app/internal/version"
)

// cli carries the state shared by every subcommand once the root pre-run has loaded it.
type cli struct {
	env    string
	cfg    config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:           "talentflow",
		Short:         "TalentFlow recommendation engine",
		Long:          "TalentFlow matches job postings and seeker profiles by text similarity.",
		Version:       version.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			return c.load()
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if c.logger != nil {
				_ = c.logger.Sync()
			}
		},
	}
	root.PersistentFlags().StringVar(&c.env, "env", config.GetEnv(), "config environment (config/<env>.yaml)")

	root.AddCommand(
		newServeCmd(c),
		newRecommendCmd(c),
		newVersionCmd(),
	)
	return root
}

// load reads .env, the YAML config and builds the logger.
func (c *cli) load() error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}

	cfg, err := config.Load(c.env)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := logpkg.NewLogger(c.env, cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}

	c.cfg = cfg
	c.logger = logger
	return nil
}
