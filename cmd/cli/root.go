package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/kcaldas/genie-skill/internal/di"
	"github.com/kcaldas/genie-skill/pkg/config"
	"github.com/kcaldas/genie-skill/pkg/logging"
	"github.com/kcaldas/genie-skill/pkg/skill"
	"github.com/kcaldas/genie-skill/pkg/version"
	"github.com/spf13/cobra"
)

// SkillProvider builds the skill and returns the configuration it was built from.
// Commands call it lazily so that version and help work without credentials.
type SkillProvider func(ctx context.Context) (*skill.Skill, config.SkillConfig, error)

// DefaultSkillProvider wires the skill from the environment
func DefaultSkillProvider(ctx context.Context) (*skill.Skill, config.SkillConfig, error) {
	cfg, err := di.ProvideSkillConfig()
	if err != nil {
		return nil, config.SkillConfig{}, err
	}
	s, err := di.ProvideSkillWithConfig(ctx, cfg)
	if err != nil {
		return nil, config.SkillConfig{}, fmt.Errorf("failed to initialize skill: %w", err)
	}
	return s, cfg, nil
}

// NewRootCommand creates the genie-skill command tree
func NewRootCommand(provider SkillProvider) *cobra.Command {
	var (
		verbose bool
		quiet   bool
		envFile string
	)

	rootCmd := &cobra.Command{
		Use:           "genie-skill",
		Short:         "Voice assistant skill backed by Gemini",
		Long:          `genie-skill answers voice assistant requests, forwarding free-form questions to Gemini.`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if envFile != "" {
				if err := config.LoadDotEnv(envFile); err != nil {
					return err
				}
			} else if err := config.LoadDotEnv(); err != nil {
				return err
			}

			logging.SetGlobalLogger(newLogger(cmd, config.NewConfigManager(), verbose, quiet))
			return nil
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output (debug level)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "quiet output (errors only)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "dotenv file to load before reading configuration (default .env)")
	rootCmd.SetVersionTemplate("genie-skill version {{.Version}}\n")

	rootCmd.AddCommand(
		NewServeCommand(provider),
		NewLambdaCommand(provider),
		NewAskCommand(provider),
		NewVersionCommand(),
	)

	return rootCmd
}

// newLogger picks the level from the flags first, then LOG_LEVEL. The format comes
// from LOG_FORMAT and defaults to JSON inside Lambda.
func newLogger(cmd *cobra.Command, m config.Manager, verbose, quiet bool) logging.Logger {
	level := logging.ParseLevel(m.GetStringWithDefault("LOG_LEVEL", "info"))
	switch {
	case quiet:
		level = slog.LevelError
	case verbose:
		level = slog.LevelDebug
	}

	defaultFormat := "text"
	if m.GetStringWithDefault("AWS_LAMBDA_FUNCTION_NAME", "") != "" {
		defaultFormat = "json"
	}

	return logging.NewLogger(logging.Config{
		Level:   level,
		Format:  logging.ParseFormat(m.GetStringWithDefault("LOG_FORMAT", defaultFormat)),
		Output:  cmd.ErrOrStderr(),
		AddTime: true,
	})
}
