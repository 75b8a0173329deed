package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/kcaldas/genie-skill/pkg/logging"
	"github.com/kcaldas/genie-skill/pkg/transport"
	"github.com/spf13/cobra"
)

// NewServeCommand runs the skill behind an HTTP endpoint
func NewServeCommand(provider SkillProvider) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve skill requests over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			s, cfg, err := provider(ctx)
			if err != nil {
				return err
			}
			if addr == "" {
				addr = cfg.HTTPAddr
			}

			logger := logging.NewAPILogger("http")
			logger.Info("starting skill endpoint",
				"model", cfg.Model.ModelName,
				"backend", cfg.Backend,
				"skill_id_check", cfg.SkillID != "")
			return transport.Serve(ctx, addr, transport.NewRouter(s, logger), logger)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default SKILL_HTTP_ADDR or :8080)")
	return cmd
}
