package cli

import (
	"github.com/kcaldas/genie-skill/pkg/logging"
	"github.com/kcaldas/genie-skill/pkg/transport"
	"github.com/spf13/cobra"
)

// NewLambdaCommand hands the skill to the AWS Lambda runtime
func NewLambdaCommand(provider SkillProvider) *cobra.Command {
	return &cobra.Command{
		Use:   "lambda",
		Short: "Run as an AWS Lambda function handler",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, cfg, err := provider(cmd.Context())
			if err != nil {
				return err
			}
			logging.Info("starting lambda handler", "model", cfg.Model.ModelName, "backend", cfg.Backend)
			transport.StartLambda(s)
			return nil
		},
	}
}
