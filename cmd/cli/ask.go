package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kcaldas/genie-skill/pkg/handlers"
	"github.com/kcaldas/genie-skill/pkg/logging"
	"github.com/kcaldas/genie-skill/pkg/skill"
	"github.com/spf13/cobra"
)

// NewAskCommand builds an AskLlmIntent request locally, runs it through the skill
// and prints what the device would say
func NewAskCommand(provider SkillProvider) *cobra.Command {
	var rawJSON bool

	cmd := &cobra.Command{
		Use:   "ask <query>",
		Short: "Ask the skill a question from the terminal",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, cfg, err := provider(cmd.Context())
			if err != nil {
				return err
			}

			query := strings.Join(args, " ")
			envelope := skill.NewIntentRequest(cfg.SkillID, handlers.IntentAskLLM, map[string]string{
				handlers.SlotQuery: query,
			})
			logging.Debug("invoking skill", "request_id", envelope.Request.RequestID, "query", query)

			out, err := s.Invoke(cmd.Context(), envelope)
			if err != nil {
				return fmt.Errorf("skill invocation failed: %w", err)
			}

			if rawJSON {
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(out)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out.Response.SpeechText())
			return err
		},
	}

	cmd.Flags().BoolVar(&rawJSON, "json", false, "print the full response envelope")
	return cmd
}
