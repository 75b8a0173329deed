package handlers

import (
	"github.com/kcaldas/genie-skill/pkg/ai"
	"github.com/kcaldas/genie-skill/pkg/config"
	"github.com/kcaldas/genie-skill/pkg/logging"
	"github.com/kcaldas/genie-skill/pkg/skill"
)

// NewDefaultSkill registers the default handlers in dispatch order
func NewDefaultSkill(gen ai.Gen, cfg config.SkillConfig) (*skill.Skill, error) {
	return skill.NewSkillBuilder().
		WithSkillID(cfg.SkillID).
		AddRequestHandlers(
			NewLaunchHandler(),
			NewAskLLMHandler(gen, cfg.Model.ModelName, logging.NewHandlerLogger("ask_llm")),
			NewHelpHandler(),
			NewCancelOrStopHandler(),
			NewSessionEndedHandler(logging.NewHandlerLogger("session_ended")),
		).
		AddExceptionHandlers(
			NewCatchAllExceptionHandler(logging.NewHandlerLogger("catch_all")),
		).
		Build()
}
