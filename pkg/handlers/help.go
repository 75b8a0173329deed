package handlers

import (
	"github.com/kcaldas/genie-skill/pkg/skill"
)

// HelpHandler explains how to use the skill and waits for a question
type HelpHandler struct{}

func NewHelpHandler() *HelpHandler {
	return &HelpHandler{}
}

func (h *HelpHandler) Name() string {
	return "help"
}

func (h *HelpHandler) CanHandle(input *skill.HandlerInput) bool {
	return skill.IsIntentName(input, IntentHelp)
}

func (h *HelpHandler) Handle(input *skill.HandlerInput) (*skill.Response, error) {
	return input.ResponseBuilder.
		Speak(SpeechHelp).
		Ask(SpeechHelp).
		Response(), nil
}
