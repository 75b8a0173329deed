package handlers

import (
	"github.com/kcaldas/genie-skill/pkg/skill"
)

// CancelOrStopHandler says goodbye. The end-session flag is left to the platform.
type CancelOrStopHandler struct{}

func NewCancelOrStopHandler() *CancelOrStopHandler {
	return &CancelOrStopHandler{}
}

func (h *CancelOrStopHandler) Name() string {
	return "cancel_or_stop"
}

func (h *CancelOrStopHandler) CanHandle(input *skill.HandlerInput) bool {
	return skill.IsIntentName(input, IntentCancel, IntentStop)
}

func (h *CancelOrStopHandler) Handle(input *skill.HandlerInput) (*skill.Response, error) {
	return input.ResponseBuilder.Speak(SpeechGoodbye).Response(), nil
}
