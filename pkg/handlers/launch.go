package handlers

import (
	"github.com/kcaldas/genie-skill/pkg/skill"
)

// LaunchHandler greets the user when the skill is opened without an intent
type LaunchHandler struct{}

func NewLaunchHandler() *LaunchHandler {
	return &LaunchHandler{}
}

func (h *LaunchHandler) Name() string {
	return "launch"
}

func (h *LaunchHandler) CanHandle(input *skill.HandlerInput) bool {
	return skill.IsRequestType(input, skill.RequestTypeLaunch)
}

func (h *LaunchHandler) Handle(input *skill.HandlerInput) (*skill.Response, error) {
	return input.ResponseBuilder.
		Speak(SpeechWelcome).
		WithShouldEndSession(false).
		Response(), nil
}
