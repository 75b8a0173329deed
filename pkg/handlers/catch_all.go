package handlers

import (
	"github.com/kcaldas/genie-skill/pkg/logging"
	"github.com/kcaldas/genie-skill/pkg/skill"
)

// CatchAllExceptionHandler turns any dispatch error into a spoken apology. It never fails.
type CatchAllExceptionHandler struct {
	logger logging.Logger
}

func NewCatchAllExceptionHandler(logger logging.Logger) *CatchAllExceptionHandler {
	return &CatchAllExceptionHandler{logger: logger}
}

func (h *CatchAllExceptionHandler) Name() string {
	return "catch_all"
}

func (h *CatchAllExceptionHandler) CanHandle(input *skill.HandlerInput, err error) bool {
	return true
}

func (h *CatchAllExceptionHandler) Handle(input *skill.HandlerInput, err error) (*skill.Response, error) {
	h.logger.Error("request failed",
		"request_type", input.Envelope.RequestType(),
		"intent", input.Envelope.IntentName(),
		"error", err)

	return input.ResponseBuilder.
		Speak(SpeechCatchAll).
		Ask(SpeechCatchAll).
		Response(), nil
}
