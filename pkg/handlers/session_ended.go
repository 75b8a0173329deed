package handlers

import (
	"github.com/kcaldas/genie-skill/pkg/logging"
	"github.com/kcaldas/genie-skill/pkg/skill"
)

// SessionEndedHandler acknowledges the end of a session with an empty response
type SessionEndedHandler struct {
	logger logging.Logger
}

func NewSessionEndedHandler(logger logging.Logger) *SessionEndedHandler {
	return &SessionEndedHandler{logger: logger}
}

func (h *SessionEndedHandler) Name() string {
	return "session_ended"
}

func (h *SessionEndedHandler) CanHandle(input *skill.HandlerInput) bool {
	return skill.IsRequestType(input, skill.RequestTypeSessionEnded)
}

func (h *SessionEndedHandler) Handle(input *skill.HandlerInput) (*skill.Response, error) {
	request := input.Envelope.Request
	if request.Error != nil {
		h.logger.Warn("session ended with error",
			"reason", request.Reason,
			"error_type", request.Error.Type,
			"error_message", request.Error.Message)
	} else {
		h.logger.Debug("session ended", "reason", request.Reason)
	}
	return input.ResponseBuilder.Response(), nil
}
