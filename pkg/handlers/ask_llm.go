package handlers

import (
	"github.com/kcaldas/genie-skill/pkg/ai"
	"github.com/kcaldas/genie-skill/pkg/logging"
	"github.com/kcaldas/genie-skill/pkg/skill"
)

// AskLLMHandler forwards the user's query to the generator and speaks the answer.
// Generation failures are never returned; they become SpeechLLMFailure.
type AskLLMHandler struct {
	gen       ai.Gen
	modelName string
	logger    logging.Logger
}

// NewAskLLMHandler creates the handler. An empty modelName defers to the generator's model.
func NewAskLLMHandler(gen ai.Gen, modelName string, logger logging.Logger) *AskLLMHandler {
	return &AskLLMHandler{
		gen:       gen,
		modelName: modelName,
		logger:    logger,
	}
}

func (h *AskLLMHandler) Name() string {
	return "ask_llm"
}

func (h *AskLLMHandler) CanHandle(input *skill.HandlerInput) bool {
	return skill.IsIntentName(input, IntentAskLLM)
}

func (h *AskLLMHandler) Handle(input *skill.HandlerInput) (*skill.Response, error) {
	query := input.Envelope.SlotValue(SlotQuery)
	if query == "" {
		return input.ResponseBuilder.
			Speak(SpeechEmptyQuery).
			WithShouldEndSession(false).
			Response(), nil
	}

	h.logger.Info("received query", "query", query)

	answer, err := h.gen.GenerateContent(input.Context, ai.Prompt{
		Name:      "ask_llm",
		Text:      query,
		ModelName: h.modelName,
	})
	if err != nil {
		logging.LogError(input.Context, h.logger, "error calling LLM", err)
		return input.ResponseBuilder.
			Speak(SpeechLLMFailure).
			WithShouldEndSession(false).
			Response(), nil
	}

	h.logger.Debug("LLM response", "response", answer)
	return input.ResponseBuilder.
		Speak(answer).
		WithShouldEndSession(false).
		Response(), nil
}
