package skill

import (
	"context"
	"errors"
	"testing"

	"github.com/kcaldas/genie-skill/pkg/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// funcHandler is a request handler built from closures
type funcHandler struct {
	name      string
	canHandle func(*HandlerInput) bool
	handle    func(*HandlerInput) (*Response, error)
	calls     int
}

func (h *funcHandler) Name() string { return h.name }

func (h *funcHandler) CanHandle(input *HandlerInput) bool { return h.canHandle(input) }

func (h *funcHandler) Handle(input *HandlerInput) (*Response, error) {
	h.calls++
	return h.handle(input)
}

func speaking(name, speech string, match func(*HandlerInput) bool) *funcHandler {
	return &funcHandler{
		name:      name,
		canHandle: match,
		handle: func(input *HandlerInput) (*Response, error) {
			return input.ResponseBuilder.Speak(speech).Response(), nil
		},
	}
}

// recordingExceptionHandler remembers the last error it handled
type recordingExceptionHandler struct {
	lastErr error
	match   bool
	fail    bool
}

func (h *recordingExceptionHandler) CanHandle(input *HandlerInput, err error) bool { return h.match }

func (h *recordingExceptionHandler) Handle(input *HandlerInput, err error) (*Response, error) {
	h.lastErr = err
	if h.fail {
		return nil, errors.New("exception handler exploded")
	}
	return input.ResponseBuilder.Speak("fallback").Ask("fallback").Response(), nil
}

func matchType(requestType string) func(*HandlerInput) bool {
	return func(input *HandlerInput) bool { return IsRequestType(input, requestType) }
}

func matchIntent(names ...string) func(*HandlerInput) bool {
	return func(input *HandlerInput) bool { return IsIntentName(input, names...) }
}

func buildSkill(t *testing.T, exception ExceptionHandler, handlers ...RequestHandler) *Skill {
	t.Helper()
	builder := NewSkillBuilder().
		WithLogger(logging.NewDisabledLogger()).
		AddRequestHandlers(handlers...)
	if exception != nil {
		builder.AddExceptionHandlers(exception)
	}
	s, err := builder.Build()
	require.NoError(t, err)
	return s
}

func TestSkillDispatchesToMatchingHandler(t *testing.T) {
	launch := speaking("launch", "welcome", matchType(RequestTypeLaunch))
	ask := speaking("ask", "answer", matchIntent("AskLlmIntent"))
	s := buildSkill(t, nil, launch, ask)

	envelope, err := s.Invoke(context.Background(), NewIntentRequest("", "AskLlmIntent", nil))
	require.NoError(t, err)
	assert.Equal(t, ResponseVersion, envelope.Version)
	assert.Equal(t, "answer", envelope.Response.SpeechText())
	assert.Equal(t, 0, launch.calls)
	assert.Equal(t, 1, ask.calls)
}

func TestSkillFirstMatchWins(t *testing.T) {
	first := speaking("first", "first", matchIntent("AMAZON.HelpIntent"))
	second := speaking("second", "second", matchIntent("AMAZON.HelpIntent"))
	s := buildSkill(t, nil, first, second)

	envelope, err := s.Invoke(context.Background(), NewIntentRequest("", "AMAZON.HelpIntent", nil))
	require.NoError(t, err)
	assert.Equal(t, "first", envelope.Response.SpeechText())
	assert.Equal(t, 0, second.calls)
}

func TestSkillRoutesHandlerErrorsToExceptionHandler(t *testing.T) {
	boom := errors.New("boom")
	failing := &funcHandler{
		name:      "failing",
		canHandle: matchType(RequestTypeLaunch),
		handle:    func(*HandlerInput) (*Response, error) { return nil, boom },
	}
	exception := &recordingExceptionHandler{match: true}
	s := buildSkill(t, exception, failing)

	envelope, err := s.Invoke(context.Background(), NewLaunchRequest(""))
	require.NoError(t, err)
	assert.Equal(t, "fallback", envelope.Response.SpeechText())
	assert.ErrorIs(t, exception.lastErr, boom)
}

func TestSkillRecoversFromHandlerPanic(t *testing.T) {
	panicking := &funcHandler{
		name:      "panicking",
		canHandle: matchType(RequestTypeLaunch),
		handle:    func(*HandlerInput) (*Response, error) { panic("nil map write") },
	}
	exception := &recordingExceptionHandler{match: true}
	s := buildSkill(t, exception, panicking)

	envelope, err := s.Invoke(context.Background(), NewLaunchRequest(""))
	require.NoError(t, err)
	assert.Equal(t, "fallback", envelope.Response.SpeechText())
	require.Error(t, exception.lastErr)
	assert.Contains(t, exception.lastErr.Error(), "nil map write")
}

func TestSkillNoHandlerFound(t *testing.T) {
	launch := speaking("launch", "welcome", matchType(RequestTypeLaunch))

	t.Run("routed to exception handler", func(t *testing.T) {
		exception := &recordingExceptionHandler{match: true}
		s := buildSkill(t, exception, launch)

		envelope, err := s.Invoke(context.Background(), NewIntentRequest("", "AMAZON.FallbackIntent", nil))
		require.NoError(t, err)
		assert.Equal(t, "fallback", envelope.Response.SpeechText())
		assert.ErrorIs(t, exception.lastErr, ErrNoHandlerFound)
	})

	t.Run("propagated without exception handler", func(t *testing.T) {
		s := buildSkill(t, nil, launch)

		_, err := s.Invoke(context.Background(), NewIntentRequest("", "AMAZON.FallbackIntent", nil))
		assert.ErrorIs(t, err, ErrNoHandlerFound)
	})

	t.Run("propagated when no exception handler matches", func(t *testing.T) {
		s := buildSkill(t, &recordingExceptionHandler{match: false}, launch)

		_, err := s.Invoke(context.Background(), NewIntentRequest("", "AMAZON.FallbackIntent", nil))
		assert.ErrorIs(t, err, ErrNoHandlerFound)
	})
}

func TestSkillFailingExceptionHandler(t *testing.T) {
	launch := speaking("launch", "welcome", matchType(RequestTypeLaunch))
	s := buildSkill(t, &recordingExceptionHandler{match: true, fail: true}, launch)

	_, err := s.Invoke(context.Background(), NewSessionEndedRequest("", "ERROR"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exception handler exploded")
}

func TestSkillNilResponseBecomesEmptyResponse(t *testing.T) {
	silent := &funcHandler{
		name:      "silent",
		canHandle: matchType(RequestTypeSessionEnded),
		handle:    func(*HandlerInput) (*Response, error) { return nil, nil },
	}
	s := buildSkill(t, nil, silent)

	envelope, err := s.Invoke(context.Background(), NewSessionEndedRequest("", "USER_INITIATED"))
	require.NoError(t, err)
	require.NotNil(t, envelope.Response)
	assert.Nil(t, envelope.Response.OutputSpeech)
}

func TestSkillEchoesSessionAttributes(t *testing.T) {
	launch := speaking("launch", "welcome", matchType(RequestTypeLaunch))
	s := buildSkill(t, nil, launch)

	request := NewLaunchRequest("")
	request.Session.Attributes = map[string]any{"turn": 1}

	envelope, err := s.Invoke(context.Background(), request)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"turn": 1}, envelope.SessionAttributes)
}

func TestSkillIDVerification(t *testing.T) {
	launch := speaking("launch", "welcome", matchType(RequestTypeLaunch))
	s, err := NewSkillBuilder().
		WithLogger(logging.NewDisabledLogger()).
		WithSkillID("amzn1.ask.skill.mine").
		AddRequestHandlers(launch).
		Build()
	require.NoError(t, err)

	_, err = s.Invoke(context.Background(), NewLaunchRequest("amzn1.ask.skill.other"))
	assert.ErrorIs(t, err, ErrSkillIDMismatch)
	assert.Equal(t, 0, launch.calls)

	envelope, err := s.Invoke(context.Background(), NewLaunchRequest("amzn1.ask.skill.mine"))
	require.NoError(t, err)
	assert.Equal(t, "welcome", envelope.Response.SpeechText())
}

func TestSkillRejectsMissingRequest(t *testing.T) {
	s := buildSkill(t, nil, speaking("launch", "welcome", matchType(RequestTypeLaunch)))

	_, err := s.Invoke(context.Background(), nil)
	assert.ErrorIs(t, err, ErrMissingRequest)

	_, err = s.Invoke(context.Background(), &RequestEnvelope{Version: "1.0"})
	assert.ErrorIs(t, err, ErrMissingRequest)
}

func TestSkillBuilderValidation(t *testing.T) {
	t.Run("no handlers", func(t *testing.T) {
		_, err := NewSkillBuilder().Build()
		assert.Error(t, err)
	})

	t.Run("nil handler", func(t *testing.T) {
		_, err := NewSkillBuilder().AddRequestHandlers(nil).Build()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "nil request handler")
	})

	t.Run("nil exception handler", func(t *testing.T) {
		_, err := NewSkillBuilder().
			AddRequestHandlers(speaking("launch", "welcome", matchType(RequestTypeLaunch))).
			AddExceptionHandlers(nil).
			Build()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "nil exception handler")
	})

	t.Run("duplicate names", func(t *testing.T) {
		_, err := NewSkillBuilder().
			AddRequestHandlers(
				speaking("launch", "a", matchType(RequestTypeLaunch)),
				speaking("launch", "b", matchType(RequestTypeLaunch)),
			).
			Build()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already registered")
	})
}

func TestIsIntentName(t *testing.T) {
	stop := NewHandlerInput(context.Background(), NewIntentRequest("", "AMAZON.StopIntent", nil))
	assert.True(t, IsIntentName(stop, "AMAZON.CancelIntent", "AMAZON.StopIntent"))
	assert.False(t, IsIntentName(stop, "AMAZON.HelpIntent"))

	launch := NewHandlerInput(context.Background(), NewLaunchRequest(""))
	assert.False(t, IsIntentName(launch, ""), "non-intent requests never match an intent name")
}
