package skill

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/kcaldas/genie-skill/pkg/logging"
	"github.com/kcaldas/genie-skill/pkg/metrics"
)

var (
	// ErrNoHandlerFound is dispatched to the exception handlers when no request handler accepts a request
	ErrNoHandlerFound = errors.New("no request handler found")
	// ErrSkillIDMismatch is returned when the request was addressed to a different skill
	ErrSkillIDMismatch = errors.New("request application id does not match skill id")
	// ErrMissingRequest is returned for envelopes without a request body
	ErrMissingRequest = errors.New("request envelope has no request")
)

// Named is implemented by handlers that want a stable name in logs and metrics
type Named interface {
	Name() string
}

// Skill routes request envelopes to handlers. It is immutable once built.
type Skill struct {
	skillID           string
	requestHandlers   []RequestHandler
	exceptionHandlers []ExceptionHandler
	logger            logging.Logger
}

// SkillBuilder collects handlers in registration order
type SkillBuilder struct {
	skillID           string
	requestHandlers   []RequestHandler
	exceptionHandlers []ExceptionHandler
	logger            logging.Logger
	errs              []error
}

// NewSkillBuilder creates an empty builder
func NewSkillBuilder() *SkillBuilder {
	return &SkillBuilder{}
}

// WithSkillID rejects requests addressed to other skills. Empty disables the check.
func (b *SkillBuilder) WithSkillID(skillID string) *SkillBuilder {
	b.skillID = skillID
	return b
}

// WithLogger overrides the component logger
func (b *SkillBuilder) WithLogger(logger logging.Logger) *SkillBuilder {
	b.logger = logger
	return b
}

// AddRequestHandlers appends request handlers; earlier handlers win
func (b *SkillBuilder) AddRequestHandlers(handlers ...RequestHandler) *SkillBuilder {
	for _, h := range handlers {
		if h == nil {
			b.errs = append(b.errs, fmt.Errorf("cannot register nil request handler"))
			continue
		}
		b.requestHandlers = append(b.requestHandlers, h)
	}
	return b
}

// AddExceptionHandlers appends exception handlers; earlier handlers win
func (b *SkillBuilder) AddExceptionHandlers(handlers ...ExceptionHandler) *SkillBuilder {
	for _, h := range handlers {
		if h == nil {
			b.errs = append(b.errs, fmt.Errorf("cannot register nil exception handler"))
			continue
		}
		b.exceptionHandlers = append(b.exceptionHandlers, h)
	}
	return b
}

// Build validates the registration and returns the immutable skill
func (b *SkillBuilder) Build() (*Skill, error) {
	if len(b.errs) > 0 {
		return nil, errors.Join(b.errs...)
	}
	if len(b.requestHandlers) == 0 {
		return nil, fmt.Errorf("skill needs at least one request handler")
	}

	seen := make(map[string]bool)
	for _, h := range b.requestHandlers {
		name := handlerName(h)
		if seen[name] {
			return nil, fmt.Errorf("request handler with name '%s' already registered", name)
		}
		seen[name] = true
	}

	logger := b.logger
	if logger == nil {
		logger = logging.NewComponentLogger("skill")
	}

	return &Skill{
		skillID:           b.skillID,
		requestHandlers:   append([]RequestHandler(nil), b.requestHandlers...),
		exceptionHandlers: append([]ExceptionHandler(nil), b.exceptionHandlers...),
		logger:            logger,
	}, nil
}

// Invoke handles one request envelope and returns the envelope to send back
func (s *Skill) Invoke(ctx context.Context, envelope *RequestEnvelope) (*ResponseEnvelope, error) {
	if envelope == nil || envelope.Request == nil {
		return nil, ErrMissingRequest
	}
	if s.skillID != "" && envelope.ApplicationID() != s.skillID {
		s.logger.Warn("rejecting request for another skill",
			"application_id", envelope.ApplicationID(),
			"request_id", envelope.Request.RequestID)
		return nil, fmt.Errorf("%w: %q", ErrSkillIDMismatch, envelope.ApplicationID())
	}

	input := NewHandlerInput(ctx, envelope)
	logger := s.logger.With(
		"request_id", envelope.Request.RequestID,
		"request_type", envelope.RequestType(),
	)

	response, err := s.dispatch(input, logger)
	if err != nil {
		response, err = s.handleException(input, err, logger)
		if err != nil {
			return nil, err
		}
	}
	if response == nil {
		response = &Response{}
	}

	var attributes map[string]any
	if envelope.Session != nil {
		attributes = envelope.Session.Attributes
	}

	return &ResponseEnvelope{
		Version:           ResponseVersion,
		SessionAttributes: attributes,
		Response:          response,
	}, nil
}

func (s *Skill) dispatch(input *HandlerInput, logger logging.Logger) (*Response, error) {
	for _, h := range s.requestHandlers {
		if !h.CanHandle(input) {
			continue
		}
		name := handlerName(h)
		logger.Debug("dispatching request", "handler", name, "intent", input.Envelope.IntentName())

		response, err := safeHandle(func() (*Response, error) { return h.Handle(input) })
		if err != nil {
			metrics.ObserveRequest(name, metrics.StatusError)
			return nil, fmt.Errorf("handler %s: %w", name, err)
		}
		metrics.ObserveRequest(name, metrics.StatusOK)
		return response, nil
	}

	metrics.ObserveRequest("none", metrics.StatusUnhandled)
	return nil, fmt.Errorf("%w for request type %q intent %q",
		ErrNoHandlerFound, input.Envelope.RequestType(), input.Envelope.IntentName())
}

func (s *Skill) handleException(input *HandlerInput, cause error, logger logging.Logger) (*Response, error) {
	for _, h := range s.exceptionHandlers {
		if !h.CanHandle(input, cause) {
			continue
		}
		response, err := safeHandle(func() (*Response, error) { return h.Handle(input, cause) })
		if err != nil {
			logger.Error("exception handler failed", "handler", handlerName(h), "cause", cause, "error", err)
			return nil, fmt.Errorf("exception handler %s: %w", handlerName(h), err)
		}
		return response, nil
	}

	logger.Error("unhandled skill error", "error", cause)
	return nil, cause
}

// safeHandle turns a panic in fn into an error
func safeHandle(fn func() (*Response, error)) (response *Response, err error) {
	defer func() {
		if r := recover(); r != nil {
			response = nil
			err = fmt.Errorf("panic: %v\n%s", r, debug.Stack())
		}
	}()
	return fn()
}

func handlerName(h any) string {
	if n, ok := h.(Named); ok && n.Name() != "" {
		return n.Name()
	}
	return fmt.Sprintf("%T", h)
}
