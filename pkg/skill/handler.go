package skill

import (
	"context"
)

// HandlerInput is what every handler receives for one invocation
type HandlerInput struct {
	Context         context.Context
	Envelope        *RequestEnvelope
	ResponseBuilder *ResponseBuilder
}

// NewHandlerInput wraps an envelope with a fresh response builder
func NewHandlerInput(ctx context.Context, envelope *RequestEnvelope) *HandlerInput {
	if ctx == nil {
		ctx = context.Background()
	}
	return &HandlerInput{
		Context:         ctx,
		Envelope:        envelope,
		ResponseBuilder: NewResponseBuilder(),
	}
}

// RequestHandler handles the requests its predicate accepts
type RequestHandler interface {
	CanHandle(input *HandlerInput) bool
	Handle(input *HandlerInput) (*Response, error)
}

// ExceptionHandler turns an error raised during dispatch into a response
type ExceptionHandler interface {
	CanHandle(input *HandlerInput, err error) bool
	Handle(input *HandlerInput, err error) (*Response, error)
}

// IsRequestType matches requests of the given type
func IsRequestType(input *HandlerInput, requestType string) bool {
	return input.Envelope.RequestType() == requestType
}

// IsIntentName matches intent requests with one of the given intent names
func IsIntentName(input *HandlerInput, names ...string) bool {
	intentName := input.Envelope.IntentName()
	if intentName == "" {
		return false
	}
	for _, name := range names {
		if intentName == name {
			return true
		}
	}
	return false
}
