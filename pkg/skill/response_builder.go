package skill

// ResponseBuilder accumulates a Response for a single invocation
type ResponseBuilder struct {
	response Response
}

// NewResponseBuilder creates an empty builder
func NewResponseBuilder() *ResponseBuilder {
	return &ResponseBuilder{}
}

// Speak sets the output speech, replacing any previous speech
func (b *ResponseBuilder) Speak(text string) *ResponseBuilder {
	b.response.OutputSpeech = &OutputSpeech{
		Type: SpeechTypePlainText,
		Text: text,
	}
	return b
}

// Ask sets the reprompt and keeps the session open
func (b *ResponseBuilder) Ask(reprompt string) *ResponseBuilder {
	b.response.Reprompt = &Reprompt{
		OutputSpeech: &OutputSpeech{
			Type: SpeechTypePlainText,
			Text: reprompt,
		},
	}
	return b.WithShouldEndSession(false)
}

// WithShouldEndSession sets the end-session flag explicitly
func (b *ResponseBuilder) WithShouldEndSession(end bool) *ResponseBuilder {
	b.response.ShouldEndSession = &end
	return b
}

// Response returns a copy of the accumulated response
func (b *ResponseBuilder) Response() *Response {
	r := b.response
	return &r
}
