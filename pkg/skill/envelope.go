package skill

// Request types sent by the voice platform
const (
	RequestTypeLaunch       = "LaunchRequest"
	RequestTypeIntent       = "IntentRequest"
	RequestTypeSessionEnded = "SessionEndedRequest"
)

// ResponseVersion is the envelope version this skill answers with
const ResponseVersion = "1.0"

// RequestEnvelope is the JSON document the voice platform posts for every invocation
type RequestEnvelope struct {
	Version string   `json:"version"`
	Session *Session `json:"session,omitempty"`
	Context *Context `json:"context,omitempty"`
	Request *Request `json:"request"`
}

// Session carries the conversational session the request belongs to
type Session struct {
	New         bool           `json:"new"`
	SessionID   string         `json:"sessionId"`
	Application *Application   `json:"application,omitempty"`
	Attributes  map[string]any `json:"attributes,omitempty"`
	User        *User          `json:"user,omitempty"`
}

// Context carries device and application state
type Context struct {
	System *System `json:"System,omitempty"`
}

// System is the System object inside Context
type System struct {
	Application *Application `json:"application,omitempty"`
	User        *User        `json:"user,omitempty"`
	APIEndpoint string       `json:"apiEndpoint,omitempty"`
}

// Application identifies the skill the request was sent to
type Application struct {
	ApplicationID string `json:"applicationId"`
}

// User identifies the account that invoked the skill
type User struct {
	UserID string `json:"userId"`
}

// Request is the typed request body
type Request struct {
	Type      string        `json:"type"`
	RequestID string        `json:"requestId"`
	Timestamp string        `json:"timestamp,omitempty"`
	Locale    string        `json:"locale,omitempty"`
	Intent    *Intent       `json:"intent,omitempty"`
	Reason    string        `json:"reason,omitempty"`
	Error     *RequestError `json:"error,omitempty"`
}

// RequestError is reported on SessionEndedRequest when the session ended because of an error
type RequestError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// Intent is the classified user goal with its slots
type Intent struct {
	Name               string          `json:"name"`
	ConfirmationStatus string          `json:"confirmationStatus,omitempty"`
	Slots              map[string]Slot `json:"slots,omitempty"`
}

// Slot is a single named value extracted from the utterance
type Slot struct {
	Name               string `json:"name"`
	Value              string `json:"value,omitempty"`
	ConfirmationStatus string `json:"confirmationStatus,omitempty"`
}

// RequestType returns the request type, or "" when the envelope has no request
func (e *RequestEnvelope) RequestType() string {
	if e == nil || e.Request == nil {
		return ""
	}
	return e.Request.Type
}

// IntentName returns the intent name for intent requests and "" otherwise
func (e *RequestEnvelope) IntentName() string {
	if e.RequestType() != RequestTypeIntent || e.Request.Intent == nil {
		return ""
	}
	return e.Request.Intent.Name
}

// SlotValue returns the value of the named slot. Missing intent, slot or value all yield "".
func (e *RequestEnvelope) SlotValue(name string) string {
	if e.RequestType() != RequestTypeIntent || e.Request.Intent == nil {
		return ""
	}
	slot, ok := e.Request.Intent.Slots[name]
	if !ok {
		return ""
	}
	return slot.Value
}

// ApplicationID returns the skill ID the request was addressed to.
// The context copy is preferred because session is absent on some request types.
func (e *RequestEnvelope) ApplicationID() string {
	if e == nil {
		return ""
	}
	if e.Context != nil && e.Context.System != nil && e.Context.System.Application != nil {
		return e.Context.System.Application.ApplicationID
	}
	if e.Session != nil && e.Session.Application != nil {
		return e.Session.Application.ApplicationID
	}
	return ""
}

// ResponseEnvelope is the JSON document returned to the voice platform
type ResponseEnvelope struct {
	Version           string         `json:"version"`
	SessionAttributes map[string]any `json:"sessionAttributes,omitempty"`
	Response          *Response      `json:"response"`
}

// OutputSpeech types
const (
	SpeechTypePlainText = "PlainText"
	SpeechTypeSSML      = "SSML"
)

// OutputSpeech is the text the device speaks
type OutputSpeech struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
	SSML string `json:"ssml,omitempty"`
}

// Reprompt is spoken when the user does not answer while the session is open
type Reprompt struct {
	OutputSpeech *OutputSpeech `json:"outputSpeech,omitempty"`
}

// Response is the body of a ResponseEnvelope.
// ShouldEndSession is nil when the platform default applies.
type Response struct {
	OutputSpeech     *OutputSpeech `json:"outputSpeech,omitempty"`
	Reprompt         *Reprompt     `json:"reprompt,omitempty"`
	ShouldEndSession *bool         `json:"shouldEndSession,omitempty"`
}

// SpeechText returns the spoken text, or "" when the response is silent
func (r *Response) SpeechText() string {
	if r == nil || r.OutputSpeech == nil {
		return ""
	}
	return r.OutputSpeech.Text
}

// RepromptText returns the reprompt text, or "" when there is no reprompt
func (r *Response) RepromptText() string {
	if r == nil || r.Reprompt == nil || r.Reprompt.OutputSpeech == nil {
		return ""
	}
	return r.Reprompt.OutputSpeech.Text
}

// EndsSession reports the shouldEndSession flag and whether it was set at all
func (r *Response) EndsSession() (value bool, set bool) {
	if r == nil || r.ShouldEndSession == nil {
		return false, false
	}
	return *r.ShouldEndSession, true
}
