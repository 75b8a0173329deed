package skill

import (
	"time"

	"github.com/google/uuid"
)

// Locale used for locally built requests
const DefaultLocale = "en-US"

// NewLaunchRequest builds a LaunchRequest envelope for a new session
func NewLaunchRequest(applicationID string) *RequestEnvelope {
	return newEnvelope(applicationID, &Request{Type: RequestTypeLaunch})
}

// NewIntentRequest builds an IntentRequest envelope. Slots map slot names to values.
func NewIntentRequest(applicationID, intentName string, slots map[string]string) *RequestEnvelope {
	intent := &Intent{
		Name:               intentName,
		ConfirmationStatus: "NONE",
	}
	if len(slots) > 0 {
		intent.Slots = make(map[string]Slot, len(slots))
		for name, value := range slots {
			intent.Slots[name] = Slot{Name: name, Value: value, ConfirmationStatus: "NONE"}
		}
	}
	return newEnvelope(applicationID, &Request{Type: RequestTypeIntent, Intent: intent})
}

// NewSessionEndedRequest builds a SessionEndedRequest envelope
func NewSessionEndedRequest(applicationID, reason string) *RequestEnvelope {
	return newEnvelope(applicationID, &Request{Type: RequestTypeSessionEnded, Reason: reason})
}

func newEnvelope(applicationID string, request *Request) *RequestEnvelope {
	request.RequestID = "amzn1.echo-api.request." + uuid.NewString()
	request.Timestamp = time.Now().UTC().Format(time.RFC3339)
	request.Locale = DefaultLocale

	application := &Application{ApplicationID: applicationID}
	return &RequestEnvelope{
		Version: ResponseVersion,
		Session: &Session{
			New:         request.Type == RequestTypeLaunch,
			SessionID:   "amzn1.echo-api.session." + uuid.NewString(),
			Application: application,
		},
		Context: &Context{
			System: &System{Application: application},
		},
		Request: request,
	}
}
