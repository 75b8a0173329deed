package ai

import "net/http"

const (
	// ClientHeaderName identifies the skill to downstream LLM providers.
	ClientHeaderName = "X-Genie-Client"
	// ClientHeaderValue is the value sent in ClientHeaderName.
	ClientHeaderValue = "genie-skill"
)

// DefaultHTTPHeaders returns a copy of the standard headers for outbound LLM requests.
func DefaultHTTPHeaders() http.Header {
	h := make(http.Header)
	h.Add(ClientHeaderName, ClientHeaderValue)
	return h
}
