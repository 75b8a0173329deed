package handlers

// Intent and slot names declared in the interaction model
const (
	IntentAskLLM = "AskLlmIntent"
	IntentHelp   = "AMAZON.HelpIntent"
	IntentCancel = "AMAZON.CancelIntent"
	IntentStop   = "AMAZON.StopIntent"

	SlotQuery = "query"
)

// Fixed speech
const (
	SpeechWelcome    = "Welcome to your AI helper. What can I help you with?"
	SpeechEmptyQuery = "I didn't catch that. What would you like to ask?"
	SpeechLLMFailure = "I'm sorry, Gemini had trouble getting an answer. Please try again."
	SpeechHelp       = "You can ask me anything, for example, what is the capital of France?"
	SpeechGoodbye    = "Goodbye!"
	SpeechCatchAll   = "Sorry, I had trouble doing what you asked. Please try again."
)
