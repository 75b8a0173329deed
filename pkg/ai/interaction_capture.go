package ai

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Interaction is one recorded generation call
type Interaction struct {
	ID          string         `json:"id"`
	Timestamp   time.Time      `json:"timestamp"`
	Prompt      CapturedPrompt `json:"prompt"`
	Response    string         `json:"response"`
	Error       *CapturedError `json:"error,omitempty"`
	Duration    time.Duration  `json:"duration"`
	LLMProvider string         `json:"llm_provider"`
}

// CapturedPrompt is the serializable part of a Prompt
type CapturedPrompt struct {
	Name        string `json:"name"`
	Text        string `json:"text"`
	Instruction string `json:"instruction,omitempty"`
	ModelName   string `json:"model_name,omitempty"`
}

// CapturedError represents an error that can be serialized
type CapturedError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

// InteractionCapture keeps the most recent interactions in memory and
// optionally mirrors them to a JSON file
type InteractionCapture struct {
	interactions []Interaction
	outputFile   string
	mutex        sync.RWMutex
	maxSize      int
}

// NewInteractionCapture creates a capture that keeps the last 1000 interactions
func NewInteractionCapture() *InteractionCapture {
	return &InteractionCapture{
		interactions: make([]Interaction, 0),
		maxSize:      1000,
	}
}

// SetOutputFile configures where interactions should be saved
func (ic *InteractionCapture) SetOutputFile(filename string) {
	ic.mutex.Lock()
	defer ic.mutex.Unlock()
	ic.outputFile = filename
}

// StartInteraction begins recording a new interaction
func (ic *InteractionCapture) StartInteraction(prompt Prompt) *Interaction {
	return &Interaction{
		ID:        uuid.NewString(),
		Timestamp: time.Now(),
		Prompt: CapturedPrompt{
			Name:        prompt.Name,
			Text:        prompt.Text,
			Instruction: prompt.Instruction,
			ModelName:   prompt.ModelName,
		},
	}
}

// CompleteInteraction stores the finished interaction and saves the file when one is set
func (ic *InteractionCapture) CompleteInteraction(interaction *Interaction, response string, err error, duration time.Duration) error {
	interaction.Response = response
	interaction.Duration = duration
	if err != nil {
		interaction.Error = &CapturedError{
			Message: err.Error(),
			Type:    fmt.Sprintf("%T", err),
		}
	}

	ic.mutex.Lock()
	defer ic.mutex.Unlock()

	ic.interactions = append(ic.interactions, *interaction)
	if len(ic.interactions) > ic.maxSize {
		ic.interactions = ic.interactions[len(ic.interactions)-ic.maxSize:]
	}

	if ic.outputFile != "" {
		return ic.saveToFileUnsafe()
	}
	return nil
}

// GetInteractions returns a copy of all captured interactions
func (ic *InteractionCapture) GetInteractions() []Interaction {
	ic.mutex.RLock()
	defer ic.mutex.RUnlock()

	result := make([]Interaction, len(ic.interactions))
	copy(result, ic.interactions)
	return result
}

// GetLastInteraction returns the most recent interaction
func (ic *InteractionCapture) GetLastInteraction() *Interaction {
	ic.mutex.RLock()
	defer ic.mutex.RUnlock()

	if len(ic.interactions) == 0 {
		return nil
	}
	interaction := ic.interactions[len(ic.interactions)-1]
	return &interaction
}

// saveToFileUnsafe expects the caller to hold the lock
func (ic *InteractionCapture) saveToFileUnsafe() error {
	data, err := json.MarshalIndent(ic.interactions, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal interactions: %w", err)
	}
	return os.WriteFile(ic.outputFile, data, 0644)
}

// LoadInteractionsFromFile reads interactions saved by a capture
func LoadInteractionsFromFile(filename string) ([]Interaction, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var interactions []Interaction
	if err := json.Unmarshal(data, &interactions); err != nil {
		return nil, fmt.Errorf("failed to unmarshal interactions: %w", err)
	}
	return interactions, nil
}
