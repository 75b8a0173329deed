package ai

import (
	"context"
)

// Gen generates text for a prompt
type Gen interface {
	GenerateContent(ctx context.Context, p Prompt) (string, error)
}

// Prompt is a single-turn generation request. Zero generation parameters
// leave the model defaults in place.
type Prompt struct {
	Name        string
	Instruction string
	Text        string
	ModelName   string
	MaxTokens   int32
	Temperature float32
	TopP        float32
}

// Status describes the configured backend
type Status struct {
	Connected bool
	Backend   string
	Model     string
	Message   string
}
