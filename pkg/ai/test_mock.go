package ai

import (
	"context"
	"sync"
)

// MockGen implements the Gen interface for testing
type MockGen struct {
	mu          sync.Mutex
	Responses   []string
	Errors      []error
	Default     string
	UsedPrompts []Prompt
	index       int
}

var _ Gen = &MockGen{}

// NewMockGen creates a mock that answers with the given responses in order
func NewMockGen(responses ...string) *MockGen {
	return &MockGen{
		Responses: responses,
		Default:   "mock response",
	}
}

// NewFailingMockGen creates a mock whose every call fails with err
func NewFailingMockGen(err error) *MockGen {
	return &MockGen{
		Errors:  []error{err},
		Default: "mock response",
	}
}

// GenerateContent implements the Gen interface. Call i fails with Errors[i] when set,
// otherwise it answers Responses[i]. A mock with errors and no responses keeps failing.
func (m *MockGen) GenerateContent(ctx context.Context, p Prompt) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.UsedPrompts = append(m.UsedPrompts, p)
	call := m.index
	m.index++

	if call < len(m.Errors) && m.Errors[call] != nil {
		return "", m.Errors[call]
	}
	if len(m.Responses) == 0 && len(m.Errors) > 0 {
		return "", m.Errors[len(m.Errors)-1]
	}
	if call < len(m.Responses) {
		return m.Responses[call], nil
	}
	return m.Default, nil
}

// CallCount returns how many times GenerateContent was called
func (m *MockGen) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.UsedPrompts)
}

// LastPrompt returns the most recent prompt, or the zero prompt when never called
func (m *MockGen) LastPrompt() Prompt {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.UsedPrompts) == 0 {
		return Prompt{}
	}
	return m.UsedPrompts[len(m.UsedPrompts)-1]
}
