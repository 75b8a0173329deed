package config

import (
	"fmt"
	"os"
	"strconv"
)

// DefaultModelName is used when GEMINI_MODEL_NAME is not set
const DefaultModelName = "gemini-2.5-flash"

// ModelConfig describes the generation model. Zero values leave the service defaults in place.
type ModelConfig struct {
	ModelName   string
	MaxTokens   int32
	Temperature float32
	TopP        float32
}

// Manager provides configuration management functionality
type Manager interface {
	GetString(key string) (string, error)
	GetStringWithDefault(key, defaultValue string) string
	RequireString(key string) string
	GetInt(key string) (int, error)
	GetIntWithDefault(key string, defaultValue int) int
	GetBoolWithDefault(key string, defaultValue bool) bool
	GetModelConfig() ModelConfig
}

// DefaultManager reads configuration from the process environment
type DefaultManager struct {
}

// NewConfigManager creates a new default config manager
func NewConfigManager() Manager {
	return &DefaultManager{}
}

// GetString gets a configuration value by key, returns error if not found
func (m *DefaultManager) GetString(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("configuration key %s not found", key)
	}
	return value, nil
}

// GetStringWithDefault gets a configuration value by key, returns default if not found
func (m *DefaultManager) GetStringWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// RequireString gets a configuration value by key, panics if not found
func (m *DefaultManager) RequireString(key string) string {
	value := os.Getenv(key)
	if value == "" {
		panic(fmt.Sprintf("required configuration key %s not found", key))
	}
	return value
}

// GetInt gets an integer configuration value by key, returns error if not found or invalid
func (m *DefaultManager) GetInt(key string) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return 0, fmt.Errorf("configuration key %s not found", key)
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("configuration key %s has invalid integer value: %s", key, value)
	}
	return intValue, nil
}

// GetIntWithDefault gets an integer configuration value by key, returns default if not found or invalid
func (m *DefaultManager) GetIntWithDefault(key string, defaultValue int) int {
	value, err := m.GetInt(key)
	if err != nil {
		return defaultValue
	}
	return value
}

// GetBoolWithDefault gets a boolean configuration value by key, returns default if not found or invalid
func (m *DefaultManager) GetBoolWithDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return boolValue
}

// GetModelConfig returns the model configuration from environment variables or defaults
func (m *DefaultManager) GetModelConfig() ModelConfig {
	cfg := ModelConfig{
		ModelName: m.GetStringWithDefault("GEMINI_MODEL_NAME", DefaultModelName),
	}

	if maxTokens, err := strconv.ParseInt(os.Getenv("GEMINI_MAX_TOKENS"), 10, 32); err == nil && maxTokens > 0 {
		cfg.MaxTokens = int32(maxTokens)
	}
	if temperature, err := strconv.ParseFloat(os.Getenv("GEMINI_MODEL_TEMPERATURE"), 32); err == nil {
		cfg.Temperature = float32(temperature)
	}
	if topP, err := strconv.ParseFloat(os.Getenv("GEMINI_TOP_P"), 32); err == nil {
		cfg.TopP = float32(topP)
	}

	return cfg
}
