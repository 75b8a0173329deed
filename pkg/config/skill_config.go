package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
)

// Backend names accepted in GENAI_BACKEND
const (
	BackendGeminiAPI = "gemini"
	BackendVertexAI  = "vertex"
)

// DefaultHTTPAddr is the listen address of the serve command
const DefaultHTTPAddr = ":8080"

// SkillConfig is the immutable configuration snapshot taken at startup
type SkillConfig struct {
	Backend         string
	GeminiAPIKey    string
	VertexProject   string
	VertexLocation  string
	Model           ModelConfig
	SkillID         string
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	RunningOnLambda bool
	CaptureLLM      bool
	CaptureFile     string
}

// ErrMissingCredentials is returned when no generation backend can be configured
var ErrMissingCredentials = errors.New("no valid AI backend configured. Please set up one of the following:\n\n" +
	"Option 1 - Gemini API (recommended):\n" +
	"  export GEMINI_API_KEY=your-api-key\n" +
	"  Get your API key from: https://aistudio.google.com/apikey\n\n" +
	"Option 2 - Vertex AI:\n" +
	"  export GENAI_BACKEND=vertex\n" +
	"  export GOOGLE_CLOUD_PROJECT=your-project-id\n")

// LoadDotEnv loads the given .env files into the environment without overriding
// variables that are already set. Missing files are ignored.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("error loading %s: %w", file, err)
		}
	}
	return nil
}

// LoadSkillConfig reads and validates the skill configuration
func LoadSkillConfig(m Manager) (SkillConfig, error) {
	cfg := SkillConfig{
		Backend:         m.GetStringWithDefault("GENAI_BACKEND", BackendGeminiAPI),
		GeminiAPIKey:    m.GetStringWithDefault("GEMINI_API_KEY", ""),
		VertexProject:   m.GetStringWithDefault("GOOGLE_CLOUD_PROJECT", ""),
		VertexLocation:  m.GetStringWithDefault("GOOGLE_CLOUD_LOCATION", "us-central1"),
		Model:           m.GetModelConfig(),
		SkillID:         m.GetStringWithDefault("ALEXA_SKILL_ID", ""),
		HTTPAddr:        m.GetStringWithDefault("SKILL_HTTP_ADDR", DefaultHTTPAddr),
		LogLevel:        m.GetStringWithDefault("LOG_LEVEL", "info"),
		RunningOnLambda: m.GetStringWithDefault("AWS_LAMBDA_FUNCTION_NAME", "") != "",
		CaptureLLM:      m.GetBoolWithDefault("GENIE_CAPTURE_LLM", false),
		CaptureFile:     m.GetStringWithDefault("GENIE_CAPTURE_FILE", ""),
	}

	defaultFormat := "text"
	if cfg.RunningOnLambda {
		defaultFormat = "json"
	}
	cfg.LogFormat = m.GetStringWithDefault("LOG_FORMAT", defaultFormat)

	if err := cfg.Validate(); err != nil {
		return SkillConfig{}, err
	}
	return cfg, nil
}

// Validate checks that the selected backend has its credentials
func (c SkillConfig) Validate() error {
	switch c.Backend {
	case BackendGeminiAPI:
		if c.GeminiAPIKey == "" {
			return ErrMissingCredentials
		}
	case BackendVertexAI:
		if c.VertexProject == "" {
			return ErrMissingCredentials
		}
	default:
		return fmt.Errorf("unsupported backend: %s", c.Backend)
	}
	if c.Model.ModelName == "" {
		return fmt.Errorf("model name cannot be empty")
	}
	return nil
}
