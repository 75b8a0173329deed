package genai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/kcaldas/genie-skill/pkg/ai"
	"github.com/kcaldas/genie-skill/pkg/config"
	"github.com/kcaldas/genie-skill/pkg/logging"
	"github.com/kcaldas/genie-skill/pkg/metrics"
	"google.golang.org/genai"
)

// Client implements ai.Gen on top of Google's unified GenAI package.
// It supports both the Gemini API and Vertex AI backends and is immutable after construction.
type Client struct {
	Client  *genai.Client
	Backend string
	Model   config.ModelConfig
	logger  logging.Logger
	// Allows tests to intercept generate content calls.
	callGenerateContentFn func(ctx context.Context, modelName string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

var _ ai.Gen = &Client{}

// NewClient creates the GenAI client for the configured backend
func NewClient(ctx context.Context, cfg config.SkillConfig) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	clientConfig, err := clientConfigFor(cfg)
	if err != nil {
		return nil, err
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("error creating %s client: %w", cfg.Backend, err)
	}

	return &Client{
		Client:  client,
		Backend: cfg.Backend,
		Model:   cfg.Model,
		logger:  logging.NewAPILogger("genai"),
	}, nil
}

// clientConfigFor maps the skill configuration onto a genai.ClientConfig
func clientConfigFor(cfg config.SkillConfig) (*genai.ClientConfig, error) {
	var clientConfig *genai.ClientConfig
	switch cfg.Backend {
	case config.BackendGeminiAPI:
		clientConfig = &genai.ClientConfig{
			APIKey:  cfg.GeminiAPIKey,
			Backend: genai.BackendGeminiAPI,
		}
	case config.BackendVertexAI:
		clientConfig = &genai.ClientConfig{
			Project:  cfg.VertexProject,
			Location: cfg.VertexLocation,
			Backend:  genai.BackendVertexAI,
		}
	default:
		return nil, fmt.Errorf("unsupported backend: %s", cfg.Backend)
	}
	clientConfig.HTTPOptions.Headers = ai.DefaultHTTPHeaders()
	return clientConfig, nil
}

// GenerateContent sends the prompt in a single call and returns the text of the first candidate
func (g *Client) GenerateContent(ctx context.Context, p ai.Prompt) (string, error) {
	if p.ModelName == "" {
		p.ModelName = g.Model.ModelName
	}
	if p.MaxTokens == 0 {
		p.MaxTokens = g.Model.MaxTokens
	}
	if p.Temperature == 0 {
		p.Temperature = g.Model.Temperature
	}
	if p.TopP == 0 {
		p.TopP = g.Model.TopP
	}

	started := time.Now()
	text, err := g.generateContentWithPrompt(ctx, p)
	metrics.ObserveLLMCall(started, err)
	if err != nil {
		return "", err
	}

	g.log().Debug("content generated", "model", p.ModelName, "duration", time.Since(started), "chars", len(text))
	return text, nil
}

// GetStatus returns the backend information
func (g *Client) GetStatus() *ai.Status {
	model := fmt.Sprintf("%s, Temperature: %.2f, Max Tokens: %d", g.Model.ModelName, g.Model.Temperature, g.Model.MaxTokens)
	switch g.Backend {
	case config.BackendGeminiAPI:
		return &ai.Status{Model: model, Connected: g.Client != nil, Backend: "gemini", Message: "Gemini API configured"}
	case config.BackendVertexAI:
		return &ai.Status{Model: model, Connected: g.Client != nil, Backend: "vertex", Message: "Vertex AI configured"}
	default:
		return &ai.Status{Model: model, Connected: false, Backend: "unknown", Message: fmt.Sprintf("Unknown backend: %s", g.Backend)}
	}
}

func (g *Client) generateContentWithPrompt(ctx context.Context, p ai.Prompt) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{genai.NewPartFromText(p.Text)}, genai.RoleUser),
	}

	result, err := g.invokeGenerateContent(ctx, p.ModelName, contents, buildGenerateConfig(p))
	if err != nil {
		return "", fmt.Errorf("error generating content: %w", err)
	}

	if len(result.Candidates) == 0 {
		if result.PromptFeedback != nil && result.PromptFeedback.BlockReason != "" {
			return "", fmt.Errorf("prompt blocked: %s", result.PromptFeedback.BlockReason)
		}
		return "", fmt.Errorf("no response candidates")
	}

	candidate := result.Candidates[0]
	if candidate.Content == nil {
		return "", fmt.Errorf("no content in response candidate (finish reason: %s)", candidate.FinishReason)
	}

	response := joinContentParts(candidate.Content)
	if response == "" {
		g.log().Debug("empty response received despite having candidates",
			"candidates", len(result.Candidates),
			"content_parts", len(candidate.Content.Parts))
		return "", fmt.Errorf("no usable content in response candidates")
	}

	return response, nil
}

func (g *Client) invokeGenerateContent(ctx context.Context, modelName string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	if g.callGenerateContentFn != nil {
		return g.callGenerateContentFn(ctx, modelName, contents, cfg)
	}
	if g.Client == nil {
		return nil, fmt.Errorf("genai client not initialized")
	}
	return g.Client.Models.GenerateContent(ctx, modelName, contents, cfg)
}

func (g *Client) log() logging.Logger {
	if g.logger == nil {
		return logging.NewAPILogger("genai")
	}
	return g.logger
}

// buildGenerateConfig returns nil when the prompt leaves every parameter at its default
func buildGenerateConfig(p ai.Prompt) *genai.GenerateContentConfig {
	var cfg genai.GenerateContentConfig
	used := false

	if strings.TrimSpace(p.Instruction) != "" {
		systemParts := []*genai.Part{genai.NewPartFromText(p.Instruction)}
		cfg.SystemInstruction = genai.NewContentFromParts(systemParts, genai.RoleUser)
		used = true
	}
	if p.MaxTokens > 0 {
		cfg.MaxOutputTokens = p.MaxTokens
		used = true
	}
	if p.Temperature > 0 {
		temp := p.Temperature
		cfg.Temperature = &temp
		used = true
	}
	if p.TopP > 0 {
		topP := p.TopP
		cfg.TopP = &topP
		used = true
	}
	if used {
		cfg.CandidateCount = 1
		return &cfg
	}
	return nil
}

// joinContentParts concatenates the visible text parts, skipping thoughts
func joinContentParts(content *genai.Content) string {
	var textParts []string
	for _, part := range content.Parts {
		if part == nil || part.Text == "" || part.Thought {
			continue
		}
		textParts = append(textParts, part.Text)
	}
	return strings.Join(textParts, "")
}
