package ai

import (
	"context"
	"time"

	"github.com/kcaldas/genie-skill/pkg/logging"
)

// CaptureConfig configures the capture middleware
type CaptureConfig struct {
	Enabled      bool
	OutputFile   string
	ProviderName string
}

// CaptureMiddleware records every generation call made through the wrapped Gen
type CaptureMiddleware struct {
	underlying   Gen
	capture      *InteractionCapture
	providerName string
	logger       logging.Logger
}

var _ Gen = &CaptureMiddleware{}

// NewCaptureMiddleware wraps underlying when capture is enabled and returns it untouched otherwise
func NewCaptureMiddleware(underlying Gen, config CaptureConfig) Gen {
	if !config.Enabled {
		return underlying
	}

	capture := NewInteractionCapture()
	if config.OutputFile != "" {
		capture.SetOutputFile(config.OutputFile)
	}

	logger := logging.NewComponentLogger("capture")
	logger.Debug("capture enabled", "provider", config.ProviderName, "output", config.OutputFile)

	return &CaptureMiddleware{
		underlying:   underlying,
		capture:      capture,
		providerName: config.ProviderName,
		logger:       logger,
	}
}

// GenerateContent implements the Gen interface with capture
func (c *CaptureMiddleware) GenerateContent(ctx context.Context, prompt Prompt) (string, error) {
	interaction := c.capture.StartInteraction(prompt)
	interaction.LLMProvider = c.providerName

	startTime := time.Now()
	response, err := c.underlying.GenerateContent(ctx, prompt)
	duration := time.Since(startTime)

	if saveErr := c.capture.CompleteInteraction(interaction, response, err, duration); saveErr != nil {
		c.logger.Warn("failed to save captured interaction", "id", interaction.ID, "error", saveErr)
	}
	c.logger.Debug("interaction captured",
		"id", interaction.ID,
		"duration", duration,
		"response_chars", len(response),
		"failed", err != nil)

	return response, err
}

// GetCapture exposes the recorded interactions
func (c *CaptureMiddleware) GetCapture() *InteractionCapture {
	return c.capture
}
