package di

import (
	"context"

	"github.com/kcaldas/genie-skill/pkg/ai"
	"github.com/kcaldas/genie-skill/pkg/config"
	"github.com/kcaldas/genie-skill/pkg/llm/genai"
)

// ProvideSkillConfig loads the configuration snapshot from the environment
func ProvideSkillConfig() (config.SkillConfig, error) {
	return config.LoadSkillConfig(config.NewConfigManager())
}

// ProvideGen binds the GenAI client to the ai.Gen interface, wrapped with
// interaction capture when GENIE_CAPTURE_LLM is set
func ProvideGen(ctx context.Context, cfg config.SkillConfig) (ai.Gen, error) {
	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return ai.NewCaptureMiddleware(client, ai.CaptureConfig{
		Enabled:      cfg.CaptureLLM,
		OutputFile:   cfg.CaptureFile,
		ProviderName: cfg.Backend,
	}), nil
}
