//go:build wireinject

package di

import (
	"context"

	"github.com/google/wire"
	"github.com/kcaldas/genie-skill/pkg/config"
	"github.com/kcaldas/genie-skill/pkg/handlers"
	"github.com/kcaldas/genie-skill/pkg/skill"
)

// ProvideSkill is an injector function - Wire will generate the implementation
func ProvideSkill(ctx context.Context) (*skill.Skill, error) {
	wire.Build(ProvideSkillConfig, ProvideGen, handlers.NewDefaultSkill)
	return nil, nil
}

// ProvideSkillWithConfig builds the skill from an already loaded configuration
func ProvideSkillWithConfig(ctx context.Context, cfg config.SkillConfig) (*skill.Skill, error) {
	wire.Build(ProvideGen, handlers.NewDefaultSkill)
	return nil, nil
}
