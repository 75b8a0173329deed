package transport

import (
	"context"

	"github.com/kcaldas/genie-skill/pkg/skill"
)

// Invoker is satisfied by *skill.Skill
type Invoker interface {
	Invoke(ctx context.Context, envelope *skill.RequestEnvelope) (*skill.ResponseEnvelope, error)
}
