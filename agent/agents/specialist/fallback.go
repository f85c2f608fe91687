package specialist

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
	contractx "github.com/tanpawarit/Chative-Support-Triage/agent/contract"
)

// FallbackGenerator answers from secondary whenever primary fails.
type FallbackGenerator struct {
	primary   contractx.Generator
	secondary contractx.Generator
}

var _ contractx.Generator = (*FallbackGenerator)(nil)

func NewFallbackGenerator(primary, secondary contractx.Generator) (*FallbackGenerator, error) {
	if primary == nil {
		return nil, errors.New("primary generator is required")
	}
	if secondary == nil {
		return nil, errors.New("secondary generator is required")
	}
	return &FallbackGenerator{primary: primary, secondary: secondary}, nil
}

func (g *FallbackGenerator) Generate(ctx context.Context, req contractx.GenerateRequest) (string, error) {
	out, err := g.primary.Generate(ctx, req)
	if err == nil {
		return out, nil
	}

	log.Warn().
		Err(err).
		Str("session_id", req.Session.SessionID).
		Str("agent", string(req.Agent)).
		Msg("primary generator failed, falling back")

	return g.secondary.Generate(ctx, req)
}
