package orchestratornode

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	contractx "github.com/tanpawarit/Chative-Support-Triage/agent/contract"
	toolx "github.com/tanpawarit/Chative-Support-Triage/agent/tool"
)

// DispatchResponder is RESPOND. Responder failures degrade to the general
// FAQ text so the turn still completes.
func DispatchResponder(
	ctx context.Context,
	in *GraphState,
	gen contractx.Generator,
	runConfig map[string]any,
) (*GraphState, error) {
	if in == nil || in.Session == nil || in.Agent == "" {
		return nil, fmt.Errorf("%w: graph state is incomplete", contractx.ErrValidation)
	}

	out, err := gen.Generate(ctx, contractx.GenerateRequest{
		Agent:   in.Agent,
		Input:   in.Hint,
		Session: in.Session.Snapshot(),
		Config:  runConfig,
	})
	if err == nil && strings.TrimSpace(out) == "" {
		err = fmt.Errorf("%w: responder returned empty output", contractx.ErrSchemaViolation)
	}
	if err != nil {
		log.Error().
			Err(err).
			Str("session_id", in.Session.SessionID).
			Str("agent", string(in.Agent)).
			Msg("responder failed, answering with faq")
		out = toolx.GeneralFAQ()
	}

	in.RawOutput = strings.TrimSpace(out)
	return in, nil
}
