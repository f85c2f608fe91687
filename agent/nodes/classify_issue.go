package orchestratornode

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	contractx "github.com/tanpawarit/Chative-Support-Triage/agent/contract"
	statex "github.com/tanpawarit/Chative-Support-Triage/agent/state"
)

// ClassifyIssue is CLASSIFY: the triage agent labels the text and the label
// is written into the session. A failed or invalid label becomes general.
func ClassifyIssue(
	ctx context.Context,
	in *GraphState,
	gen contractx.Generator,
	presenter contractx.Presenter,
	runConfig map[string]any,
) (*GraphState, error) {
	if in == nil || in.Session == nil {
		return nil, fmt.Errorf("%w: graph session is nil", contractx.ErrValidation)
	}

	raw, err := gen.Generate(ctx, contractx.GenerateRequest{
		Agent:   statex.AgentTriage,
		Input:   in.Text,
		Session: in.Session.Snapshot(),
		Config:  runConfig,
	})
	if err != nil {
		log.Warn().
			Err(err).
			Str("session_id", in.Session.SessionID).
			Msg("triage failed, defaulting to general")
		raw = string(statex.IssueGeneral)
	}

	issue := statex.ParseIssueType(raw)
	if string(issue) != raw {
		log.Debug().
			Str("session_id", in.Session.SessionID).
			Str("raw", raw).
			Str("issue", string(issue)).
			Msg("triage label coerced")
	}

	if err := in.Session.BeginTurn(issue); err != nil {
		return nil, err
	}
	in.Issue = issue

	if presenter != nil {
		presenter.Handoff(string(issue))
	}
	return in, nil
}
