package orchestratornode

import (
	"fmt"

	classifierx "github.com/tanpawarit/Chative-Support-Triage/agent/classifier"
	contractx "github.com/tanpawarit/Chative-Support-Triage/agent/contract"
	statex "github.com/tanpawarit/Chative-Support-Triage/agent/state"
)

// RouteIssue is ROUTE: it derives the hint and selects the responder.
func RouteIssue(in *GraphState) (*GraphState, error) {
	if in == nil || !in.Issue.Valid() {
		return nil, fmt.Errorf("%w: graph state has no issue", contractx.ErrValidation)
	}

	in.Hint = classifierx.HintFor(in.Issue, in.Text)
	in.Agent = statex.AgentFor(in.Issue)
	return in, nil
}
