package orchestratornode

import (
	"fmt"

	contractx "github.com/tanpawarit/Chative-Support-Triage/agent/contract"
)

func EmitReply(in *GraphState, presenter contractx.Presenter) (*GraphState, error) {
	if in == nil {
		return nil, fmt.Errorf("%w: graph state is nil", contractx.ErrValidation)
	}
	if presenter != nil {
		presenter.Reply(in.Issue.Title(), in.Reply)
	}
	return in, nil
}
