package orchestratornode

import (
	"fmt"

	contractx "github.com/tanpawarit/Chative-Support-Triage/agent/contract"
)

func SanitizeReply(in *GraphState, guard contractx.Guard) (*GraphState, error) {
	if in == nil {
		return nil, fmt.Errorf("%w: graph state is nil", contractx.ErrValidation)
	}
	in.Reply = guard.Sanitize(in.RawOutput)
	return in, nil
}
