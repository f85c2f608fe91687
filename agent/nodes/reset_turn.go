package orchestratornode

import (
	"fmt"

	"github.com/rs/zerolog/log"
	contractx "github.com/tanpawarit/Chative-Support-Triage/agent/contract"
)

// ResetTurn is RESET: LastAgent becomes the responder that answered and the
// issue classification is cleared before the next RECEIVE.
func ResetTurn(in *GraphState) (GraphOutput, error) {
	if in == nil || in.Session == nil {
		return GraphOutput{}, fmt.Errorf("%w: graph session is nil", contractx.ErrValidation)
	}

	if err := in.Session.EndTurn(in.Issue); err != nil {
		return GraphOutput{}, err
	}

	log.Info().
		Str("session_id", in.Session.SessionID).
		Str("issue", string(in.Issue)).
		Str("hint", in.Hint).
		Int("turn", in.Session.Turns).
		Msg("turn completed")

	return GraphOutput{
		Issue: in.Issue,
		Agent: in.Agent,
		Hint:  in.Hint,
		Reply: in.Reply,
	}, nil
}
