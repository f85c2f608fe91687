package orchestratornode

import (
	"strings"
	"time"

	contractx "github.com/tanpawarit/Chative-Support-Triage/agent/contract"
	statex "github.com/tanpawarit/Chative-Support-Triage/agent/state"
)

var ErrInvalidSession = contractx.ErrInvalidSession

type GraphInput struct {
	Session *statex.SessionContext
	Text    string
}

type GraphOutput struct {
	Issue statex.IssueType
	Agent statex.AgentName
	Hint  string
	Reply string
}

type GraphState struct {
	Session *statex.SessionContext
	Text    string
	Now     time.Time

	Issue statex.IssueType
	Agent statex.AgentName
	Hint  string

	RawOutput string
	Reply     string
}

// ValidateRequest is RECEIVE. Blank text is a valid turn; it routes to the
// general responder.
func ValidateRequest(in GraphInput, nowFn func() time.Time) (*GraphState, error) {
	if in.Session == nil {
		return nil, ErrInvalidSession
	}

	return &GraphState{
		Session: in.Session,
		Text:    strings.TrimSpace(in.Text),
		Now:     nowFn().UTC(),
	}, nil
}
