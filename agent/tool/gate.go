package tool

import statex "github.com/tanpawarit/Chative-Support-Triage/agent/state"

// Gate decides whether an action may run for the given session. Gates are
// evaluated on every call because the session changes between turns.
type Gate func(s *statex.SessionContext) bool

func RefundAllowed(s *statex.SessionContext) bool {
	return s != nil && s.IsPremiumUser
}

func RestartAllowed(s *statex.SessionContext) bool {
	return s != nil && s.IssueType == statex.IssueTechnical
}
