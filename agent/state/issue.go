package state

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type IssueType string

const (
	IssueBilling   IssueType = "billing"
	IssueTechnical IssueType = "technical"
	IssueGeneral   IssueType = "general"
)

// Valid reports whether t is one of the routable issue categories.
func (t IssueType) Valid() bool {
	switch t {
	case IssueBilling, IssueTechnical, IssueGeneral:
		return true
	default:
		return false
	}
}

// Title returns the label used in console output, e.g. "Billing".
// Casers carry state, so one is built per call.
func (t IssueType) Title() string {
	return cases.Title(language.English).String(string(t))
}

// ParseIssueType normalizes raw classifier output. Anything outside the
// routable set coerces to IssueGeneral.
func ParseIssueType(raw string) IssueType {
	t := IssueType(strings.ToLower(strings.TrimSpace(raw)))
	if !t.Valid() {
		return IssueGeneral
	}
	return t
}

type AgentName string

const (
	AgentTriage    AgentName = "triage"
	AgentBilling   AgentName = "billing"
	AgentTechnical AgentName = "technical"
	AgentGeneral   AgentName = "general"
)

func (a AgentName) Valid() bool {
	switch a {
	case AgentTriage, AgentBilling, AgentTechnical, AgentGeneral:
		return true
	default:
		return false
	}
}

// AgentFor maps an issue category onto the responder that owns it.
func AgentFor(t IssueType) AgentName {
	switch t {
	case IssueBilling:
		return AgentBilling
	case IssueTechnical:
		return AgentTechnical
	default:
		return AgentGeneral
	}
}
