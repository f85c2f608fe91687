package prompt

import (
	_ "embed"
	"fmt"
	"strings"

	contractx "github.com/tanpawarit/Chative-Support-Triage/agent/contract"
	statex "github.com/tanpawarit/Chative-Support-Triage/agent/state"
)

var (
	//go:embed template/triage.txt
	triageRaw string

	//go:embed template/billing.txt
	billingRaw string

	//go:embed template/technical.txt
	technicalRaw string

	//go:embed template/general.txt
	generalRaw string
)

// PromptSet holds the instruction prompt of every agent.
type PromptSet struct {
	Triage    string
	Billing   string
	Technical string
	General   string
}

func LoadPromptSet() PromptSet {
	return PromptSet{
		Triage:    strings.TrimSpace(triageRaw),
		Billing:   strings.TrimSpace(billingRaw),
		Technical: strings.TrimSpace(technicalRaw),
		General:   strings.TrimSpace(generalRaw),
	}
}

// For returns the prompt of an agent.
func (p PromptSet) For(agent statex.AgentName) (string, error) {
	var out string
	switch agent {
	case statex.AgentTriage:
		out = p.Triage
	case statex.AgentBilling:
		out = p.Billing
	case statex.AgentTechnical:
		out = p.Technical
	case statex.AgentGeneral:
		out = p.General
	default:
		return "", fmt.Errorf("%w: agent=%s", contractx.ErrUnknownAgent, agent)
	}
	if out == "" {
		return "", fmt.Errorf("%w: agent=%s", contractx.ErrPromptMissing, agent)
	}
	return out, nil
}
