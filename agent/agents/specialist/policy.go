package specialist

import (
	classifierx "github.com/tanpawarit/Chative-Support-Triage/agent/classifier"
	statex "github.com/tanpawarit/Chative-Support-Triage/agent/state"
	toolx "github.com/tanpawarit/Chative-Support-Triage/agent/tool"
)

// SelectAction is the responder policy: it picks the action an agent runs
// for a routing hint. Capability gates are left to the handlers.
func SelectAction(agent statex.AgentName, hint string) (string, bool) {
	switch agent {
	case statex.AgentTriage:
		return toolx.ToolClassifyIssue, true
	case statex.AgentBilling:
		if hint == classifierx.HintRefund {
			return toolx.ToolRefund, true
		}
		return toolx.ToolGetInvoice, true
	case statex.AgentTechnical:
		if hint == classifierx.HintRestart {
			return toolx.ToolRestartService, true
		}
		return toolx.ToolCheckServiceStatus, true
	case statex.AgentGeneral:
		return toolx.ToolGeneralFAQ, true
	default:
		return "", false
	}
}
