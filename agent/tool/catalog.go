package tool

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/schema"
	classifierx "github.com/tanpawarit/Chative-Support-Triage/agent/classifier"
	contractx "github.com/tanpawarit/Chative-Support-Triage/agent/contract"
	statex "github.com/tanpawarit/Chative-Support-Triage/agent/state"
)

const (
	ToolClassifyIssue      = "classify_issue"
	ToolGetInvoice         = "get_invoice"
	ToolRefund             = "refund"
	ToolRestartService     = "restart_service"
	ToolCheckServiceStatus = "check_service_status"
	ToolGeneralFAQ         = "general_faq"
)

// Action describes one callable handler. Gate is nil for ungated actions;
// gated handlers also re-check their gate when run.
type Action struct {
	Name    string
	Desc    string
	Agent   statex.AgentName
	ArgName string
	ArgDesc string
	Gate    Gate
	Run     func(s *statex.SessionContext, input string) string
}

var actions = []Action{
	{
		Name:    ToolClassifyIssue,
		Desc:    "Classify the user's issue as billing, technical, or general.",
		Agent:   statex.AgentTriage,
		ArgName: "user_text",
		ArgDesc: "The user's message",
		Run: func(_ *statex.SessionContext, input string) string {
			return string(classifierx.Classify(input))
		},
	},
	{
		Name:    ToolGetInvoice,
		Desc:    "Return the latest invoice for the current user.",
		Agent:   statex.AgentBilling,
		ArgName: "input",
		ArgDesc: "Routing hint",
		Run: func(s *statex.SessionContext, _ string) string {
			return GetInvoice(s)
		},
	},
	{
		Name:    ToolRefund,
		Desc:    "Initiate a refund. Premium members only.",
		Agent:   statex.AgentBilling,
		ArgName: "input",
		ArgDesc: "Routing hint",
		Gate:    RefundAllowed,
		Run: func(s *statex.SessionContext, _ string) string {
			return Refund(s)
		},
	},
	{
		Name:    ToolRestartService,
		Desc:    "Restart the user's service. Only for technical issues.",
		Agent:   statex.AgentTechnical,
		ArgName: "input",
		ArgDesc: "Routing hint",
		Gate:    RestartAllowed,
		Run: func(s *statex.SessionContext, _ string) string {
			return RestartService(s)
		},
	},
	{
		Name:    ToolCheckServiceStatus,
		Desc:    "Check current service status and outages.",
		Agent:   statex.AgentTechnical,
		ArgName: "input",
		ArgDesc: "Routing hint",
		Run: func(_ *statex.SessionContext, _ string) string {
			return CheckServiceStatus()
		},
	},
	{
		Name:    ToolGeneralFAQ,
		Desc:    "Return general help and navigation tips.",
		Agent:   statex.AgentGeneral,
		ArgName: "user_text",
		ArgDesc: "The user's message",
		Run: func(_ *statex.SessionContext, _ string) string {
			return GeneralFAQ()
		},
	},
}

// Lookup finds an action by name.
func Lookup(name string) (Action, bool) {
	for _, a := range actions {
		if a.Name == name {
			return a, true
		}
	}
	return Action{}, false
}

// ActionsFor lists the actions owned by an agent in catalog order.
func ActionsFor(agent statex.AgentName) []Action {
	var out []Action
	for _, a := range actions {
		if a.Agent == agent {
			out = append(out, a)
		}
	}
	return out
}

// Enabled lists the agent's action names whose gate currently passes.
func Enabled(agent statex.AgentName, s *statex.SessionContext) []string {
	var out []string
	for _, a := range ActionsFor(agent) {
		if a.Gate == nil || a.Gate(s) {
			out = append(out, a.Name)
		}
	}
	return out
}

type Executor func(ctx context.Context, tool string, args map[string]any, s *statex.SessionContext) (contractx.ToolResult, error)

func BuildForAgent(agent statex.AgentName) ([]*schema.ToolInfo, Executor) {
	return infosForAgent(agent), NewExecutor(agent)
}

func NewExecutor(agent statex.AgentName) Executor {
	fallback := DefaultExecutor(agent)
	return func(ctx context.Context, tool string, args map[string]any, s *statex.SessionContext) (contractx.ToolResult, error) {
		action, ok := Lookup(tool)
		if !ok || action.Agent != agent {
			return fallback(ctx, tool, args, s)
		}

		input, err := stringArg(args, action.ArgName)
		if err != nil {
			return contractx.ToolResult{
				Tool:  tool,
				Error: err.Error(),
			}, nil
		}

		return contractx.ToolResult{
			Tool:   tool,
			Result: action.Run(s, input),
		}, nil
	}
}

func DefaultExecutor(agent statex.AgentName) Executor {
	return func(ctx context.Context, tool string, _ map[string]any, _ *statex.SessionContext) (contractx.ToolResult, error) {
		return contractx.ToolResult{
			Tool:  tool,
			Error: fmt.Sprintf("tool=%s is unavailable for agent=%s", tool, agent),
		}, nil
	}
}

// Arguments are advisory; a missing one reads as empty.
func stringArg(args map[string]any, name string) (string, error) {
	raw, ok := args[name]
	if !ok || raw == nil {
		return "", nil
	}
	v, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("%s must be a string", name)
	}
	return v, nil
}

func infosForAgent(agent statex.AgentName) []*schema.ToolInfo {
	acts := ActionsFor(agent)
	if len(acts) == 0 {
		return nil
	}
	infos := make([]*schema.ToolInfo, 0, len(acts))
	for _, a := range acts {
		infos = append(infos, &schema.ToolInfo{
			Name: a.Name,
			Desc: a.Desc,
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				a.ArgName: {Type: schema.String, Desc: a.ArgDesc},
			}),
		})
	}
	return infos
}
