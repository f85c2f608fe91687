package specialist

import (
	"context"
	"fmt"

	contractx "github.com/tanpawarit/Chative-Support-Triage/agent/contract"
	statex "github.com/tanpawarit/Chative-Support-Triage/agent/state"
	toolx "github.com/tanpawarit/Chative-Support-Triage/agent/tool"
)

// RuleGenerator answers every agent deterministically by running the
// action its policy selects.
type RuleGenerator struct {
	executors map[statex.AgentName]toolx.Executor
}

var _ contractx.Generator = (*RuleGenerator)(nil)

func NewRuleGenerator() *RuleGenerator {
	agents := []statex.AgentName{
		statex.AgentTriage,
		statex.AgentBilling,
		statex.AgentTechnical,
		statex.AgentGeneral,
	}
	executors := make(map[statex.AgentName]toolx.Executor, len(agents))
	for _, agent := range agents {
		executors[agent] = toolx.NewExecutor(agent)
	}
	return &RuleGenerator{executors: executors}
}

func (g *RuleGenerator) Generate(ctx context.Context, req contractx.GenerateRequest) (string, error) {
	executor, ok := g.executors[req.Agent]
	if !ok {
		return "", fmt.Errorf("%w: agent=%s", contractx.ErrUnknownAgent, req.Agent)
	}
	toolName, ok := SelectAction(req.Agent, req.Input)
	if !ok {
		return "", fmt.Errorf("%w: no action for agent=%s", contractx.ErrUnknownAgent, req.Agent)
	}
	action, _ := toolx.Lookup(toolName)

	session := req.Session
	res, err := executor(ctx, toolName, map[string]any{action.ArgName: req.Input}, &session)
	if err != nil {
		return "", err
	}
	if res.Error != "" {
		return "", fmt.Errorf("%w: tool=%s: %s", contractx.ErrValidation, res.Tool, res.Error)
	}
	return res.Result, nil
}
