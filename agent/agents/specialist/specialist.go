package specialist

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"
	contractx "github.com/tanpawarit/Chative-Support-Triage/agent/contract"
	statex "github.com/tanpawarit/Chative-Support-Triage/agent/state"
	toolx "github.com/tanpawarit/Chative-Support-Triage/agent/tool"
)

// modelAgent runs one agent on a tool-calling chat model.
type modelAgent struct {
	agent        statex.AgentName
	runner       compose.Runnable[map[string]any, *schema.Message]
	executor     toolx.Executor
	allowedTools map[string]struct{}
}

func newModelAgent(
	ctx context.Context,
	agent statex.AgentName,
	chatModel einomodel.ToolCallingChatModel,
	systemPrompt string,
) (*modelAgent, error) {
	tools, executor := toolx.BuildForAgent(agent)
	if len(tools) == 0 {
		return nil, fmt.Errorf("%w: no tools for agent=%s", contractx.ErrUnknownAgent, agent)
	}

	toolModel, err := chatModel.WithTools(tools)
	if err != nil {
		return nil, fmt.Errorf("%w: bind tools for agent=%s: %v", contractx.ErrModelInvoke, agent, err)
	}
	runner, err := compileAgentGraph(ctx, toolModel, systemPrompt, "agent."+string(agent))
	if err != nil {
		return nil, fmt.Errorf("%w: compile agent graph: %v", contractx.ErrModelInvoke, err)
	}

	allowedTools := make(map[string]struct{}, len(tools))
	for _, t := range tools {
		if t == nil || strings.TrimSpace(t.Name) == "" {
			continue
		}
		allowedTools[t.Name] = struct{}{}
	}

	return &modelAgent{
		agent:        agent,
		runner:       runner,
		executor:     executor,
		allowedTools: allowedTools,
	}, nil
}

func (a *modelAgent) run(ctx context.Context, req contractx.GenerateRequest) (string, error) {
	session := req.Session
	payload := map[string]any{
		"agent":         a.agent,
		"input":         req.Input,
		"session":       summarizeSession(&session),
		"enabled_tools": toolx.Enabled(a.agent, &session),
	}
	if len(req.Config) > 0 {
		payload["config"] = req.Config
	}
	input, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("%w: marshal agent payload: %v", contractx.ErrValidation, err)
	}

	msg, err := a.runner.Invoke(ctx, map[string]any{
		"input": string(input),
	})
	if err != nil {
		return "", fmt.Errorf("%w: agent=%s invoke: %v", contractx.ErrModelInvoke, a.agent, err)
	}
	if msg == nil {
		return "", fmt.Errorf("%w: empty agent response", contractx.ErrSchemaViolation)
	}

	toolRequests, err := toToolRequests(msg.ToolCalls)
	if err != nil {
		return "", err
	}

	if len(toolRequests) == 0 {
		content := strings.TrimSpace(msg.Content)
		if content == "" {
			return "", fmt.Errorf("%w: agent=%s returned neither content nor tool calls", contractx.ErrSchemaViolation, a.agent)
		}
		return content, nil
	}

	results := make([]string, 0, len(toolRequests))
	for _, tr := range toolRequests {
		if _, ok := a.allowedTools[tr.Tool]; !ok {
			return "", fmt.Errorf("%w: tool=%s is not allowed for agent=%s", contractx.ErrSchemaViolation, tr.Tool, a.agent)
		}
		res, err := a.executor(ctx, tr.Tool, tr.Args, &session)
		if err != nil {
			return "", err
		}
		results = append(results, res.Text())
	}
	return strings.Join(results, "\n"), nil
}

func toToolRequests(calls []schema.ToolCall) ([]contractx.ToolRequest, error) {
	if len(calls) == 0 {
		return nil, nil
	}
	reqs := make([]contractx.ToolRequest, 0, len(calls))
	for _, call := range calls {
		tool := strings.TrimSpace(call.Function.Name)
		if tool == "" {
			return nil, fmt.Errorf("%w: tool call name is empty", contractx.ErrSchemaViolation)
		}

		args := map[string]any{}
		rawArgs := strings.TrimSpace(call.Function.Arguments)
		if rawArgs != "" {
			if err := json.Unmarshal([]byte(rawArgs), &args); err != nil {
				return nil, fmt.Errorf("%w: invalid tool args for tool=%s: %v", contractx.ErrSchemaViolation, tool, err)
			}
		}

		reqs = append(reqs, contractx.ToolRequest{
			Tool: tool,
			Args: args,
		})
	}
	return reqs, nil
}

func summarizeSession(s *statex.SessionContext) map[string]any {
	if s == nil {
		return map[string]any{}
	}
	return map[string]any{
		"name":            s.Name,
		"is_premium_user": s.IsPremiumUser,
		"issue_type":      s.IssueType,
		"last_agent":      s.LastAgent,
		"extra":           s.Extra,
	}
}

// ModelGenerator dispatches each agent to its model-backed runner.
type ModelGenerator struct {
	agents map[statex.AgentName]*modelAgent
}

var _ contractx.Generator = (*ModelGenerator)(nil)

func (g *ModelGenerator) Generate(ctx context.Context, req contractx.GenerateRequest) (string, error) {
	a, ok := g.agents[req.Agent]
	if !ok {
		return "", fmt.Errorf("%w: agent=%s", contractx.ErrUnknownAgent, req.Agent)
	}
	return a.run(ctx, req)
}
