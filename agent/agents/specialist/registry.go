package specialist

import (
	"context"
	"fmt"
	"strings"

	einomodel "github.com/cloudwego/eino/components/model"
	contractx "github.com/tanpawarit/Chative-Support-Triage/agent/contract"
	llmx "github.com/tanpawarit/Chative-Support-Triage/agent/llm"
	promptx "github.com/tanpawarit/Chative-Support-Triage/agent/prompt"
	statex "github.com/tanpawarit/Chative-Support-Triage/agent/state"
)

type Backend string

const (
	BackendRules Backend = "rules"
	BackendModel Backend = "model"
)

func ParseBackend(raw string) (Backend, error) {
	switch b := Backend(strings.ToLower(strings.TrimSpace(raw))); b {
	case "", BackendRules:
		return BackendRules, nil
	case BackendModel:
		return BackendModel, nil
	default:
		return "", fmt.Errorf("%w: unsupported backend=%q", contractx.ErrValidation, raw)
	}
}

// ModelFactory builds the chat model an agent runs on.
type ModelFactory func(ctx context.Context, agent statex.AgentName) (einomodel.ToolCallingChatModel, error)

var modelAgents = []statex.AgentName{
	statex.AgentTriage,
	statex.AgentBilling,
	statex.AgentTechnical,
	statex.AgentGeneral,
}

func NewModelGenerator(ctx context.Context, prompts promptx.PromptSet, models ModelFactory) (*ModelGenerator, error) {
	if models == nil {
		return nil, fmt.Errorf("%w: model factory is required", contractx.ErrValidation)
	}

	agents := make(map[statex.AgentName]*modelAgent, len(modelAgents))
	for _, agent := range modelAgents {
		systemPrompt, err := prompts.For(agent)
		if err != nil {
			return nil, err
		}
		chatModel, err := models(ctx, agent)
		if err != nil {
			return nil, fmt.Errorf("%w: create %s model: %v", contractx.ErrModelInvoke, agent, err)
		}
		a, err := newModelAgent(ctx, agent, chatModel, systemPrompt)
		if err != nil {
			return nil, err
		}
		agents[agent] = a
	}

	return &ModelGenerator{agents: agents}, nil
}

// NewGenerator builds the backend selected by configuration. The model
// backend always degrades to the rule-based one.
func NewGenerator(ctx context.Context, backend Backend, cfg *llmx.Config) (contractx.Generator, error) {
	rules := NewRuleGenerator()

	switch backend {
	case BackendRules, "":
		return rules, nil
	case BackendModel:
		if cfg == nil {
			return nil, fmt.Errorf("%w: llm config is required for backend=%s", contractx.ErrValidation, backend)
		}
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		factory := func(ctx context.Context, agent statex.AgentName) (einomodel.ToolCallingChatModel, error) {
			modelCfg := cfg.OpenRouterFor(agent)
			return modelCfg.New(ctx)
		}
		models, err := NewModelGenerator(ctx, promptx.LoadPromptSet(), factory)
		if err != nil {
			return nil, err
		}
		return NewFallbackGenerator(models, rules)
	default:
		return nil, fmt.Errorf("%w: unsupported backend=%q", contractx.ErrValidation, backend)
	}
}
