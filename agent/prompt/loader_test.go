package prompt

import (
	"errors"
	"testing"

	contractx "github.com/tanpawarit/Chative-Support-Triage/agent/contract"
	statex "github.com/tanpawarit/Chative-Support-Triage/agent/state"
)

func TestLoadPromptSetEmbedsEveryAgent(t *testing.T) {
	t.Parallel()

	prompts := LoadPromptSet()
	for _, agent := range []statex.AgentName{
		statex.AgentTriage,
		statex.AgentBilling,
		statex.AgentTechnical,
		statex.AgentGeneral,
	} {
		p, err := prompts.For(agent)
		if err != nil {
			t.Fatalf("For(%s) error = %v", agent, err)
		}
		if p == "" {
			t.Fatalf("For(%s) returned empty prompt", agent)
		}
	}
}

func TestPromptSetForErrors(t *testing.T) {
	t.Parallel()

	if _, err := LoadPromptSet().For(statex.AgentName("sales")); !errors.Is(err, contractx.ErrUnknownAgent) {
		t.Fatalf("expected ErrUnknownAgent, got %v", err)
	}
	if _, err := (PromptSet{}).For(statex.AgentBilling); !errors.Is(err, contractx.ErrPromptMissing) {
		t.Fatalf("expected ErrPromptMissing, got %v", err)
	}
}
