package tool

import (
	"context"
	"testing"
	"time"

	statex "github.com/tanpawarit/Chative-Support-Triage/agent/state"
)

func TestBuildForAgentBilling(t *testing.T) {
	t.Parallel()

	infos, executor := BuildForAgent(statex.AgentBilling)
	if len(infos) != 2 {
		t.Fatalf("expected 2 tool infos, got %d", len(infos))
	}
	if infos[0].Name != ToolGetInvoice {
		t.Fatalf("unexpected first tool: %s", infos[0].Name)
	}
	if infos[1].Name != ToolRefund {
		t.Fatalf("unexpected second tool: %s", infos[1].Name)
	}
	if executor == nil {
		t.Fatal("executor must not be nil")
	}
}

func TestBuildForAgentUnknown(t *testing.T) {
	t.Parallel()

	infos, _ := BuildForAgent(statex.AgentName("sales"))
	if infos != nil {
		t.Fatalf("expected no tools, got %d", len(infos))
	}
}

func TestDefaultExecutorUnavailableMessage(t *testing.T) {
	t.Parallel()

	executor := DefaultExecutor(statex.AgentTechnical)
	out, err := executor(context.Background(), ToolRefund, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Tool != ToolRefund {
		t.Fatalf("unexpected tool: %s", out.Tool)
	}
	if out.Error == "" {
		t.Fatal("expected non-empty error message")
	}
}

func TestNewExecutorRejectsForeignTool(t *testing.T) {
	t.Parallel()

	s := statex.NewSessionContext("Alice", true, time.Now())
	executor := NewExecutor(statex.AgentTechnical)
	out, err := executor(context.Background(), ToolRefund, map[string]any{"input": "refund"}, s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Error == "" {
		t.Fatal("technical agent must not run billing.refund")
	}
}

func TestNewExecutorRunsGatedHandler(t *testing.T) {
	t.Parallel()

	s := statex.NewSessionContext("Alice", false, time.Now())
	executor := NewExecutor(statex.AgentBilling)
	out, err := executor(context.Background(), ToolRefund, map[string]any{"input": "refund"}, s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Error != "" {
		t.Fatalf("gate denial must be a result, got error %q", out.Error)
	}
	if out.Result != RefundDisabledMessage {
		t.Fatalf("unexpected result: %q", out.Result)
	}
}

func TestNewExecutorClassifyIssue(t *testing.T) {
	t.Parallel()

	executor := NewExecutor(statex.AgentTriage)
	out, err := executor(context.Background(), ToolClassifyIssue, map[string]any{"user_text": "app keeps crashing"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Result != string(statex.IssueTechnical) {
		t.Fatalf("unexpected classification: %q", out.Result)
	}
}

func TestNewExecutorInvalidArgType(t *testing.T) {
	t.Parallel()

	executor := NewExecutor(statex.AgentTriage)
	out, err := executor(context.Background(), ToolClassifyIssue, map[string]any{"user_text": 42}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Error == "" {
		t.Fatal("expected validation error")
	}
}

func TestEnabledFollowsGates(t *testing.T) {
	t.Parallel()

	s := statex.NewSessionContext("Alice", false, time.Now())
	if got := Enabled(statex.AgentBilling, s); len(got) != 1 || got[0] != ToolGetInvoice {
		t.Fatalf("free user billing tools = %v", got)
	}
	if got := Enabled(statex.AgentTechnical, s); len(got) != 1 || got[0] != ToolCheckServiceStatus {
		t.Fatalf("unclassified technical tools = %v", got)
	}

	if err := s.BeginTurn(statex.IssueTechnical); err != nil {
		t.Fatalf("BeginTurn() error = %v", err)
	}
	if got := Enabled(statex.AgentTechnical, s); len(got) != 2 {
		t.Fatalf("technical turn tools = %v", got)
	}
}
