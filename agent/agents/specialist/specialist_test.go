package specialist

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	contractx "github.com/tanpawarit/Chative-Support-Triage/agent/contract"
	promptx "github.com/tanpawarit/Chative-Support-Triage/agent/prompt"
	statex "github.com/tanpawarit/Chative-Support-Triage/agent/state"
	toolx "github.com/tanpawarit/Chative-Support-Triage/agent/tool"
)

type fakeToolCallingModel struct {
	responses []*schema.Message
	err       error
	idx       int
	inputs    [][]*schema.Message
	tools     []*schema.ToolInfo
}

func (f *fakeToolCallingModel) Generate(ctx context.Context, input []*schema.Message, opts ...einomodel.Option) (*schema.Message, error) {
	f.inputs = append(f.inputs, input)
	if f.err != nil {
		return nil, f.err
	}
	if f.idx >= len(f.responses) {
		return nil, errors.New("no fake response left")
	}
	msg := f.responses[f.idx]
	f.idx++
	return msg, nil
}

func (f *fakeToolCallingModel) Stream(ctx context.Context, input []*schema.Message, opts ...einomodel.Option) (*schema.StreamReader[*schema.Message], error) {
	return nil, errors.New("stream not implemented in fake model")
}

func (f *fakeToolCallingModel) WithTools(tools []*schema.ToolInfo) (einomodel.ToolCallingChatModel, error) {
	f.tools = tools
	return f, nil
}

func toolCall(name, args string) *schema.Message {
	return &schema.Message{
		Role: schema.Assistant,
		ToolCalls: []schema.ToolCall{
			{
				ID:   "call_1",
				Type: "function",
				Function: schema.FunctionCall{
					Name:      name,
					Arguments: args,
				},
			},
		},
	}
}

func newTestModelGenerator(t *testing.T, fakes map[statex.AgentName]*fakeToolCallingModel) *ModelGenerator {
	t.Helper()
	factory := func(ctx context.Context, agent statex.AgentName) (einomodel.ToolCallingChatModel, error) {
		if f, ok := fakes[agent]; ok {
			return f, nil
		}
		return &fakeToolCallingModel{}, nil
	}
	g, err := NewModelGenerator(context.Background(), promptx.LoadPromptSet(), factory)
	if err != nil {
		t.Fatalf("NewModelGenerator() error = %v", err)
	}
	return g
}

func TestModelGeneratorBindsAgentTools(t *testing.T) {
	t.Parallel()

	billing := &fakeToolCallingModel{}
	newTestModelGenerator(t, map[statex.AgentName]*fakeToolCallingModel{
		statex.AgentBilling: billing,
	})

	if len(billing.tools) != 2 {
		t.Fatalf("expected 2 billing tools bound, got %d", len(billing.tools))
	}
	if billing.tools[0].Name != toolx.ToolGetInvoice || billing.tools[1].Name != toolx.ToolRefund {
		t.Fatalf("unexpected billing tools: %s, %s", billing.tools[0].Name, billing.tools[1].Name)
	}
}

func TestModelGeneratorToolCallRunsGatedHandler(t *testing.T) {
	t.Parallel()

	billing := &fakeToolCallingModel{
		responses: []*schema.Message{toolCall(toolx.ToolRefund, `{"input":"refund"}`)},
	}
	g := newTestModelGenerator(t, map[statex.AgentName]*fakeToolCallingModel{
		statex.AgentBilling: billing,
	})

	s := statex.NewSessionContext("Alice", false, time.Now())
	out, err := g.Generate(context.Background(), contractx.GenerateRequest{
		Agent:   statex.AgentBilling,
		Input:   "refund",
		Session: s.Snapshot(),
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if out != toolx.RefundDisabledMessage {
		t.Fatalf("unexpected output: %q", out)
	}

	if len(billing.inputs) != 1 {
		t.Fatalf("expected one model call, got %d", len(billing.inputs))
	}
	user := billing.inputs[0][len(billing.inputs[0])-1].Content
	if !strings.Contains(user, `"enabled_tools":["get_invoice"]`) {
		t.Fatalf("payload must list only enabled tools: %s", user)
	}
}

func TestModelGeneratorTriageContent(t *testing.T) {
	t.Parallel()

	triage := &fakeToolCallingModel{
		responses: []*schema.Message{{Role: schema.Assistant, Content: " Technical \n"}},
	}
	g := newTestModelGenerator(t, map[statex.AgentName]*fakeToolCallingModel{
		statex.AgentTriage: triage,
	})

	out, err := g.Generate(context.Background(), contractx.GenerateRequest{
		Agent: statex.AgentTriage,
		Input: "the app keeps crashing",
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if statex.ParseIssueType(out) != statex.IssueTechnical {
		t.Fatalf("unexpected triage output: %q", out)
	}
}

func TestModelGeneratorRejectsForeignTool(t *testing.T) {
	t.Parallel()

	technical := &fakeToolCallingModel{
		responses: []*schema.Message{toolCall(toolx.ToolRefund, `{}`)},
	}
	g := newTestModelGenerator(t, map[statex.AgentName]*fakeToolCallingModel{
		statex.AgentTechnical: technical,
	})

	_, err := g.Generate(context.Background(), contractx.GenerateRequest{
		Agent: statex.AgentTechnical,
		Input: "restart",
	})
	if !errors.Is(err, contractx.ErrSchemaViolation) {
		t.Fatalf("expected ErrSchemaViolation, got %v", err)
	}
}

func TestModelGeneratorEmptyResponse(t *testing.T) {
	t.Parallel()

	general := &fakeToolCallingModel{
		responses: []*schema.Message{{Role: schema.Assistant, Content: "   "}},
	}
	g := newTestModelGenerator(t, map[statex.AgentName]*fakeToolCallingModel{
		statex.AgentGeneral: general,
	})

	_, err := g.Generate(context.Background(), contractx.GenerateRequest{
		Agent: statex.AgentGeneral,
		Input: "hello",
	})
	if !errors.Is(err, contractx.ErrSchemaViolation) {
		t.Fatalf("expected ErrSchemaViolation, got %v", err)
	}
}

func TestModelGeneratorInvalidToolArgs(t *testing.T) {
	t.Parallel()

	billing := &fakeToolCallingModel{
		responses: []*schema.Message{toolCall(toolx.ToolGetInvoice, `{not json`)},
	}
	g := newTestModelGenerator(t, map[statex.AgentName]*fakeToolCallingModel{
		statex.AgentBilling: billing,
	})

	_, err := g.Generate(context.Background(), contractx.GenerateRequest{
		Agent: statex.AgentBilling,
		Input: "invoice",
	})
	if !errors.Is(err, contractx.ErrSchemaViolation) {
		t.Fatalf("expected ErrSchemaViolation, got %v", err)
	}
}

func TestModelGeneratorModelError(t *testing.T) {
	t.Parallel()

	g := newTestModelGenerator(t, map[statex.AgentName]*fakeToolCallingModel{
		statex.AgentGeneral: {err: errors.New("upstream 502")},
	})

	_, err := g.Generate(context.Background(), contractx.GenerateRequest{
		Agent: statex.AgentGeneral,
		Input: "hello",
	})
	if !errors.Is(err, contractx.ErrModelInvoke) {
		t.Fatalf("expected ErrModelInvoke, got %v", err)
	}

	if _, err := g.Generate(context.Background(), contractx.GenerateRequest{Agent: "sales"}); !errors.Is(err, contractx.ErrUnknownAgent) {
		t.Fatalf("expected ErrUnknownAgent, got %v", err)
	}
}

func TestNewModelGeneratorFactoryError(t *testing.T) {
	t.Parallel()

	factory := func(ctx context.Context, agent statex.AgentName) (einomodel.ToolCallingChatModel, error) {
		return nil, errors.New("no api key")
	}
	_, err := NewModelGenerator(context.Background(), promptx.LoadPromptSet(), factory)
	if !errors.Is(err, contractx.ErrModelInvoke) {
		t.Fatalf("expected ErrModelInvoke, got %v", err)
	}
}
