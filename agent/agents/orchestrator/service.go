package orchestrator

import (
	"context"
	"errors"
	"maps"
	"time"

	"github.com/cloudwego/eino/compose"
	contractx "github.com/tanpawarit/Chative-Support-Triage/agent/contract"
	guardx "github.com/tanpawarit/Chative-Support-Triage/agent/guard"
	nodex "github.com/tanpawarit/Chative-Support-Triage/agent/nodes"
	statex "github.com/tanpawarit/Chative-Support-Triage/agent/state"
)

var ErrInvalidSession = nodex.ErrInvalidSession

type Config struct {
	// RunConfig is handed to the generator with every request.
	RunConfig map[string]any
}

// Dispatcher runs one turn at a time. It keeps no session state; the caller
// owns the SessionContext and passes it to every HandleTurn.
type Dispatcher struct {
	generator contractx.Generator
	guard     contractx.Guard
	presenter contractx.Presenter
	runConfig map[string]any

	graphRunner compose.Runnable[nodex.GraphInput, nodex.GraphOutput]

	now func() time.Time
}

func New(
	generator contractx.Generator,
	guard contractx.Guard,
	presenter contractx.Presenter,
	cfg Config,
) (*Dispatcher, error) {
	if generator == nil {
		return nil, errors.New("generator is required")
	}
	if guard == nil {
		guard = guardx.Default()
	}
	if presenter == nil {
		presenter = noopPresenter{}
	}

	d := &Dispatcher{
		generator: generator,
		guard:     guard,
		presenter: presenter,
		runConfig: maps.Clone(cfg.RunConfig),
		now:       time.Now,
	}

	graphRunner, err := d.compileTurnGraph(context.Background())
	if err != nil {
		return nil, err
	}
	d.graphRunner = graphRunner

	return d, nil
}

// HandleTurn runs CLASSIFY through RESET for one utterance.
func (d *Dispatcher) HandleTurn(ctx context.Context, session *statex.SessionContext, text string) (nodex.GraphOutput, error) {
	if session == nil {
		return nodex.GraphOutput{}, ErrInvalidSession
	}
	return d.graphRunner.Invoke(ctx, nodex.GraphInput{
		Session: session,
		Text:    text,
	})
}

type noopPresenter struct{}

func (noopPresenter) Handoff(string) {}

func (noopPresenter) Reply(string, string) {}
