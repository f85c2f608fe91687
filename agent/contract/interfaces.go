package contract

import "context"

// Generator is the execution backend each agent runs on. Rule-based,
// templated and model-backed implementations are interchangeable.
type Generator interface {
	Generate(ctx context.Context, req GenerateRequest) (string, error)
}

// Guard sanitizes responder output before it reaches the user.
type Guard interface {
	Sanitize(text string) string
}

// Presenter receives the user-visible lines of a turn.
type Presenter interface {
	Handoff(issue string)
	Reply(issueTitle string, text string)
}
