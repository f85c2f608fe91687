package state

import (
	"errors"
	"fmt"
	"maps"
	"strings"
	"time"

	"github.com/google/uuid"
)

const DefaultName = "Guest"

// SessionContext is the mutable per-session state shared across turns.
// - IssueType is only set between classification and reply emission.
// - LastAgent records the most recent responder consulted.
// - IsPremiumUser is fixed at creation; there is no setter.
type SessionContext struct {
	// Identity
	SessionID     string `json:"session_id"`
	Name          string `json:"name"`
	IsPremiumUser bool   `json:"is_premium_user"`

	// Routing
	IssueType IssueType `json:"issue_type,omitempty"`
	LastAgent AgentName `json:"last_agent,omitempty"`

	Extra map[string]any `json:"extra,omitempty"`

	Turns     int       `json:"turns"`
	StartedAt time.Time `json:"started_at"`
}

var (
	ErrNilSession       = errors.New("session context is nil")
	ErrInvalidIssueType = errors.New("invalid issue type")
	ErrInvalidAgent     = errors.New("invalid agent name")
)

func NewSessionContext(name string, premium bool, now time.Time) *SessionContext {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultName
	}
	return &SessionContext{
		SessionID:     uuid.NewString(),
		Name:          name,
		IsPremiumUser: premium,
		Extra:         make(map[string]any, 4),
		StartedAt:     now.UTC(),
	}
}

/* ----------------------------- Turn helpers ----------------------------- */

// BeginTurn records the classification result for the current turn.
func (s *SessionContext) BeginTurn(issue IssueType) error {
	if s == nil {
		return ErrNilSession
	}
	if !issue.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidIssueType, issue)
	}
	s.IssueType = issue
	s.LastAgent = AgentTriage
	return nil
}

// EndTurn hands the session back to RECEIVE: the responder that just
// answered becomes LastAgent and the issue classification is cleared.
func (s *SessionContext) EndTurn(issue IssueType) error {
	if s == nil {
		return ErrNilSession
	}
	if !issue.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidIssueType, issue)
	}
	s.LastAgent = AgentFor(issue)
	s.IssueType = ""
	s.Turns++
	return nil
}

// InTurn reports whether a classification is currently held.
func (s *SessionContext) InTurn() bool {
	return s != nil && s.IssueType != ""
}

/* ----------------------------- Extra helpers ---------------------------- */

func (s *SessionContext) SetExtra(key string, val any) {
	if s.Extra == nil {
		s.Extra = make(map[string]any, 4)
	}
	s.Extra[key] = val
}

func (s *SessionContext) GetExtra(key string) (any, bool) {
	if s == nil || s.Extra == nil {
		return nil, false
	}
	v, ok := s.Extra[key]
	return v, ok
}

// Snapshot returns a value copy safe to hand to collaborators.
// Extra is cloned shallowly.
func (s *SessionContext) Snapshot() SessionContext {
	if s == nil {
		return SessionContext{}
	}
	out := *s
	out.Extra = maps.Clone(s.Extra)
	return out
}

func (s *SessionContext) Validate() error {
	if s == nil {
		return ErrNilSession
	}
	if s.IssueType != "" && !s.IssueType.Valid() {
		return fmt.Errorf("%w: issue_type=%q", ErrInvalidIssueType, s.IssueType)
	}
	if s.LastAgent != "" && !s.LastAgent.Valid() {
		return fmt.Errorf("%w: last_agent=%q", ErrInvalidAgent, s.LastAgent)
	}
	if strings.TrimSpace(s.Name) == "" {
		return errors.New("session name is empty")
	}
	return nil
}
