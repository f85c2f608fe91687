package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	contractx "github.com/tanpawarit/Chative-Support-Triage/agent/contract"
	nodex "github.com/tanpawarit/Chative-Support-Triage/agent/nodes"
	statex "github.com/tanpawarit/Chative-Support-Triage/agent/state"
)

const (
	Banner        = "\n🛠️ Console-Based Support Agent System\n"
	NamePrompt    = "Your name: "
	PremiumPrompt = "Are you a premium user? (y/n): "
	UsageHint     = "\nType your question (e.g., 'I want a refund', 'app keeps crashing'). Type 'exit' to quit.\n"
	InputPrompt   = "You: "
	Goodbye       = "Goodbye!"
)

// TurnHandler runs one dispatcher turn for a session.
type TurnHandler interface {
	HandleTurn(ctx context.Context, session *statex.SessionContext, text string) (nodex.GraphOutput, error)
}

// Console is the line-oriented session loop. It also presents the handoff
// and reply lines the dispatcher emits.
type Console struct {
	in  *bufio.Scanner
	out io.Writer
	now func() time.Time
}

var _ contractx.Presenter = (*Console)(nil)

func New(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:  bufio.NewScanner(in),
		out: out,
		now: time.Now,
	}
}

func (c *Console) Handoff(issue string) {
	fmt.Fprintf(c.out, "→ Handoff: Triage classified issue as '%s'.\n", issue)
}

func (c *Console) Reply(issueTitle string, text string) {
	fmt.Fprintf(c.out, "%s Agent → %s\n\n", issueTitle, text)
}

// IsExit reports whether the input ends the session.
func IsExit(text string) bool {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "exit", "quit":
		return true
	}
	return false
}

// ParsePremium reads a y/n answer; anything starting with y is yes.
func ParsePremium(answer string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(answer)), "y")
}

// Start prints the banner and builds the session from the user's answers.
func (c *Console) Start() *statex.SessionContext {
	fmt.Fprint(c.out, Banner)

	name, _ := c.ask(NamePrompt)
	premium, _ := c.ask(PremiumPrompt)

	sess := statex.NewSessionContext(name, ParsePremium(premium), c.now())
	fmt.Fprint(c.out, UsageHint+"\n")

	log.Debug().
		Str("session_id", sess.SessionID).
		Str("name", sess.Name).
		Bool("premium", sess.IsPremiumUser).
		Msg("session started")
	return sess
}

// Loop reads utterances until an exit token, end of input or context
// cancellation. Turn errors are logged and the loop keeps going.
func (c *Console) Loop(ctx context.Context, handler TurnHandler, sess *statex.SessionContext) error {
	if sess == nil {
		return contractx.ErrInvalidSession
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		text, ok := c.ask(InputPrompt)
		if !ok || IsExit(text) {
			if !ok {
				fmt.Fprintln(c.out)
			}
			fmt.Fprintln(c.out, Goodbye)
			break
		}

		if _, err := handler.HandleTurn(ctx, sess, text); err != nil {
			log.Error().
				Err(err).
				Str("session_id", sess.SessionID).
				Msg("turn failed")
		}
	}

	log.Info().
		Str("session_id", sess.SessionID).
		Int("turns", sess.Turns).
		Msg("session ended")
	return c.in.Err()
}

func (c *Console) Run(ctx context.Context, handler TurnHandler) error {
	return c.Loop(ctx, handler, c.Start())
}

func (c *Console) ask(prompt string) (string, bool) {
	fmt.Fprint(c.out, prompt)
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}
