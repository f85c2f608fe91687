package guard

import (
	"fmt"
	"regexp"
	"strings"
)

// Guard replaces forbidden phrases in responder output with a marker.
type Guard struct {
	patterns []*regexp.Regexp
	marker   string
}

func New(policy *Policy) (*Guard, error) {
	if policy == nil {
		policy = DefaultPolicy()
	}

	g := &Guard{marker: policy.Marker}
	for _, raw := range policy.Patterns {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		re, err := regexp.Compile("(?i)" + raw)
		if err != nil {
			return nil, fmt.Errorf("%w: pattern %q: %v", ErrInvalidPolicy, raw, err)
		}
		g.patterns = append(g.patterns, re)
	}

	// A marker that matches a pattern would make Sanitize non-idempotent.
	for _, re := range g.patterns {
		if re.MatchString(g.marker) {
			return nil, fmt.Errorf("%w: marker %q matches pattern %q", ErrInvalidPolicy, g.marker, re.String())
		}
	}
	return g, nil
}

func MustNew(policy *Policy) *Guard {
	g, err := New(policy)
	if err != nil {
		panic(err)
	}
	return g
}

// Default returns a guard for the built-in apology policy.
func Default() *Guard {
	return MustNew(DefaultPolicy())
}

func (g *Guard) Sanitize(text string) string {
	if text == "" || g == nil {
		return text
	}
	out := text
	for _, re := range g.patterns {
		out = re.ReplaceAllLiteralString(out, g.marker)
	}
	return out
}
