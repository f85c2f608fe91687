package guard

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DefaultMarker  = "(removed)"
	DefaultPattern = `\b(sorry|apolog\w*)\b`
)

var ErrInvalidPolicy = errors.New("invalid output policy")

// Policy lists the phrases responders may not show the user. Patterns are
// matched case-insensitively.
type Policy struct {
	Version  string   `yaml:"version"`
	Marker   string   `yaml:"marker"`
	Patterns []string `yaml:"patterns"`
}

func DefaultPolicy() *Policy {
	return &Policy{
		Version:  "1",
		Marker:   DefaultMarker,
		Patterns: []string{DefaultPattern},
	}
}

// LoadPolicy reads a YAML policy. An empty path or a missing file yields
// the default policy.
func LoadPolicy(path string) (*Policy, error) {
	if strings.TrimSpace(path) == "" {
		return DefaultPolicy(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultPolicy(), nil
		}
		return nil, fmt.Errorf("read output policy: %w", err)
	}

	var policy Policy
	if err := yaml.Unmarshal(data, &policy); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPolicy, err)
	}

	if policy.Marker == "" {
		policy.Marker = DefaultMarker
	}
	if len(policy.Patterns) == 0 {
		policy.Patterns = []string{DefaultPattern}
	}

	return &policy, nil
}
