// ABOUTME: Action enum describing the outcome for each classified tag.
// ABOUTME: Serializes as its bare name in JSON and YAML.

package models

import "fmt"

type Action int

const (
	// Noop means the token was already canonical.
	Noop Action = iota
	// Lint means the token was corrected but kept.
	Lint
	// Remove means the token is empty or a duplicate of an earlier tag.
	Remove
)

var actionNames = map[Action]string{
	Noop:   "Noop",
	Lint:   "Lint",
	Remove: "Remove",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// Kept reports whether the tag survives into the cleaned output.
func (a Action) Kept() bool {
	return a == Noop || a == Lint
}

func (a Action) MarshalText() ([]byte, error) {
	name, ok := actionNames[a]
	if !ok {
		return nil, fmt.Errorf("unknown action %d", int(a))
	}
	return []byte(name), nil
}

func (a *Action) UnmarshalText(text []byte) error {
	action, err := ParseAction(string(text))
	if err != nil {
		return err
	}
	*a = action
	return nil
}

// ParseAction converts an action name back to its value.
func ParseAction(s string) (Action, error) {
	for action, name := range actionNames {
		if name == s {
			return action, nil
		}
	}
	return Noop, fmt.Errorf("unknown action %q", s)
}
