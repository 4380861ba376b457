package traverse

import "fmt"

// Action controls how the engine proceeds after a hook returns.
type Action int

const (
	// Continue proceeds normally: children are visited, then leave hooks fire.
	Continue Action = iota

	// SkipChildren skips the current node's children but still runs its
	// leave hooks; sibling nodes are unaffected.
	SkipChildren

	// Break terminates the entire traversal immediately. No further hook —
	// including any pending leave hook on an ancestor — fires.
	Break
)

// IsValid reports whether a is one of the three defined actions.
func (a Action) IsValid() bool { return a >= Continue && a <= Break }

// String returns a human-readable name for a.
func (a Action) String() string {
	switch a {
	case Continue:
		return "Continue"
	case SkipChildren:
		return "SkipChildren"
	case Break:
		return "Break"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}
