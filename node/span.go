package node

import "fmt"

// Span is a (line, column) mark taken from the YAML parse.
// Line and Column are 1-based. Offset is not set by Parse and stays 0.
// A zero Line indicates the span is unknown,
// which only occurs for synthetic nodes manufactured outside of parsing.
type Span struct {
	Line   int
	Column int
	Offset int
}

// IsKnown reports whether this span carries real source position data.
func (s Span) IsKnown() bool {
	return s.Line > 0
}

// String renders the span as "line:column", or "<unknown>" when unknown.
func (s Span) String() string {
	if !s.IsKnown() {
		return "<unknown>"
	}
	return fmt.Sprintf("%d:%d", s.Line, s.Column)
}
