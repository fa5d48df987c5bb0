package span

import "fmt"

// Kind distinguishes the opening and closing bracket of a span.
type Kind int

const (
	// Start opens the span of a rule application.
	Start Kind = iota
	// End closes the span of a rule application.
	End
)

// String returns "Start" or "End".
func (k Kind) String() string {
	switch k {
	case Start:
		return "Start"
	case End:
		return "End"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Token is one Start or End event emitted by a parser.
// Pos is a zero-based byte offset into the parsed input.
type Token[R comparable] struct {
	Kind Kind
	Rule R
	Pos  int
}

// StartOf returns a Start token for rule at pos.
func StartOf[R comparable](rule R, pos int) Token[R] {
	return Token[R]{Kind: Start, Rule: rule, Pos: pos}
}

// EndOf returns an End token for rule at pos.
func EndOf[R comparable](rule R, pos int) Token[R] {
	return Token[R]{Kind: End, Rule: rule, Pos: pos}
}

// String renders the token as "Start(rule, pos)" or "End(rule, pos)".
func (t Token[R]) String() string {
	return fmt.Sprintf("%s(%v, %d)", t.Kind, t.Rule, t.Pos)
}
