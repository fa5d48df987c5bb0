package span

import (
	"fmt"
	"strings"
)

// Failure is the furthest-failure diagnostic of a parse attempt.
//
// Positives are the rules that were attempted at Pos and would have allowed
// progress; Negatives are the rules whose absence was required there.
// Both are kept in the order the parser recorded them.
type Failure[R comparable] struct {
	Positives []R
	Negatives []R
	Pos       int
}

// Error implements error so a Failure can travel through error returns.
func (f *Failure[R]) Error() string {
	return fmt.Sprintf("parsing failed at %d: positives=%s negatives=%s",
		f.Pos, FormatRules(f.Positives), FormatRules(f.Negatives))
}

// FormatRules renders rules as "[a b c]"; an empty or nil list is "[]".
func FormatRules[R comparable](rules []R) string {
	parts := make([]string, len(rules))
	for i, r := range rules {
		parts[i] = fmt.Sprint(r)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Outcome is the result of one parse attempt: a token stream on success,
// a Failure otherwise. Exactly one of Tokens and Failure is set.
type Outcome[R comparable] struct {
	Tokens  Stream[R]
	Failure *Failure[R]
}

// Succeeded wraps a token stream in a successful outcome.
func Succeeded[R comparable](tokens Stream[R]) Outcome[R] {
	return Outcome[R]{Tokens: tokens}
}

// Failed wraps a failure in an unsuccessful outcome.
func Failed[R comparable](f Failure[R]) Outcome[R] {
	return Outcome[R]{Failure: &f}
}

// OK reports whether the parse succeeded.
func (o Outcome[R]) OK() bool {
	return o.Failure == nil
}

// Parser is the engine under test.
type Parser[R comparable] interface {
	Parse(rule R, input string) Outcome[R]
}

// ParserFunc adapts an ordinary function to Parser.
type ParserFunc[R comparable] func(rule R, input string) Outcome[R]

// Parse implements Parser.
func (f ParserFunc[R]) Parse(rule R, input string) Outcome[R] {
	return f(rule, input)
}
