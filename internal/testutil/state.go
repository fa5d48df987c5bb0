package testutil

import (
	"strings"

	"github.com/roach88/spancheck/internal/span"
)

// State is the bookkeeping a small hand-written parser needs to produce the
// output a real parser engine would: a pre-order Start/End token stream on
// success and furthest-failure diagnostics otherwise.
//
// Rule failures are tracked at the offset where the rule was attempted.
// A failure further right than anything seen so far replaces the recorded
// positives and negatives; one at the same offset is appended; one to the
// left is ignored. Rules that match inside a negative lookahead are
// recorded as negatives the same way.
//
// State is not safe for concurrent use.
type State[R comparable] struct {
	input     string
	tokens    []span.Token[R]
	positives []R
	negatives []R
	furthest  int
	negated   int
}

// NewState returns a State for parsing input.
func NewState[R comparable](input string) *State[R] {
	return &State[R]{input: input}
}

// Input returns the text being parsed.
func (s *State[R]) Input() string {
	return s.input
}

// Rule applies body at pos as rule. On success the rule's Start and End
// tokens bracket whatever body produced; on failure everything body
// produced is discarded and the attempt is tracked.
func (s *State[R]) Rule(rule R, pos int, body func(pos int) (int, bool)) (int, bool) {
	mark := len(s.tokens)
	s.tokens = append(s.tokens, span.StartOf(rule, pos))

	end, ok := body(pos)
	if !ok {
		s.tokens = s.tokens[:mark]
		if s.negated == 0 {
			s.track(&s.positives, rule, pos)
		}
		return pos, false
	}

	if s.negated > 0 {
		s.track(&s.negatives, rule, pos)
	}
	s.tokens = append(s.tokens, span.EndOf(rule, end))
	return end, true
}

// Not is a negative lookahead: it succeeds without consuming input when
// body fails at pos. Tokens produced by body are always discarded.
func (s *State[R]) Not(pos int, body func(pos int) (int, bool)) (int, bool) {
	mark := len(s.tokens)
	s.negated++
	_, ok := body(pos)
	s.negated--
	s.tokens = s.tokens[:mark]
	return pos, !ok
}

// Match consumes literal at pos.
func (s *State[R]) Match(pos int, literal string) (int, bool) {
	if pos > len(s.input) || !strings.HasPrefix(s.input[pos:], literal) {
		return pos, false
	}
	return pos + len(literal), true
}

// Skip consumes n bytes at pos.
func (s *State[R]) Skip(pos, n int) (int, bool) {
	if pos+n > len(s.input) {
		return pos, false
	}
	return pos + n, true
}

// Outcome finishes the parse.
func (s *State[R]) Outcome(ok bool) span.Outcome[R] {
	if ok {
		return span.Succeeded[R](span.NewSliceStream(s.tokens))
	}
	return span.Failed(span.Failure[R]{
		Positives: s.positives,
		Negatives: s.negatives,
		Pos:       s.furthest,
	})
}

func (s *State[R]) track(list *[]R, rule R, pos int) {
	if pos > s.furthest {
		s.furthest = pos
		s.positives = nil
		s.negatives = nil
	}
	if pos < s.furthest {
		return
	}
	for _, r := range *list {
		if r == rule {
			return
		}
	}
	*list = append(*list, rule)
}
