package testutil

import (
	"fmt"

	"github.com/roach88/spancheck/internal/span"
)

// Rule names the productions of the a/b/c reference grammar.
type Rule int

const (
	RuleA Rule = iota
	RuleB
	RuleC
)

func (r Rule) String() string {
	switch r {
	case RuleA:
		return "a"
	case RuleB:
		return "b"
	case RuleC:
		return "c"
	default:
		return fmt.Sprintf("Rule(%d)", int(r))
	}
}

// AbcRules maps rule names, as written in fixture files, to rules.
var AbcRules = map[string]Rule{
	"a": RuleA,
	"b": RuleB,
	"c": RuleC,
}

// AbcParser is the reference grammar used across the tests:
//
//	a = any b any      where b = any
//	c = "e"            attempted one byte after a
//
// The start rule is ignored; parsing always begins with a. On "abcde" it
// yields a(0, 3, [b(1, 2)]), c(4, 5). On "abcdf" it fails at 4 expecting c.
type AbcParser struct{}

// Parse implements span.Parser.
func (AbcParser) Parse(_ Rule, input string) span.Outcome[Rule] {
	s := NewState[Rule](input)

	end, ok := s.Rule(RuleA, 0, func(pos int) (int, bool) {
		pos, ok := s.Skip(pos, 1)
		if !ok {
			return pos, false
		}
		pos, ok = s.Rule(RuleB, pos, func(pos int) (int, bool) {
			return s.Skip(pos, 1)
		})
		if !ok {
			return pos, false
		}
		return s.Skip(pos, 1)
	})
	if !ok {
		return s.Outcome(false)
	}

	pos, ok := s.Skip(end, 1)
	if !ok {
		return s.Outcome(false)
	}
	_, ok = s.Rule(RuleC, pos, func(pos int) (int, bool) {
		return s.Match(pos, "e")
	})
	return s.Outcome(ok)
}
