package harness

import (
	"errors"
	"fmt"
	"strings"

	"github.com/andreyvit/diff"

	"github.com/roach88/spancheck/internal/span"
)

// TestingT is the part of *testing.T the assertions need.
type TestingT interface {
	Helper()
	Fatal(args ...any)
}

// VerifyParsesTo parses input from rule and checks that the token stream
// is exactly want followed by nothing else.
//
// When the tree does not match, the rest of the stream is drained so the
// returned MismatchError carries the full token stream and a line diff
// against the encoding of want.
func VerifyParsesTo[R comparable](p span.Parser[R], input string, rule R, want ...Node[R]) error {
	outcome := p.Parse(rule, input)
	if !outcome.OK() {
		return &MismatchError{
			Kind:     KindExpectedSuccessButFailed,
			Expected: fmt.Sprintf("successful parse from rule %v", rule),
			Actual:   outcome.Failure.Error(),
		}
	}

	rec := &recordingStream[R]{inner: tokensOf(outcome)}
	err := MatchTree[R](rec, want)
	if err == nil {
		err = CheckEmpty[R](rec)
	}
	if err == nil {
		return nil
	}

	var me *MismatchError
	if errors.As(err, &me) {
		span.Drain[R](rec)
		me.Trace = renderTokens(rec.seen)
		me.Diff = diff.LineDiff(
			strings.Join(renderTokens(Encode(want)), "\n"),
			strings.Join(me.Trace, "\n"),
		)
	}
	return err
}

// VerifyFailsWith parses input from rule and checks that the parse fails
// at pos with exactly the given positives and negatives, in order.
func VerifyFailsWith[R comparable](p span.Parser[R], input string, rule R, positives, negatives []R, pos int) error {
	return MatchFailure(p.Parse(rule, input), span.Failure[R]{
		Positives: positives,
		Negatives: negatives,
		Pos:       pos,
	})
}

// AssertParsesTo is VerifyParsesTo that stops the calling test on mismatch.
//
//	harness.AssertParsesTo(t, parser, "abcde", RuleA,
//	    harness.N(RuleA, 0, 3, harness.N(RuleB, 1, 2)),
//	    harness.N(RuleC, 4, 5),
//	)
func AssertParsesTo[R comparable](t TestingT, p span.Parser[R], input string, rule R, want ...Node[R]) {
	t.Helper()
	if err := VerifyParsesTo(p, input, rule, want...); err != nil {
		t.Fatal(err.Error())
	}
}

// AssertFailsWith is VerifyFailsWith that stops the calling test on mismatch.
func AssertFailsWith[R comparable](t TestingT, p span.Parser[R], input string, rule R, positives, negatives []R, pos int) {
	t.Helper()
	if err := VerifyFailsWith(p, input, rule, positives, negatives, pos); err != nil {
		t.Fatal(err.Error())
	}
}

// recordingStream remembers every token pulled through it.
type recordingStream[R comparable] struct {
	inner span.Stream[R]
	seen  []span.Token[R]
}

func (s *recordingStream[R]) Next() (span.Token[R], bool) {
	tok, ok := s.inner.Next()
	if ok {
		s.seen = append(s.seen, tok)
	}
	return tok, ok
}
