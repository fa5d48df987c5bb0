package harness

import (
	"fmt"
	"strings"

	"github.com/roach88/spancheck/internal/span"
)

// MatchFailure compares a failed parse outcome against want.
//
// Positives and negatives are compared as ordered sequences, pos by exact
// equality. All differing fields are reported together in one
// KindFieldMismatch error. A successful outcome is not a field mismatch:
// it yields KindExpectedFailureButSucceeded and the produced tokens are
// drained into the error's Trace.
func MatchFailure[R comparable](outcome span.Outcome[R], want span.Failure[R]) error {
	if outcome.OK() {
		return &MismatchError{
			Kind:     KindExpectedFailureButSucceeded,
			Expected: describeFailure(want),
			Actual:   "parse succeeded",
			Trace:    renderTokens(span.Drain(tokensOf(outcome))),
		}
	}

	got := *outcome.Failure
	var fields, expected, actual []string

	if !sameRules(got.Positives, want.Positives) {
		fields = append(fields, FieldPositives)
		expected = append(expected, FieldPositives+"="+span.FormatRules(want.Positives))
		actual = append(actual, FieldPositives+"="+span.FormatRules(got.Positives))
	}
	if !sameRules(got.Negatives, want.Negatives) {
		fields = append(fields, FieldNegatives)
		expected = append(expected, FieldNegatives+"="+span.FormatRules(want.Negatives))
		actual = append(actual, FieldNegatives+"="+span.FormatRules(got.Negatives))
	}
	if got.Pos != want.Pos {
		fields = append(fields, FieldPos)
		expected = append(expected, fmt.Sprintf("%s=%d", FieldPos, want.Pos))
		actual = append(actual, fmt.Sprintf("%s=%d", FieldPos, got.Pos))
	}

	if len(fields) == 0 {
		return nil
	}
	return &MismatchError{
		Kind:     KindFieldMismatch,
		Expected: strings.Join(expected, ", "),
		Actual:   strings.Join(actual, ", "),
		Fields:   fields,
	}
}

// sameRules compares element-wise; nil and empty are equal.
func sameRules[R comparable](a, b []R) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func describeFailure[R comparable](f span.Failure[R]) string {
	return fmt.Sprintf("failure at %d with %s=%s %s=%s",
		f.Pos, FieldPositives, span.FormatRules(f.Positives), FieldNegatives, span.FormatRules(f.Negatives))
}

// tokensOf returns the outcome's stream, treating a nil stream as empty.
func tokensOf[R comparable](outcome span.Outcome[R]) span.Stream[R] {
	if outcome.Tokens == nil {
		return span.NewSliceStream[R](nil)
	}
	return outcome.Tokens
}
