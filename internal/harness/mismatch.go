package harness

import (
	"errors"
	"fmt"
	"strings"
)

// MismatchKind categorizes a discrepancy between expectation and parser output.
type MismatchKind string

// Mismatch kinds.
const (
	KindMissingToken                MismatchKind = "missing_token"
	KindUnexpectedTokenKind         MismatchKind = "unexpected_token_kind"
	KindRuleMismatch                MismatchKind = "rule_mismatch"
	KindPositionMismatch            MismatchKind = "position_mismatch"
	KindLeftoverTokens              MismatchKind = "leftover_tokens"
	KindExpectedSuccessButFailed    MismatchKind = "expected_success_but_failed"
	KindExpectedFailureButSucceeded MismatchKind = "expected_failure_but_succeeded"
	KindFieldMismatch               MismatchKind = "field_mismatch"
)

// Failure fields named in Fields of a field mismatch.
const (
	FieldPositives = "positives"
	FieldNegatives = "negatives"
	FieldPos       = "pos"
)

// nothing is what a diagnostic shows when the stream ended early.
const nothing = "nothing"

// MismatchError describes the first discrepancy found by a matcher.
// Every value is already rendered so the error stays printable without
// knowing the grammar's rule type.
type MismatchError struct {
	Kind     MismatchKind
	Where    string   // position in the expected tree, empty at top level
	Expected string   // human-readable expectation
	Actual   string   // human-readable observation
	Fields   []string // differing failure fields, for KindFieldMismatch
	Leftover []string // unconsumed tokens, for KindLeftoverTokens
	Trace    []string // full token stream, when the caller collected it
	Diff     string   // line diff of expected vs actual tokens
}

// Error implements the error interface. It is the single place diagnostics
// are formatted.
func (e *MismatchError) Error() string {
	var buf strings.Builder

	fmt.Fprintf(&buf, "Mismatch: %s", e.Kind)
	if len(e.Fields) > 0 {
		fmt.Fprintf(&buf, " (%s)", strings.Join(e.Fields, ", "))
	}
	buf.WriteString("\n")

	if e.Where != "" {
		fmt.Fprintf(&buf, "  Where: %s\n", e.Where)
	}
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s\n", e.Actual)

	if len(e.Trace) > 0 {
		fmt.Fprintf(&buf, "\nFull token stream:\n")
		for i, tok := range e.Trace {
			fmt.Fprintf(&buf, "  [%d] %s\n", i+1, tok)
		}
	}

	if e.Diff != "" {
		fmt.Fprintf(&buf, "\nToken diff (-expected +actual):\n%s\n", e.Diff)
	}

	return buf.String()
}

// IsKind reports whether err is a MismatchError of the given kind.
func IsKind(err error, kind MismatchKind) bool {
	var me *MismatchError
	return errors.As(err, &me) && me.Kind == kind
}
