package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/spancheck/internal/snapshot"
	"github.com/roach88/spancheck/internal/span"
)

// AssertGolden compares a parse outcome against testdata/golden/{name}.golden.
// The outcome is encoded with snapshot.Outcome, draining its stream.
//
// To regenerate golden files, run:
//
//	go test ./... -update
func AssertGolden[R comparable](t *testing.T, name string, outcome span.Outcome[R]) {
	t.Helper()

	data, err := snapshot.Outcome(outcome)
	if err != nil {
		t.Fatalf("snapshot %s: %v", name, err)
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, data)
}

// AssertParseGolden parses input from rule and compares the outcome
// against a golden file.
func AssertParseGolden[R comparable](t *testing.T, name string, p span.Parser[R], input string, rule R) {
	t.Helper()
	AssertGolden(t, name, p.Parse(rule, input))
}
