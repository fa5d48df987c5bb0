package harness

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/spancheck/internal/testutil"
)

func abcSuite() *Suite[testutil.Rule] {
	return &Suite[testutil.Rule]{
		Parser: testutil.AbcParser{},
		Rules:  testutil.AbcRules,
	}
}

func TestSuite_RunDir_AllPass(t *testing.T) {
	report, err := abcSuite().RunDir("testdata/fixtures", "")
	require.NoError(t, err)

	assert.Equal(t, 3, report.Total)
	assert.Equal(t, 3, report.Passed)
	assert.True(t, report.OK())
	for _, r := range report.Results {
		assert.True(t, r.Pass, "%s: %v", r.Name, r.Errors)
		assert.Empty(t, r.Errors)
	}
}

func TestSuite_RunDir_Filter(t *testing.T) {
	report, err := abcSuite().RunDir("testdata/fixtures", "abc_fails*")
	require.NoError(t, err)

	require.Equal(t, 2, report.Total)
	assert.Equal(t, "abc_fails", report.Results[0].Name)
	assert.Equal(t, "abc_fails_cue", report.Results[1].Name)
}

func TestSuite_RunDir_InvalidFilter(t *testing.T) {
	_, err := abcSuite().RunDir("testdata/fixtures", "[")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid filter pattern")
}

func TestSuite_RunDir_MissingDir(t *testing.T) {
	_, err := abcSuite().RunDir("testdata/absent", "")
	require.Error(t, err)
}

func TestSuite_RunDir_Failures(t *testing.T) {
	var logs bytes.Buffer
	s := abcSuite()
	s.Logger = slog.New(slog.NewTextHandler(&logs, nil))

	report, err := s.RunDir("testdata/broken", "")
	require.NoError(t, err)

	require.Equal(t, 4, report.Total)
	assert.Equal(t, 4, report.Failed)
	assert.False(t, report.OK())
	assert.Equal(t, "0 passed, 4 failed, 4 total", report.Summary())

	byName := map[string]*Result{}
	for _, r := range report.Results {
		byName[r.Name] = r
		require.Len(t, r.Errors, 1, r.Name)
	}

	assert.Contains(t, byName["leftover"].Errors[0], "Mismatch: leftover_tokens")
	assert.Contains(t, byName["leftover"].Errors[0], "Actual: [Start(c, 4) End(c, 5)]")
	assert.Contains(t, byName["wrong_positives"].Errors[0], "Mismatch: field_mismatch (positives)")
	assert.Contains(t, byName["unknown_rule"].Errors[0], `rule: unknown rule "expr"`)
	assert.Contains(t, byName["typo.yaml"].Errors[0], "failed to load fixture")

	assert.Contains(t, logs.String(), "fixture failed")
	assert.Contains(t, logs.String(), "fixture=leftover")
}

func TestSuite_UnknownFailureRules(t *testing.T) {
	f := &Fixture{
		Name:  "bad_negatives",
		Rule:  "a",
		Input: "abcdf",
		Fails: &FailureSpec{Positives: []string{"c"}, Negatives: []string{"nope"}, Pos: 4},
	}

	r := abcSuite().Run(f, "")
	require.False(t, r.Pass)
	assert.Contains(t, r.Errors[0], "fails.negatives")
}

func TestSuite_EmptyTokensExpectEmptyStream(t *testing.T) {
	f := &Fixture{Name: "empty", Rule: "a", Input: "abcde", Tokens: []TreeSpec{}}

	r := abcSuite().Run(f, "")
	require.False(t, r.Pass)
	assert.Contains(t, r.Errors[0], "leftover_tokens")
}

func TestReport_WriteTable(t *testing.T) {
	report := &Report{}
	report.Add(&Result{Name: "ok_case", Pass: true})
	failed := NewResult("bad_case", "bad.yaml")
	failed.AddError("Mismatch: rule_mismatch\n  Expected: Start(a, 0)\n")
	report.Add(failed)

	var buf bytes.Buffer
	require.NoError(t, report.WriteTable(&buf))

	out := buf.String()
	assert.Contains(t, out, "ok_case")
	assert.Contains(t, out, "bad_case")
	assert.Contains(t, out, "FAIL")
	assert.Contains(t, out, "Mismatch: rule_mismatch")
	assert.NotContains(t, out, "Expected: Start(a, 0)")
	assert.Equal(t, "1 passed, 1 failed, 2 total", report.Summary())
}
