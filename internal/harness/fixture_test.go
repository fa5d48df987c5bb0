package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/spancheck/internal/testutil"
)

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFixture_YAMLTree(t *testing.T) {
	f, err := LoadFixture("testdata/fixtures/abc_nested.yaml")
	require.NoError(t, err)

	assert.Equal(t, "abc_nested", f.Name)
	assert.Equal(t, "a", f.Rule)
	assert.Equal(t, "abcde", f.Input)
	assert.Nil(t, f.Fails)
	require.Len(t, f.Tokens, 2)
	assert.Equal(t, TreeSpec{Rule: "b", Start: 1, End: 2}, f.Tokens[0].Children[0])
	assert.Equal(t, TreeSpec{Rule: "c", Start: 4, End: 5}, f.Tokens[1])
}

func TestLoadFixture_YAMLFailure(t *testing.T) {
	f, err := LoadFixture("testdata/fixtures/abc_fails.yml")
	require.NoError(t, err)

	require.NotNil(t, f.Fails)
	assert.Equal(t, []string{"c"}, f.Fails.Positives)
	assert.Empty(t, f.Fails.Negatives)
	assert.Equal(t, 4, f.Fails.Pos)
}

func TestLoadFixture_CUE(t *testing.T) {
	f, err := LoadFixture("testdata/fixtures/abc_fails_cue.cue")
	require.NoError(t, err)

	assert.Equal(t, "abc_fails_cue", f.Name)
	assert.Equal(t, "abcdf", f.Input)
	require.NotNil(t, f.Fails)
	assert.Equal(t, []string{"c"}, f.Fails.Positives)
	assert.Equal(t, 4, f.Fails.Pos)
}

func TestLoadFixture_CUETree(t *testing.T) {
	path := writeFixture(t, "tree.cue", `
name:  "tree"
rule:  "a"
input: "abcde"
tokens: [
	{rule: "a", start: 0, end: 3, children: [{rule: "b", start: 1, end: 2}]},
	{rule: "c", start: 4, end: 5},
]
`)

	f, err := LoadFixture(path)
	require.NoError(t, err)
	require.Len(t, f.Tokens, 2)
	assert.Equal(t, "b", f.Tokens[0].Children[0].Rule)
}

func TestLoadFixture_UnknownField(t *testing.T) {
	_, err := LoadFixture("testdata/broken/typo.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoadFixture_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		want    string
	}{
		{"missing name", "f.yaml", "rule: a\ninput: x\n", "name is required"},
		{"missing rule", "f.yaml", "name: n\ninput: x\n", "rule is required"},
		{"both expectations", "f.yaml", "name: n\nrule: a\ninput: x\ntokens: [{rule: a, start: 0, end: 1}]\nfails: {positives: [], negatives: [], pos: 0}\n", "mutually exclusive"},
		{"negative fail pos", "f.yaml", "name: n\nrule: a\ninput: x\nfails: {positives: [], negatives: [], pos: -1}\n", "fails.pos must be non-negative"},
		{"start after end", "f.yaml", "name: n\nrule: a\ninput: x\ntokens: [{rule: a, start: 2, end: 1}]\n", "tokens[0]: need 0 <= start <= end"},
		{"nested missing rule", "f.yaml", "name: n\nrule: a\ninput: x\ntokens: [{rule: a, start: 0, end: 1, children: [{start: 0, end: 1}]}]\n", "tokens[0].children[0]: rule is required"},
		{"bad extension", "f.json", "{}", "unsupported fixture extension"},
		{"bad cue", "f.cue", "name: \"unterminated\n", "failed to compile CUE"},
		{"incomplete cue", "f.cue", "name: string\nrule: \"a\"\ninput: \"x\"\n", "invalid CUE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFixture(writeFixture(t, tt.file, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadFixture_MissingFile(t *testing.T) {
	_, err := LoadFixture(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read fixture file")
}

func TestBuildTree(t *testing.T) {
	nodes, err := BuildTree(testutil.AbcRules, []TreeSpec{
		{Rule: "a", Start: 0, End: 3, Children: []TreeSpec{{Rule: "b", Start: 1, End: 2}}},
		{Rule: "c", Start: 4, End: 5},
	})
	require.NoError(t, err)
	assert.Equal(t, abcWant(), nodes)

	_, err = BuildTree(testutil.AbcRules, []TreeSpec{{Rule: "a", Children: []TreeSpec{{Rule: "zz"}}}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown rule "zz"`)
}

func TestResolveRules_KeepsOrder(t *testing.T) {
	rules, err := ResolveRules(testutil.AbcRules, []string{"c", "a"})
	require.NoError(t, err)
	assert.Equal(t, []testutil.Rule{testutil.RuleC, testutil.RuleA}, rules)

	rules, err = ResolveRules(testutil.AbcRules, nil)
	require.NoError(t, err)
	assert.Empty(t, rules)
}
