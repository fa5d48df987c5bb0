package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Fixture is one parser test case stored on disk.
//
// A fixture either expects the parse to succeed with the token stream
// described by Tokens (an empty list means "no tokens at all"), or, when
// Fails is set, expects it to fail with that diagnostic.
//
//	name: abc_nested
//	description: a wraps b, c follows
//	rule: a
//	input: abcde
//	tokens:
//	  - rule: a
//	    start: 0
//	    end: 3
//	    children:
//	      - { rule: b, start: 1, end: 2 }
//	  - { rule: c, start: 4, end: 5 }
//
// The same structure can be written in CUE.
type Fixture struct {
	Name        string       `yaml:"name" json:"name"`
	Description string       `yaml:"description,omitempty" json:"description,omitempty"`
	Rule        string       `yaml:"rule" json:"rule"`
	Input       string       `yaml:"input" json:"input"`
	Tokens      []TreeSpec   `yaml:"tokens,omitempty" json:"tokens,omitempty"`
	Fails       *FailureSpec `yaml:"fails,omitempty" json:"fails,omitempty"`
}

// TreeSpec is the on-disk form of a Node.
type TreeSpec struct {
	Rule     string     `yaml:"rule" json:"rule"`
	Start    int        `yaml:"start" json:"start"`
	End      int        `yaml:"end" json:"end"`
	Children []TreeSpec `yaml:"children,omitempty" json:"children,omitempty"`
}

// FailureSpec is the on-disk form of an expected failure.
type FailureSpec struct {
	Positives []string `yaml:"positives" json:"positives"`
	Negatives []string `yaml:"negatives" json:"negatives"`
	Pos       int      `yaml:"pos" json:"pos"`
}

// LoadFixture reads a .yaml, .yml or .cue fixture file and validates it.
// YAML fixtures are decoded strictly: unknown fields are an error.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read fixture file")
	}

	var f Fixture
	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		if err := decoder.Decode(&f); err != nil {
			return nil, errors.Wrap(err, "failed to parse YAML")
		}
	case ".cue":
		v := cuecontext.New().CompileBytes(data, cue.Filename(path))
		if err := v.Err(); err != nil {
			return nil, errors.Wrap(err, "failed to compile CUE")
		}
		if err := v.Validate(cue.Concrete(true)); err != nil {
			return nil, errors.Wrap(err, "invalid CUE")
		}
		if err := v.Decode(&f); err != nil {
			return nil, errors.Wrap(err, "failed to decode CUE")
		}
	default:
		return nil, errors.Errorf("unsupported fixture extension %q", ext)
	}

	if err := validateFixture(&f); err != nil {
		return nil, errors.Wrap(err, "invalid fixture")
	}
	return &f, nil
}

// validateFixture checks required fields and node bounds.
func validateFixture(f *Fixture) error {
	if f.Name == "" {
		return errors.New("name is required")
	}
	if f.Rule == "" {
		return errors.New("rule is required")
	}
	if f.Fails != nil && len(f.Tokens) > 0 {
		return errors.New("tokens and fails are mutually exclusive")
	}
	if f.Fails != nil && f.Fails.Pos < 0 {
		return errors.Errorf("fails.pos must be non-negative, got %d", f.Fails.Pos)
	}
	return validateTrees(f.Tokens, "tokens")
}

func validateTrees(specs []TreeSpec, path string) error {
	for i, s := range specs {
		at := fmt.Sprintf("%s[%d]", path, i)
		if s.Rule == "" {
			return errors.Errorf("%s: rule is required", at)
		}
		if s.Start < 0 || s.Start > s.End {
			return errors.Errorf("%s: need 0 <= start <= end, got start=%d end=%d", at, s.Start, s.End)
		}
		if err := validateTrees(s.Children, at+".children"); err != nil {
			return err
		}
	}
	return nil
}

// ResolveRule looks a rule name up in rules.
func ResolveRule[R comparable](rules map[string]R, name string) (R, error) {
	r, ok := rules[name]
	if !ok {
		var zero R
		return zero, errors.Errorf("unknown rule %q", name)
	}
	return r, nil
}

// ResolveRules resolves every name in order.
func ResolveRules[R comparable](rules map[string]R, names []string) ([]R, error) {
	out := make([]R, 0, len(names))
	for _, name := range names {
		r, err := ResolveRule(rules, name)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

// BuildTree turns fixture tree specs into expected nodes.
func BuildTree[R comparable](rules map[string]R, specs []TreeSpec) ([]Node[R], error) {
	nodes := make([]Node[R], 0, len(specs))
	for _, s := range specs {
		rule, err := ResolveRule(rules, s.Rule)
		if err != nil {
			return nil, err
		}
		children, err := BuildTree(rules, s.Children)
		if err != nil {
			return nil, err
		}
		if len(children) == 0 {
			children = nil
		}
		nodes = append(nodes, Node[R]{Rule: rule, Start: s.Start, End: s.End, Children: children})
	}
	return nodes, nil
}
