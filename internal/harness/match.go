package harness

import (
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/roach88/spancheck/internal/span"
)

// MatchTree consumes exactly the tokens that nodes denote from s and
// returns the first mismatch found, or nil.
//
// Matching is a single pass without backtracking. Each node's Start is
// pulled, then its children are matched recursively, then its End is
// pulled; siblings must appear in the listed order. MatchTree does not look
// past the last expected End; use CheckEmpty for that.
func MatchTree[R comparable](s span.Stream[R], nodes []Node[R]) error {
	m := &treeMatcher[R]{stream: s}
	return m.matchNodes(nodes, "node")
}

type treeMatcher[R comparable] struct {
	stream span.Stream[R]
	path   []string
}

func (m *treeMatcher[R]) matchNodes(nodes []Node[R], role string) error {
	for i, n := range nodes {
		m.path = append(m.path, humanize.Ordinal(i+1)+" "+role+" "+n.label())

		if err := m.expect(span.StartOf(n.Rule, n.Start)); err != nil {
			return err
		}
		if len(n.Children) > 0 {
			if err := m.matchNodes(n.Children, "child"); err != nil {
				return err
			}
		}
		if err := m.expect(span.EndOf(n.Rule, n.End)); err != nil {
			return err
		}

		m.path = m.path[:len(m.path)-1]
	}
	return nil
}

// expect pulls one token and compares it with want.
func (m *treeMatcher[R]) expect(want span.Token[R]) error {
	got, ok := m.stream.Next()
	if !ok {
		return m.mismatch(KindMissingToken, want, nothing)
	}

	switch {
	case got.Kind != want.Kind:
		return m.mismatch(KindUnexpectedTokenKind, want, got.String())
	case got.Rule != want.Rule:
		return m.mismatch(KindRuleMismatch, want, got.String())
	case got.Pos != want.Pos:
		return m.mismatch(KindPositionMismatch, want, got.String())
	}
	return nil
}

func (m *treeMatcher[R]) mismatch(kind MismatchKind, want span.Token[R], actual string) *MismatchError {
	return &MismatchError{
		Kind:     kind,
		Where:    strings.Join(m.path, " > "),
		Expected: want.String(),
		Actual:   actual,
	}
}
