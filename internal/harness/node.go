package harness

import (
	"fmt"
	"strings"

	"github.com/roach88/spancheck/internal/span"
)

// Node is one expected Start/End bracket pair and the pairs expected
// strictly between them, in textual order.
//
// Start should not exceed End and children should nest inside
// [Start, End], but nothing checks this up front: a malformed tree simply
// fails to match.
type Node[R comparable] struct {
	Rule     R
	Start    int
	End      int
	Children []Node[R]
}

// N builds a node literal. Nested calls read like the tree they describe:
//
//	harness.N(a, 0, 3, harness.N(b, 1, 2))
func N[R comparable](rule R, start, end int, children ...Node[R]) Node[R] {
	return Node[R]{Rule: rule, Start: start, End: end, Children: children}
}

// String renders the node as "a(0, 3)" or, with children, "a(0, 3, [b(1, 2)])".
func (n Node[R]) String() string {
	if len(n.Children) == 0 {
		return n.label()
	}
	parts := make([]string, len(n.Children))
	for i, c := range n.Children {
		parts[i] = c.String()
	}
	return fmt.Sprintf("%v(%d, %d, [%s])", n.Rule, n.Start, n.End, strings.Join(parts, ", "))
}

func (n Node[R]) label() string {
	return fmt.Sprintf("%v(%d, %d)", n.Rule, n.Start, n.End)
}

// Encode returns the token stream that matches nodes exactly: each node's
// Start, then its children, then its End, siblings left to right.
func Encode[R comparable](nodes []Node[R]) []span.Token[R] {
	var tokens []span.Token[R]
	var walk func([]Node[R])
	walk = func(ns []Node[R]) {
		for _, n := range ns {
			tokens = append(tokens, span.StartOf(n.Rule, n.Start))
			walk(n.Children)
			tokens = append(tokens, span.EndOf(n.Rule, n.End))
		}
	}
	walk(nodes)
	return tokens
}
