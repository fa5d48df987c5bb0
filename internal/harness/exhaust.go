package harness

import (
	"strings"

	"github.com/roach88/spancheck/internal/span"
)

// CheckEmpty drains s and fails with KindLeftoverTokens if anything was
// left. The error lists every leftover token, not just the first.
func CheckEmpty[R comparable](s span.Stream[R]) error {
	rest := span.Drain(s)
	if len(rest) == 0 {
		return nil
	}

	leftover := renderTokens(rest)
	return &MismatchError{
		Kind:     KindLeftoverTokens,
		Expected: "end of stream",
		Actual:   "[" + strings.Join(leftover, " ") + "]",
		Leftover: leftover,
	}
}

func renderTokens[R comparable](tokens []span.Token[R]) []string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.String()
	}
	return out
}
