// Package harness verifies the observable output of tree-shaped parsers.
//
// A test states the span tree it expects a parse to produce, and the
// harness checks the parser's flat Start/End token stream against it:
//
//	harness.AssertParsesTo(t, parser, "abcde", RuleA,
//	    harness.N(RuleA, 0, 3,
//	        harness.N(RuleB, 1, 2),
//	    ),
//	    harness.N(RuleC, 4, 5),
//	)
//
// or states the furthest-failure diagnostic it expects instead:
//
//	harness.AssertFailsWith(t, parser, "abcdf", RuleA,
//	    []Rule{RuleC}, // positives
//	    nil,           // negatives
//	    4,             // pos
//	)
//
// # Matching
//
// MatchTree walks the expected nodes in order and pulls exactly the tokens
// they denote from the stream, recursing into children between a node's
// Start and End. There is no lookahead and no backtracking; the first
// discrepancy ends the match. CheckEmpty then requires the stream to be
// exhausted, so an empty expected tree only passes against an empty stream.
//
// MatchFailure compares positives and negatives as ordered sequences and
// pos exactly, reporting every differing field at once. A parse that
// succeeded where failure was expected is its own kind of mismatch.
//
// # Diagnostics
//
// Every discrepancy is a *MismatchError. Its Kind names the category
// (missing_token, rule_mismatch, leftover_tokens, ...) and Error renders
// the expectation, the observation and, when available, the full token
// stream with a line diff against the expected encoding:
//
//	Mismatch: position_mismatch
//	  Where: 1st node a(0, 2)
//	  Expected: End(a, 2)
//	  Actual: End(a, 3)
//
// # Fixtures
//
// Cases can also live on disk as YAML or CUE fixtures and be run in bulk
// with a Suite, which produces a Report. AssertGolden snapshots whole parse
// outcomes under testdata/golden.
package harness
