// Package span defines the observable output of a tree-shaped parser.
//
// A successful parse is a flat, forward-only stream of Start/End tokens,
// one bracket pair per rule application, emitted in pre-order:
//
//	Start(a, 0) Start(b, 1) End(b, 2) End(a, 3) Start(c, 4) End(c, 5)
//
// A failed parse is a Failure carrying the furthest offset reached and the
// rules that were expected (positives) or forbidden (negatives) there.
//
// The rule type R is whatever the grammar uses to name its productions: an
// enumerated integer with a String method, a string type, or any other
// comparable value that prints usefully with %v.
package span
