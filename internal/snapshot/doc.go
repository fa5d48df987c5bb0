// Package snapshot renders parse outcomes as canonical JSON for golden
// file comparison.
//
// The encoding is deterministic: object keys are written in sorted order,
// there is no insignificant whitespace, HTML characters are not escaped and
// strings are NFC normalized. Rules are rendered with %v, so the snapshot of
// a grammar is stable as long as its rule names are.
//
//	{"ok":true,"tokens":[{"kind":"start","pos":0,"rule":"a"},{"kind":"end","pos":1,"rule":"a"}]}
//	{"failure":{"negatives":[],"pos":4,"positives":["c"]},"ok":false}
package snapshot
