// Package libdiff computes structural differences between trees.
//
// A diff mirrors the shape of the trees it compares. Changed object keys
// hold nested diffs, arrays are compared by position, and leaves hold
// records:
//
//	{"!insert": v}                       only in the second tree
//	{"!delete": v}                       only in the first tree
//	{"!replace": {"from": a, "to": b}}   changed value
//	{"!arraydiff": {"0": ..., "3": ...}} array entries by index
//
// A key whose value is unchanged but whose position moved holds an empty
// object.
package libdiff
