package libdiff

import "github.com/openspeleo/xmldict/ir"

type DiffFunc func(from, to *ir.Node) *ir.Node

// Diff returns a tree describing how to differs from from, or nil when
// they are equal.
//
// Objects yield an object holding, in key order, the diff of every key
// whose value changed, plus insert and delete records for keys only in
// one side. Arrays yield an ArrayDiffKey record keyed by index. Any other
// change is a replace record holding both values.
func Diff(from, to *ir.Node) *ir.Node {
	if from.Type != to.Type {
		return MakeDiff(from, to)
	}
	switch from.Type {
	case ir.ObjectType:
		return DiffObject(from, to, Diff)
	case ir.ArrayType:
		return DiffArrayByIndex(from, to, Diff)
	default:
		if ir.Compare(from, to) == 0 {
			return nil
		}
		return MakeDiff(from, to)
	}
}
