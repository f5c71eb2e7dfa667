package libdiff

import "github.com/openspeleo/xmldict/ir"

// MakeDiff records the change from from to to. A nil from is an insertion
// and a nil to a deletion.
func MakeDiff(from, to *ir.Node) *ir.Node {
	switch {
	case from == nil:
		return record(InsertKey, to.Clone())
	case to == nil:
		return record(DeleteKey, from.Clone())
	default:
		return record(ReplaceKey, ir.FromKeyVals([]ir.KeyVal{
			{Key: FromKey, Val: from.Clone()},
			{Key: ToKey, Val: to.Clone()},
		}))
	}
}

func record(key string, v *ir.Node) *ir.Node {
	return ir.FromKeyVals([]ir.KeyVal{{Key: key, Val: v}})
}
