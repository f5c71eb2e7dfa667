package libdiff

import (
	"fmt"

	"github.com/openspeleo/xmldict/ir"
)

// Reverse turns a diff from a to b into a diff from b to a.
func Reverse(diff *ir.Node) (*ir.Node, error) {
	tmp := diff.Clone()
	tmp.Parent = nil
	err := tmp.Visit(func(node *ir.Node, isPost bool) (bool, error) {
		if !isPost || node.Type != ir.ObjectType || len(node.Fields) != 1 {
			return true, nil
		}
		field := node.Fields[0]
		switch field.String {
		case DeleteKey:
			rename(node, InsertKey)
		case InsertKey:
			rename(node, DeleteKey)
		case ReplaceKey:
			rec := node.Values[0]
			from, to := ir.Get(rec, FromKey), ir.Get(rec, ToKey)
			if rec.Type != ir.ObjectType || from == nil || to == nil {
				return false, fmt.Errorf("missing from/to in %s at %s", ReplaceKey, node.Path())
			}
			rec.Set(FromKey, to)
			rec.Set(ToKey, from)
		}
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return tmp, nil
}

func rename(node *ir.Node, key string) {
	node.Fields[0].String = key
	node.Fields[0].ParentField = key
	node.Values[0].ParentField = key
}
