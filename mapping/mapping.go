// Package mapping renames the keys of a tree according to a fixed table,
// for example to translate Ariane field names into friendlier ones and back.
package mapping

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/openspeleo/xmldict/ir"
)

var (
	ErrNotInjective = errors.New("mapping is not injective")
	ErrBadTable     = errors.New("bad mapping table")
)

// Table maps old keys to new keys. Attribute keys are matched including
// their "@" prefix.
type Table map[string]string

// Apply returns a copy of node with every object key found in t renamed,
// at any depth. When two keys of an object are renamed to the same key the
// later value wins, at the position of the first.
func Apply(node *ir.Node, t Table) *ir.Node {
	if node == nil {
		return nil
	}
	switch node.Type {
	case ir.ObjectType:
		res := ir.Object()
		for i, f := range node.Fields {
			key := f.String
			if to, ok := t[key]; ok {
				key = to
			}
			res.Set(key, Apply(node.Values[i], t))
		}
		return res
	case ir.ArrayType:
		vals := make([]*ir.Node, len(node.Values))
		for i, v := range node.Values {
			vals[i] = Apply(v, t)
		}
		return ir.FromSlice(vals)
	default:
		res := node.Clone()
		res.Parent = nil
		return res
	}
}

// Invert returns the table mapping new keys back to old ones.
func (t Table) Invert() (Table, error) {
	res := make(Table, len(t))
	for _, from := range slices.Sorted(maps.Keys(t)) {
		to := t[from]
		if prev, ok := res[to]; ok {
			return nil, fmt.Errorf("%w: %q and %q both map to %q", ErrNotInjective, prev, from, to)
		}
		res[to] = from
	}
	return res, nil
}

// LoadTable builds a table from an object whose values are strings, as
// read from a JSON or YAML mapping file.
func LoadTable(node *ir.Node) (Table, error) {
	if node == nil || node.Type != ir.ObjectType {
		return nil, fmt.Errorf("%w: expected an object", ErrBadTable)
	}
	res := make(Table, len(node.Fields))
	for i, f := range node.Fields {
		v := node.Values[i]
		if v.Type != ir.StringType {
			return nil, fmt.Errorf("%w: value of %q is %s, not a string", ErrBadTable, f.String, v.Type)
		}
		res[f.String] = v.String
	}
	return res, nil
}
