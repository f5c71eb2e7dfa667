package libdiff

import (
	"github.com/openspeleo/xmldict/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// 1 diff field names
// for every different field name add  node
// for every same field name, recurse on the value
func DiffObject(from, to *ir.Node, df DiffFunc) *ir.Node {
	fieldMap := map[string]rune{}
	runeMap := map[rune]string{}
	fromRunes := mapFieldsTo(fieldMap, runeMap, from)
	toRunes := mapFieldsTo(fieldMap, runeMap, to)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)
	var res []ir.KeyVal
	fi, ti := 0, 0
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffDelete:
			for _, r := range diff.Text {
				res = appendDiff(res, runeMap[r], MakeDiff(from.Values[fi], nil))
				fi++
			}
		case diffpatch.DiffEqual:
			for _, r := range diff.Text {
				if fRes := df(from.Values[fi], to.Values[ti]); fRes != nil {
					res = appendDiff(res, runeMap[r], fRes)
				}
				fi++
				ti++
			}
		case diffpatch.DiffInsert:
			for _, r := range diff.Text {
				res = appendDiff(res, runeMap[r], MakeDiff(nil, to.Values[ti]))
				ti++
			}
		}
	}
	if len(res) == 0 {
		return nil
	}
	return ir.FromKeyVals(res)
}

// appendDiff adds the diff d for key. A key moved within the object is
// seen as a delete and an insert, which merge into a replace.
func appendDiff(res []ir.KeyVal, key string, d *ir.Node) []ir.KeyVal {
	for i := range res {
		if res[i].Key != key {
			continue
		}
		prev := res[i].Val
		switch {
		case isRecord(prev, DeleteKey) && isRecord(d, InsertKey):
			res[i].Val = moved(prev.Values[0], d.Values[0])
		case isRecord(prev, InsertKey) && isRecord(d, DeleteKey):
			res[i].Val = moved(d.Values[0], prev.Values[0])
		}
		return res
	}
	return append(res, ir.KeyVal{Key: key, Val: d})
}

// moved is the diff of a key whose position changed: nil when its value
// did not.
func moved(from, to *ir.Node) *ir.Node {
	if d := Diff(from, to); d != nil {
		return d
	}
	return ir.Object()
}

func isRecord(node *ir.Node, key string) bool {
	return node.Type == ir.ObjectType && len(node.Fields) == 1 && node.Fields[0].String == key
}

func mapFieldsTo(m map[string]rune, im map[rune]string, node *ir.Node) []rune {
	rs := make([]rune, len(node.Fields))
	for i := range node.Fields {
		f := node.Fields[i].String
		r, ok := m[f]
		if !ok {
			r = rune(len(m))
			m[f] = r
			im[r] = f
		}
		rs[i] = r
	}
	return rs
}
