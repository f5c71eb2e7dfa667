package libdiff

import (
	"strconv"

	"github.com/openspeleo/xmldict/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// we use index keyed records and
//
//  1. record the type of each node, for scalar types we use the summary
//     value <type>-<value> where <value> is the string representation
//  2. diff the sequence of summaries
//  3. For every matching type in the result, if that type is not
//     scalar, we recurse
//  4. For every non-matching type, we add an index-keyed record with
//     the corresponding diff operation; a delete directly followed by an
//     insert becomes a replace
func DiffArrayByIndex(from, to *ir.Node, df DiffFunc) *ir.Node {
	m := map[string]rune{}
	fromRunes := mapValues(m, from)
	toRunes := mapValues(m, to)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)

	var res []ir.KeyVal
	fi, ti, ri := 0, 0, 0
	var delIndex = -1
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffDelete:
			for range diff.Text {
				res = append(res, ir.KeyVal{Key: strconv.Itoa(ri), Val: MakeDiff(from.Values[fi], nil)})
				delIndex = len(res) - 1
				ri++
				fi++
			}
		case diffpatch.DiffEqual:
			delIndex = -1
			for range diff.Text {
				if di := df(from.Values[fi], to.Values[ti]); di != nil {
					res = append(res, ir.KeyVal{Key: strconv.Itoa(ri), Val: di})
				}
				ri++
				fi++
				ti++
			}
		case diffpatch.DiffInsert:
			for range diff.Text {
				if delIndex != -1 {
					del := res[delIndex].Val.Values[0]
					res[delIndex].Val = MakeDiff(del, to.Values[ti])
					delIndex = -1
				} else {
					res = append(res, ir.KeyVal{Key: strconv.Itoa(ri), Val: MakeDiff(nil, to.Values[ti])})
					ri++
				}
				ti++
			}
			delIndex = -1
		}
	}
	if len(res) == 0 {
		return nil
	}
	return record(ArrayDiffKey, ir.FromKeyVals(res))
}

func mapValues(m map[string]rune, node *ir.Node) []rune {
	rs := make([]rune, len(node.Values))
	for i, v := range node.Values {
		sum := summaryStr(v)
		r, ok := m[sum]
		if !ok {
			r = rune(len(m))
			m[sum] = r
		}
		rs[i] = r
	}
	return rs
}

func summaryStr(node *ir.Node) string {
	switch node.Type {
	case ir.ObjectType, ir.ArrayType, ir.NullType:
		return node.Type.String()
	case ir.BoolType:
		return node.Type.String() + "-" + strconv.FormatBool(node.Bool)
	case ir.StringType:
		return node.Type.String() + "-" + node.String
	default:
		return node.Type.String() + "-" + node.NumberText()
	}
}
