package ir

import (
	"cmp"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Compare orders two nodes by kind (null, bool, number, string, array,
// object) and then by value. Numbers compare by numeric value whatever
// their representation. Arrays and objects compare entry by entry, object
// keys before their values, and a prefix sorts first.
func Compare(a, b *Node) int {
	switch {
	case a == b:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	if c := cmp.Compare(kindRank(a.Type), kindRank(b.Type)); c != 0 {
		return c
	}
	switch a.Type {
	case BoolType:
		return cmp.Compare(boolRank(a.Bool), boolRank(b.Bool))
	case NumberType:
		return compareNumbers(a, b)
	case StringType:
		return strings.Compare(a.String, b.String)
	case ArrayType, ObjectType:
		return compareEntries(a, b)
	}
	return 0
}

// Equal reports whether a and b hold the same value. Object keys must
// appear in the same order.
func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}

func kindRank(t Type) int {
	switch t {
	case NullType:
		return 0
	case BoolType:
		return 1
	case NumberType:
		return 2
	case StringType:
		return 3
	case ArrayType:
		return 4
	case ObjectType:
		return 5
	}
	return 6
}

func boolRank(v bool) int {
	if v {
		return 1
	}
	return 0
}

// compareNumbers is exact for integers of any size and for finite
// floats. NaN and infinities fall back to float64 ordering.
func compareNumbers(a, b *Node) int {
	if a.Int64 != nil && b.Int64 != nil {
		return cmp.Compare(*a.Int64, *b.Int64)
	}
	ra, okA := numberRat(a)
	rb, okB := numberRat(b)
	if okA && okB {
		return ra.Cmp(rb)
	}
	return cmp.Compare(numberFloat(a), numberFloat(b))
}

func numberRat(n *Node) (*big.Rat, bool) {
	switch {
	case n.Int64 != nil:
		return new(big.Rat).SetInt64(*n.Int64), true
	case n.Float64 != nil:
		if math.IsNaN(*n.Float64) || math.IsInf(*n.Float64, 0) {
			return nil, false
		}
		return new(big.Rat).SetFloat64(*n.Float64), true
	default:
		return new(big.Rat).SetString(n.Number)
	}
}

func numberFloat(n *Node) float64 {
	switch {
	case n.Int64 != nil:
		return float64(*n.Int64)
	case n.Float64 != nil:
		return *n.Float64
	}
	f, _ := strconv.ParseFloat(n.Number, 64)
	return f
}

func compareEntries(a, b *Node) int {
	n := min(len(a.Values), len(b.Values))
	for i := range n {
		if a.Type == ObjectType {
			if c := strings.Compare(a.Fields[i].String, b.Fields[i].String); c != 0 {
				return c
			}
		}
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a.Values), len(b.Values))
}
