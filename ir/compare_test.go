package ir

import (
	"math"
	"testing"
)

func kv(k string, v *Node) KeyVal { return KeyVal{Key: k, Val: v} }

func bigNum(s string) *Node { return &Node{Type: NumberType, Number: s} }

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b *Node
		want int
	}{
		{"null before bool", Null(), FromBool(false), -1},
		{"bool before number", FromBool(true), FromInt(0), -1},
		{"number before string", FromInt(9), FromString("1"), -1},
		{"string before array", FromString("z"), FromSlice(nil), -1},
		{"array before object", FromSlice(nil), Object(), -1},
		{"nil first", nil, Null(), -1},

		{"false < true", FromBool(false), FromBool(true), -1},
		{"true == true", FromBool(true), FromBool(true), 0},

		{"int == float", FromInt(1), FromFloat(1.0), 0},
		{"int < float", FromInt(1), FromFloat(1.5), -1},
		{"float < big", FromFloat(1e18), bigNum("99999999999999999999"), -1},
		{"big == big", bigNum("99999999999999999999"), bigNum("99999999999999999999"), 0},
		{"negative int", FromInt(-3), FromInt(2), -1},
		{"inf", FromFloat(1e308), FromFloat(math.Inf(1)), -1},

		{"strings", FromString("a"), FromString("b"), -1},

		{"empty arrays", FromSlice(nil), FromSlice(nil), 0},
		{"array prefix", FromSlice([]*Node{FromInt(1)}), FromSlice([]*Node{FromInt(1), FromInt(2)}), -1},
		{"array element", FromSlice([]*Node{FromInt(1)}), FromSlice([]*Node{FromInt(2)}), -1},

		{"empty objects", FromKeyVals(nil), Object(), 0},
		{"object prefix",
			FromKeyVals([]KeyVal{kv("a", FromInt(1))}),
			FromKeyVals([]KeyVal{kv("a", FromInt(1)), kv("b", FromInt(2))}),
			-1},
		{"object key",
			FromKeyVals([]KeyVal{kv("a", FromInt(9))}),
			FromKeyVals([]KeyVal{kv("b", FromInt(1))}),
			-1},
		{"object value",
			FromKeyVals([]KeyVal{kv("@a", FromString("1"))}),
			FromKeyVals([]KeyVal{kv("@a", FromString("2"))}),
			-1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.want {
				t.Errorf("Compare(a, b) = %d, want %d", got, tt.want)
			}
			if got := Compare(tt.b, tt.a); got != -tt.want {
				t.Errorf("Compare(b, a) = %d, want %d", got, -tt.want)
			}
		})
	}
}

func TestEqualIsKeyOrderSensitive(t *testing.T) {
	a := FromKeyVals([]KeyVal{kv("x", Null()), kv("y", Null())})
	b := FromKeyVals([]KeyVal{kv("y", Null()), kv("x", Null())})
	if Equal(a, b) {
		t.Errorf("objects with different key order compared equal")
	}
	if !Equal(a, a.Clone()) {
		t.Errorf("clone not equal to original")
	}
}
