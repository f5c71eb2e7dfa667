package ir

import (
	"errors"
	"math"
	"testing"
)

func TestInsertOrPromote(t *testing.T) {
	obj := Object()
	obj.InsertOrPromote("x", FromString("1"))
	if got := Get(obj, "x"); got == nil || got.Type != StringType || got.String != "1" {
		t.Fatalf("insert: got %v", got)
	}

	obj.InsertOrPromote("y", Null())
	obj.InsertOrPromote("x", FromString("2"))
	x := Get(obj, "x")
	if x.Type != ArrayType || len(x.Values) != 2 {
		t.Fatalf("promote: got %s with %d values", x.Type, len(x.Values))
	}
	if x.Values[0].String != "1" || x.Values[1].String != "2" {
		t.Errorf("promote order: got %q, %q", x.Values[0].String, x.Values[1].String)
	}
	// promotion keeps the key position
	if keys := obj.Keys(); len(keys) != 2 || keys[0] != "x" || keys[1] != "y" {
		t.Errorf("keys after promote: %v", keys)
	}

	obj.InsertOrPromote("x", FromString("3"))
	if n := len(Get(obj, "x").Values); n != 3 {
		t.Errorf("append: got %d values, want 3", n)
	}
	if p := Get(obj, "x").Values[2].Path(); p != "$.x[2]" {
		t.Errorf("path: got %q", p)
	}
}

func TestInsertOrPromoteObjects(t *testing.T) {
	obj := Object()
	a := FromKeyVals([]KeyVal{{Key: "@id", Val: FromString("1")}})
	b := FromKeyVals([]KeyVal{{Key: "@id", Val: FromString("2")}})
	obj.InsertOrPromote("Shot", a)
	obj.InsertOrPromote("Shot", b)
	shots := Get(obj, "Shot")
	if shots.Type != ArrayType {
		t.Fatalf("got %s, want Array", shots.Type)
	}
	if !Equal(shots.Values[0], a) || !Equal(shots.Values[1], b) {
		t.Errorf("unexpected array contents")
	}
}

func TestSetAndDelete(t *testing.T) {
	obj := FromKeyVals([]KeyVal{
		{Key: "a", Val: FromInt(1)},
		{Key: "b", Val: FromInt(2)},
		{Key: "c", Val: FromInt(3)},
	})
	obj.Set("b", FromInt(20))
	if got := *Get(obj, "b").Int64; got != 20 {
		t.Errorf("Set: got %d", got)
	}
	if !obj.Delete("a") {
		t.Fatalf("Delete reported missing key")
	}
	if obj.Delete("a") {
		t.Errorf("second Delete reported present key")
	}
	if keys := obj.Keys(); len(keys) != 2 || keys[0] != "b" || keys[1] != "c" {
		t.Errorf("keys: %v", keys)
	}
	if idx := Get(obj, "c").ParentIndex; idx != 1 {
		t.Errorf("ParentIndex after delete: %d", idx)
	}
}

func TestFromNumberString(t *testing.T) {
	tests := []struct {
		in   string
		want string
		kind string
	}{
		{"3", "3", "int"},
		{"-42", "-42", "int"},
		{"18446744073709551616", "18446744073709551616", "text"},
		{"2.5", "2.5", "float"},
		{"1e21", "1e+21", "float"},
		{"0.0000001", "1e-7", "float"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			n, err := FromNumberString(tt.in)
			if err != nil {
				t.Fatal(err)
			}
			var kind string
			switch {
			case n.Int64 != nil:
				kind = "int"
			case n.Float64 != nil:
				kind = "float"
			default:
				kind = "text"
			}
			if kind != tt.kind {
				t.Errorf("kind: got %s, want %s", kind, tt.kind)
			}
			if got := n.NumberText(); got != tt.want {
				t.Errorf("NumberText: got %q, want %q", got, tt.want)
			}
		})
	}
	if _, err := FromNumberString("x1"); err == nil {
		t.Errorf("expected error for non-number")
	}
}

func TestTruth(t *testing.T) {
	if Truth(Null()) || Truth(FromString("")) || Truth(FromInt(0)) || Truth(Object()) {
		t.Errorf("falsy value reported truthy")
	}
	if !Truth(FromString("x")) || !Truth(FromFloat(math.Pi)) || !Truth(FromBool(true)) {
		t.Errorf("truthy value reported falsy")
	}
}

func TestPathQuoting(t *testing.T) {
	obj := Object()
	inner := Object()
	obj.Set("r", inner)
	attr := FromString("7")
	inner.Set("@id", attr)
	if got := attr.Path(); got != "$.r.'@id'" {
		t.Errorf("got %q", got)
	}
}

func TestGetPath(t *testing.T) {
	doc := Object()
	r := Object()
	doc.Set("r", r)
	r.Set("@id", FromString("7"))
	r.Set("it's", FromString("q"))
	r.Set("x", FromSlice([]*Node{FromString("a"), FromString("b")}))

	for _, n := range []*Node{Get(r, "@id"), Get(r, "it's"), Get(r, "x").Values[1], r, doc} {
		got, err := doc.GetPath(n.Path())
		if err != nil {
			t.Fatalf("%s: %v", n.Path(), err)
		}
		if got != n {
			t.Errorf("%s: got %v", n.Path(), got)
		}
	}
	if got, err := doc.GetPath("$.r.nope"); err != nil || got != nil {
		t.Errorf("absent key: got %v, %v", got, err)
	}
	if got, err := doc.GetPath("$.r.x[5]"); err != nil || got != nil {
		t.Errorf("absent index: got %v, %v", got, err)
	}
	for _, bad := range []string{"r", "$.r[0]", "$.r.'open", "$.r.x[z]", "$..r"} {
		if _, err := doc.GetPath(bad); !errors.Is(err, ErrBadPath) {
			t.Errorf("%q: got %v, want ErrBadPath", bad, err)
		}
	}
}
