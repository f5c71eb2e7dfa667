package encode

import (
	"errors"
	"strings"
	"testing"

	"github.com/openspeleo/xmldict/ir"
)

func obj(kvs ...any) *ir.Node {
	res := ir.Object()
	for i := 0; i < len(kvs); i += 2 {
		res.Set(kvs[i].(string), kvs[i+1].(*ir.Node))
	}
	return res
}

func TestEncode(t *testing.T) {
	tests := []struct {
		name string
		node *ir.Node
		out  string
	}{
		{name: "attrs only", node: obj("@id", ir.FromString("7")), out: `<r id="7"/>`},
		{name: "null", node: ir.Null(), out: `<r/>`},
		{name: "empty string", node: ir.FromString(""), out: `<r></r>`},
		{name: "empty object", node: ir.Object(), out: `<r></r>`},
		{name: "string", node: ir.FromString("hi"), out: `<r>hi</r>`},
		{name: "int", node: ir.FromInt(3), out: `<r>3</r>`},
		{name: "float", node: ir.FromFloat(2.5), out: `<r>2.5</r>`},
		{name: "whole float", node: ir.FromFloat(3), out: `<r>3</r>`},
		{name: "bool", node: ir.FromBool(false), out: `<r>false</r>`},
		{
			name: "siblings",
			node: obj("x", ir.FromSlice([]*ir.Node{ir.FromString("1"), ir.FromString("2")})),
			out:  `<r><x>1</x><x>2</x></r>`,
		},
		{
			name: "attr and text",
			node: obj("@id", ir.FromString("7"), "#text", ir.FromString("hi")),
			out:  `<r id="7">hi</r>`,
		},
		{
			name: "attr order",
			node: obj("@b", ir.FromString("1"), "@a", ir.FromInt(2), "@c", ir.FromBool(true)),
			out:  `<r b="1" a="2" c="true"/>`,
		},
		{
			name: "null attr",
			node: obj("@a", ir.Null()),
			out:  `<r a=""/>`,
		},
		{
			name: "null text",
			node: obj("@a", ir.FromString("1"), "#text", ir.Null()),
			out:  `<r a="1"/>`,
		},
		{
			name: "nested",
			node: obj("a", obj("b", ir.Null(), "c", ir.FromString("x")), "d", ir.FromString("y")),
			out:  `<r><a><b/><c>x</c></a><d>y</d></r>`,
		},
		{
			name: "array of objects",
			node: obj("p", ir.FromSlice([]*ir.Node{obj("@n", ir.FromString("1")), ir.Null(), ir.FromString("z")})),
			out:  `<r><p n="1"/><p/><p>z</p></r>`,
		},
		{
			name: "root array",
			node: ir.FromSlice([]*ir.Node{ir.FromString("1"), ir.FromString("2")}),
			out:  `<r>1</r><r>2</r>`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EncodeString(tt.node, "r")
			if err != nil {
				t.Fatal(err)
			}
			want := Declaration + tt.out
			if got != want {
				t.Errorf("got  %s\nwant %s", got, want)
			}
		})
	}
}

func TestEncodeDocument(t *testing.T) {
	doc := obj("r", obj("@id", ir.FromString("7")))
	buf := &strings.Builder{}
	if err := EncodeDocument(doc, buf); err != nil {
		t.Fatal(err)
	}
	if want := Declaration + `<r id="7"/>`; buf.String() != want {
		t.Errorf("got %s want %s", buf.String(), want)
	}
	for _, bad := range []*ir.Node{nil, ir.Object(), ir.FromString("x"), obj("a", ir.Null(), "b", ir.Null())} {
		if err := EncodeDocument(bad, buf); !errors.Is(err, ErrUnsupportedValue) {
			t.Errorf("got %v, want ErrUnsupportedValue", err)
		}
	}
}

func TestEncodeNoDeclaration(t *testing.T) {
	got := MustString(ir.Null(), "r", EncodeDeclaration(false))
	if got != `<r/>` {
		t.Errorf("got %s", got)
	}
}

func TestEncodeErrors(t *testing.T) {
	tests := []struct {
		name string
		node *ir.Node
		root string
		err  error
	}{
		{name: "nil", node: nil, root: "r", err: ErrUnsupportedValue},
		{name: "empty root name", node: ir.Null(), root: "", err: ErrUnsupportedValue},
		{
			name: "nil child",
			node: &ir.Node{Type: ir.ObjectType, Fields: []*ir.Node{ir.FromString("a")}, Values: []*ir.Node{nil}},
			root: "r",
			err:  ErrUnsupportedValue,
		},
		{name: "object attr", node: obj("@a", ir.Object()), root: "r", err: ErrUnsupportedValue},
		{name: "array attr", node: obj("@a", ir.FromSlice(nil)), root: "r", err: ErrUnsupportedValue},
		{name: "object text", node: obj("#text", ir.Object()), root: "r", err: ErrUnsupportedValue},
		{name: "bad child name", node: obj("1x", ir.Null()), root: "r", err: ErrUnsupportedValue},
		{name: "bad attr name", node: obj("@", ir.FromString("x")), root: "r", err: ErrUnsupportedValue},
		{name: "invalid utf8", node: ir.FromString("\xff"), root: "r", err: ErrEncoding},
		{name: "invalid utf8 attr", node: obj("@a", ir.FromString("\xff")), root: "r", err: ErrEncoding},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := EncodeString(tt.node, tt.root)
			if !errors.Is(err, tt.err) {
				t.Errorf("got %v, want %v", err, tt.err)
			}
		})
	}
}

func TestMustStringPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	MustString(nil, "r")
}

func TestView(t *testing.T) {
	node := obj("r", obj(
		"@id", ir.FromString("7"),
		"x", ir.FromSlice([]*ir.Node{ir.FromString("1"), ir.Null()}),
		"e", ir.Object(),
	))
	buf := &strings.Builder{}
	if err := View(node, buf); err != nil {
		t.Fatal(err)
	}
	want := strings.Join([]string{
		`r`,
		`  @id: "7"`,
		`  x [2]`,
		`    x[0]: "1"`,
		`    x[1]: null`,
		`  e: {}`,
		``,
	}, "\n")
	if buf.String() != want {
		t.Errorf("got\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestViewColors(t *testing.T) {
	colors := NewColors()
	if colors.Get(ir.StringType, ValueColor) == nil {
		t.Fatal("missing string color")
	}
	buf := &strings.Builder{}
	if err := View(ir.FromString("x"), buf, EncodeColors(colors)); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `"x"`) {
		t.Errorf("got %q", buf.String())
	}
}
