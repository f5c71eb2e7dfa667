package parse

import (
	"errors"
	"strings"
	"testing"

	"github.com/openspeleo/xmldict/ir"
	"github.com/openspeleo/xmldict/stream"
)

type parseTest struct {
	name string
	in   string
	opts []ParseOption
	out  string
}

func keep() []ParseOption {
	return []ParseOption{KeepNull(true)}
}

func TestParse(t *testing.T) {
	tests := []parseTest{
		{name: "self closing kept", in: `<a/>`, opts: keep(), out: `{"a":null}`},
		{name: "text is string", in: `<a>5</a>`, out: `{"a":"5"}`},
		{name: "bool text is string", in: `<a>true</a>`, out: `{"a":"true"}`},
		{name: "duplicates", in: `<r><x>1</x><x>2</x></r>`, opts: keep(), out: `{"r":{"x":["1","2"]}}`},
		{
			name: "interleaved duplicates",
			in:   `<r><x>1</x><y>a</y><x>2</x><x>3</x></r>`,
			out:  `{"r":{"x":["1","2","3"],"y":"a"}}`,
		},
		{name: "attr and text", in: `<r id="7">hi</r>`, opts: keep(), out: `{"r":{"@id":"7","#text":"hi"}}`},
		{name: "attr and children", in: `<r v="2"><x>1</x></r>`, out: `{"r":{"@v":"2","x":"1"}}`},
		{name: "entity", in: `<r>a &amp; b</r>`, opts: keep(), out: `{"r":"a & b"}`},
		{name: "unknown entity", in: `<r>a &foo; b</r>`, out: `{"r":"a  b"}`},
		{name: "char refs", in: `<r>&#72;&#x69;</r>`, out: `{"r":"Hi"}`},
		{name: "attr entities", in: `<r a="&lt;&amp;&bogus;"/>`, out: `{"r":{"@a":"<&"}}`},
		{name: "empty kept", in: `<r></r>`, opts: keep(), out: `{"r":{}}`},
		{name: "empties kept", in: `<r><a></a><b/></r>`, opts: keep(), out: `{"r":{"a":{},"b":null}}`},
		{name: "empties dropped", in: `<r><a/><b></b><c>x</c></r>`, out: `{"r":{"c":"x"}}`},
		{name: "drop cascades", in: `<r><a><b/></a><c>1</c></r>`, out: `{"r":{"c":"1"}}`},
		{name: "whitespace", in: "<r>\n  <x> padded </x>\n  <y>\t</y>\n</r>", out: `{"r":{"x":"padded"}}`},
		{name: "inner whitespace", in: "<r>  a\n b  </r>", out: `{"r":"a\n b"}`},
		{name: "children win", in: `<r>hi<x>1</x>there</r>`, out: `{"r":{"x":"1"}}`},
		{name: "children win dropped child", in: `<r>hi<x/></r>`, opts: keep(), out: `{"r":{"x":null}}`},
		{name: "empty with attrs", in: `<r><p id="1"/></r>`, out: `{"r":{"p":{"@id":"1"}}}`},
		{name: "empty with attrs kept", in: `<r><p id="1"/></r>`, opts: keep(), out: `{"r":{"p":null}}`},
		{
			name: "empty with attrs kept attrs",
			in:   `<r><p id="1"/></r>`,
			opts: []ParseOption{KeepNull(true), KeepEmptyAttrs(true)},
			out:  `{"r":{"p":{"@id":"1"}}}`,
		},
		{name: "null array", in: `<r><x/><x/></r>`, opts: keep(), out: `{"r":{"x":[null,null]}}`},
		{name: "mixed array", in: `<r><x/><x>1</x><x a="b"/></r>`, opts: keep(), out: `{"r":{"x":[null,"1",null]}}`},
		{name: "cdata", in: `<r><![CDATA[<b> & </b>]]></r>`, out: `{"r":"<b> & </b>"}`},
		{name: "split by comment", in: `<r>a <!--c--> b</r>`, out: `{"r":"a  b"}`},
		{
			name: "prolog",
			in:   "<?xml version=\"1.0\" encoding=\"utf-8\"?>\n<!DOCTYPE r>\n<!-- c -->\n<r>x</r>\n",
			out:  `{"r":"x"}`,
		},
		{name: "prefixed", in: `<a:r a:x="1"/>`, out: `{"a:r":{"@a:x":"1"}}`},
		{name: "duplicate attr", in: `<r a="1" a="2"/>`, out: `{"r":{"@a":"2"}}`},
		{
			name: "html entities",
			in:   `<r>a&nbsp;b</r>`,
			opts: []ParseOption{ParseEntities(map[string]string{"nbsp": "_"})},
			out:  `{"r":"a_b"}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, err := ParseString(tt.in, tt.opts...)
			if err != nil {
				t.Fatalf("parse %q: %v", tt.in, err)
			}
			d, err := node.MarshalJSON()
			if err != nil {
				t.Fatal(err)
			}
			if string(d) != tt.out {
				t.Errorf("parse %q\ngot  %s\nwant %s", tt.in, d, tt.out)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		opts []ParseOption
		err  error
	}{
		{name: "mismatched", in: `<a><b></a>`, err: ErrUnbalancedTags},
		{name: "stray end", in: `</a>`, err: ErrUnbalancedTags},
		{name: "unclosed", in: `<a><b>x</b>`, err: ErrUnbalancedTags},
		{name: "two roots", in: `<a>1</a><b>2</b>`, err: ErrMalformedXML},
		{name: "bad attr", in: `<a x=1/>`, err: ErrMalformedXML},
		{name: "bare ampersand", in: `<a>&</a>`, err: ErrMalformedXML},
		{name: "empty", in: ``, err: ErrEmptyDocument},
		{name: "whitespace", in: " \n\t", err: ErrEmptyDocument},
		{name: "comment only", in: `<!-- nothing -->`, err: ErrEmptyDocument},
		{name: "dropped root", in: `<a/>`, err: ErrEmptyDocument},
		{name: "dropped empty root", in: `<a> </a>`, err: ErrEmptyDocument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, err := ParseString(tt.in, tt.opts...)
			if !errors.Is(err, tt.err) {
				t.Fatalf("parse %q: got %v, want %v", tt.in, err, tt.err)
			}
			if node != nil {
				t.Errorf("parse %q: got partial result %v", tt.in, node)
			}
		})
	}
}

func TestParseSyntaxErrorOffset(t *testing.T) {
	_, err := ParseString(`<r>&junk;<a x=1/></r>`)
	var se *SyntaxError
	if !errors.As(err, &se) {
		t.Fatalf("got %v, want *SyntaxError", err)
	}
	if se.Offset < 9 {
		t.Errorf("offset %d points before the bad attribute", se.Offset)
	}
	if !errors.Is(err, stream.ErrSyntax) {
		t.Errorf("got %v, want wrapped stream.ErrSyntax", err)
	}
}

func TestParseEventsJoinsText(t *testing.T) {
	events := []stream.Event{
		{Type: stream.EventStart, Name: "r"},
		{Type: stream.EventText, Text: "  a "},
		{Type: stream.EventText, Text: "&"},
		{Type: stream.EventText, Text: " b  "},
		{Type: stream.EventEnd, Name: "r"},
	}
	node, err := ParseEvents(stream.NewSliceEventReader(events))
	if err != nil {
		t.Fatal(err)
	}
	if got := ir.Get(node, "r"); got == nil || got.String != "a & b" {
		t.Errorf("got %v", got)
	}
}

func TestParseDeep(t *testing.T) {
	const depth = 50000
	doc := strings.Repeat("<a>", depth) + "x" + strings.Repeat("</a>", depth)
	node, err := ParseString(doc)
	if err != nil {
		t.Fatal(err)
	}
	n := 0
	for node.Type == ir.ObjectType {
		node = ir.Get(node, "a")
		n++
	}
	if n != depth || node.String != "x" {
		t.Errorf("got depth %d value %v", n, node.Type)
	}
}

func TestParseRootShape(t *testing.T) {
	for _, doc := range []string{`<r/>`, `<r>x</r>`, `<r a="1"><x/><x/></r>`} {
		node, err := ParseString(doc, KeepNull(true))
		if err != nil {
			t.Fatal(err)
		}
		if node.Type != ir.ObjectType || node.Len() != 1 || node.Keys()[0] != "r" {
			t.Errorf("%q: root %v", doc, node.Keys())
		}
	}
}

func TestParseStateless(t *testing.T) {
	a, err := ParseString(`<r><x>1</x></r>`)
	if err != nil {
		t.Fatal(err)
	}
	b, err := ParseString(`<r><x>1</x></r>`)
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(a, b) {
		t.Error("repeated parses differ")
	}
}
