package stream

import (
	"encoding/xml"
	"errors"
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var ignoreOffset = cmpopts.IgnoreFields(Event{}, "Offset")

func readEvents(t *testing.T, doc string, opts ...StreamOption) []Event {
	t.Helper()
	events, err := ReadAll(NewDecoder([]byte(doc), opts...))
	if err != nil {
		t.Fatalf("decode %q: %v", doc, err)
	}
	return events
}

func TestDecoderEvents(t *testing.T) {
	got := readEvents(t, `<?xml version="1.0" encoding="utf-8"?><r id="7"><a>x</a><b/><c></c></r>`)
	want := []Event{
		{Type: EventStart, Name: "r", Attrs: []Attr{{Name: "id", Value: "7"}}},
		{Type: EventStart, Name: "a"},
		{Type: EventText, Text: "x"},
		{Type: EventEnd, Name: "a"},
		{Type: EventEmpty, Name: "b"},
		{Type: EventStart, Name: "c"},
		{Type: EventEnd, Name: "c"},
		{Type: EventEnd, Name: "r"},
		{Type: EventEOF},
	}
	if diff := cmp.Diff(want, got, ignoreOffset); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestDecoderOffsets(t *testing.T) {
	got := readEvents(t, `<r><a/><b></b></r>`)
	offsets := make([]int64, len(got))
	for i := range got {
		offsets[i] = got[i].Offset
	}
	want := []int64{0, 3, 7, 10, 14, 18}
	if diff := cmp.Diff(want, offsets); diff != "" {
		t.Errorf("offsets mismatch (-want +got):\n%s", diff)
	}
}

func TestDecoderEmptyWithAttrs(t *testing.T) {
	got := readEvents(t, `<r a="1" b='2' />`)
	want := []Event{
		{Type: EventEmpty, Name: "r", Attrs: []Attr{{"a", "1"}, {"b", "2"}}},
		{Type: EventEOF},
	}
	if diff := cmp.Diff(want, got, ignoreOffset); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestDecoderSkipsMarkup(t *testing.T) {
	doc := `<!DOCTYPE r [<!ENTITY e "&x;">]><!-- &nbsp; --><r><?pi &y;?><![CDATA[a&b<c>]]></r>`
	got := readEvents(t, doc)
	want := []Event{
		{Type: EventStart, Name: "r"},
		{Type: EventText, Text: "a&b<c>"},
		{Type: EventEnd, Name: "r"},
		{Type: EventEOF},
	}
	if diff := cmp.Diff(want, got, ignoreOffset); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestDecoderPrefixedNames(t *testing.T) {
	got := readEvents(t, `<ns:r xmlns:ns="urn:x" ns:id="1"/>`)
	want := []Event{
		{Type: EventEmpty, Name: "ns:r", Attrs: []Attr{{"xmlns:ns", "urn:x"}, {"ns:id", "1"}}},
		{Type: EventEOF},
	}
	if diff := cmp.Diff(want, got, ignoreOffset); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestDecoderDeclaredCharset(t *testing.T) {
	got := readEvents(t, `<?xml version="1.0" encoding="ISO-8859-1"?><r>é</r>`)
	if len(got) != 4 || got[1].Text != "é" {
		t.Errorf("got %v", got)
	}
}

func TestDecoderEntities(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"predefined", `<r>&lt;&gt;&amp;&apos;&quot;</r>`, `<>&'"`},
		{"unknown named", `<r>a &nbsp; b</r>`, "a  b"},
		{"decimal", `<r>&#65;</r>`, "A"},
		{"hex", `<r>&#x263A;</r>`, "☺"},
		{"nul", `<r>x&#0;y</r>`, "xy"},
		{"surrogate", `<r>x&#xD800;y</r>`, "xy"},
		{"beyond unicode", `<r>x&#x110000;y</r>`, "xy"},
		{"overflow", `<r>x&#99999999999;y</r>`, "xy"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := readEvents(t, tt.doc)
			if len(got) != 4 || got[1].Type != EventText {
				t.Fatalf("got %v", got)
			}
			if got[1].Text != tt.want {
				t.Errorf("got %q, want %q", got[1].Text, tt.want)
			}
		})
	}
}

func TestDecoderEntityInAttr(t *testing.T) {
	got := readEvents(t, `<r a="x&foo;&amp;y"/>`)
	if got[0].Attrs[0].Value != "x&y" {
		t.Errorf("got %q", got[0].Attrs[0].Value)
	}
}

func TestDecoderWithEntities(t *testing.T) {
	got := readEvents(t, `<r>a&nbsp;b</r>`, WithEntities(xml.HTMLEntity))
	if got[1].Text != "a b" {
		t.Errorf("got %q", got[1].Text)
	}
}

func TestDecoderSyntaxError(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		min  int64
	}{
		{"bare ampersand", `<r>&foo;& </r>`, 8},
		{"unterminated tag", `<r><a`, 3},
		{"bad attr", `<r a=1/>`, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadAll(NewDecoder([]byte(tt.doc)))
			if !errors.Is(err, ErrSyntax) {
				t.Fatalf("got %v, want syntax error", err)
			}
			var se *SyntaxError
			if !errors.As(err, &se) {
				t.Fatalf("got %T", err)
			}
			if se.Offset < tt.min || se.Offset > int64(len(tt.doc)) {
				t.Errorf("offset %d out of range [%d,%d]", se.Offset, tt.min, len(tt.doc))
			}
		})
	}
}

func TestDecoderAfterEOF(t *testing.T) {
	dec := NewDecoder([]byte(`<r/>`))
	if _, err := ReadAll(dec); err != nil {
		t.Fatal(err)
	}
	if _, err := dec.ReadEvent(); err != io.EOF {
		t.Errorf("got %v, want io.EOF", err)
	}
}

func TestDecoderEmptyInput(t *testing.T) {
	got := readEvents(t, "  \n")
	want := []Event{
		{Type: EventText, Text: "  \n"},
		{Type: EventEOF},
	}
	if diff := cmp.Diff(want, got, ignoreOffset); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
}
