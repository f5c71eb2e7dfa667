package encode

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/openspeleo/xmldict/ir"
)

// View writes an outline of node, one key per line, nested keys indented.
// Array entries are listed under their key with their index.
func View(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{indent: "  "}
	for _, opt := range opts {
		opt(es)
	}
	bw := bufio.NewWriter(w)
	if node == nil {
		return fmt.Errorf("%w: nil value", ErrUnsupportedValue)
	}
	if node.Type == ir.ObjectType {
		for i, f := range node.Fields {
			viewEntry(bw, f.String, node.Values[i], es)
		}
	} else {
		viewEntry(bw, "", node, es)
	}
	return bw.Flush()
}

func viewEntry(w *bufio.Writer, key string, v *ir.Node, es *EncState) {
	w.WriteString(strings.Repeat(es.indent, es.depth))
	if key != "" {
		w.WriteString(es.color(v.Type, keyAttr(key), key))
	}
	switch v.Type {
	case ir.ObjectType:
		if len(v.Fields) == 0 {
			w.WriteString(es.color(v.Type, SepColor, ": {}") + "\n")
			return
		}
		w.WriteString("\n")
		es.depth++
		for i, f := range v.Fields {
			viewEntry(w, f.String, v.Values[i], es)
		}
		es.depth--
	case ir.ArrayType:
		w.WriteString(es.color(v.Type, ValueColor, fmt.Sprintf(" [%d]", len(v.Values))) + "\n")
		es.depth++
		for i, e := range v.Values {
			viewEntry(w, key+"["+strconv.Itoa(i)+"]", e, es)
		}
		es.depth--
	default:
		if key != "" {
			w.WriteString(es.color(v.Type, SepColor, ":") + " ")
		}
		w.WriteString(es.color(v.Type, ValueColor, viewScalar(v)) + "\n")
	}
}

func keyAttr(key string) ColorAttr {
	switch {
	case key == ir.TextKey:
		return TextColor
	case ir.IsAttrKey(key):
		return AttrColor
	}
	return FieldColor
}

func viewScalar(v *ir.Node) string {
	switch v.Type {
	case ir.StringType:
		return strconv.Quote(v.String)
	case ir.NullType:
		return "null"
	}
	return scalarText(v)
}

func (es *EncState) color(t ir.Type, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(t, a, s)
}
