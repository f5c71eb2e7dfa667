package encode

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/openspeleo/xmldict/debug"
	"github.com/openspeleo/xmldict/ir"

	"github.com/shabbyrobe/xmlwriter"
)

// Declaration starts every encoded document.
const Declaration = `<?xml version="1.0" encoding="utf-8"?>`

type EncState struct {
	indent string
	noDecl bool

	depth int
	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes node as the content of an element named rootName.
func Encode(node *ir.Node, rootName string, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	buf := bytes.NewBuffer(nil)
	if !es.noDecl {
		buf.WriteString(Declaration)
		if es.indent != "" {
			buf.WriteByte('\n')
		}
	}
	var xwOpts []xmlwriter.Option
	if es.indent != "" {
		xwOpts = append(xwOpts, xmlwriter.WithIndentString(es.indent))
	}
	xw := xmlwriter.Open(buf, xwOpts...)
	if err := encode(xw, node, rootName, es); err != nil {
		if errors.Is(err, ErrUnsupportedValue) || errors.Is(err, ErrEncoding) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	if err := xw.EndAllFlush(); err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	if !utf8.Valid(buf.Bytes()) {
		return fmt.Errorf("%w: output is not valid utf-8", ErrEncoding)
	}
	_, err := w.Write(buf.Bytes())
	return err
}

func EncodeString(node *ir.Node, rootName string, opts ...EncodeOption) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, rootName, buf, opts...); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// EncodeDocument encodes doc, an object with a single key naming the root
// element.
func EncodeDocument(doc *ir.Node, w io.Writer, opts ...EncodeOption) error {
	if doc == nil || doc.Type != ir.ObjectType || len(doc.Fields) != 1 {
		return fmt.Errorf("%w: document must be an object with a single root key", ErrUnsupportedValue)
	}
	return Encode(doc.Values[0], doc.Fields[0].String, w, opts...)
}

func encode(w *xmlwriter.Writer, node *ir.Node, name string, es *EncState) error {
	if node == nil {
		return fmt.Errorf("%w: nil value for <%s>", ErrUnsupportedValue, name)
	}
	if !validName(name) {
		return fmt.Errorf("%w: invalid element name %q at %s", ErrUnsupportedValue, name, node.Path())
	}
	if debug.Encode() {
		debug.Logf("encode <%s> %s depth %d\n", name, node.Type, es.depth)
	}
	switch node.Type {
	case ir.ObjectType:
		return encodeObject(w, node, name, es)
	case ir.ArrayType:
		for _, v := range node.Values {
			if err := encode(w, v, name, es); err != nil {
				return err
			}
		}
		return nil
	case ir.NullType:
		return w.Write(xmlwriter.Elem{Name: name})
	case ir.StringType, ir.NumberType, ir.BoolType:
		return encodeText(w, xmlwriter.Elem{Name: name}, scalarText(node))
	default:
		return fmt.Errorf("%w: %s at %s", ErrUnsupportedValue, node.Type, node.Path())
	}
}

func encodeObject(w *xmlwriter.Writer, node *ir.Node, name string, es *EncState) error {
	elem := xmlwriter.Elem{Name: name}
	var (
		text     *ir.Node
		children []int
	)
	for i, f := range node.Fields {
		key, v := f.String, node.Values[i]
		switch {
		case key == ir.TextKey:
			if v == nil || !v.Type.IsLeaf() {
				return fmt.Errorf("%w: %s text at %s", ErrUnsupportedValue, typeOf(v), node.Path())
			}
			if v.Type != ir.NullType {
				text = v
			}
		case ir.IsAttrKey(key):
			attr, err := encodeAttr(key[len(ir.AttrPrefix):], v)
			if err != nil {
				return fmt.Errorf("%w at %s", err, node.Path())
			}
			elem.Attrs = append(elem.Attrs, attr)
		default:
			children = append(children, i)
		}
	}
	switch {
	case len(children) == 0 && text == nil && len(elem.Attrs) > 0:
		return w.Write(elem)
	case len(children) == 0 && text == nil:
		// an empty object stays distinct from null
		return encodeText(w, elem, "")
	case len(children) == 0:
		return encodeText(w, elem, scalarText(text))
	}
	if err := w.Start(elem); err != nil {
		return err
	}
	if text != nil {
		s := scalarText(text)
		if !utf8.ValidString(s) {
			return fmt.Errorf("%w: text of <%s> is not valid utf-8", ErrEncoding, name)
		}
		if err := w.Write(xmlwriter.Text(s)); err != nil {
			return err
		}
	}
	es.depth++
	for _, i := range children {
		if err := encode(w, node.Values[i], node.Fields[i].String, es); err != nil {
			return err
		}
	}
	es.depth--
	return w.EndElem()
}

// encodeText writes elem holding text. Writing the text node, even when
// empty, keeps the element from being self-closed.
func encodeText(w *xmlwriter.Writer, elem xmlwriter.Elem, text string) error {
	if !utf8.ValidString(text) {
		return fmt.Errorf("%w: text of <%s> is not valid utf-8", ErrEncoding, elem.Name)
	}
	if err := w.Start(elem); err != nil {
		return err
	}
	if err := w.Write(xmlwriter.Text(text)); err != nil {
		return err
	}
	return w.EndElem()
}

func encodeAttr(name string, v *ir.Node) (xmlwriter.Attr, error) {
	if !validName(name) {
		return xmlwriter.Attr{}, fmt.Errorf("%w: invalid attribute name %q", ErrUnsupportedValue, name)
	}
	if v == nil || !v.Type.IsLeaf() {
		return xmlwriter.Attr{}, fmt.Errorf("%w: %s value for attribute %q", ErrUnsupportedValue, typeOf(v), name)
	}
	s := scalarText(v)
	if !utf8.ValidString(s) {
		return xmlwriter.Attr{}, fmt.Errorf("%w: attribute %q is not valid utf-8", ErrEncoding, name)
	}
	return xmlwriter.Attr{Name: name, Value: s}, nil
}

// scalarText renders a leaf value as element or attribute text.
func scalarText(v *ir.Node) string {
	switch v.Type {
	case ir.StringType:
		return v.String
	case ir.NumberType:
		return v.NumberText()
	case ir.BoolType:
		if v.Bool {
			return "true"
		}
		return "false"
	}
	return ""
}

func typeOf(v *ir.Node) string {
	if v == nil {
		return "nil"
	}
	return v.Type.String()
}
