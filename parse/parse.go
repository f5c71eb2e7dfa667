package parse

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/openspeleo/xmldict/debug"
	"github.com/openspeleo/xmldict/ir"
	"github.com/openspeleo/xmldict/stream"
)

// Parse parses the XML document d.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	return parseEvents(stream.NewDecoder(d, pOpts.StreamOpts()...), pOpts)
}

func ParseString(s string, opts ...ParseOption) (*ir.Node, error) {
	return Parse([]byte(s), opts...)
}

// ParseEvents builds a document from an event source. Consecutive text
// events are joined before being trimmed.
func ParseEvents(r stream.EventReader, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	return parseEvents(r, pOpts)
}

// frame holds the state of an enclosing element while one of its children
// is being built.
type frame struct {
	name        string
	parent      *ir.Node
	parentAttrs []ir.KeyVal
	parentElems bool
}

type parser struct {
	opts *parseOpts

	stack []frame
	// cur is the value of the innermost open element: an object
	// collecting children, or a string once text was flushed.
	cur   *ir.Node
	attrs []ir.KeyVal
	// elems is set once the innermost element has a child element.
	elems bool
	text  strings.Builder

	rootName string
	rootSeen bool
	root     *ir.Node
}

func parseEvents(r stream.EventReader, opts *parseOpts) (*ir.Node, error) {
	p := &parser{opts: opts}
	for {
		ev, err := r.ReadEvent()
		if err == io.EOF {
			return p.finish()
		}
		if err != nil {
			return nil, malformed(err)
		}
		if debug.Events() {
			debug.Logf("event %s\n", ev)
		}
		switch ev.Type {
		case stream.EventStart:
			if err := p.start(ev); err != nil {
				return nil, err
			}
		case stream.EventEnd:
			if err := p.end(ev); err != nil {
				return nil, err
			}
		case stream.EventEmpty:
			if err := p.empty(ev); err != nil {
				return nil, err
			}
		case stream.EventText:
			if len(p.stack) > 0 {
				p.text.WriteString(ev.Text)
			}
		case stream.EventEOF:
			return p.finish()
		default:
			return nil, fmt.Errorf("%w: unexpected event %s", ErrParse, ev.Type)
		}
	}
}

func malformed(err error) error {
	var se *stream.SyntaxError
	if errors.As(err, &se) {
		return fmt.Errorf("%w: %w", ErrMalformedXML, err)
	}
	return fmt.Errorf("%w: %w", ErrParse, err)
}

// open prepares the innermost element for a new child element named name.
func (p *parser) open(ev *stream.Event) error {
	p.flush()
	if len(p.stack) == 0 {
		if p.rootSeen {
			return fmt.Errorf("%w: second root element <%s> at offset %d", ErrMalformedXML, ev.Name, ev.Offset)
		}
		p.rootSeen = true
		p.rootName = ev.Name
		return nil
	}
	p.elems = true
	if p.cur.Type != ir.ObjectType {
		p.cur = ir.Object()
	}
	return nil
}

func (p *parser) start(ev *stream.Event) error {
	if err := p.open(ev); err != nil {
		return err
	}
	p.stack = append(p.stack, frame{
		name:        ev.Name,
		parent:      p.cur,
		parentAttrs: p.attrs,
		parentElems: p.elems,
	})
	if debug.Parse() {
		debug.Logf("push <%s> depth %d\n", ev.Name, len(p.stack))
	}
	p.cur = ir.Object()
	p.attrs = attrKeyVals(ev.Attrs)
	p.elems = false
	return nil
}

func (p *parser) end(ev *stream.Event) error {
	p.flush()
	n := len(p.stack)
	if n == 0 {
		return fmt.Errorf("%w: </%s> at offset %d has no open element", ErrUnbalancedTags, ev.Name, ev.Offset)
	}
	fr := p.stack[n-1]
	if fr.name != ev.Name {
		return fmt.Errorf("%w: </%s> at offset %d closes <%s>", ErrUnbalancedTags, ev.Name, ev.Offset, fr.name)
	}
	p.stack = p.stack[:n-1]
	v := elementValue(p.cur, p.attrs)
	p.cur, p.attrs, p.elems = fr.parent, fr.parentAttrs, fr.parentElems
	if debug.Parse() {
		debug.Logf("pop <%s> depth %d: %v\n", fr.name, len(p.stack), v)
	}
	p.attach(fr.name, v)
	return nil
}

func (p *parser) empty(ev *stream.Event) error {
	if err := p.open(ev); err != nil {
		return err
	}
	var v *ir.Node
	switch {
	case p.opts.keepNull && (len(ev.Attrs) == 0 || !p.opts.keepEmptyAttrs):
		v = ir.Null()
	case len(ev.Attrs) == 0:
		if debug.Parse() {
			debug.Logf("drop empty <%s/>\n", ev.Name)
		}
		return nil
	default:
		v = ir.FromKeyVals(attrKeyVals(ev.Attrs))
	}
	p.attach(ev.Name, v)
	return nil
}

// flush commits the accumulated text to the innermost element. Text is
// trimmed, and dropped when empty or when the element has child elements.
func (p *parser) flush() {
	if p.text.Len() == 0 {
		return
	}
	s := strings.Trim(p.text.String(), " \t\r\n")
	p.text.Reset()
	if s == "" || p.elems || len(p.stack) == 0 {
		return
	}
	p.cur = ir.FromString(s)
}

// attach adds the finished value v of element name to the innermost open
// element, or makes it the root content.
func (p *parser) attach(name string, v *ir.Node) {
	if !p.opts.keepNull && isEmpty(v) {
		if debug.Parse() {
			debug.Logf("drop <%s>: %s\n", name, v.Type)
		}
		return
	}
	if len(p.stack) == 0 {
		p.root = v
		return
	}
	if debug.Parse() {
		if prev := ir.Get(p.cur, name); prev != nil {
			debug.Logf("promote <%s> (%d present)\n", name, max(prev.Len(), 1))
		}
	}
	p.cur.InsertOrPromote(name, v)
}

func (p *parser) finish() (*ir.Node, error) {
	if n := len(p.stack); n > 0 {
		return nil, fmt.Errorf("%w: <%s> not closed at end of input", ErrUnbalancedTags, p.stack[n-1].name)
	}
	if p.root == nil {
		return nil, ErrEmptyDocument
	}
	return ir.FromKeyVals([]ir.KeyVal{{Key: p.rootName, Val: p.root}}), nil
}

// elementValue builds the value of a closed element from its accumulated
// content and attributes.
func elementValue(cur *ir.Node, attrs []ir.KeyVal) *ir.Node {
	if cur.Type != ir.ObjectType {
		if len(attrs) == 0 {
			return cur
		}
		res := ir.FromKeyVals(attrs)
		res.Set(ir.TextKey, cur)
		return res
	}
	if len(attrs) == 0 {
		return cur
	}
	res := ir.FromKeyVals(attrs)
	for i, f := range cur.Fields {
		res.Set(f.String, cur.Values[i])
	}
	return res
}

func isEmpty(v *ir.Node) bool {
	switch v.Type {
	case ir.NullType:
		return true
	case ir.ObjectType:
		return len(v.Fields) == 0
	}
	return false
}

func attrKeyVals(attrs []stream.Attr) []ir.KeyVal {
	if len(attrs) == 0 {
		return nil
	}
	res := make([]ir.KeyVal, len(attrs))
	for i, a := range attrs {
		res[i] = ir.KeyVal{Key: ir.AttrKey(a.Name), Val: ir.FromString(a.Value)}
	}
	return res
}
