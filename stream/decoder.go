package stream

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"sort"
)

// Decoder provides structural event-based decoding of XML documents.
type Decoder struct {
	data    []byte
	removed []removal
	xd      *xml.Decoder

	// selfClosed is set after an EventEmpty so the matching end
	// token the tokenizer synthesizes is skipped.
	selfClosed bool
	done       bool
}

// NewDecoder creates a decoder over the complete document data.
func NewDecoder(data []byte, opts ...StreamOption) *Decoder {
	o := &streamOpts{}
	for _, opt := range opts {
		opt(o)
	}
	filtered, removed := stripUnresolvable(data, o.entities)
	xd := xml.NewDecoder(bytes.NewReader(filtered))
	xd.Strict = true
	xd.Entity = o.entities
	// the document is already decoded text, whatever the declaration says.
	xd.CharsetReader = func(_ string, r io.Reader) (io.Reader, error) {
		return r, nil
	}
	return &Decoder{
		data:    filtered,
		removed: removed,
		xd:      xd,
	}
}

// ReadEvent reads the next structural event. After EventEOF has been
// returned, it returns io.EOF. Syntax errors are reported as *SyntaxError.
func (d *Decoder) ReadEvent() (*Event, error) {
	if d.done {
		return nil, io.EOF
	}
	for {
		start := d.xd.InputOffset()
		tok, err := d.xd.RawToken()
		if err == io.EOF {
			d.done = true
			return &Event{Type: EventEOF, Offset: d.offset(d.xd.InputOffset())}, nil
		}
		if err != nil {
			d.done = true
			return nil, d.syntaxError(err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			ev := &Event{
				Type:   EventStart,
				Name:   qualName(t.Name),
				Offset: d.offset(start),
			}
			if len(t.Attr) > 0 {
				ev.Attrs = make([]Attr, len(t.Attr))
				for i, a := range t.Attr {
					ev.Attrs[i] = Attr{Name: qualName(a.Name), Value: a.Value}
				}
			}
			if end := d.xd.InputOffset(); end >= 2 && d.data[end-2] == '/' && d.data[end-1] == '>' {
				ev.Type = EventEmpty
				d.selfClosed = true
			}
			return ev, nil
		case xml.EndElement:
			if d.selfClosed {
				d.selfClosed = false
				continue
			}
			return &Event{
				Type:   EventEnd,
				Name:   qualName(t.Name),
				Offset: d.offset(start),
			}, nil
		case xml.CharData:
			return &Event{
				Type:   EventText,
				Text:   string(t),
				Offset: d.offset(start),
			}, nil
		default:
			// comments, processing instructions, directives
			continue
		}
	}
}

// offset maps an offset in the filtered input back to the original input.
func (d *Decoder) offset(off int64) int64 {
	k := sort.Search(len(d.removed), func(j int) bool {
		return d.removed[j].at > off
	})
	if k == 0 {
		return off
	}
	return off + d.removed[k-1].total
}

func (d *Decoder) syntaxError(err error) error {
	se := &SyntaxError{
		Offset: d.offset(d.xd.InputOffset()),
		Msg:    err.Error(),
	}
	var xse *xml.SyntaxError
	if errors.As(err, &xse) {
		se.Line = xse.Line
		se.Msg = xse.Msg
	}
	return se
}

func qualName(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	return n.Space + ":" + n.Local
}
