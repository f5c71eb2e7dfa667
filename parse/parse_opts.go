package parse

import "github.com/openspeleo/xmldict/stream"

type parseOpts struct {
	keepNull       bool
	keepEmptyAttrs bool
	entities       map[string]string
}

func (o *parseOpts) StreamOpts() []stream.StreamOption {
	if o.entities == nil {
		return nil
	}
	return []stream.StreamOption{stream.WithEntities(o.entities)}
}

type ParseOption func(*parseOpts)

// KeepNull selects whether self-closing elements are kept as null and
// empty elements as empty objects. By default both are dropped from
// their parent.
func KeepNull(v bool) ParseOption {
	return func(o *parseOpts) { o.keepNull = v }
}

// KeepEmptyAttrs makes a self-closing element with attributes an object
// of its attributes even when nulls are kept, instead of null.
func KeepEmptyAttrs(v bool) ParseOption {
	return func(o *parseOpts) { o.keepEmptyAttrs = v }
}

// ParseEntities makes additional named entities resolvable.
func ParseEntities(m map[string]string) ParseOption {
	return func(o *parseOpts) { o.entities = m }
}
