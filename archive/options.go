package archive

import (
	"github.com/openspeleo/xmldict/encode"
	"github.com/openspeleo/xmldict/parse"
)

// DefaultEntry is the name of the XML payload in an Ariane archive.
const DefaultEntry = "Data.xml"

type Option func(*archiveOpts)

type archiveOpts struct {
	entry      string
	parseOpts  []parse.ParseOption
	encodeOpts []encode.EncodeOption
}

func newOpts(opts []Option) *archiveOpts {
	o := &archiveOpts{entry: DefaultEntry}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithEntry selects the archive entry holding the XML payload.
func WithEntry(name string) Option {
	return func(o *archiveOpts) { o.entry = name }
}

// WithParseOptions configures how a loaded payload is parsed. Nulls are
// dropped unless parse.KeepNull(true) is given.
func WithParseOptions(po ...parse.ParseOption) Option {
	return func(o *archiveOpts) { o.parseOpts = append(o.parseOpts, po...) }
}

// WithEncodeOptions configures how a saved document is encoded.
func WithEncodeOptions(eo ...encode.EncodeOption) Option {
	return func(o *archiveOpts) { o.encodeOpts = append(o.encodeOpts, eo...) }
}
