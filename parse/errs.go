package parse

import (
	"errors"

	"github.com/openspeleo/xmldict/stream"
)

var (
	ErrParse          = errors.New("parse error")
	ErrMalformedXML   = errors.New("malformed xml")
	ErrUnbalancedTags = errors.New("unbalanced tags")
	ErrEmptyDocument  = errors.New("empty document")
)

// SyntaxError carries the byte offset and tokenizer message of a
// malformed document. It is found with errors.As on ErrMalformedXML
// errors.
type SyntaxError = stream.SyntaxError
