package stream

import (
	"errors"
	"fmt"
)

// ErrSyntax is wrapped by every SyntaxError.
var ErrSyntax = errors.New("xml syntax error")

// SyntaxError reports malformed input found by the tokenizer.
type SyntaxError struct {
	// Offset is the byte offset in the original input.
	Offset int64
	// Line is the 1-based line, or 0 when unknown.
	Line int
	Msg  string
}

func (e *SyntaxError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s at offset %d (line %d): %s", ErrSyntax, e.Offset, e.Line, e.Msg)
	}
	return fmt.Sprintf("%s at offset %d: %s", ErrSyntax, e.Offset, e.Msg)
}

func (e *SyntaxError) Unwrap() error {
	return ErrSyntax
}
