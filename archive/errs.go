package archive

import "errors"

var (
	ErrEntryNotFound = errors.New("entry not found")
	ErrEncoding      = errors.New("invalid text encoding")
)
