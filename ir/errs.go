package ir

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type")
	ErrDuplicateKey    = errors.New("duplicate key")
	ErrBadNumber       = errors.New("bad number")
	ErrBadPath         = errors.New("bad path")
)
