package encode

import "errors"

var (
	ErrUnsupportedValue = errors.New("unsupported value")
	ErrEncoding         = errors.New("encoding error")
)
