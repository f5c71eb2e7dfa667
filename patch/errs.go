package patch

import "errors"

var (
	ErrBadPatch = errors.New("bad patch")
	ErrApply    = errors.New("patch failed")
)
