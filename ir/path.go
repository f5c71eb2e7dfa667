package ir

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Path returns a JSONPath-style location of y within its tree, such as
// $.Survey.Shot[2].'@id'.
func (y *Node) Path() string {
	if y.Parent == nil {
		return "$"
	}
	switch y.Parent.Type {
	case ObjectType:
		f := y.ParentField
		prefix := y.Parent.Path() + "."
		if f != "" && strings.IndexAny(f, "'.*$[]@#") == -1 {
			return prefix + f
		}
		return prefix + "'" + strings.Replace(f, "'", "\\'", -1) + "'"

	case ArrayType:
		return y.Parent.Path() + "[" + strconv.Itoa(y.ParentIndex) + "]"
	default:
		return y.Parent.Path()
	}
}

// GetPath returns the node at p, a path in the form produced by Path,
// relative to y. It returns nil when a key or index is absent.
func (y *Node) GetPath(p string) (*Node, error) {
	rest, ok := strings.CutPrefix(p, "$")
	if !ok {
		return nil, fmt.Errorf("%w: %q does not start with $", ErrBadPath, p)
	}
	res := y
	for rest != "" && res != nil {
		switch rest[0] {
		case '.':
			key, tail, err := pathKey(rest[1:])
			if err != nil {
				return nil, fmt.Errorf("%w: %q: %w", ErrBadPath, p, err)
			}
			if res.Type != ObjectType {
				return nil, fmt.Errorf("%w: %q: expected object, got %s", ErrBadPath, p, res.Type)
			}
			res, rest = Get(res, key), tail
		case '[':
			end := strings.IndexByte(rest, ']')
			if end < 0 {
				return nil, fmt.Errorf("%w: %q: unterminated index", ErrBadPath, p)
			}
			i, err := strconv.Atoi(rest[1:end])
			if err != nil || i < 0 {
				return nil, fmt.Errorf("%w: %q: bad index %q", ErrBadPath, p, rest[1:end])
			}
			if res.Type != ArrayType {
				return nil, fmt.Errorf("%w: %q: expected array, got %s", ErrBadPath, p, res.Type)
			}
			if i >= len(res.Values) {
				return nil, nil
			}
			res, rest = res.Values[i], rest[end+1:]
		default:
			return nil, fmt.Errorf("%w: %q: unexpected %q", ErrBadPath, p, rest[0])
		}
	}
	return res, nil
}

// pathKey reads a bare or single-quoted key.
func pathKey(s string) (string, string, error) {
	if !strings.HasPrefix(s, "'") {
		end := strings.IndexAny(s, ".[")
		if end < 0 {
			end = len(s)
		}
		if end == 0 {
			return "", "", errors.New("empty key")
		}
		return s[:end], s[end:], nil
	}
	b := strings.Builder{}
	for i := 1; i < len(s); i++ {
		switch {
		case s[i] == '\\' && i+1 < len(s) && s[i+1] == '\'':
			b.WriteByte('\'')
			i++
		case s[i] == '\'':
			return b.String(), s[i+1:], nil
		default:
			b.WriteByte(s[i])
		}
	}
	return "", "", errors.New("unterminated quote")
}
