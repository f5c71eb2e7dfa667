package stream

import (
	"bytes"
	"errors"
	"strconv"
	"unicode/utf8"
)

// maxRefLen bounds the scan for the ';' closing an entity reference.
const maxRefLen = 64

var predefined = map[string]bool{
	"lt":   true,
	"gt":   true,
	"amp":  true,
	"apos": true,
	"quot": true,
}

// removal records bytes dropped from the input: total bytes were removed
// before filtered offset at.
type removal struct {
	at    int64
	total int64
}

// stripUnresolvable removes entity references that cannot be resolved:
// named references other than the predefined ones and extra, and numeric
// references to characters that are not allowed in XML. Markup that
// cannot hold references (comments, CDATA, processing instructions and
// declarations) is skipped. Malformed references are left alone so the
// tokenizer reports them.
//
// When nothing is removed, data is returned as is.
func stripUnresolvable(data []byte, extra map[string]string) ([]byte, []removal) {
	var (
		out     []byte
		removed []removal
		last    int
		total   int64
	)
	n := len(data)
	for i := 0; i < n; {
		switch data[i] {
		case '<':
			i = skipMarkup(data, i)
		case '&':
			end, drop := scanReference(data, i, extra)
			if !drop {
				i = end
				continue
			}
			out = append(out, data[last:i]...)
			total += int64(end - i)
			removed = append(removed, removal{at: int64(len(out)), total: total})
			last = end
			i = end
		default:
			i++
		}
	}
	if removed == nil {
		return data, nil
	}
	out = append(out, data[last:]...)
	return out, removed
}

// scanReference looks at the reference starting at data[i] == '&'. It
// returns the index just past it and whether it should be dropped.
func scanReference(data []byte, i int, extra map[string]string) (int, bool) {
	n := len(data)
	j := i + 1
	for j < n && j-i <= maxRefLen {
		c := data[j]
		if c == ';' {
			break
		}
		if c == '&' || c == '<' || c == ' ' || c == '\t' || c == '\n' || c == '\r' {
			return i + 1, false
		}
		j++
	}
	if j >= n || data[j] != ';' || j == i+1 {
		return i + 1, false
	}
	ref := data[i+1 : j]
	end := j + 1
	if ref[0] == '#' {
		return end, !resolvableChar(ref[1:])
	}
	name := string(ref)
	if !isName(name) {
		return i + 1, false
	}
	if predefined[name] {
		return end, false
	}
	if _, ok := extra[name]; ok {
		return end, false
	}
	return end, true
}

// resolvableChar reports whether the numeric reference body (without '#')
// names a legal XML character. Malformed bodies are reported resolvable so
// that the tokenizer rejects them.
func resolvableChar(body []byte) bool {
	base := 10
	if len(body) > 0 && body[0] == 'x' {
		base = 16
		body = body[1:]
	}
	if len(body) == 0 {
		return true
	}
	v, err := strconv.ParseUint(string(body), base, 32)
	if err != nil {
		return !errors.Is(err, strconv.ErrRange)
	}
	return isXMLChar(rune(v))
}

func isXMLChar(r rune) bool {
	switch {
	case r == 0x09, r == 0x0A, r == 0x0D:
		return true
	case r >= 0x20 && r <= 0xD7FF:
		return true
	case r >= 0xE000 && r <= 0xFFFD:
		return true
	case r >= 0x10000 && r <= utf8.MaxRune:
		return true
	}
	return false
}

func isName(s string) bool {
	for i, r := range s {
		if r == '_' || r == ':' || r >= 'A' && r <= 'Z' || r >= 'a' && r <= 'z' || r >= 0x80 {
			continue
		}
		if i > 0 && (r == '-' || r == '.' || r >= '0' && r <= '9') {
			continue
		}
		return false
	}
	return s != ""
}

var (
	commentStart = []byte("<!--")
	commentEnd   = []byte("-->")
	cdataStart   = []byte("<![CDATA[")
	cdataEnd     = []byte("]]>")
	piStart      = []byte("<?")
	piEnd        = []byte("?>")
	declStart    = []byte("<!")
)

// skipMarkup returns the index after markup starting at data[i] == '<' that
// cannot contain references. For any other tag it returns i+1.
func skipMarkup(data []byte, i int) int {
	rest := data[i:]
	switch {
	case bytes.HasPrefix(rest, commentStart):
		return skipTo(data, i+len(commentStart), commentEnd)
	case bytes.HasPrefix(rest, cdataStart):
		return skipTo(data, i+len(cdataStart), cdataEnd)
	case bytes.HasPrefix(rest, piStart):
		return skipTo(data, i+len(piStart), piEnd)
	case bytes.HasPrefix(rest, declStart):
		return skipDecl(data, i+len(declStart))
	}
	return i + 1
}

func skipTo(data []byte, from int, end []byte) int {
	k := bytes.Index(data[from:], end)
	if k < 0 {
		return len(data)
	}
	return from + k + len(end)
}

// skipDecl skips a <!...> declaration, including an internal subset in
// brackets and quoted literals.
func skipDecl(data []byte, i int) int {
	depth := 0
	var quote byte
	for ; i < len(data); i++ {
		c := data[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == '[':
			depth++
		case c == ']':
			if depth > 0 {
				depth--
			}
		case c == '>' && depth == 0:
			return i + 1
		}
	}
	return len(data)
}
