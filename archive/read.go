package archive

import (
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/openspeleo/xmldict/debug"
	"github.com/openspeleo/xmldict/ir"
	"github.com/openspeleo/xmldict/parse"

	"github.com/klauspost/compress/zip"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// Load reads the XML payload of the archive at path and parses it.
func Load(path string, opts ...Option) (*ir.Node, error) {
	o := newOpts(opts)
	text, err := ReadXML(path, opts...)
	if err != nil {
		return nil, err
	}
	doc, err := parse.ParseString(text, o.parseOpts...)
	if err != nil {
		return nil, fmt.Errorf("error parsing %s in %s: %w", o.entry, path, err)
	}
	return doc, nil
}

// LoadReader is Load for an archive held in r.
func LoadReader(r io.ReaderAt, size int64, opts ...Option) (*ir.Node, error) {
	o := newOpts(opts)
	text, err := ReadXMLReader(r, size, opts...)
	if err != nil {
		return nil, err
	}
	doc, err := parse.ParseString(text, o.parseOpts...)
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", o.entry, err)
	}
	return doc, nil
}

// ReadXML returns the XML payload of the archive at path as text.
func ReadXML(path string, opts ...Option) (string, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return "", fmt.Errorf("error opening archive %s: %w", path, err)
	}
	defer zr.Close()
	text, err := readEntry(&zr.Reader, newOpts(opts))
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	return text, nil
}

// ReadXMLReader is ReadXML for an archive held in r.
func ReadXMLReader(r io.ReaderAt, size int64, opts ...Option) (string, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return "", fmt.Errorf("error opening archive: %w", err)
	}
	return readEntry(zr, newOpts(opts))
}

// Entries lists the names of the entries of the archive at path.
func Entries(path string) ([]string, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("error opening archive %s: %w", path, err)
	}
	defer zr.Close()
	res := make([]string, len(zr.File))
	for i, f := range zr.File {
		res[i] = f.Name
	}
	return res, nil
}

func readEntry(zr *zip.Reader, o *archiveOpts) (string, error) {
	var entry *zip.File
	for _, f := range zr.File {
		if debug.Archive() {
			debug.Logf("archive entry %q (%d bytes)\n", f.Name, f.UncompressedSize64)
		}
		if f.Name == o.entry {
			entry = f
			break
		}
	}
	if entry == nil {
		return "", fmt.Errorf("%w: %q", ErrEntryNotFound, o.entry)
	}
	rc, err := entry.Open()
	if err != nil {
		return "", fmt.Errorf("error opening %s: %w", o.entry, err)
	}
	defer rc.Close()
	raw, err := io.ReadAll(rc)
	if err != nil {
		return "", fmt.Errorf("error reading %s: %w", o.entry, err)
	}
	return decodeText(raw)
}

// decodeText turns a payload into text. Only UTF-16 with a byte order
// mark is converted; everything else must already be UTF-8.
func decodeText(raw []byte) (string, error) {
	if bytes.HasPrefix(raw, bomUTF16LE) || bytes.HasPrefix(raw, bomUTF16BE) {
		d, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), raw)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrEncoding, err)
		}
		return string(d), nil
	}
	raw = bytes.TrimPrefix(raw, bomUTF8)
	if !utf8.Valid(raw) {
		return "", fmt.Errorf("%w: payload is not valid utf-8", ErrEncoding)
	}
	return string(raw), nil
}
