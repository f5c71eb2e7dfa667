package archive

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/openspeleo/xmldict/encode"
	"github.com/openspeleo/xmldict/ir"

	"github.com/klauspost/compress/zip"
)

// Write encodes doc and writes it to w as the only entry of a new zip
// archive.
func Write(w io.Writer, doc *ir.Node, opts ...Option) error {
	o := newOpts(opts)
	zw := zip.NewWriter(w)
	ew, err := zw.CreateHeader(&zip.FileHeader{
		Name:     o.entry,
		Method:   zip.Deflate,
		Modified: time.Now(),
	})
	if err != nil {
		return err
	}
	if err := encode.EncodeDocument(doc, ew, o.encodeOpts...); err != nil {
		return fmt.Errorf("error encoding %s: %w", o.entry, err)
	}
	return zw.Close()
}

// Save writes doc to a new archive at path. The file is replaced only
// once the archive is complete.
func Save(path string, doc *ir.Node, opts ...Option) (err error) {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(f.Name())
		}
	}()
	if err = f.Chmod(0o644); err != nil {
		return err
	}
	if err = Write(f, doc, opts...); err != nil {
		return fmt.Errorf("error writing %s: %w", path, err)
	}
	if err = f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), path)
}
