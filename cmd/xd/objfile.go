package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/openspeleo/xmldict/encode"
	"github.com/openspeleo/xmldict/format"
	"github.com/openspeleo/xmldict/ir"
	"github.com/openspeleo/xmldict/parse"

	"github.com/scott-cotton/cli"
)

// getObjFile reads and decodes path ("-" for stdin). XML input is parsed
// with opts.
func getObjFile(cc *cli.Context, cfg *MainConfig, path string, dflt format.Format, opts ...parse.ParseOption) (*ir.Node, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %w", path, err)
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	fmat := cfg.inFormat(path, dflt)
	if cfg.V {
		theLog.Info("read", "file", path, "format", fmat, "bytes", len(d))
	}
	node, err := decode(d, fmat, opts...)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", path, err)
	}
	return node, nil
}

func decode(d []byte, fmat format.Format, opts ...parse.ParseOption) (*ir.Node, error) {
	switch fmat {
	case format.JSONFormat:
		return ir.FromJSON(d)
	case format.YAMLFormat:
		return ir.FromYAML(d)
	default:
		return parse.Parse(d, opts...)
	}
}

// putObj writes node to w in fmat. XML output requires a document: an
// object with a single key naming the root element.
func putObj(w io.Writer, node *ir.Node, fmat format.Format, opts ...encode.EncodeOption) error {
	var (
		d   []byte
		err error
	)
	switch fmat {
	case format.JSONFormat:
		d, err = node.MarshalJSON()
	case format.YAMLFormat:
		d, err = ir.ToYAML(node)
	default:
		buf := bytes.NewBuffer(nil)
		if err = encode.EncodeDocument(node, buf, opts...); err == nil {
			d = buf.Bytes()
		}
	}
	if err != nil {
		return err
	}
	if len(d) == 0 || d[len(d)-1] != '\n' {
		d = append(d, '\n')
	}
	_, err = w.Write(d)
	return err
}

// forEachFile decodes each file and hands it to f along with its input
// format.
func forEachFile(cc *cli.Context, cfg *MainConfig, files []string, dflt format.Format, po []parse.ParseOption, f func(file string, in format.Format, node *ir.Node) error) error {
	for _, file := range filesOrStdin(files) {
		node, err := getObjFile(cc, cfg, file, dflt, po...)
		if err != nil {
			return err
		}
		if err := f(file, cfg.inFormat(file, dflt), node); err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
	}
	return nil
}
