package main

import (
	"io"

	"github.com/openspeleo/xmldict/encode"
	"github.com/openspeleo/xmldict/format"
	"github.com/openspeleo/xmldict/ir"
	"github.com/openspeleo/xmldict/parse"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	files := filesOrStdin(args)
	opts := cfg.encOpts(cc.Out)
	i := 0
	return forEachFile(cc, cfg.MainConfig, files, format.XMLFormat,
		[]parse.ParseOption{parse.KeepNull(cfg.N)},
		func(_ string, _ format.Format, node *ir.Node) error {
			defer func() { i++ }()
			if err := encode.View(node, cc.Out, opts...); err != nil {
				return err
			}
			if i < len(files)-1 {
				_, err := io.WriteString(cc.Out, "---\n")
				return err
			}
			return nil
		})
}
