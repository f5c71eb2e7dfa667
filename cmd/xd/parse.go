package main

import (
	"github.com/openspeleo/xmldict/format"
	"github.com/openspeleo/xmldict/ir"

	"github.com/scott-cotton/cli"
)

func parseCmd(cfg *ParseConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Parse.Parse(cc, args)
	if err != nil {
		return err
	}
	out := cfg.outFormat(format.JSONFormat)
	return forEachFile(cc, cfg.MainConfig, args, format.XMLFormat, cfg.parseOpts(),
		func(_ string, _ format.Format, node *ir.Node) error {
			return putObj(cc.Out, node, out)
		})
}
