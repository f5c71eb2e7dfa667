package main

import (
	"fmt"

	"github.com/openspeleo/xmldict/encode"
	"github.com/openspeleo/xmldict/format"
	"github.com/openspeleo/xmldict/ir"

	"github.com/scott-cotton/cli"
)

func encodeCmd(cfg *EncodeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Encode.Parse(cc, args)
	if err != nil {
		return err
	}
	return forEachFile(cc, cfg.MainConfig, args, format.JSONFormat, nil,
		func(_ string, _ format.Format, node *ir.Node) error {
			if cfg.Root == "" {
				return putObj(cc.Out, node, format.XMLFormat, cfg.encodeOpts()...)
			}
			s, err := encode.EncodeString(node, cfg.Root, cfg.encodeOpts()...)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cc.Out, s)
			return err
		})
}
