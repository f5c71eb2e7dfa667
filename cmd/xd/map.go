package main

import (
	"fmt"

	"github.com/openspeleo/xmldict/format"
	"github.com/openspeleo/xmldict/ir"
	"github.com/openspeleo/xmldict/mapping"

	"github.com/scott-cotton/cli"
)

func mapCmd(cfg *MapConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Map.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Table == "" {
		return fmt.Errorf("%w: map requires -m <table>", cli.ErrUsage)
	}
	tNode, err := getObjFile(cc, cfg.MainConfig, cfg.Table, format.JSONFormat)
	if err != nil {
		return err
	}
	table, err := mapping.LoadTable(tNode)
	if err != nil {
		return fmt.Errorf("error loading %s: %w", cfg.Table, err)
	}
	if cfg.Invert {
		table, err = table.Invert()
		if err != nil {
			return err
		}
	}
	return forEachFile(cc, cfg.MainConfig, args, format.XMLFormat, nil,
		func(_ string, in format.Format, node *ir.Node) error {
			return putObj(cc.Out, mapping.Apply(node, table), cfg.outFormat(in))
		})
}
