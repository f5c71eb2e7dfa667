package main

import (
	"fmt"

	"github.com/openspeleo/xmldict/format"
	"github.com/openspeleo/xmldict/ir"
	"github.com/openspeleo/xmldict/patch"

	"github.com/scott-cotton/cli"
)

func patchCmd(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.PatchCmd.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Patch == "" {
		return fmt.Errorf("%w: patch requires -p <patch>", cli.ErrUsage)
	}
	pNode, err := getObjFile(cc, cfg.MainConfig, cfg.Patch, format.JSONFormat)
	if err != nil {
		return err
	}
	p, err := patch.DecodeJSONPatch(pNode)
	if err != nil {
		return fmt.Errorf("error decoding patch %s: %w", cfg.Patch, err)
	}
	return forEachFile(cc, cfg.MainConfig, args, format.XMLFormat, nil,
		func(_ string, in format.Format, node *ir.Node) error {
			res, err := p.Apply(node)
			if err != nil {
				return err
			}
			return putObj(cc.Out, res, cfg.outFormat(in))
		})
}
