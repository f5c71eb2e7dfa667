package main

import (
	"fmt"

	"github.com/openspeleo/xmldict/eval"
	"github.com/openspeleo/xmldict/format"
	"github.com/openspeleo/xmldict/ir"

	"github.com/scott-cotton/cli"
)

func query(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.QueryCmd.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Query == "" {
		return fmt.Errorf("%w: query requires -q <expr>", cli.ErrUsage)
	}
	allTrue := true
	err = forEachFile(cc, cfg.MainConfig, args, format.XMLFormat, nil,
		func(file string, _ format.Format, node *ir.Node) error {
			res, err := eval.Eval(cfg.Query, node, eval.Env{"file": file})
			if err != nil {
				return err
			}
			if cfg.Truth {
				allTrue = allTrue && ir.Truth(res)
				return nil
			}
			return putObj(cc.Out, res, cfg.outFormat(format.JSONFormat))
		})
	if err != nil {
		return err
	}
	if !allTrue {
		return cli.ExitCodeErr(1)
	}
	return nil
}
