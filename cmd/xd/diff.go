package main

import (
	"fmt"

	"github.com/openspeleo/xmldict/format"
	"github.com/openspeleo/xmldict/ir"
	"github.com/openspeleo/xmldict/libdiff"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := getObjFile(cc, cfg.MainConfig, args[0], format.XMLFormat)
	if err != nil {
		return err
	}
	b, err := getObjFile(cc, cfg.MainConfig, args[1], format.XMLFormat)
	if err != nil {
		return err
	}
	differs, err := diffInputs(cfg, cc, a, b)
	if err != nil {
		return err
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func diffInputs(cfg *DiffConfig, cc *cli.Context, a, b *ir.Node) (bool, error) {
	if cfg.Text {
		return textDiff(cc, a, b)
	}
	d := libdiff.Diff(a, b)
	if d == nil {
		return false, nil
	}
	if cfg.Reverse {
		rev, err := libdiff.Reverse(d)
		if err != nil {
			return false, fmt.Errorf("error reversing: %w", err)
		}
		d = rev
	}
	if err := putObj(cc.Out, d, cfg.outFormat(format.JSONFormat)); err != nil {
		return false, fmt.Errorf("error encoding diff: %w", err)
	}
	return true, nil
}

func textDiff(cc *cli.Context, a, b *ir.Node) (bool, error) {
	if ir.Equal(a, b) {
		return false, nil
	}
	da, err := ir.ToYAML(a)
	if err != nil {
		return false, err
	}
	db, err := ir.ToYAML(b)
	if err != nil {
		return false, err
	}
	_, err = fmt.Fprintln(cc.Out, libdiff.TextDiff(string(da), string(db)))
	return true, err
}
