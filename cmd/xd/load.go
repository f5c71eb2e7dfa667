package main

import (
	"fmt"

	"github.com/openspeleo/xmldict/archive"
	"github.com/openspeleo/xmldict/format"
	"github.com/openspeleo/xmldict/parse"

	"github.com/scott-cotton/cli"
)

func load(cfg *LoadConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Load.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: load requires 1 archive, got %v", cli.ErrUsage, args)
	}
	path := args[0]
	if cfg.List {
		names, err := archive.Entries(path)
		if err != nil {
			return err
		}
		for _, name := range names {
			fmt.Fprintln(cc.Out, name)
		}
		return nil
	}
	opts := []archive.Option{archive.WithParseOptions(parse.KeepNull(cfg.N))}
	if cfg.Entry != "" {
		opts = append(opts, archive.WithEntry(cfg.Entry))
	}
	if cfg.V {
		theLog.Info("load", "archive", path, "entry", cfg.Entry)
	}
	node, err := archive.Load(path, opts...)
	if err != nil {
		return err
	}
	return putObj(cc.Out, node, cfg.outFormat(format.JSONFormat))
}
