package main

import (
	"fmt"

	"github.com/openspeleo/xmldict/archive"
	"github.com/openspeleo/xmldict/encode"
	"github.com/openspeleo/xmldict/format"

	"github.com/scott-cotton/cli"
)

func save(cfg *SaveConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Save.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: save requires <in> <archive>, got %v", cli.ErrUsage, args)
	}
	doc, err := getObjFile(cc, cfg.MainConfig, args[0], format.JSONFormat)
	if err != nil {
		return err
	}
	opts := []archive.Option{archive.WithEncodeOptions(encode.EncodeIndent(cfg.Indent))}
	if cfg.Entry != "" {
		opts = append(opts, archive.WithEntry(cfg.Entry))
	}
	if err := archive.Save(args[1], doc, opts...); err != nil {
		return err
	}
	if cfg.V {
		theLog.Info("saved", "archive", args[1])
	}
	return nil
}
