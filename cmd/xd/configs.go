package main

import (
	"fmt"
	"io"
	"os"

	"github.com/openspeleo/xmldict/encode"
	"github.com/openspeleo/xmldict/format"
	"github.com/openspeleo/xmldict/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='output with color'"`
	V     bool `cli:"name=v aliases=verbose desc='log each document read and written'"`
	Gops  bool `cli:"name=gops desc='start a gops agent'"`

	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

// inFormat returns the format for reading file: -I, then -j/-y, then the
// file suffix, then dflt.
func (cfg *MainConfig) inFormat(file string, dflt format.Format) format.Format {
	if cfg.InFormat != nil {
		return *cfg.InFormat
	}
	switch {
	case cfg.J:
		return format.JSONFormat
	case cfg.Y:
		return format.YAMLFormat
	}
	if f, ok := format.FromPath(file); ok {
		return f
	}
	return dflt
}

// outFormat returns the format for writing: -O, then -j/-y, then dflt.
func (cfg *MainConfig) outFormat(dflt format.Format) format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	switch {
	case cfg.J:
		return format.JSONFormat
	case cfg.Y:
		return format.YAMLFormat
	}
	return dflt
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	return res
}

type ParseConfig struct {
	*MainConfig
	N bool `cli:"name=n aliases=nulls desc='keep empty elements as nulls'"`
	A bool `cli:"name=a desc='keep attributes of empty elements'"`

	Parse *cli.Command
}

func (cfg *ParseConfig) parseOpts() []parse.ParseOption {
	return []parse.ParseOption{parse.KeepNull(cfg.N), parse.KeepEmptyAttrs(cfg.A)}
}

type EncodeConfig struct {
	*MainConfig
	Root   string `cli:"name=r aliases=root desc='root element name'"`
	Indent string `cli:"name=i aliases=indent desc='indent string'"`
	NoDecl bool   `cli:"name=nodecl desc='omit the xml declaration'"`

	Encode *cli.Command
}

func (cfg *EncodeConfig) encodeOpts() []encode.EncodeOption {
	return []encode.EncodeOption{
		encode.EncodeIndent(cfg.Indent),
		encode.EncodeDeclaration(!cfg.NoDecl),
	}
}

type LoadConfig struct {
	*MainConfig
	N     bool   `cli:"name=n aliases=nulls desc='keep empty elements as nulls'"`
	Entry string `cli:"name=e aliases=entry desc='archive entry holding the xml'"`
	List  bool   `cli:"name=l aliases=list desc='list archive entries'"`

	Load *cli.Command
}

type SaveConfig struct {
	*MainConfig
	Entry  string `cli:"name=e aliases=entry desc='archive entry holding the xml'"`
	Indent string `cli:"name=i aliases=indent desc='indent string'"`

	Save *cli.Command
}

type MapConfig struct {
	*MainConfig
	Table  string `cli:"name=m aliases=map desc='mapping table file'"`
	Invert bool   `cli:"name=invert desc='apply the mapping backwards'"`

	Map *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`
	Text    bool `cli:"name=t aliases=text desc='show a text diff of the json forms'"`

	Diff *cli.Command
}

type ViewConfig struct {
	*MainConfig
	N bool `cli:"name=n aliases=nulls desc='keep empty elements as nulls'"`

	View *cli.Command
}

type QueryConfig struct {
	*MainConfig
	Query string `cli:"name=q aliases=query desc='expr-lang expression over doc and file'"`
	Truth bool   `cli:"name=t aliases=truth desc='exit 1 when the result is falsy'"`

	QueryCmd *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Patch string `cli:"name=p aliases=patch desc='json patch file'"`

	PatchCmd *cli.Command
}
