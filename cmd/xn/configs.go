package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/xmlnav/go-xmlnav/encode"
)

type MainConfig struct {
	Color  bool `cli:"name=color desc='encode with color'"`
	Indent int  `cli:"name=indent desc='indent width (default 2)'"`

	Y bool `cli:"name=y aliases=yaml desc='read input as yaml'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.Option {
	res := []encode.Option{}
	if cfg.Indent > 0 {
		res = append(res, encode.WithIndent(cfg.Indent))
	}
	if cfg.Color {
		res = append(res, encode.WithColors(encode.NewColors()))
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
		res = append(res, encode.WithColors(encode.NewColors()))
	}
	return res
}

type ViewConfig struct {
	*MainConfig

	Inner bool `cli:"name=inner desc='render child content only'"`
	View  *cli.Command
}

type GetConfig struct {
	*MainConfig

	ID bool `cli:"name=id desc='print position ids instead of markup'"`

	Get *cli.Command
}

type MatchConfig struct {
	*cli.Command
	*MainConfig

	Quiet bool `cli:"name=q desc='suppress output, set exit status only'"`
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`

	Diff *cli.Command
}

type IDConfig struct {
	*MainConfig

	ID *cli.Command
}
