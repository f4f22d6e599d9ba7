package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/scott-cotton/cli"

	"github.com/xmlnav/go-xmlnav/encode"
	"github.com/xmlnav/go-xmlnav/event"
	"github.com/xmlnav/go-xmlnav/memdoc"
	"github.com/xmlnav/go-xmlnav/parse"
	"github.com/xmlnav/go-xmlnav/yamlsrc"
)

func xnMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func loadDoc(cfg *MainConfig, arg string) (*memdoc.Document, error) {
	var in io.Reader
	if arg == "-" {
		in = os.Stdin
	} else {
		f, err := os.Open(arg)
		if err != nil {
			return nil, fmt.Errorf("error opening %s: %w", arg, err)
		}
		defer f.Close()
		in = f
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return nil, err
	}
	if cfg.Y {
		root := "doc"
		if arg != "-" {
			name := filepath.Base(arg)
			root = name[:len(name)-len(filepath.Ext(name))]
		}
		rd, err := yamlsrc.New(data, root)
		if err != nil {
			return nil, fmt.Errorf("error decoding %s: %w", arg, err)
		}
		return memdoc.FromReader(rd)
	}
	doc, err := parse.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", arg, err)
	}
	return doc, nil
}

func render(cfg *MainConfig, w io.Writer, src event.Reader) error {
	enc := encode.New(w, cfg.encOpts(w)...)
	if err := event.Copy(enc, src); err != nil {
		return err
	}
	return enc.Close()
}

func inputArgs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}
