package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		cfg.View.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	for _, arg := range inputArgs(args) {
		doc, err := loadDoc(cfg.MainConfig, arg)
		if err != nil {
			return err
		}
		root := doc.Root()
		src := root.Events()
		if cfg.Inner {
			src = root.ChildEvents()
		}
		if err := render(cfg.MainConfig, cc.Out, src); err != nil {
			return fmt.Errorf("error rendering %s: %w", arg, err)
		}
		fmt.Fprintln(cc.Out)
	}
	return nil
}
