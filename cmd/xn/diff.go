package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/xmlnav/go-xmlnav/markdiff"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two arguments", cli.ErrUsage)
	}
	a, b := args[0], args[1]
	if cfg.Reverse {
		a, b = b, a
	}
	docA, err := loadDoc(cfg.MainConfig, a)
	if err != nil {
		return err
	}
	docB, err := loadDoc(cfg.MainConfig, b)
	if err != nil {
		return err
	}
	diffs := markdiff.Diff(docA.Root().OuterMarkup(), docB.Root().OuterMarkup())
	if markdiff.Equal(diffs) {
		return nil
	}
	colored := cfg.Color
	if !colored {
		if f, ok := cc.Out.(*os.File); ok {
			colored = isatty.IsTerminal(f.Fd())
		}
	}
	if err := markdiff.Format(cc.Out, diffs, colored); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}
