package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func id(cfg *IDConfig, cc *cli.Context, args []string) error {
	args, err := cfg.ID.Parse(cc, args)
	if err != nil {
		cfg.ID.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: id requires one argument, a query", cli.ErrUsage)
	}
	query := args[0]
	for _, arg := range inputArgs(args[1:]) {
		doc, err := loadDoc(cfg.MainConfig, arg)
		if err != nil {
			return err
		}
		seq, err := doc.Root().Select(query)
		if err != nil {
			return fmt.Errorf("error querying %s with %s: %w", arg, query, err)
		}
		for seq.Next() {
			fmt.Fprintln(cc.Out, seq.Current().UniqueID())
		}
	}
	return nil
}
