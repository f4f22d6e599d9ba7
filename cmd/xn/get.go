package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a query", cli.ErrUsage)
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
			pos := seq.Current()
			if cfg.ID {
				fmt.Fprintln(cc.Out, pos.UniqueID())
				continue
			}
			if err := render(cfg.MainConfig, cc.Out, pos.Events()); err != nil {
				return fmt.Errorf("error encoding result: %w", err)
			}
			fmt.Fprintln(cc.Out)
		}
	}
	return nil
}
