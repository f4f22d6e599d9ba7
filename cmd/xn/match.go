package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func match(cfg *MatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Command.Parse(cc, args)
	if err != nil {
		cfg.Command.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: match requires one argument, a pattern", cli.ErrUsage)
	}
	pattern := args[0]
	matched := false
	for _, arg := range inputArgs(args[1:]) {
		doc, err := loadDoc(cfg.MainConfig, arg)
		if err != nil {
			return err
		}
		ok, err := doc.Root().Matches(pattern)
		if err != nil {
			return fmt.Errorf("error matching %s with %s: %w", arg, pattern, err)
		}
		if !ok {
			continue
		}
		matched = true
		if !cfg.Quiet {
			fmt.Fprintln(cc.Out, arg)
		}
	}
	if !matched {
		return cli.ExitCodeErr(1)
	}
	return nil
}
