package main

import (
	"context"

	"github.com/scott-cotton/cli"
	_ "github.com/xmlnav/go-xmlnav/eval"
)

func main() {
	cli.MainContext(context.Background(), MainCommand())
}
