package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	cli "github.com/urfave/cli/v3"
)

func main() {

	// allow graceful shutdown on interrupt
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	app := &cli.Command{
		Name:            "csselq",
		Usage:           "match selector queries against HTML and XML documents",
		HideHelpCommand: true,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "queries", Aliases: []string{"q"}, Required: true,
				Usage: "load selector queries from `FILE` (YAML)"},
			&cli.BoolFlag{Name: "xml", Usage: "treat input files as XML instead of HTML"},
			&cli.StringFlag{Name: "scope-id",
				Usage: "element with `ID` becomes the :scope reference for pseudo predicates"},
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "enable debug logging"},
		},
		ArgsUsage: "FILE [FILE...]",
		Action:    run,
	}

	var err error
	// NOTE: os.Exit is called at the end of main to set exit code, make sure
	// there are no other deferred functions after that
	defer func() {
		stop()
		if err != nil {
			fmt.Fprintf(os.Stderr, "csselq: %v\n", err)
			os.Exit(1)
		}
	}()
	err = app.Run(ctx, os.Args)
}
