package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"
)

var version = "v0.1.0"

func main() {
	a := &app{
		stdin:    os.Stdin,
		stdout:   os.Stdout,
		logger:   log.NewWithOptions(os.Stderr, log.Options{Prefix: "b64"}),
		terminal: term.IsTerminal(int(os.Stdout.Fd())),
	}

	if err := a.command(version).Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
