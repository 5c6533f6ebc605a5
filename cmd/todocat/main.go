package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/todocat/internal/cli"
	"github.com/alexanderramin/todocat/internal/config"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	env := cli.Env{
		Config: config.LoadConfig(),
		In:     os.Stdin,
		Out:    os.Stdout,
		Err:    os.Stderr,
		// Without a terminal on stdin, commands are read as a script.
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		},
	}

	return cli.NewRootCmd(env).Execute()
}
