// Command deriv parses, evaluates, differentiates, and simplifies
// expressions over the real or complex numbers.
package main

import (
	"fmt"
	"os"

	"github.com/mitchellh/cli"
)

const version = "0.1.0"

func main() {
	ui := &cli.BasicUi{
		Reader:      os.Stdin,
		Writer:      os.Stdout,
		ErrorWriter: os.Stderr,
	}
	c := cli.NewCLI("deriv", version)
	c.Args = os.Args[1:]
	c.Commands = map[string]cli.CommandFactory{
		"eval": func() (cli.Command, error) {
			return &evalCommand{ui: ui}, nil
		},
		"diff": func() (cli.Command, error) {
			return &diffCommand{ui: ui}, nil
		},
		"simplify": func() (cli.Command, error) {
			return &simplifyCommand{ui: ui}, nil
		},
		"repl": func() (cli.Command, error) {
			return &replCommand{ui: ui}, nil
		},
	}
	status, err := c.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	os.Exit(status)
}
