package main

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/chzyer/readline"
	"github.com/mitchellh/cli"

	"github.com/mkrail/deriv"
)

type replCommand struct {
	ui cli.Ui
}

func (c *replCommand) Help() string {
	return strings.TrimSpace(`
Usage: deriv repl

  Start an interactive session over the real numbers. Enter an expression
  to evaluate it with the current bindings, or one of:

    let <name> = <expr>   Evaluate expr and bind the result to name.
    diff <name> <expr>    Print the simplified derivative of expr by name.
    vars                  List the current bindings.
    help                  Print this message.
    quit                  Leave the session.
`)
}

func (c *replCommand) Synopsis() string {
	return "interactive session"
}

func (c *replCommand) Run(args []string) int {
	if len(args) != 0 {
		c.ui.Error("repl takes no arguments")
		return 1
	}
	rl, err := readline.New("deriv> ")
	if err != nil {
		c.ui.Error(err.Error())
		return 1
	}
	defer rl.Close()
	bindings := map[string]float64{}
	for {
		line, err := rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
				return 0
			}
			c.ui.Error(err.Error())
			return 1
		}
		line = strings.TrimSpace(line)
		switch {
		case line == "":
			continue
		case line == "quit", line == "exit":
			return 0
		case line == "help":
			c.ui.Output(c.Help())
		case line == "vars":
			names := make([]string, 0, len(bindings))
			for name := range bindings {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				c.ui.Output(fmt.Sprintf("%s = %v", name, bindings[name]))
			}
		case strings.HasPrefix(line, "let "):
			c.let(line, bindings)
		case strings.HasPrefix(line, "diff "):
			c.diff(line)
		default:
			n, err := deriv.ParseString[float64](line)
			if err != nil {
				c.ui.Error(err.Error())
				continue
			}
			r, err := n.Eval(bindings)
			if err != nil {
				c.ui.Error(err.Error())
				continue
			}
			c.ui.Output(fmt.Sprintf("%v", r))
		}
	}
}

func (c *replCommand) let(line string, bindings map[string]float64) {
	rest := strings.TrimPrefix(line, "let ")
	name, src, ok := strings.Cut(rest, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		c.ui.Error("let requires the form: let <name> = <expr>")
		return
	}
	n, err := deriv.ParseString[float64](src)
	if err != nil {
		c.ui.Error(err.Error())
		return
	}
	r, err := n.Eval(bindings)
	if err != nil {
		c.ui.Error(err.Error())
		return
	}
	bindings[name] = r
	c.ui.Output(fmt.Sprintf("%s = %v", name, r))
}

func (c *replCommand) diff(line string) {
	rest := strings.TrimPrefix(line, "diff ")
	name, src, ok := strings.Cut(strings.TrimSpace(rest), " ")
	if !ok {
		c.ui.Error("diff requires the form: diff <name> <expr>")
		return
	}
	n, err := deriv.ParseString[float64](src)
	if err != nil {
		c.ui.Error(err.Error())
		return
	}
	d, err := n.Diff(name)
	if err != nil {
		c.ui.Error(err.Error())
		return
	}
	d, err = d.Simplify()
	if err != nil {
		c.ui.Error(err.Error())
		return
	}
	c.ui.Output(d.String())
}
