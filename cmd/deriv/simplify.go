package main

import (
	"flag"
	"strings"

	"github.com/mitchellh/cli"

	"github.com/mkrail/deriv"
)

type simplifyCommand struct {
	ui cli.Ui
}

func (c *simplifyCommand) Help() string {
	return strings.TrimSpace(`
Usage: deriv simplify [options] <expr>

  Parse the expression and print its simplified form.

Options:
  -tree       Print the result as a tree instead of an expression.
  -complex    Simplify over the complex numbers.
`)
}

func (c *simplifyCommand) Synopsis() string {
	return "simplify an expression"
}

func (c *simplifyCommand) Run(args []string) int {
	fs := flag.NewFlagSet("simplify", flag.ContinueOnError)
	fs.Usage = func() { c.ui.Output(c.Help()) }
	tree := fs.Bool("tree", false, "print as a tree")
	cmplx := fs.Bool("complex", false, "simplify over the complex numbers")
	if err := fs.Parse(args); err != nil {
		return 1
	}
	if fs.NArg() != 1 {
		c.ui.Error("simplify requires exactly one expression argument")
		return 1
	}
	if *cmplx {
		return runSimplify[complex128](c.ui, fs.Arg(0), *tree)
	}
	return runSimplify[float64](c.ui, fs.Arg(0), *tree)
}

func runSimplify[T deriv.Value](ui cli.Ui, src string, tree bool) int {
	n, err := deriv.ParseString[T](src)
	if err != nil {
		ui.Error(err.Error())
		return 1
	}
	s, err := n.Simplify()
	if err != nil {
		ui.Error(err.Error())
		return 1
	}
	if tree {
		ui.Output(s.Dump())
		return 0
	}
	ui.Output(s.String())
	return 0
}
