package main

import (
	"flag"
	"strings"

	"github.com/mitchellh/cli"

	"github.com/mkrail/deriv"
)

type diffCommand struct {
	ui cli.Ui
}

func (c *diffCommand) Help() string {
	return strings.TrimSpace(`
Usage: deriv diff [options] <expr>

  Differentiate the expression and print the simplified derivative.

Options:
  -by name    Differentiate with respect to name. Defaults to x.
  -raw        Skip simplification of the derivative.
  -tree       Print the result as a tree instead of an expression.
  -complex    Differentiate over the complex numbers.
`)
}

func (c *diffCommand) Synopsis() string {
	return "differentiate an expression"
}

func (c *diffCommand) Run(args []string) int {
	fs := flag.NewFlagSet("diff", flag.ContinueOnError)
	fs.Usage = func() { c.ui.Output(c.Help()) }
	by := fs.String("by", "x", "variable to differentiate by")
	raw := fs.Bool("raw", false, "skip simplification")
	tree := fs.Bool("tree", false, "print as a tree")
	cmplx := fs.Bool("complex", false, "differentiate over the complex numbers")
	if err := fs.Parse(args); err != nil {
		return 1
	}
	if fs.NArg() != 1 {
		c.ui.Error("diff requires exactly one expression argument")
		return 1
	}
	if *cmplx {
		return runDiff[complex128](c.ui, fs.Arg(0), *by, *raw, *tree)
	}
	return runDiff[float64](c.ui, fs.Arg(0), *by, *raw, *tree)
}

func runDiff[T deriv.Value](ui cli.Ui, src, by string, raw, tree bool) int {
	n, err := deriv.ParseString[T](src)
	if err != nil {
		ui.Error(err.Error())
		return 1
	}
	d, err := n.Diff(by)
	if err != nil {
		ui.Error(err.Error())
		return 1
	}
	if !raw {
		d, err = d.Simplify()
		if err != nil {
			ui.Error(err.Error())
			return 1
		}
	}
	if tree {
		ui.Output(d.Dump())
		return 0
	}
	ui.Output(d.String())
	return 0
}
