package main

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/mitchellh/cli"

	"github.com/mkrail/deriv"
)

type evalCommand struct {
	ui cli.Ui
}

func (c *evalCommand) Help() string {
	return strings.TrimSpace(`
Usage: deriv eval [options] <expr>

  Parse the expression and evaluate it with the given variable bindings.

Options:
  -var name=value   Bind a variable. May be repeated.
  -complex          Evaluate over the complex numbers.
`)
}

func (c *evalCommand) Synopsis() string {
	return "evaluate an expression"
}

func (c *evalCommand) Run(args []string) int {
	fs := flag.NewFlagSet("eval", flag.ContinueOnError)
	fs.Usage = func() { c.ui.Output(c.Help()) }
	var vars []string
	fs.Func("var", "bind a variable as name=value", func(s string) error {
		if _, _, ok := strings.Cut(s, "="); !ok {
			return fmt.Errorf("binding %q is not of the form name=value", s)
		}
		vars = append(vars, s)
		return nil
	})
	cmplx := fs.Bool("complex", false, "evaluate over the complex numbers")
	if err := fs.Parse(args); err != nil {
		return 1
	}
	if fs.NArg() != 1 {
		c.ui.Error("eval requires exactly one expression argument")
		return 1
	}
	src := fs.Arg(0)
	if *cmplx {
		return runEval[complex128](c.ui, src, vars)
	}
	return runEval[float64](c.ui, src, vars)
}

func runEval[T deriv.Value](ui cli.Ui, src string, vars []string) int {
	bindings := make(map[string]T, len(vars))
	for _, v := range vars {
		name, value, _ := strings.Cut(v, "=")
		x, err := parseBinding[T](value)
		if err != nil {
			ui.Error(fmt.Sprintf("binding %s: %v", name, err))
			return 1
		}
		bindings[name] = x
	}
	n, err := deriv.ParseString[T](src)
	if err != nil {
		ui.Error(err.Error())
		return 1
	}
	r, err := n.Eval(bindings)
	if err != nil {
		ui.Error(err.Error())
		return 1
	}
	ui.Output(fmt.Sprintf("%s = %v", n, r))
	return 0
}

// parseBinding parses a numeric literal in T. Real bindings use the syntax
// of strconv.ParseFloat and complex ones that of strconv.ParseComplex.
func parseBinding[T deriv.Value](s string) (T, error) {
	var v T
	switch p := any(&v).(type) {
	case *float64:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return v, err
		}
		*p = f
	case *complex128:
		z, err := strconv.ParseComplex(s, 128)
		if err != nil {
			return v, err
		}
		*p = z
	}
	return v, nil
}
