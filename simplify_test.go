package deriv

import (
	"errors"
	"testing"
)

func TestSimplify(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"x + 0", "x"},
		{"0 + x", "x"},
		{"x - 0", "x"},
		{"0 - x", "((-1) * x)"},
		{"1 + 2", "3"},
		{"5 - 2", "3"},
		{"0 * x", "0"},
		{"x * 0", "0"},
		{"1 * x", "x"},
		{"x * 1", "x"},
		{"x / 1", "x"},
		{"x ^ 1", "x"},
		{"x ^ 0", "1"},
		{"sin(x) ^ 1", "sin(x)"},
		{"1 * 1", "1"},
		{"2 * 1", "2"},
		{"6 / 1", "6"},
		{"2 * 3", "(2 * 3)"}, // no general constant folding for * and /
		{"6 / 3", "(6 / 3)"},
		{"x + y", "(x + y)"},
		{"sin(x * 1)", "sin(x)"},
		{"(0 * x) + 5", "5"},
		{"x * (3 - 3)", "0"},
		{"(x + 0) * (y ^ 1)", "(x * y)"},
		{"(1 + 1) + (x - x)", "(2 + (x - x))"}, // x - x is not folded
		{"x / 0", "0"},                         // zero folding wins over the divisor
	}
	for _, c := range cases {
		t.Run(c.src, func(t *testing.T) {
			n, err := ParseString[float64](c.src)
			if err != nil {
				t.Fatalf("error parsing %q: %v", c.src, err)
			}
			s, err := n.Simplify()
			if err != nil {
				t.Fatalf("error simplifying %q: %v", c.src, err)
			}
			if got := s.String(); got != c.want {
				t.Errorf("wrong simplification of %q: want %q, got %q", c.src, c.want, got)
			}
			// A single pass leaves nothing for a second one on these
			// inputs.
			again, err := s.Simplify()
			if err != nil {
				t.Fatalf("error re-simplifying %q: %v", s, err)
			}
			if !again.Equal(s) {
				t.Errorf("re-simplifying %q gives %q", s, again)
			}
		})
	}
}

func TestSimplifyComplex(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"x * 1", "x"},
		{"0 + 2i", "2i"},
		{"2i * 0", "0"},
		{"x ^ 0", "1"},
	}
	for _, c := range cases {
		t.Run(c.src, func(t *testing.T) {
			n, err := ParseString[complex128](c.src)
			if err != nil {
				t.Fatalf("error parsing %q: %v", c.src, err)
			}
			s, err := n.Simplify()
			if err != nil {
				t.Fatalf("error simplifying %q: %v", c.src, err)
			}
			if got := s.String(); got != c.want {
				t.Errorf("wrong simplification of %q: want %q, got %q", c.src, c.want, got)
			}
		})
	}
}

func TestSimplifyDivisionByZero(t *testing.T) {
	cases := []string{
		"1 / 0",
		"0 / 0",
		"x + 2 / 0",
	}
	for _, src := range cases {
		t.Run(src, func(t *testing.T) {
			n, err := ParseString[float64](src)
			if err != nil {
				t.Fatalf("error parsing %q: %v", src, err)
			}
			s, err := n.Simplify()
			var derr *DivisionByZeroError
			if !errors.As(err, &derr) {
				t.Fatalf("error simplifying %q is %#v, not *DivisionByZeroError (got %v)", src, err, s)
			}
		})
	}
}

func TestSimplifyFresh(t *testing.T) {
	n, err := ParseString[float64]("(x * 1) + 0")
	if err != nil {
		t.Fatalf("error parsing: %v", err)
	}
	before := n.String()
	if _, err := n.Simplify(); err != nil {
		t.Fatalf("error simplifying: %v", err)
	}
	if after := n.String(); after != before {
		t.Errorf("input changed: was %q, now %q", before, after)
	}
}

func TestSimplifyDerivative(t *testing.T) {
	n, err := ParseString[float64]("x^2 + sin(x)")
	if err != nil {
		t.Fatalf("error parsing: %v", err)
	}
	d, err := n.Diff("x")
	if err != nil {
		t.Fatalf("error differentiating: %v", err)
	}
	s, err := d.Simplify()
	if err != nil {
		t.Fatalf("error simplifying %v: %v", d, err)
	}
	if want, got := "((2 * x) + cos(x))", s.String(); got != want {
		t.Errorf("wrong simplified derivative: want %q, got %q", want, got)
	}
}
