package deriv_test

import (
	"fmt"
	"log"

	"github.com/mkrail/deriv"
)

func Example() {
	n, err := deriv.ParseString[float64]("x^2 + sin(x)")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(n)
	d, err := n.Diff("x")
	if err != nil {
		log.Fatal(err)
	}
	s, err := d.Simplify()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(s)
	r, err := s.Eval(map[string]float64{"x": 0})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(r)
	// Output:
	// ((x ^ 2) + sin(x))
	// ((2 * x) + cos(x))
	// 1
}

func ExampleParseString_complex() {
	n, err := deriv.ParseString[complex128]("(1 + 2i) * x")
	if err != nil {
		log.Fatal(err)
	}
	r, err := n.Eval(map[string]complex128{"x": complex(0, 1)})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(n)
	fmt.Println(r)
	// Output:
	// ((1 + 2i) * x)
	// (-2+1i)
}
