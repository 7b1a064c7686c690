package deriv

import (
	"math"
	"math/cmplx"
	"strconv"
)

// Value is the set of numeric domains an expression tree ranges over: real
// float64 or complex complex128. Arithmetic, equality, and negation work
// uniformly across both; exponentiation, the transcendental functions, and
// formatting dispatch on the concrete domain.
type Value interface {
	float64 | complex128
}

// lit converts a small integer literal to the domain T.
func lit[T Value](n int) T {
	var v T
	switch p := any(&v).(type) {
	case *float64:
		*p = float64(n)
	case *complex128:
		*p = complex(float64(n), 0)
	}
	return v
}

// fromFloat converts a real literal to the domain T.
func fromFloat[T Value](f float64) T {
	var v T
	switch p := any(&v).(type) {
	case *float64:
		*p = f
	case *complex128:
		*p = complex(f, 0)
	}
	return v
}

// fromImag converts an imaginary literal to the domain T. It reports false
// if T is the real domain.
func fromImag[T Value](f float64) (T, bool) {
	var v T
	p, ok := any(&v).(*complex128)
	if !ok {
		return v, false
	}
	*p = complex(0, f)
	return v, true
}

// isComplex reports whether T is the complex domain.
func isComplex[T Value]() bool {
	var zero T
	_, ok := any(zero).(complex128)
	return ok
}

// domainPow raises base to exp using the domain's exponentiation. The real
// domain follows math.Pow, so a negative base with a non-integer exponent
// yields NaN, which propagates as a value rather than an error.
func domainPow[T Value](base, exp T) T {
	switch b := any(base).(type) {
	case float64:
		return any(math.Pow(b, any(exp).(float64))).(T)
	case complex128:
		return any(cmplx.Pow(b, any(exp).(complex128))).(T)
	}
	panic("deriv: unreachable")
}

// domainFunc applies fn to x in the domain T.
func domainFunc[T Value](fn Func, x T) T {
	switch v := any(x).(type) {
	case float64:
		var r float64
		switch fn {
		case Sin:
			r = math.Sin(v)
		case Cos:
			r = math.Cos(v)
		case Ln:
			r = math.Log(v)
		case Exp:
			r = math.Exp(v)
		default:
			panic("deriv: invalid function " + fn.String())
		}
		return any(r).(T)
	case complex128:
		var r complex128
		switch fn {
		case Sin:
			r = cmplx.Sin(v)
		case Cos:
			r = cmplx.Cos(v)
		case Ln:
			r = cmplx.Log(v)
		case Exp:
			r = cmplx.Exp(v)
		default:
			panic("deriv: invalid function " + fn.String())
		}
		return any(r).(T)
	}
	panic("deriv: unreachable")
}

// formatValue renders a constant leaf. Real values render without a decimal
// point when integral and wrapped in parentheses when negative, so that a
// negated constant stays unambiguous inside a serialized expression. Complex
// values render as "0", a bare real part, "<imag>i", or "(<real> ± <imag>i)"
// depending on which parts are nonzero.
func formatValue[T Value](v T) string {
	switch v := any(v).(type) {
	case float64:
		if v < 0 {
			return "(" + formatReal(v) + ")"
		}
		return formatReal(v)
	case complex128:
		re, im := real(v), imag(v)
		switch {
		case re == 0 && im == 0:
			return "0"
		case im == 0:
			return formatReal(re)
		case re == 0:
			return formatReal(im) + "i"
		case im < 0:
			return "(" + formatReal(re) + " - " + formatReal(-im) + "i)"
		default:
			return "(" + formatReal(re) + " + " + formatReal(im) + "i)"
		}
	}
	panic("deriv: unreachable")
}

// formatReal renders a real number, dropping the decimal point when the
// value is integral.
func formatReal(f float64) string {
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
