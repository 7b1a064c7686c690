package deriv

import "strconv"

// NameError is an error from evaluating a variable that is missing from the
// bindings. Unbound variables are always a hard error, never a silent zero.
type NameError struct {
	// Name is the variable name that was missing.
	Name string
}

func (err *NameError) Error() string {
	return "undefined variable: " + strconv.Quote(err.Name)
}

// DivisionByZeroError is an error from a division whose divisor is the
// domain zero. Evaluation reports it when the divisor evaluates to zero;
// simplification reports it when folding a division of one literal constant
// by another that is zero.
type DivisionByZeroError struct {
	// Expr is the serialized divisor expression, when known.
	Expr string
}

func (err *DivisionByZeroError) Error() string {
	if err.Expr == "" {
		return "division by zero"
	}
	return "division by zero: " + err.Expr
}

// UnsupportedError is an error from differentiating an operation that has no
// rule in the active domain. The only such operation is exponentiation over
// the complex domain.
type UnsupportedError struct {
	// Op is the operation that cannot be differentiated.
	Op string
}

func (err *UnsupportedError) Error() string {
	return "cannot differentiate " + err.Op + " over the complex domain"
}
