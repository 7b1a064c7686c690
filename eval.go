package deriv

// Eval evaluates the tree against bindings, a mapping from variable name to
// a value in the domain. Operands evaluate left before right. Eval fails
// with *NameError when the tree uses a variable absent from bindings and
// with *DivisionByZeroError when a divisor evaluates to the domain zero.
// Values outside a function's real domain, such as math.Pow with a negative
// base and non-integer exponent, propagate as NaN rather than as errors.
func (n *Node[T]) Eval(bindings map[string]T) (T, error) {
	var zero T
	switch n.kind {
	case KindConst:
		return n.val, nil
	case KindVar:
		v, ok := bindings[n.name]
		if !ok {
			return zero, &NameError{Name: n.name}
		}
		return v, nil
	case KindUnary:
		x, err := n.left.Eval(bindings)
		if err != nil {
			return zero, err
		}
		return domainFunc(n.fn, x), nil
	case KindBinary:
		l, err := n.left.Eval(bindings)
		if err != nil {
			return zero, err
		}
		r, err := n.right.Eval(bindings)
		if err != nil {
			return zero, err
		}
		switch n.op {
		case Add:
			return l + r, nil
		case Sub:
			return l - r, nil
		case Mul:
			return l * r, nil
		case Div:
			if r == zero {
				return zero, &DivisionByZeroError{Expr: n.right.String()}
			}
			return l / r, nil
		case Pow:
			return domainPow(l, r), nil
		}
		panic("deriv: invalid operator " + n.op.String())
	}
	panic("deriv: invalid node kind " + n.kind.String())
}
