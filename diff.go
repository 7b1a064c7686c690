package deriv

// Diff returns the partial derivative of the tree with respect to the named
// variable. The result is a fresh tree sharing no nodes with n; operands a
// rule carries over unchanged are deep-copied. Differentiation never
// evaluates non-constant subtrees. It fails only with *UnsupportedError,
// for exponentiation over the complex domain.
func (n *Node[T]) Diff(name string) (*Node[T], error) {
	switch n.kind {
	case KindConst:
		return Const(lit[T](0)), nil
	case KindVar:
		if n.name == name {
			return Const(lit[T](1)), nil
		}
		return Const(lit[T](0)), nil
	case KindUnary:
		d, err := n.left.Diff(name)
		if err != nil {
			return nil, err
		}
		e := n.left
		switch n.fn {
		case Sin:
			return Bin(Mul, Apply(Cos, e.Clone()), d), nil
		case Cos:
			return Bin(Mul, Bin(Mul, Const(lit[T](-1)), Apply(Sin, e.Clone())), d), nil
		case Ln:
			return Bin(Div, d, e.Clone()), nil
		case Exp:
			return Bin(Mul, Apply(Exp, e.Clone()), d), nil
		}
		panic("deriv: invalid function " + n.fn.String())
	case KindBinary:
		if n.op == Pow {
			return n.diffPow(name)
		}
		dl, err := n.left.Diff(name)
		if err != nil {
			return nil, err
		}
		dr, err := n.right.Diff(name)
		if err != nil {
			return nil, err
		}
		switch n.op {
		case Add:
			return Bin(Add, dl, dr), nil
		case Sub:
			return Bin(Sub, dl, dr), nil
		case Mul:
			// Product rule: l'r + lr'.
			return Bin(Add, Bin(Mul, dl, n.right.Clone()), Bin(Mul, n.left.Clone(), dr)), nil
		case Div:
			// Quotient rule: (l'r - lr') / r^2.
			num := Bin(Sub, Bin(Mul, dl, n.right.Clone()), Bin(Mul, n.left.Clone(), dr))
			den := Bin(Pow, n.right.Clone(), Const(lit[T](2)))
			return Bin(Div, num, den), nil
		}
		panic("deriv: invalid operator " + n.op.String())
	}
	panic("deriv: invalid node kind " + n.kind.String())
}

// diffPow differentiates an exponentiation. The case split inspects only
// whether either operand is a literal constant; constants never reference
// variables, so no evaluation is needed.
func (n *Node[T]) diffPow(name string) (*Node[T], error) {
	if isComplex[T]() {
		return nil, &UnsupportedError{Op: n.op.String()}
	}
	l, r := n.left, n.right
	if r.kind == KindConst {
		// Power rule for any constant exponent c: c * l^(c-1) * l'.
		dl, err := l.Diff(name)
		if err != nil {
			return nil, err
		}
		down := Const(r.val - lit[T](1))
		return Bin(Mul, r.Clone(), Bin(Mul, Bin(Pow, l.Clone(), down), dl)), nil
	}
	if l.kind == KindConst {
		// Exponential rule: r' * c^r * ln(c).
		dr, err := r.Diff(name)
		if err != nil {
			return nil, err
		}
		return Bin(Mul, dr, Bin(Mul, Bin(Pow, l.Clone(), r.Clone()), Apply(Ln, l.Clone()))), nil
	}
	// Neither operand constant: logarithmic differentiation,
	// r' ln(l) + r l'/l.
	dl, err := l.Diff(name)
	if err != nil {
		return nil, err
	}
	dr, err := r.Diff(name)
	if err != nil {
		return nil, err
	}
	return Bin(Add, Bin(Mul, dr, Apply(Ln, l.Clone())), Bin(Mul, r.Clone(), Bin(Div, dl, l.Clone()))), nil
}
