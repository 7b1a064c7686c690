package deriv

// Simplify rewrites the tree into an algebraically smaller or equal tree
// using a fixed table of identities: constant folding for addition and
// subtraction, zero and one folding for multiplication and division, and the
// pow identities l^1 = l and l^0 = 1. Children are simplified before their
// parent, so folds compose upward through nested structure, but the pass
// runs exactly once rather than to a fixed point: a rewrite that exposes a
// new pattern above the node being rewritten is left for a later call.
//
// The result is a fresh tree. Simplify fails with *DivisionByZeroError when
// it folds a division of one literal constant by another that is zero;
// dividing a non-constant expression by a literal zero instead follows the
// zero-folding rule and collapses to the constant zero.
func (n *Node[T]) Simplify() (*Node[T], error) {
	var zero T
	one := lit[T](1)
	switch n.kind {
	case KindConst, KindVar:
		return n.Clone(), nil
	case KindUnary:
		operand, err := n.left.Simplify()
		if err != nil {
			return nil, err
		}
		return Apply(n.fn, operand), nil
	case KindBinary:
		left, err := n.left.Simplify()
		if err != nil {
			return nil, err
		}
		right, err := n.right.Simplify()
		if err != nil {
			return nil, err
		}
		lc := left.kind == KindConst
		rc := right.kind == KindConst
		switch n.op {
		case Add, Sub:
			if lc && rc {
				if n.op == Add {
					return Const(left.val + right.val), nil
				}
				return Const(left.val - right.val), nil
			}
			if lc && left.val == zero {
				if n.op == Sub {
					// 0 - r has no negation variant; lower to (-1) * r.
					return Bin(Mul, Const(lit[T](-1)), right), nil
				}
				return right, nil
			}
			if rc && right.val == zero {
				return left, nil
			}
		case Mul, Div:
			switch {
			case lc && rc:
				if left.val == zero || right.val == zero {
					if n.op == Mul {
						return Const(zero), nil
					}
					if right.val == zero {
						return nil, &DivisionByZeroError{Expr: right.String()}
					}
					return Const(zero), nil
				}
				if left.val == one || right.val == one {
					if n.op == Mul {
						return Const(left.val * right.val), nil
					}
					return Const(left.val / right.val), nil
				}
			case lc:
				if left.val == zero {
					return Const(zero), nil
				}
				if left.val == one && n.op == Mul {
					return right, nil
				}
			case rc:
				if right.val == zero {
					return Const(zero), nil
				}
				if right.val == one {
					return left, nil
				}
			}
		case Pow:
			if rc && right.val == one {
				return left, nil
			}
			if rc && right.val == zero {
				return Const(one), nil
			}
		}
		return Bin(n.op, left, right), nil
	}
	panic("deriv: invalid node kind " + n.kind.String())
}
