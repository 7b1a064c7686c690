package deriv

import "strings"

// String renders the tree's canonical textual form: fully parenthesized
// infix with a space on either side of every binary operator, and function
// applications as "fn(operand)" regardless of the operand's shape.
func (n *Node[T]) String() string {
	var b strings.Builder
	n.fmt(&b)
	return b.String()
}

func (n *Node[T]) fmt(b *strings.Builder) {
	switch n.kind {
	case KindConst:
		b.WriteString(formatValue(n.val))
	case KindVar:
		b.WriteString(n.name)
	case KindUnary:
		b.WriteString(n.fn.String())
		b.WriteByte('(')
		n.left.fmt(b)
		b.WriteByte(')')
	case KindBinary:
		b.WriteByte('(')
		n.left.fmt(b)
		b.WriteByte(' ')
		b.WriteString(n.op.String())
		b.WriteByte(' ')
		n.right.fmt(b)
		b.WriteByte(')')
	default:
		panic("deriv: invalid node kind " + n.kind.String())
	}
}
