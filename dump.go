package deriv

import "github.com/xlab/treeprint"

// Dump renders the tree's structure, one node per line, for debugging and
// the command-line driver's -tree flag.
func (n *Node[T]) Dump() string {
	root := treeprint.New()
	n.dump(root)
	return root.String()
}

func (n *Node[T]) dump(br treeprint.Tree) {
	switch n.kind {
	case KindConst:
		br.AddNode(formatValue(n.val))
	case KindVar:
		br.AddNode(n.name)
	case KindUnary:
		n.left.dump(br.AddBranch(n.fn.String()))
	case KindBinary:
		b := br.AddBranch(n.op.String())
		n.left.dump(b)
		n.right.dump(b)
	default:
		panic("deriv: invalid node kind " + n.kind.String())
	}
}
