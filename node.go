package deriv

import (
	"sort"
	"strconv"
)

// Kind discriminates the variants of a Node.
type Kind int8

const (
	// KindConst is a constant leaf holding a value in the domain.
	KindConst Kind = iota
	// KindVar is a variable leaf holding a name.
	KindVar
	// KindUnary is the application of a function to one operand.
	KindUnary
	// KindBinary is the application of an operator to two ordered operands.
	KindBinary
)

func (k Kind) String() string {
	switch k {
	case KindConst:
		return "Const"
	case KindVar:
		return "Var"
	case KindUnary:
		return "Unary"
	case KindBinary:
		return "Binary"
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Func identifies a unary function.
type Func int8

const (
	Sin Func = iota
	Cos
	Ln
	Exp
)

func (fn Func) String() string {
	switch fn {
	case Sin:
		return "sin"
	case Cos:
		return "cos"
	case Ln:
		return "ln"
	case Exp:
		return "exp"
	}
	return "Func(" + strconv.Itoa(int(fn)) + ")"
}

// Op identifies a binary operator.
type Op int8

const (
	Add Op = iota
	Sub
	Mul
	Div
	Pow
)

func (op Op) String() string {
	switch op {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	case Pow:
		return "^"
	}
	return "Op(" + strconv.Itoa(int(op)) + ")"
}

// Precedence returns the binding strength of the operator: 1 for Add and
// Sub, 2 for Mul and Div, 3 for Pow. Higher binds tighter.
func (op Op) Precedence() int {
	switch op {
	case Add, Sub:
		return 1
	case Mul, Div:
		return 2
	case Pow:
		return 3
	}
	panic("deriv: invalid operator " + op.String())
}

// Node is one node of an expression tree over the numeric domain T. A tree
// owns its children exclusively and is immutable once built: every operation
// that produces a tree returns fresh nodes and never edits or aliases its
// input.
type Node[T Value] struct {
	kind Kind
	val  T      // KindConst
	name string // KindVar
	fn   Func   // KindUnary
	op   Op     // KindBinary
	// left holds the operand of a unary application; left and right hold
	// the ordered operands of a binary application.
	left, right *Node[T]
}

// Const returns a constant leaf.
func Const[T Value](v T) *Node[T] {
	return &Node[T]{kind: KindConst, val: v}
}

// Var returns a variable leaf. Names are opaque identifiers, compared by
// exact string equality when the tree is evaluated or differentiated.
func Var[T Value](name string) *Node[T] {
	return &Node[T]{kind: KindVar, name: name}
}

// Apply returns the application of fn to operand.
func Apply[T Value](fn Func, operand *Node[T]) *Node[T] {
	return &Node[T]{kind: KindUnary, fn: fn, left: operand}
}

// Bin returns the binary application l op r. Operand order is significant;
// construction never inspects or evaluates the operands.
func Bin[T Value](op Op, l, r *Node[T]) *Node[T] {
	return &Node[T]{kind: KindBinary, op: op, left: l, right: r}
}

// Kind returns the variant of the node.
func (n *Node[T]) Kind() Kind {
	return n.kind
}

// Clone returns a deep copy of the tree sharing no nodes with n.
func (n *Node[T]) Clone() *Node[T] {
	if n == nil {
		return nil
	}
	m := *n
	m.left = n.left.Clone()
	m.right = n.right.Clone()
	return &m
}

// Equal reports whether n and o are structurally identical.
func (n *Node[T]) Equal(o *Node[T]) bool {
	if n == nil || o == nil {
		return n == o
	}
	if n.kind != o.kind {
		return false
	}
	switch n.kind {
	case KindConst:
		return n.val == o.val
	case KindVar:
		return n.name == o.name
	case KindUnary:
		return n.fn == o.fn && n.left.Equal(o.left)
	case KindBinary:
		return n.op == o.op && n.left.Equal(o.left) && n.right.Equal(o.right)
	}
	panic("deriv: invalid node kind " + n.kind.String())
}

// Vars returns the sorted names of the variables appearing in the tree.
func (n *Node[T]) Vars() []string {
	seen := make(map[string]bool)
	n.vars(seen)
	if len(seen) == 0 {
		return nil
	}
	names := make([]string, 0, len(seen))
	for k := range seen {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func (n *Node[T]) vars(seen map[string]bool) {
	switch n.kind {
	case KindConst:
	case KindVar:
		seen[n.name] = true
	case KindUnary:
		n.left.vars(seen)
	case KindBinary:
		n.left.vars(seen)
		n.right.vars(seen)
	default:
		panic("deriv: invalid node kind " + n.kind.String())
	}
}
