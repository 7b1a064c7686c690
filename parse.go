package deriv

import (
	"errors"
	"io"
	"strconv"
	"strings"
)

// Expressions are parsed according to the following grammar:
//
//	expr   = term {binop term} .
//	term   = NUM | IMAG | IDENT | func "(" expr ")" | ("+" | "-") term | "(" expr ")" .
//	func   = "sin" | "cos" | "ln" | "exp" .
//	binop  = "+" | "-" | "*" | "/" | "^" .
//
// Binary operators follow the usual precedence: ^ binds tightest and
// associates to the right, then * and /, then + and -, all left-associative.
// A unary minus binds tighter than * but looser than ^ and lowers to a
// negative constant when its operand is a literal, or to multiplication by
// -1 otherwise.

// funcNames maps identifiers to the functions they denote. Any other
// identifier is a variable.
var funcNames = map[string]Func{
	"sin": Sin,
	"cos": Cos,
	"ln":  Ln,
	"exp": Exp,
}

// Parse parses an expression over the domain T from src. If the input is
// invalid, the returned error is an InputError describing the problem and
// its position; errors from src are returned as-is.
func Parse[T Value](src io.RuneScanner) (*Node[T], error) {
	scan := lex(src)
	n, err := parseExpr[T](scan, 0)
	if err != nil {
		return nil, err
	}
	tok := scan.must()
	if n == nil {
		if tok.kind == tokenClose {
			return nil, &BracketError{Col: tok.pos, Right: true}
		}
		return nil, &EmptyExpressionError{Col: tok.pos, End: true}
	}
	if tok.kind == tokenClose {
		return nil, &BracketError{Col: tok.pos, Right: true}
	}
	return n, nil
}

// ParseString parses an expression over the domain T from src.
func ParseString[T Value](src string) (*Node[T], error) {
	return Parse[T](strings.NewReader(src))
}

// parseExpr parses an expression by precedence climbing, folding in binary
// operators whose precedence is at least min. The token that ends the
// expression is pushed back to the lexer, including when the result is nil
// because the expression is empty.
func parseExpr[T Value](scan *lexer, min int) (*Node[T], error) {
	left, err := parseTerm[T](scan)
	if err != nil || left == nil {
		return left, err
	}
	for {
		tok, err := scan.next()
		if err != nil {
			return nil, err
		}
		switch tok.kind {
		case tokenOp: // do nothing
		case tokenEOF, tokenClose:
			scan.push(tok)
			return left, nil
		default:
			return nil, &TermError{Col: tok.pos, Text: tok.text}
		}
		op := binop(tok.text)
		prec := op.Precedence()
		if prec < min {
			scan.push(tok)
			return left, nil
		}
		// Right associativity for ^ falls out of recursing at the same
		// precedence rather than one higher.
		next := prec + 1
		if op == Pow {
			next = prec
		}
		right, err := parseExpr[T](scan, next)
		if err != nil {
			return nil, err
		}
		if right == nil {
			return nil, &OperatorError{Col: tok.pos, Operator: tok.text}
		}
		left = Bin(op, left, right)
	}
}

// parseTerm parses a single term. If the next token ends the expression
// instead of starting a term, the result is nil, nil and the token is
// pushed back to the lexer.
func parseTerm[T Value](scan *lexer) (*Node[T], error) {
	tok, err := scan.next()
	if err != nil {
		return nil, err
	}
	switch tok.kind {
	case tokenNum:
		f, err := parseNumber(tok)
		if err != nil {
			return nil, err
		}
		return Const(fromFloat[T](f)), nil
	case tokenImag:
		f, err := parseNumber(tok)
		if err != nil {
			return nil, err
		}
		v, ok := fromImag[T](f)
		if !ok {
			return nil, &DomainLiteralError{Col: tok.pos, Text: tok.text}
		}
		return Const(v), nil
	case tokenIdent:
		fn, ok := funcNames[tok.text]
		if !ok {
			return Var[T](tok.text), nil
		}
		open, err := scan.next()
		if err != nil {
			return nil, err
		}
		if open.kind != tokenOpen {
			return nil, &CallError{Col: tok.pos, Func: tok.text}
		}
		arg, err := parseExpr[T](scan, 0)
		if err != nil {
			return nil, err
		}
		end := scan.must()
		if arg == nil {
			if end.kind == tokenClose {
				return nil, &EmptyExpressionError{Col: end.pos}
			}
			return nil, &BracketError{Col: end.pos, Left: true}
		}
		if end.kind != tokenClose {
			return nil, &BracketError{Col: end.pos, Left: true}
		}
		return Apply(fn, arg), nil
	case tokenOp:
		switch tok.text {
		case "+":
			return parseTerm[T](scan)
		case "-":
			// The sign binds looser than ^ so that -x^2 is -(x^2).
			operand, err := parseExpr[T](scan, Pow.Precedence())
			if err != nil {
				return nil, err
			}
			if operand == nil {
				return nil, &OperatorError{Col: tok.pos, Operator: tok.text}
			}
			if operand.kind == KindConst {
				return Const(-operand.val), nil
			}
			return Bin(Mul, Const(lit[T](-1)), operand), nil
		}
		return nil, &OperatorError{Col: tok.pos, Operator: tok.text, Unary: true}
	case tokenOpen:
		n, err := parseExpr[T](scan, 0)
		if err != nil {
			return nil, err
		}
		end := scan.must()
		if n == nil {
			if end.kind == tokenClose {
				return nil, &EmptyExpressionError{Col: end.pos}
			}
			return nil, &BracketError{Col: end.pos, Left: true}
		}
		if end.kind != tokenClose {
			return nil, &BracketError{Col: end.pos, Left: true}
		}
		return n, nil
	case tokenClose, tokenEOF:
		scan.push(tok)
		return nil, nil
	}
	panic("deriv: invalid token " + tok.String())
}

// parseNumber parses the numeric value of a number or imaginary token,
// ignoring the i suffix if present. Out-of-range values saturate to
// infinity rather than failing.
func parseNumber(tok lexToken) (float64, error) {
	text := strings.TrimSuffix(tok.text, "i")
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		var ne *strconv.NumError
		if errors.As(err, &ne) && errors.Is(ne.Err, strconv.ErrRange) {
			return f, nil
		}
		return 0, &LexError{Text: tok.text, Kind: "number", Col: tok.pos}
	}
	return f, nil
}

// binop converts an operator token's text to its Op. Panics if the text is
// not an operator, which indicates a bug in the lexer.
func binop(text string) Op {
	switch text {
	case "+":
		return Add
	case "-":
		return Sub
	case "*":
		return Mul
	case "/":
		return Div
	case "^":
		return Pow
	}
	panic("deriv: not an operator: " + text)
}
