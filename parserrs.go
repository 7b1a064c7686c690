package deriv

import "strconv"

// InputError is implemented by errors arising from invalid input to Parse or
// ParseString. It is not implemented by errors from the underlying reader or
// by evaluation errors.
type InputError interface {
	error
	// Pos returns the position in the input at which the error occurred, in
	// runes, counting from 1.
	Pos() int
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*OperatorError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*CallError)(nil)
	_ InputError = (*TermError)(nil)
	_ InputError = (*DomainLiteralError)(nil)
)

func errpos(col int, msg string) string {
	return "column " + strconv.Itoa(col) + ": " + msg
}

// OperatorError indicates a misplaced operator, e.g. two binary operators in
// a row or an operator with no right operand.
type OperatorError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the operator that was misused.
	Operator string
	// Unary indicates that the operator appeared where a term was expected
	// but cannot be used as a sign.
	Unary bool
}

func (err *OperatorError) Error() string {
	if err.Unary {
		return errpos(err.Col, "operator "+err.Operator+" cannot begin a term")
	}
	return errpos(err.Col, "operator "+err.Operator+" has no operand")
}

func (err *OperatorError) Pos() int {
	return err.Col
}

// BracketError indicates mismatched parentheses.
type BracketError struct {
	// Col is the position of the offending bracket, or of the end of the
	// input when a close bracket is missing.
	Col int
	// Left indicates an unclosed open bracket.
	Left bool
	// Right indicates an unmatched close bracket.
	Right bool
}

func (err *BracketError) Error() string {
	switch {
	case err.Left:
		return errpos(err.Col, "unclosed parenthesis")
	case err.Right:
		return errpos(err.Col, "unmatched close parenthesis")
	}
	return errpos(err.Col, "bracket error")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// EmptyExpressionError indicates an expression with no terms, either the
// whole input or a parenthesized group.
type EmptyExpressionError struct {
	// Col is the position at which a term was expected.
	Col int
	// End indicates that the input ended where a term was expected.
	End bool
}

func (err *EmptyExpressionError) Error() string {
	if err.End {
		return errpos(err.Col, "expression ends where a term is expected")
	}
	return errpos(err.Col, "empty expression")
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

// CallError indicates a function name not followed by a parenthesized
// operand.
type CallError struct {
	// Col is the position of the function name.
	Col int
	// Func is the function name.
	Func string
}

func (err *CallError) Error() string {
	return errpos(err.Col, "function "+err.Func+" requires a parenthesized operand")
}

func (err *CallError) Pos() int {
	return err.Col
}

// TermError indicates two adjacent terms with no operator between them.
type TermError struct {
	// Col is the position of the second term.
	Col int
	// Text is the text of the second term.
	Text string
}

func (err *TermError) Error() string {
	return errpos(err.Col, "missing operator before "+strconv.Quote(err.Text))
}

func (err *TermError) Pos() int {
	return err.Col
}

// DomainLiteralError indicates an imaginary literal in an expression parsed
// over the real domain.
type DomainLiteralError struct {
	// Col is the position of the literal.
	Col int
	// Text is the literal's text, including the i suffix.
	Text string
}

func (err *DomainLiteralError) Error() string {
	return errpos(err.Col, "imaginary literal "+strconv.Quote(err.Text)+" in a real expression")
}

func (err *DomainLiteralError) Pos() int {
	return err.Col
}
