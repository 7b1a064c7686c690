// Package deriv evaluates, symbolically differentiates, and simplifies
// mathematical expressions represented as immutable trees, generic over a
// real (float64) or complex (complex128) numeric domain.
//
// Trees come from the parser ("x^2 + sin(x)") or from the Const, Var, Apply,
// and Bin constructors. Every operation is a pure recursive walk with no
// shared state: Eval computes a value against a variable binding map, String
// renders the fully parenthesized infix form, Diff builds the partial
// derivative with respect to a variable, and Simplify folds constants and
// strips algebraic identities in a single bottom-up pass. Operations never
// mutate their input, so a tree may be read concurrently by any number of
// callers.
package deriv
