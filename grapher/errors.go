package grapher

import (
	"fmt"
	"strings"
)

// UnboundSymbolError reports a lookup that exhausted the frame chain.
type UnboundSymbolError struct {
	Name string
}

func (e *UnboundSymbolError) Error() string {
	return fmt.Sprintf("symbol `%s` not found", e.Name)
}

// NotAFunctionError reports an application whose head evaluated to a
// value that is neither a closure nor a builtin.
type NotAFunctionError struct {
	Value Sexp
}

func (e *NotAFunctionError) Error() string {
	return fmt.Sprintf("cannot apply `%s`: not a function", e.Value.SexpString())
}

// WrongNargsError reports a call with the wrong argument count.
type WrongNargsError struct {
	Expected int
	Got      int
}

func (e *WrongNargsError) Error() string {
	return fmt.Sprintf("wrong number of arguments: expected %d, got %d",
		e.Expected, e.Got)
}

// ArithmeticError reports division by zero or a non-numeric operand
// handed to one of the arithmetic builtins.
type ArithmeticError struct {
	Op       string
	Operands []Sexp
	Reason   string
}

func (e *ArithmeticError) Error() string {
	strs := make([]string, len(e.Operands))
	for i, x := range e.Operands {
		strs[i] = x.SexpString()
	}
	return fmt.Sprintf("arithmetic error in `%s` on (%s): %s",
		e.Op, strings.Join(strs, " "), e.Reason)
}

// DuplicateParamError reports a closure applied with a repeated name
// in its parameter list, which would make the parameter binding
// ambiguous.
type DuplicateParamError struct {
	Name string
}

func (e *DuplicateParamError) Error() string {
	return fmt.Sprintf("duplicate parameter name `%s`", e.Name)
}

// EvalError wraps the first failure inside an evaluation with the
// expression being evaluated and the frame-chain depth at the point of
// failure. Inner typed errors stay reachable through Unwrap.
type EvalError struct {
	Expr  Sexp
	Depth int
	Err   error
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("error evaluating `%s` (frame depth %d): %v",
		e.Expr.SexpString(), e.Depth, e.Err)
}

func (e *EvalError) Unwrap() error {
	return e.Err
}
