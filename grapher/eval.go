package grapher

import (
	"fmt"
)

// EvalExpr is the single evaluation entry point: dispatch on the shape
// of expr against the given frame. Recursion depth follows the
// expression tree plus user call depth; there is no trampoline and no
// tail-call elimination.
func (env *Interp) EvalExpr(expr Sexp, frame *Frame) (Sexp, error) {
	switch e := expr.(type) {
	case SexpInt:
		return e, nil
	case SexpFloat:
		return e, nil
	case SexpSentinel:
		return e, nil
	case *SexpFunction:
		return e, nil
	case SexpSymbol:
		val, err := frame.Lookup(e.name)
		if err != nil {
			return SexpNull, env.wrapErr(err, expr, frame)
		}
		return val, nil
	case SexpList:
		if len(e) == 0 {
			return SexpNull, nil
		}
		if head, isSym := e[0].(SexpSymbol); isSym {
			switch head.name {
			case "define":
				return env.evalDefine(e, frame)
			case "lambda":
				return env.evalLambda(e, frame)
			case "begin":
				return env.evalBegin(e[1:], frame)
			case "let":
				return env.evalLet(e, frame)
			case "set!":
				return env.evalSet(e, frame)
			}
		}
		return env.evalApply(e, frame)
	}
	return SexpNull, env.wrapErr(
		fmt.Errorf("cannot evaluate %T", expr), expr, frame)
}

// wrapErr attaches the failing expression and frame depth exactly once,
// at the innermost point a failure surfaces. Already-wrapped errors
// pass through so the context of the original failure survives.
func (env *Interp) wrapErr(err error, expr Sexp, frame *Frame) error {
	if _, already := err.(*EvalError); already {
		return err
	}
	return &EvalError{Expr: expr, Depth: frame.Depth(), Err: err}
}

// evalDefine handles both definition forms:
//
//	(define name expr)
//	(define (name params...) body...)
//
// The second is sugar for binding a lambda. Either way the defined
// value is returned and bound in the current frame, shadowing any
// binding visible through the parent chain.
func (env *Interp) evalDefine(form SexpList, frame *Frame) (Sexp, error) {
	if len(form) < 3 {
		return SexpNull, env.wrapErr(
			fmt.Errorf("bad define: expected (define name expr) or (define (name params...) body...)"),
			form, frame)
	}
	switch target := form[1].(type) {
	case SexpSymbol:
		if len(form) != 3 {
			return SexpNull, env.wrapErr(
				fmt.Errorf("bad define: too many forms for variable definition"),
				form, frame)
		}
		val, err := env.EvalExpr(form[2], frame)
		if err != nil {
			return SexpNull, err
		}
		// adopt the bound name for a fresh anonymous closure, so call
		// frames and diagram nodes read `(square)` instead of `(lambda)`
		if fn, isFn := val.(*SexpFunction); isFn && !fn.IsBuiltin() && fn.name == "lambda" {
			fn.name = target.name
		}
		frame.Define(target.name, val)
		return val, nil
	case SexpList:
		if len(target) == 0 {
			return SexpNull, env.wrapErr(
				fmt.Errorf("bad define: missing function name"), form, frame)
		}
		nameSym, ok := target[0].(SexpSymbol)
		if !ok {
			return SexpNull, env.wrapErr(
				fmt.Errorf("bad define: function name must be a symbol"), form, frame)
		}
		params, err := paramNames(target[1:])
		if err != nil {
			return SexpNull, env.wrapErr(err, form, frame)
		}
		closure := env.newClosure(nameSym.name, params, wrapBody(form[2:]), frame)
		frame.Define(nameSym.name, closure)
		return closure, nil
	}
	return SexpNull, env.wrapErr(
		fmt.Errorf("bad define: cannot define `%s`", form[1].SexpString()),
		form, frame)
}

// evalLambda builds an anonymous closure capturing the current frame.
func (env *Interp) evalLambda(form SexpList, frame *Frame) (Sexp, error) {
	if len(form) < 3 {
		return SexpNull, env.wrapErr(
			fmt.Errorf("bad lambda: expected (lambda (params...) body...)"),
			form, frame)
	}
	paramList, ok := form[1].(SexpList)
	if !ok {
		return SexpNull, env.wrapErr(
			fmt.Errorf("bad lambda: parameter list must be a list"), form, frame)
	}
	params, err := paramNames(paramList)
	if err != nil {
		return SexpNull, env.wrapErr(err, form, frame)
	}
	return env.newClosure("lambda", params, wrapBody(form[2:]), frame), nil
}

func (env *Interp) evalBegin(body SexpList, frame *Frame) (Sexp, error) {
	var result Sexp = SexpNull
	var err error
	for _, expr := range body {
		result, err = env.EvalExpr(expr, frame)
		if err != nil {
			return SexpNull, err
		}
	}
	return result, nil
}

// evalLet creates one new frame, child of the current frame. Binding
// expressions are evaluated in the outer frame, so let bindings cannot
// see each other.
func (env *Interp) evalLet(form SexpList, frame *Frame) (Sexp, error) {
	if len(form) < 3 {
		return SexpNull, env.wrapErr(
			fmt.Errorf("bad let: expected (let ((name expr)...) body...)"),
			form, frame)
	}
	bindings, ok := form[1].(SexpList)
	if !ok {
		return SexpNull, env.wrapErr(
			fmt.Errorf("bad let: binding list must be a list"), form, frame)
	}
	letFrame := env.NewFrame(frame, "let")
	for _, b := range bindings {
		pair, ok := b.(SexpList)
		if !ok || len(pair) != 2 {
			return SexpNull, env.wrapErr(
				fmt.Errorf("bad let binding: `%s`", b.SexpString()), form, frame)
		}
		sym, ok := pair[0].(SexpSymbol)
		if !ok {
			return SexpNull, env.wrapErr(
				fmt.Errorf("bad let binding: `%s` is not a symbol", pair[0].SexpString()),
				form, frame)
		}
		val, err := env.EvalExpr(pair[1], frame)
		if err != nil {
			return SexpNull, err
		}
		letFrame.Define(sym.name, val)
	}
	return env.evalBegin(form[2:], letFrame)
}

// evalSet rebinds the nearest existing binding; it never defines.
func (env *Interp) evalSet(form SexpList, frame *Frame) (Sexp, error) {
	if len(form) != 3 {
		return SexpNull, env.wrapErr(
			fmt.Errorf("bad set!: expected (set! name expr)"), form, frame)
	}
	sym, ok := form[1].(SexpSymbol)
	if !ok {
		return SexpNull, env.wrapErr(
			fmt.Errorf("bad set!: `%s` is not a symbol", form[1].SexpString()),
			form, frame)
	}
	val, err := env.EvalExpr(form[2], frame)
	if err != nil {
		return SexpNull, err
	}
	if err := frame.UpdateSymbol(sym.name, val); err != nil {
		return SexpNull, env.wrapErr(err, form, frame)
	}
	return val, nil
}

// evalApply evaluates the operator, then every argument left to right,
// all in the caller's frame, and applies.
func (env *Interp) evalApply(form SexpList, frame *Frame) (Sexp, error) {
	head, err := env.EvalExpr(form[0], frame)
	if err != nil {
		return SexpNull, err
	}
	fn, ok := head.(*SexpFunction)
	if !ok {
		return SexpNull, env.wrapErr(&NotAFunctionError{Value: head}, form, frame)
	}
	args := make([]Sexp, 0, len(form)-1)
	for _, argExpr := range form[1:] {
		arg, err := env.EvalExpr(argExpr, frame)
		if err != nil {
			return SexpNull, err
		}
		args = append(args, arg)
	}
	res, err := env.Apply(fn, args)
	if err != nil {
		return SexpNull, env.wrapErr(err, form, frame)
	}
	return res, nil
}

// Apply invokes fn on already-evaluated arguments. A closure call
// creates exactly one new frame whose parent is the closure's captured
// frame, never the caller's.
func (env *Interp) Apply(fn *SexpFunction, args []Sexp) (Sexp, error) {
	if fn.IsBuiltin() {
		return fn.builtin(env, fn.name, args)
	}
	if len(args) != len(fn.params) {
		return SexpNull, &WrongNargsError{Expected: len(fn.params), Got: len(args)}
	}
	seen := make(map[string]bool, len(fn.params))
	for _, p := range fn.params {
		if seen[p] {
			return SexpNull, &DuplicateParamError{Name: p}
		}
		seen[p] = true
	}
	callFrame := env.NewFrame(fn.defFrame, fn.name)
	for i, p := range fn.params {
		callFrame.Define(p, args[i])
	}
	return env.EvalExpr(fn.body, callFrame)
}

func paramNames(params SexpList) ([]string, error) {
	names := make([]string, 0, len(params))
	for _, p := range params {
		sym, ok := p.(SexpSymbol)
		if !ok {
			return nil, fmt.Errorf("parameter `%s` is not a symbol", p.SexpString())
		}
		names = append(names, sym.name)
	}
	return names, nil
}

// wrapBody turns a multi-expression function body into a single
// (begin ...) form; a one-expression body is used as-is.
func wrapBody(body SexpList) Sexp {
	if len(body) == 1 {
		return body[0]
	}
	wrapped := make(SexpList, 0, len(body)+1)
	wrapped = append(wrapped, MakeSymbol("begin"))
	wrapped = append(wrapped, body...)
	return wrapped
}
