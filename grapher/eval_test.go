package grapher

import (
	"errors"
	"testing"

	cv "github.com/glycerine/goconvey/convey"
)

func Test100SquareOfFiveIsTwentyFive(t *testing.T) {

	cv.Convey(`(define square (lambda (x) (* x x))) then (square 5) should give 25, creating exactly one call frame with x -> 5 whose parent is global`, t, func() {

		env := NewInterp()
		_, err := env.EvalString(`(define square (lambda (x) (* x x)))`)
		cv.So(err, cv.ShouldEqual, nil)

		res, err := env.EvalString(`(square 5)`)
		cv.So(err, cv.ShouldEqual, nil)
		cv.So(res, cv.ShouldResemble, SexpInt(25))

		frames := env.Registry().Frames
		cv.So(len(frames), cv.ShouldEqual, 2)
		call := frames[1]
		cv.So(call.Parent, cv.ShouldEqual, env.GlobalFrame())
		cv.So(len(call.Bindings), cv.ShouldEqual, 1)
		cv.So(call.Bindings["x"], cv.ShouldResemble, SexpInt(5))
	})
}

func Test101NestedClosureCapturesCallFrame(t *testing.T) {

	cv.Convey(`((add3 3) 4) should give 7, with the inner closure capturing the add3 call frame where x -> 3`, t, func() {

		env := NewInterp()
		_, err := env.EvalString(`(define add3 (lambda (x) (lambda (y) (+ x y))))`)
		cv.So(err, cv.ShouldEqual, nil)

		res, err := env.EvalString(`((add3 3) 4)`)
		cv.So(err, cv.ShouldEqual, nil)
		cv.So(res, cv.ShouldResemble, SexpInt(7))

		closures := env.Registry().Closures
		cv.So(len(closures), cv.ShouldEqual, 2)
		inner := closures[1]
		callFrame := env.Registry().Frames[1]
		cv.So(inner.DefFrame(), cv.ShouldEqual, callFrame)
		cv.So(callFrame.Bindings["x"], cv.ShouldResemble, SexpInt(3))

		innerCall := env.Registry().Frames[2]
		cv.So(innerCall.Parent, cv.ShouldEqual, callFrame)
		cv.So(innerCall.Bindings["y"], cv.ShouldResemble, SexpInt(4))
	})
}

func Test102TopLevelFormsAreIndependent(t *testing.T) {

	cv.Convey(`(define y (+ 1 2)) commits y -> 3 even though a later lookup of z fails unbound`, t, func() {

		env := NewInterp()
		res, err := env.EvalString(`(define y (+ 1 2))`)
		cv.So(err, cv.ShouldEqual, nil)
		cv.So(res, cv.ShouldResemble, SexpInt(3))

		_, err = env.EvalString(`z`)
		var unbound *UnboundSymbolError
		cv.So(errors.As(err, &unbound), cv.ShouldBeTrue)
		cv.So(unbound.Name, cv.ShouldEqual, "z")

		// the failure left y in place
		res, err = env.EvalString(`y`)
		cv.So(err, cv.ShouldEqual, nil)
		cv.So(res, cv.ShouldResemble, SexpInt(3))
	})
}

func Test103ApplyingANonFunctionFails(t *testing.T) {

	cv.Convey(`(5 1 2) should fail with NotAFunctionError carrying the head value`, t, func() {

		env := NewInterp()
		_, err := env.EvalString(`(5 1 2)`)
		var notFn *NotAFunctionError
		cv.So(errors.As(err, &notFn), cv.ShouldBeTrue)
		cv.So(notFn.Value, cv.ShouldResemble, SexpInt(5))
	})
}

func Test104DivisionByZeroFails(t *testing.T) {

	cv.Convey(`(div 4 0) should fail with an ArithmeticError naming "/" and both operands`, t, func() {

		env := NewInterp()
		_, err := env.EvalString(`(define div (lambda (a b) (/ a b)))`)
		cv.So(err, cv.ShouldEqual, nil)

		_, err = env.EvalString(`(div 4 0)`)
		var arith *ArithmeticError
		cv.So(errors.As(err, &arith), cv.ShouldBeTrue)
		cv.So(arith.Op, cv.ShouldEqual, "/")
		cv.So(arith.Operands, cv.ShouldResemble, []Sexp{SexpInt(4), SexpInt(0)})
	})
}

func Test105ScopingIsLexicalNotDynamic(t *testing.T) {

	cv.Convey(`A closure sees the x visible where it was defined, not the x at the call site`, t, func() {

		env := NewInterp()
		_, err := env.EvalString(`(define f (let ((x 42)) (lambda () x)))`)
		cv.So(err, cv.ShouldEqual, nil)
		_, err = env.EvalString(`(define x 7)`)
		cv.So(err, cv.ShouldEqual, nil)

		res, err := env.EvalString(`(f)`)
		cv.So(err, cv.ShouldEqual, nil)
		cv.So(res, cv.ShouldResemble, SexpInt(42))
	})
}

func Test106ParameterShadowingLeavesGlobalAlone(t *testing.T) {

	cv.Convey(`A parameter named x shadows a global x inside the call but never alters it`, t, func() {

		env := NewInterp()
		_, err := env.EvalString(`(define x 5)`)
		cv.So(err, cv.ShouldEqual, nil)
		_, err = env.EvalString(`(define id (lambda (x) x))`)
		cv.So(err, cv.ShouldEqual, nil)

		res, err := env.EvalString(`(id 99)`)
		cv.So(err, cv.ShouldEqual, nil)
		cv.So(res, cv.ShouldResemble, SexpInt(99))

		res, err = env.EvalString(`x`)
		cv.So(err, cv.ShouldEqual, nil)
		cv.So(res, cv.ShouldResemble, SexpInt(5))
	})
}

func Test107ArityAndDuplicateParamsAreRejected(t *testing.T) {

	cv.Convey(`Calling a 1-parameter closure with 2 arguments fails with WrongNargsError`, t, func() {

		env := NewInterp()
		_, err := env.EvalString(`(define square (lambda (x) (* x x)))`)
		cv.So(err, cv.ShouldEqual, nil)

		_, err = env.EvalString(`(square 1 2)`)
		var nargs *WrongNargsError
		cv.So(errors.As(err, &nargs), cv.ShouldBeTrue)
		cv.So(nargs.Expected, cv.ShouldEqual, 1)
		cv.So(nargs.Got, cv.ShouldEqual, 2)
	})

	cv.Convey(`A repeated parameter name is rejected at application time`, t, func() {

		env := NewInterp()
		_, err := env.EvalString(`((lambda (a a) a) 1 2)`)
		var dup *DuplicateParamError
		cv.So(errors.As(err, &dup), cv.ShouldBeTrue)
		cv.So(dup.Name, cv.ShouldEqual, "a")
	})
}

func Test108DefineSugarAndReturnValues(t *testing.T) {

	cv.Convey(`(define (sq x) (* x x)) is sugar for binding a lambda, and define returns the defined value`, t, func() {

		env := NewInterp()
		res, err := env.EvalString(`(define (sq x) (* x x))`)
		cv.So(err, cv.ShouldEqual, nil)
		fn, isFn := res.(*SexpFunction)
		cv.So(isFn, cv.ShouldBeTrue)
		cv.So(fn.IsBuiltin(), cv.ShouldBeFalse)
		cv.So(fn.Params(), cv.ShouldResemble, []string{"x"})
		cv.So(fn.DefFrame(), cv.ShouldEqual, env.GlobalFrame())

		res, err = env.EvalString(`(sq 6)`)
		cv.So(err, cv.ShouldEqual, nil)
		cv.So(res, cv.ShouldResemble, SexpInt(36))

		res, err = env.EvalString(`(define v 11)`)
		cv.So(err, cv.ShouldEqual, nil)
		cv.So(res, cv.ShouldResemble, SexpInt(11))
	})
}

func Test109BeginLetAndSet(t *testing.T) {

	cv.Convey(`begin sequences and returns the last value; the empty body gives null`, t, func() {

		env := NewInterp()
		res, err := env.EvalString(`(begin 1 2 3)`)
		cv.So(err, cv.ShouldEqual, nil)
		cv.So(res, cv.ShouldResemble, SexpInt(3))

		res, err = env.EvalString(`(begin)`)
		cv.So(err, cv.ShouldEqual, nil)
		cv.So(res, cv.ShouldResemble, SexpNull)
	})

	cv.Convey(`let evaluates binding expressions in the outer frame and the body in one new child frame`, t, func() {

		env := NewInterp()
		_, err := env.EvalString(`(define a 10)`)
		cv.So(err, cv.ShouldEqual, nil)

		res, err := env.EvalString(`(let ((a 1) (b a)) b)`)
		cv.So(err, cv.ShouldEqual, nil)
		cv.So(res, cv.ShouldResemble, SexpInt(10))

		letFrame := env.Registry().Frames[1]
		cv.So(letFrame.Name, cv.ShouldEqual, "let")
		cv.So(letFrame.Parent, cv.ShouldEqual, env.GlobalFrame())
	})

	cv.Convey(`set! rebinds the nearest visible binding, and refuses unbound names`, t, func() {

		env := NewInterp()
		_, err := env.EvalString(`(define x 1)`)
		cv.So(err, cv.ShouldEqual, nil)
		_, err = env.EvalString(`(define bump (lambda () (set! x (+ x 1))))`)
		cv.So(err, cv.ShouldEqual, nil)

		res, err := env.EvalString(`(bump)`)
		cv.So(err, cv.ShouldEqual, nil)
		cv.So(res, cv.ShouldResemble, SexpInt(2))

		res, err = env.EvalString(`x`)
		cv.So(err, cv.ShouldEqual, nil)
		cv.So(res, cv.ShouldResemble, SexpInt(2))

		_, err = env.EvalString(`(set! nope 3)`)
		var unbound *UnboundSymbolError
		cv.So(errors.As(err, &unbound), cv.ShouldBeTrue)
	})
}

func Test110EmptyListAndMultiExprBodies(t *testing.T) {

	cv.Convey(`The empty list evaluates to null, and a multi-expression lambda body runs in sequence`, t, func() {

		env := NewInterp()
		res, err := env.EvalString(`()`)
		cv.So(err, cv.ShouldEqual, nil)
		cv.So(res, cv.ShouldResemble, SexpNull)

		_, err = env.EvalString(`(define f (lambda (x) (define y (* x 2)) (+ y 1)))`)
		cv.So(err, cv.ShouldEqual, nil)
		res, err = env.EvalString(`(f 3)`)
		cv.So(err, cv.ShouldEqual, nil)
		cv.So(res, cv.ShouldResemble, SexpInt(7))
	})
}

func Test111ErrorsCarryExpressionAndDepth(t *testing.T) {

	cv.Convey(`A failure deep in a call should surface wrapped with the failing expression and frame depth`, t, func() {

		env := NewInterp()
		_, err := env.EvalString(`(define f (lambda (a) missing))`)
		cv.So(err, cv.ShouldEqual, nil)

		_, err = env.EvalString(`(f 1)`)
		var ee *EvalError
		cv.So(errors.As(err, &ee), cv.ShouldBeTrue)
		cv.So(ee.Expr.SexpString(), cv.ShouldEqual, "missing")
		cv.So(ee.Depth, cv.ShouldEqual, 2) // call frame on top of global
	})
}
