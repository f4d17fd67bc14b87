package grapher

type NumericOp int

const (
	Add NumericOp = iota
	Sub
	Mult
	Div
)

func NumericFloatDo(op NumericOp, a, b SexpFloat) Sexp {
	switch op {
	case Add:
		return a + b
	case Sub:
		return a - b
	case Mult:
		return a * b
	case Div:
		return a / b
	}
	return SexpNull
}

// NumericIntDo keeps integer division exact when it can: an inexact
// quotient falls back to a float result.
func NumericIntDo(op NumericOp, a, b SexpInt) Sexp {
	switch op {
	case Add:
		return a + b
	case Sub:
		return a - b
	case Mult:
		return a * b
	case Div:
		if a%b == 0 {
			return a / b
		}
		return SexpFloat(float64(a) / float64(b))
	}
	return SexpNull
}

func numericMatchFloat(op NumericOp, a SexpFloat, b Sexp) (Sexp, bool) {
	switch tb := b.(type) {
	case SexpFloat:
		return NumericFloatDo(op, a, tb), true
	case SexpInt:
		return NumericFloatDo(op, a, SexpFloat(tb)), true
	}
	return SexpNull, false
}

func numericMatchInt(op NumericOp, a SexpInt, b Sexp) (Sexp, bool) {
	switch tb := b.(type) {
	case SexpFloat:
		return NumericFloatDo(op, SexpFloat(a), tb), true
	case SexpInt:
		return NumericIntDo(op, a, tb), true
	}
	return SexpNull, false
}

func isZero(x Sexp) bool {
	switch n := x.(type) {
	case SexpInt:
		return n == 0
	case SexpFloat:
		return n == 0
	}
	return false
}

// NumericDo applies op to two operands, matching int and float
// representations. Type and division-by-zero failures carry the
// operator name and both operands.
func NumericDo(op NumericOp, name string, a, b Sexp) (Sexp, error) {
	if op == Div && isZero(b) {
		return SexpNull, &ArithmeticError{
			Op:       name,
			Operands: []Sexp{a, b},
			Reason:   "division by zero",
		}
	}
	var res Sexp
	matched := false
	switch ta := a.(type) {
	case SexpFloat:
		res, matched = numericMatchFloat(op, ta, b)
	case SexpInt:
		res, matched = numericMatchInt(op, ta, b)
	}
	if !matched {
		return SexpNull, &ArithmeticError{
			Op:       name,
			Operands: []Sexp{a, b},
			Reason:   "operands have invalid type",
		}
	}
	return res, nil
}
