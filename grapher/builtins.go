package grapher

// NumericFunction backs the four arithmetic builtins. Each takes
// exactly two numeric operands.
func NumericFunction(env *Interp, name string, args []Sexp) (Sexp, error) {
	if len(args) != 2 {
		return SexpNull, &WrongNargsError{Expected: 2, Got: len(args)}
	}

	var op NumericOp
	switch name {
	case "+":
		op = Add
	case "-":
		op = Sub
	case "*":
		op = Mult
	case "/":
		op = Div
	}

	return NumericDo(op, name, args[0], args[1])
}

// BuiltinFunctions is the table seeded into the global frame.
func BuiltinFunctions() map[string]BuiltinFunc {
	return map[string]BuiltinFunc{
		"+": NumericFunction,
		"-": NumericFunction,
		"*": NumericFunction,
		"/": NumericFunction,
	}
}
