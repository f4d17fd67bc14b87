package grapher

import (
	"strings"
)

// Interp is one evaluation run: the global frame, the frame/closure
// registry, and the id counters. Nothing here is package-level state,
// so independent runs never interfere.
type Interp struct {
	registry      *Registry
	global        *Frame
	nextFrameID   int
	nextClosureID int
}

// NewInterp builds a fresh run with the global frame (env0) already
// registered and seeded with the arithmetic builtins.
func NewInterp() *Interp {
	env := &Interp{
		registry: NewRegistry(),
	}
	glob := &Frame{
		ID:       env.nextFrameID,
		Name:     "global",
		IsGlobal: true,
		Bindings: make(map[string]Sexp),
	}
	env.nextFrameID++
	env.registry.RegisterFrame(glob)
	env.global = glob

	for name, fn := range BuiltinFunctions() {
		glob.Define(name, MakeBuiltinFunction(name, fn))
	}
	return env
}

func (env *Interp) GlobalFrame() *Frame {
	return env.global
}

func (env *Interp) Registry() *Registry {
	return env.registry
}

// NewFrame allocates an empty frame whose parent is the given frame
// and registers it before returning. Parent may be nil only for the
// global frame, which NewInterp creates itself.
func (env *Interp) NewFrame(parent *Frame, name string) *Frame {
	f := &Frame{
		ID:       env.nextFrameID,
		Name:     name,
		Parent:   parent,
		Bindings: make(map[string]Sexp),
	}
	env.nextFrameID++
	env.registry.RegisterFrame(f)
	return f
}

func (env *Interp) newClosure(name string, params []string, body Sexp, def *Frame) *SexpFunction {
	c := &SexpFunction{
		id:       env.nextClosureID,
		name:     name,
		params:   params,
		body:     body,
		defFrame: def,
	}
	env.nextClosureID++
	env.registry.RegisterClosure(c)
	return c
}

// MakeBuiltinFunction wraps a native operation. Builtins live outside
// the closure registry; they capture no frame.
func MakeBuiltinFunction(name string, fn BuiltinFunc) *SexpFunction {
	return &SexpFunction{
		id:      -1,
		name:    name,
		builtin: fn,
	}
}

// EvalString parses src and evaluates each top-level form in order
// against the global frame, returning the value of the last form. The
// first failing form stops evaluation and its error is returned;
// bindings committed before the failure remain in place.
func (env *Interp) EvalString(src string) (Sexp, error) {
	exprs, err := ParseString(src)
	if err != nil {
		return SexpNull, err
	}
	if len(exprs) == 0 {
		return SexpNull, NoExpressionsFound
	}
	var result Sexp = SexpNull
	for _, expr := range exprs {
		result, err = env.EvalExpr(expr, env.global)
		if err != nil {
			return SexpNull, err
		}
	}
	return result, nil
}

// DumpEnvironment prints every registered frame, for the repl `dump`
// command.
func (env *Interp) DumpEnvironment() string {
	var sb strings.Builder
	for _, f := range env.registry.Frames {
		label := "frame"
		if f.IsGlobal {
			label = "global frame"
		}
		sb.WriteString(f.Show(0, label))
	}
	return sb.String()
}
