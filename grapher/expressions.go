package grapher

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

var SexpIntSize = reflect.TypeOf(SexpInt(0)).Bits()
var SexpFloatSize = reflect.TypeOf(SexpFloat(0.0)).Bits()

// Sexp is implemented by every value the evaluator can produce or
// consume: numbers, symbols, lists, functions, and the null sentinel.
type Sexp interface {
	SexpString() string
}

type SexpInt int64
type SexpFloat float64

type SexpSentinel int

const (
	// SexpNull doubles as the empty result of definitions and other
	// forms that produce no useful value.
	SexpNull SexpSentinel = iota
	SexpEnd
)

func (sent SexpSentinel) SexpString() string {
	if sent == SexpNull {
		return "null"
	}
	if sent == SexpEnd {
		return "End"
	}
	return ""
}

func (i SexpInt) SexpString() string {
	return strconv.Itoa(int(i))
}

func (f SexpFloat) SexpString() string {
	return strconv.FormatFloat(float64(f), 'g', 5, SexpFloatSize)
}

type SexpSymbol struct {
	name string
}

func (sym SexpSymbol) SexpString() string {
	return sym.name
}

func (sym SexpSymbol) Name() string {
	return sym.name
}

func MakeSymbol(name string) SexpSymbol {
	return SexpSymbol{name: name}
}

// SexpList is an ordered sequence of expressions. The reader uses it
// for both code and data; the empty list is a valid, distinct value.
type SexpList []Sexp

func (lst SexpList) SexpString() string {
	strs := make([]string, len(lst))
	for i, x := range lst {
		strs[i] = x.SexpString()
	}
	return "(" + strings.Join(strs, " ") + ")"
}

// BuiltinFunc is the native-function calling convention, mirroring the
// (env, name, args) shape used for user functions in the interpreter.
type BuiltinFunc func(env *Interp, name string, args []Sexp) (Sexp, error)

// SexpFunction is either a builtin (builtin != nil) or a user closure.
// A closure holds its parameter names, body, and the frame that was
// current when the lambda was evaluated. defFrame is set once at
// creation and never reassigned; that is what makes scoping lexical.
type SexpFunction struct {
	id       int
	name     string
	builtin  BuiltinFunc
	params   []string
	body     Sexp
	defFrame *Frame
}

func (sf *SexpFunction) IsBuiltin() bool {
	return sf.builtin != nil
}

func (sf *SexpFunction) ID() int {
	return sf.id
}

func (sf *SexpFunction) Name() string {
	return sf.name
}

func (sf *SexpFunction) Params() []string {
	return sf.params
}

func (sf *SexpFunction) Body() Sexp {
	return sf.body
}

// DefFrame returns the frame captured when the closure was created.
// Builtins capture nothing and return nil.
func (sf *SexpFunction) DefFrame() *Frame {
	return sf.defFrame
}

func (sf *SexpFunction) SexpString() string {
	if sf.IsBuiltin() {
		return "fn [" + sf.name + "]"
	}
	return fmt.Sprintf("<closure#%d params=(%s) def-env=env%d>",
		sf.id, strings.Join(sf.params, " "), sf.defFrame.ID)
}
