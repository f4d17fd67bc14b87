package grapher

import (
	"fmt"
	"sort"
	"strings"
)

// Frame is one environment: a binding table plus a link to the
// enclosing frame. Parent is set at creation and never reassigned, so
// the frame graph stays an acyclic forest rooted at the global frame.
// Frames are shared: a frame may be the parent of many call frames and
// the captured environment of many closures at once.
type Frame struct {
	ID       int
	Name     string
	IsGlobal bool
	Parent   *Frame
	Bindings map[string]Sexp
}

// Define inserts or overwrites a binding in this frame only. A
// definition shadows any binding of the same name visible through
// Parent; ancestors are never touched.
func (f *Frame) Define(name string, val Sexp) {
	f.Bindings[name] = val
}

// Lookup searches this frame, then its parent, and so on up the chain.
func (f *Frame) Lookup(name string) (Sexp, error) {
	for fr := f; fr != nil; fr = fr.Parent {
		if val, ok := fr.Bindings[name]; ok {
			return val, nil
		}
	}
	return SexpNull, &UnboundSymbolError{Name: name}
}

// UpdateSymbol rebinds the nearest existing binding for name, walking
// the parent chain. Unlike Define it never creates a binding.
func (f *Frame) UpdateSymbol(name string, val Sexp) error {
	for fr := f; fr != nil; fr = fr.Parent {
		if _, ok := fr.Bindings[name]; ok {
			fr.Bindings[name] = val
			return nil
		}
	}
	return &UnboundSymbolError{Name: name}
}

// Depth counts the frames on the chain from here to the root.
func (f *Frame) Depth() int {
	n := 0
	for fr := f; fr != nil; fr = fr.Parent {
		n++
	}
	return n
}

// SortedNames returns the binding names of this frame in sorted order,
// for deterministic display and export.
func (f *Frame) SortedNames() []string {
	names := make([]string, 0, len(f.Bindings))
	for name := range f.Bindings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Show renders the frame for the repl `dump` command.
func (f *Frame) Show(indent int, label string) string {
	rep := strings.Repeat(" ", indent)
	rep4 := strings.Repeat(" ", indent+4)
	s := fmt.Sprintf("%s %s env%d (%s)\n", rep, label, f.ID, f.Name)
	if len(f.Bindings) == 0 {
		s += fmt.Sprintf("%s empty-frame: no symbols\n", rep4)
		return s
	}
	for _, name := range f.SortedNames() {
		s += fmt.Sprintf("%s %s -> %s\n", rep4, name, f.Bindings[name].SexpString())
	}
	return s
}

func (f *Frame) SexpString() string {
	label := "frame"
	if f.IsGlobal {
		label += " (global)"
	}
	return f.Show(0, label)
}
