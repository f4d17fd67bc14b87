package grapher

import (
	"fmt"
	"io"
	"strings"
)

// bindingLabel renders one binding for a diagram node. Closure values
// show up as a short reference so the arrow to the closure node stays
// readable.
func bindingLabel(val Sexp) string {
	if fn, isFn := val.(*SexpFunction); isFn && !fn.IsBuiltin() {
		return fmt.Sprintf("closure#%d", fn.id)
	}
	return val.SexpString()
}

func dotEscape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}

// WriteDot emits the environment diagram as Graphviz DOT source: one
// box per frame, one rounded box per closure, parent edges between
// frames, a labeled edge from each closure to its defining frame, and
// a labeled edge from a frame to each closure bound in it. Output is
// deterministic: frames and closures in creation order, bindings
// sorted by name.
func (env *Interp) WriteDot(w io.Writer) error {
	var sb strings.Builder
	sb.WriteString("digraph environment {\n")

	reg := env.registry
	for _, f := range reg.Frames {
		label := fmt.Sprintf("env%d (%s)\\n", f.ID, f.Name)
		for _, name := range f.SortedNames() {
			label += fmt.Sprintf("%s: %s\\n",
				dotEscape(name), dotEscape(bindingLabel(f.Bindings[name])))
		}
		sb.WriteString(fmt.Sprintf(
			"\t\"env_%d\" [label=\"%s\" shape=box style=filled fillcolor=lightyellow];\n",
			f.ID, label))
		if f.Parent != nil {
			sb.WriteString(fmt.Sprintf("\t\"env_%d\" -> \"env_%d\";\n",
				f.Parent.ID, f.ID))
		}
	}

	for _, c := range reg.Closures {
		label := fmt.Sprintf("closure#%d\\nparams: (%s)\\nbody: %s\\ndef-env: env%d",
			c.id, dotEscape(strings.Join(c.params, " ")),
			dotEscape(c.body.SexpString()), c.defFrame.ID)
		sb.WriteString(fmt.Sprintf(
			"\t\"closure_%d\" [label=\"%s\" shape=box style=\"rounded,filled\" fillcolor=lightblue];\n",
			c.id, label))
		sb.WriteString(fmt.Sprintf(
			"\t\"closure_%d\" -> \"env_%d\" [label=\"parent-env\"];\n",
			c.id, c.defFrame.ID))
	}

	for _, f := range reg.Frames {
		for _, name := range f.SortedNames() {
			if fn, isFn := f.Bindings[name].(*SexpFunction); isFn && !fn.IsBuiltin() {
				sb.WriteString(fmt.Sprintf(
					"\t\"env_%d\" -> \"closure_%d\" [label=\"%s\"];\n",
					f.ID, fn.id, dotEscape(name)))
			}
		}
	}

	sb.WriteString("}\n")
	_, err := io.WriteString(w, sb.String())
	return err
}

// DotString renders the diagram into a string.
func (env *Interp) DotString() string {
	var sb strings.Builder
	env.WriteDot(&sb)
	return sb.String()
}
