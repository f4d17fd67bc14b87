package grapher

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

func getLine(reader *bufio.Reader) (string, error) {
	line := make([]byte, 0)
	for {
		linepart, hasMore, err := reader.ReadLine()
		if err != nil {
			return "", err
		}
		line = append(line, linepart...)
		if !hasMore {
			break
		}
	}
	return string(line), nil
}

// NB this doesn't track comment state, so it will mis-count if an
// unbalanced '(' appears inside a comment.
func isBalanced(str string) bool {
	parens := 0
	for _, c := range str {
		switch c {
		case '(':
			parens++
		case ')':
			parens--
		}
	}
	return parens == 0
}

var continuationPrompt = "... "

// getExpression keeps reading lines until the parens balance, so a
// definition can span multiple lines at the prompt.
func (pr *Prompter) getExpression(reader *bufio.Reader, noLiner bool) (string, error) {
	var line, nextline string
	var err error

	if noLiner {
		fmt.Printf(pr.prompt)
		line, err = getLine(reader)
	} else {
		line, err = pr.Getline(nil)
	}
	if err != nil {
		return "", err
	}

	for !isBalanced(line) {
		if noLiner {
			fmt.Printf(continuationPrompt)
			nextline, err = getLine(reader)
		} else {
			nextline, err = pr.Getline(&continuationPrompt)
		}
		if err != nil {
			return "", err
		}
		line += "\n" + nextline
	}
	return line, nil
}

func processDumpCommand(env *Interp, args []string) {
	if len(args) > 0 && args[0] == "verbose" {
		DumpSnapshot(env.Registry().Snapshot())
		return
	}
	fmt.Print(env.DumpEnvironment())
}

// Repl reads balanced expressions, evaluates each against the shared
// global frame, and prints the result. A failing form reports its
// error and the loop continues; bindings committed before the failure
// stay in place.
func Repl(env *Interp, cfg *GrapherConfig) {
	reader := bufio.NewReader(os.Stdin)

	fmt.Printf("scheme environment-diagram grapher\n")
	fmt.Printf("type `quit` to finish; `dump` to inspect the frames recorded so far.\n")

	var pr *Prompter
	if !cfg.NoLiner {
		pr = NewPrompter()
		defer pr.Close()
	} else {
		pr = &Prompter{prompt: "grapher> "}
	}

	for {
		line, err := pr.getExpression(reader, cfg.NoLiner)
		if err == io.EOF {
			fmt.Printf("\n")
			return
		}
		if err != nil {
			fmt.Println(err)
			return
		}

		parts := strings.Split(strings.TrimSpace(line), " ")
		if len(parts) == 0 || parts[0] == "" {
			continue
		}

		if parts[0] == "quit" {
			return
		}

		if parts[0] == "dump" {
			processDumpCommand(env, parts[1:])
			continue
		}

		res, err := env.EvalString(line)
		switch err {
		case nil:
		case NoExpressionsFound:
			continue
		default:
			fmt.Println(err)
			continue
		}

		if !cfg.Quiet {
			fmt.Println(res.SexpString())
		}
	}
}

// RunScript evaluates a source file form by form against the global
// frame. Each top-level form is independent: a failure aborts only
// that form, unless ExitOnFailure is set.
func RunScript(env *Interp, path string, cfg *GrapherConfig) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	exprs, err := ParseStream(bufio.NewReader(f))
	if err != nil {
		return fmt.Errorf("parse error in %s: %v", path, err)
	}

	nfail := 0
	for _, expr := range exprs {
		res, err := env.EvalExpr(expr, env.GlobalFrame())
		if err != nil {
			nfail++
			fmt.Fprintf(os.Stderr, "%v\n", err)
			if cfg.ExitOnFailure {
				return err
			}
			continue
		}
		if !cfg.Quiet {
			fmt.Println(res.SexpString())
		}
	}
	if nfail > 0 {
		return fmt.Errorf("%d top-level form(s) failed in %s", nfail, path)
	}
	return nil
}

func writeOutputs(env *Interp, cfg *GrapherConfig) error {
	if cfg.DotOutfile != "" {
		f, err := os.Create(cfg.DotOutfile)
		if err != nil {
			return err
		}
		if err := env.WriteDot(f); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		if !cfg.Quiet {
			fmt.Printf("environment diagram saved to %s\n", cfg.DotOutfile)
			fmt.Printf("render it with: dot -Tpng %s -o env_diagram.png\n", cfg.DotOutfile)
		}
	}

	snap := env.Registry().Snapshot()
	if cfg.JsonOutfile != "" {
		bs, err := SnapshotToJson(snap)
		if err != nil {
			return err
		}
		if err := os.WriteFile(cfg.JsonOutfile, bs, 0644); err != nil {
			return err
		}
	}
	if cfg.MsgpackOutfile != "" {
		bs, err := SnapshotToMsgpack(snap)
		if err != nil {
			return err
		}
		if err := os.WriteFile(cfg.MsgpackOutfile, bs, 0644); err != nil {
			return err
		}
	}
	return nil
}

// ReplMain sequences a whole run: build an interpreter, evaluate the
// script or run the repl, then write the diagram and any snapshots.
func ReplMain(cfg *GrapherConfig) error {
	env := NewInterp()

	if cfg.Script != "" {
		if err := RunScript(env, cfg.Script, cfg); err != nil {
			if cfg.ExitOnFailure {
				return err
			}
			// diagram still gets written; partial runs are the
			// whole point of a historical registry.
			fmt.Fprintf(os.Stderr, "%v\n", err)
		}
	} else {
		Repl(env, cfg)
	}

	return writeOutputs(env, cfg)
}
