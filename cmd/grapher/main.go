/*
The grapher command evaluates a Scheme subset and writes an
environment diagram of every frame and closure the run created.
*/
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Its-Grimm/Scheme-Environment-Diagram-Generator/grapher"
)

func usage(myflags *flag.FlagSet) {
	fmt.Printf("grapher command line help:\n")
	fmt.Printf("  grapher [flags] [script.scm]\n")
	myflags.PrintDefaults()
	os.Exit(1)
}

func main() {
	cfg := grapher.NewGrapherConfig("grapher")
	cfg.DefineFlags()
	err := cfg.Flags.Parse(os.Args[1:])
	if err == flag.ErrHelp {
		usage(cfg.Flags)
	}
	if err != nil {
		panic(err)
	}
	err = cfg.ValidateConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "grapher command line error: '%v'\n", err)
		usage(cfg.Flags)
	}

	// the library does all the heavy lifting.
	if err := grapher.ReplMain(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
