package grapher

import (
	"flag"
)

// GrapherConfig configures a run of the grapher repl or script driver.
type GrapherConfig struct {
	DotOutfile     string
	JsonOutfile    string
	MsgpackOutfile string
	NoLiner        bool
	Quiet          bool
	ExitOnFailure  bool
	Script         string
	Flags          *flag.FlagSet
}

func NewGrapherConfig(cmdname string) *GrapherConfig {
	return &GrapherConfig{
		Flags: flag.NewFlagSet(cmdname, flag.ExitOnError),
	}
}

// call DefineFlags before myflags.Parse()
func (c *GrapherConfig) DefineFlags() {
	c.Flags.StringVar(&c.DotOutfile, "dot", "env_diagram.dot", "write the environment diagram (graphviz dot) to this file")
	c.Flags.StringVar(&c.JsonOutfile, "json", "", "write a json snapshot of the frame registry to this file")
	c.Flags.StringVar(&c.MsgpackOutfile, "msgpack", "", "write a msgpack snapshot of the frame registry to this file")
	c.Flags.BoolVar(&c.NoLiner, "noliner", false, "read stdin without the liner line editor")
	c.Flags.BoolVar(&c.Quiet, "quiet", false, "don't print evaluation results")
	c.Flags.BoolVar(&c.ExitOnFailure, "exitonfail", false, "stop a script on the first failing form instead of continuing")
}

// call c.ValidateConfig() after myflags.Parse()
func (c *GrapherConfig) ValidateConfig() error {
	args := c.Flags.Args()
	if len(args) > 1 {
		return flag.ErrHelp
	}
	if len(args) == 1 {
		c.Script = args[0]
	}
	return nil
}
