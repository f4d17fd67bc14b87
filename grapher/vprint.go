package grapher

import "fmt"

// Verbose turns on VPrintf tracing.
var Verbose bool

var V = VPrintf
var Q = func(quietly_ignored ...interface{}) {} // quiet

// P is a shortcut for a call to fmt.Printf that implicitly starts
// and ends its message with a newline.
func P(format string, stuff ...interface{}) {
	fmt.Printf("\n "+format+"\n", stuff...)
}

func VPrintf(format string, a ...interface{}) {
	if Verbose {
		fmt.Printf(format, a...)
	}
}
