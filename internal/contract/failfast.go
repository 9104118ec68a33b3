// Package contract implements fail-fast checks for conditions that indicate
// a bug in the compiler itself. Recoverable source problems never go through
// here; they are reported as diagnostics instead.
package contract

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/golang/glog"
)

// failfast logs and terminates the process in a way that is friendly to debugging.
func failfast(msg string) {
	if f := flag.Lookup("logtostderr"); f != nil {
		if g, ok := f.Value.(flag.Getter); ok {
			if enabled, _ := g.Get().(bool); enabled {
				// glog won't print the stack on its own.
				fmt.Fprintf(os.Stderr, "fatal: %v\n", msg)
				debug.PrintStack()
			}
		}
	}
	glog.Fatal(msg)
}
