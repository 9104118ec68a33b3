// Command prismc compiles a shader AST to PISA machine code.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newPrismCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", errorMessage(err))
		os.Exit(1)
	}
}
