package main

import (
	"flag"
	"fmt"
	"strconv"

	"github.com/golang/glog"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"
)

// Version is the prismc release.
const Version = "0.1.0-dev"

func newPrismCmd() *cobra.Command {
	var logToStderr bool
	var verbose int
	cmd := &cobra.Command{
		Use:           "prismc",
		Short:         "prismc compiles shader syntax trees to PISA machine code",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			initLogging(logToStderr, verbose)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			glog.Flush()
		},
	}

	cmd.PersistentFlags().BoolVar(&logToStderr, "logtostderr", false, "Log to stderr instead of to files")
	cmd.PersistentFlags().IntVarP(
		&verbose, "verbose", "v", 0, "Enable verbose logging (e.g., v=3); anything >3 is very verbose")

	cmd.AddCommand(newCompileCmd())
	cmd.AddCommand(newDisasmCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// initLogging pushes the logging flags into glog, which only reads its
// settings from the standard flag set.
func initLogging(logToStderr bool, verbose int) {
	if logToStderr {
		_ = flag.Set("logtostderr", "true")
	}
	if verbose > 0 {
		_ = flag.Set("v", strconv.Itoa(verbose))
	}
}

// errorMessage flattens multi-errors into a numbered list.
func errorMessage(err error) string {
	if multi, ok := err.(*multierror.Error); ok {
		wr := multi.WrappedErrors()
		if len(wr) == 1 {
			return errorMessage(wr[0])
		}
		msg := fmt.Sprintf("%d errors occurred:", len(wr))
		for i, werr := range wr {
			msg += fmt.Sprintf("\n    %d) %s", i, errorMessage(werr))
		}
		return msg
	}
	return err.Error()
}
