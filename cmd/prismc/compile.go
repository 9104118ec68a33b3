package main

import (
	"fmt"
	"os"

	humanize "github.com/dustin/go-humanize"
	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/you-not-fish/prism/internal/compiler"
	"github.com/you-not-fish/prism/internal/config"
	"github.com/you-not-fish/prism/internal/diag"
	"github.com/you-not-fish/prism/internal/syntax"
)

func newCompileCmd() *cobra.Command {
	var configPath string
	var emitAST, emitLayout, emitSSA bool
	opts := config.Default()

	cmd := &cobra.Command{
		Use:   "compile <ast.yaml|ast.json>",
		Short: "Compile a shader syntax tree to a raw PISA word dump",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			final, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if err := final.ApplyFlags(cmd.Flags()); err != nil {
				return err
			}
			for stage, on := range map[string]bool{"sema": emitAST, "link": emitLayout, "ssa": emitSSA} {
				if on && !final.DumpsAfter(stage) {
					final.DumpAfter = append(final.DumpAfter, stage)
				}
			}
			if err := final.Validate(); err != nil {
				return err
			}
			return runCompile(cmd, args[0], final)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "YAML file with compile options; flags override it")
	cmd.Flags().BoolVar(&emitAST, "emit-ast", false, "print the annotated syntax tree")
	cmd.Flags().BoolVar(&emitLayout, "emit-layout", false, "print the resource layout")
	cmd.Flags().BoolVar(&emitSSA, "emit-ssa", false, "print the IR")
	opts.AddFlags(cmd.Flags())

	return cmd
}

func runCompile(cmd *cobra.Command, filename string, opts *config.Options) error {
	f, err := os.Open(filename)
	if err != nil {
		return errors.Wrap(err, "opening input")
	}
	defer f.Close()

	unit, err := syntax.Decode(f)
	if err != nil {
		return errors.Wrapf(err, "decoding %s", filename)
	}

	stdout := cmd.OutOrStdout()
	sink := diag.DefaultSink(stdout, cmd.ErrOrStderr(), diag.FormatOptions{Color: opts.Color})
	res, err := compiler.Compile(unit, &compiler.Config{Options: opts, Diag: sink, Out: stdout})
	if err != nil {
		return err
	}

	out, err := os.Create(opts.Output)
	if err != nil {
		return errors.Wrap(err, "creating output")
	}
	n, err := res.Buffer.WriteTo(out)
	if cerr := out.Close(); err == nil {
		err = errors.Wrap(cerr, "closing output")
	}
	if err != nil {
		return err
	}

	digest := res.Buffer.Digest()
	sink.Infof(diag.InfoWritten, opts.Output, humanize.Bytes(uint64(n)), fmt.Sprintf("%x", digest[:8]))
	if glog.V(1) {
		glog.V(1).Infof("compile: %d warnings, %d words", sink.Warnings(), res.Buffer.Len())
	}
	return nil
}
