package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/you-not-fish/prism/internal/pisa"
)

func newDisasmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "disasm <file.bin>",
		Short: "Disassemble a raw PISA word dump",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return errors.Wrap(err, "opening input")
			}
			defer f.Close()

			words, err := pisa.ReadWords(f)
			if err != nil {
				return errors.Wrapf(err, "decoding %s", args[0])
			}
			return pisa.Disassemble(cmd.OutOrStdout(), words)
		},
	}
}
