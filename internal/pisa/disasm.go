package pisa

import (
	"fmt"
	"io"
)

// Disassemble writes one line per word: its byte offset, the raw word and
// the decoded instruction.
func Disassemble(w io.Writer, words []uint32) error {
	for i, word := range words {
		if _, err := fmt.Fprintf(w, "%04x:  %08x  %s\n", i*4, word, Decode(word)); err != nil {
			return err
		}
	}
	return nil
}
