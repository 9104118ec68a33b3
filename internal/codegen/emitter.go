package codegen

import (
	"fmt"
	"io"

	"github.com/you-not-fish/prism/internal/pisa"
	"github.com/you-not-fish/prism/internal/ssa"
)

// emitter appends instruction words to the machine code buffer and mirrors
// each one as a line of assembly on the optional listing writer.
type emitter struct {
	buf *pisa.Buffer
	w   io.Writer // listing; nil disables it
	err error     // first listing write error
}

// emit encodes in and appends it to the buffer.
func (e *emitter) emit(in pisa.Inst) {
	e.buf.EmitInst(in)
	e.line("  %s", in)
}

// emitComment writes a comment line to the listing.
func (e *emitter) emitComment(format string, args ...interface{}) {
	e.line("; "+format, args...)
}

// emitLabel writes a basic block label to the listing.
func (e *emitter) emitLabel(b *ssa.Block) {
	e.line("%s:", b)
}

func (e *emitter) line(format string, args ...interface{}) {
	if e.w == nil || e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format+"\n", args...)
}
