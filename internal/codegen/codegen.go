// Package codegen lowers the SSA IR of a shader to encoded machine words.
//
// Registers are assigned by a fixed policy over def indices (see rtabi); no
// liveness analysis is performed, so distinct values may share a register.
package codegen

import (
	"io"

	"github.com/golang/glog"

	"github.com/you-not-fish/prism/internal/diag"
	"github.com/you-not-fish/prism/internal/link"
	"github.com/you-not-fish/prism/internal/pisa"
	"github.com/you-not-fish/prism/internal/ssa"
)

// Config controls code generation.
type Config struct {
	// Diag receives backend warnings. Nil discards them.
	Diag diag.Sink

	// Listing, if set, receives one line of assembly per emitted word.
	Listing io.Writer

	// EmitImmediates lowers integer constants in [0, 65535] to V_MOV_IMM.
	// When off, constants produce no code.
	EmitImmediates bool
}

// generator holds the state of one Generate call.
type generator struct {
	sh     *ssa.Shader
	linker *link.Linker
	diag   diag.Sink
	conf   *Config
	e      emitter
}

// Generate walks the blocks of sh in layout order and returns the encoded
// instruction stream. Instructions that cannot be encoded are reported to
// conf.Diag and skipped. The returned error is the first listing write
// error, if any; the buffer is complete regardless.
func Generate(sh *ssa.Shader, linker *link.Linker, conf *Config) (*pisa.Buffer, error) {
	if conf == nil {
		conf = &Config{}
	}
	if linker == nil {
		linker = link.New()
	}
	g := &generator{
		sh:     sh,
		linker: linker,
		diag:   conf.Diag,
		conf:   conf,
		e:      emitter{buf: pisa.NewBuffer(), w: conf.Listing},
	}
	if g.diag == nil {
		g.diag = diag.DiscardSink()
	}

	if sh != nil {
		for _, b := range sh.Blocks {
			g.lowerBlock(b)
		}
	}

	if glog.V(3) {
		glog.V(3).Infof("codegen: emitted %d words", g.e.buf.Len())
	}
	return g.e.buf, g.e.err
}
