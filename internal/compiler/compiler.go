// Package compiler drives a compilation through its stages: semantic
// analysis, resource linking, IR construction, IR verification and code
// generation.
package compiler

import (
	"fmt"
	"io"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/you-not-fish/prism/internal/codegen"
	"github.com/you-not-fish/prism/internal/config"
	"github.com/you-not-fish/prism/internal/diag"
	"github.com/you-not-fish/prism/internal/link"
	"github.com/you-not-fish/prism/internal/pisa"
	"github.com/you-not-fish/prism/internal/sema"
	"github.com/you-not-fish/prism/internal/ssa"
	"github.com/you-not-fish/prism/internal/syntax"
	"github.com/you-not-fish/prism/internal/types"
)

// Config controls a compilation.
type Config struct {
	Options *config.Options // nil means config.Default()
	Diag    diag.Sink       // nil discards diagnostics

	// Out receives stage dumps and the assembly listing. Nil discards them.
	Out io.Writer

	// Symbols, if set, is reused across compilations.
	Symbols *types.SymbolTable
}

// Result holds the products of each stage.
type Result struct {
	Unit   *syntax.TranslationUnit
	Info   *sema.Info
	Linker *link.Linker
	Shader *ssa.Shader
	Buffer *pisa.Buffer
}

// Stage is one step of the pipeline.
type Stage struct {
	Name string
	Run  func(c *compilation) error
	Dump func(c *compilation, w io.Writer) error // nil if the stage has nothing to show
}

// compilation is the state threaded through the stages.
type compilation struct {
	conf *Config
	opts *config.Options
	res  *Result
}

// Stages is the pipeline in execution order. Stage names match
// config.Stages.
var Stages = []Stage{
	{Name: "sema", Run: runSema, Dump: dumpAST},
	{Name: "link", Run: runLink, Dump: dumpLayout},
	{Name: "ssa", Run: runBuild, Dump: dumpSSA},
	{Name: "verify", Run: runVerify},
	{Name: "codegen", Run: runCodegen, Dump: dumpCode},
}

// Compile runs every stage on unit. Problems in the input are reported to
// conf.Diag and never stop the pipeline; the error result is reserved for
// internal failures (IR verification, dump or listing I/O).
func Compile(unit *syntax.TranslationUnit, conf *Config) (*Result, error) {
	cc := Config{}
	if conf != nil {
		cc = *conf
	}
	conf = &cc
	c := &compilation{conf: conf, opts: conf.Options, res: &Result{Unit: unit}}
	if c.opts == nil {
		c.opts = config.Default()
	}
	if conf.Diag == nil {
		conf.Diag = diag.DiscardSink()
	}
	if conf.Out == nil {
		conf.Out = io.Discard
	}

	for _, st := range Stages {
		glog.V(2).Infof("compiler: running %s", st.Name)
		if err := st.Run(c); err != nil {
			return c.res, errors.Wrapf(err, "stage %s", st.Name)
		}
		if st.Dump != nil && c.opts.DumpsAfter(st.Name) {
			fmt.Fprintf(conf.Out, "--- after %s ---\n", st.Name)
			if err := st.Dump(c, conf.Out); err != nil {
				return c.res, errors.Wrapf(err, "dumping after %s", st.Name)
			}
			fmt.Fprintln(conf.Out)
		}
	}
	return c.res, nil
}

func runSema(c *compilation) error {
	c.res.Info = sema.Check(c.res.Unit, &sema.Config{Diag: c.conf.Diag, Symbols: c.conf.Symbols})
	return nil
}

func runLink(c *compilation) error {
	l := link.New()
	l.Collect(c.res.Unit)
	l.Link()
	c.res.Linker = l
	return nil
}

func runBuild(c *compilation) error {
	c.res.Shader = ssa.Build(c.res.Unit)
	return nil
}

func runVerify(c *compilation) error {
	if !c.opts.Verify {
		return nil
	}
	if err := ssa.Verify(c.res.Shader); err != nil {
		c.conf.Diag.Errorf(diag.ErrorVerifyFailed, "ssa", err)
		return err
	}
	return nil
}

func runCodegen(c *compilation) error {
	var listing io.Writer
	if c.opts.Listing {
		listing = c.conf.Out
	}
	buf, err := codegen.Generate(c.res.Shader, c.res.Linker, &codegen.Config{
		Diag:           c.conf.Diag,
		Listing:        listing,
		EmitImmediates: c.opts.EmitImmediates,
	})
	c.res.Buffer = buf
	return errors.Wrap(err, "writing listing")
}

func dumpAST(c *compilation, w io.Writer) error {
	if c.res.Unit == nil {
		return nil
	}
	syntax.Fprint(w, c.res.Unit)
	return nil
}

func dumpLayout(c *compilation, w io.Writer) error {
	return link.Fprint(w, c.res.Linker)
}

func dumpSSA(c *compilation, w io.Writer) error {
	ssa.Fprint(w, c.res.Shader)
	return nil
}

func dumpCode(c *compilation, w io.Writer) error {
	return pisa.Disassemble(w, c.res.Buffer.Words())
}
