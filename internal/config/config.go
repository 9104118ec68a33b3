// Package config holds the options of a compilation, read from an optional
// YAML file and overridden by command line flags.
package config

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// Stage names accepted by DumpAfter, in pipeline order.
var Stages = []string{"sema", "link", "ssa", "verify", "codegen"}

// Options controls a compilation.
type Options struct {
	// Output is the path of the machine code file.
	Output string `yaml:"output"`

	// EmitImmediates lowers small integer constants to V_MOV_IMM.
	EmitImmediates bool `yaml:"emitImmediates"`

	// Color enables colored diagnostics.
	Color bool `yaml:"color"`

	// Listing prints the assembly of every emitted instruction.
	Listing bool `yaml:"listing"`

	// DumpAfter names the stages after which the IR or layout is dumped
	// ("*" for all).
	DumpAfter []string `yaml:"dumpAfter"`

	// Verify checks IR invariants after each stage that changes the IR.
	Verify bool `yaml:"verify"`
}

// Default returns the options used when no file or flag overrides them.
func Default() *Options {
	return &Options{
		Output: "shader.bin",
		Verify: true,
	}
}

// Load reads options from the YAML file at path. Fields absent from the
// file keep their defaults. An empty path returns Default().
func Load(path string) (*Options, error) {
	opts := Default()
	if path == "" {
		return opts, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading config")
	}
	if err := yaml.Unmarshal(data, opts); err != nil {
		return nil, errors.Wrapf(err, "parsing config %s", path)
	}
	if err := opts.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid config %s", path)
	}
	return opts, nil
}

// Validate checks that every DumpAfter entry names a stage.
func (o *Options) Validate() error {
	for _, name := range o.DumpAfter {
		if name == "*" || isStage(name) {
			continue
		}
		return errors.Errorf("unknown stage %q in dumpAfter (want one of %s or *)",
			name, strings.Join(Stages, ", "))
	}
	return nil
}

// DumpsAfter reports whether the IR should be dumped after stage.
func (o *Options) DumpsAfter(stage string) bool {
	for _, name := range o.DumpAfter {
		if name == "*" || name == stage {
			return true
		}
	}
	return false
}

// AddFlags registers flags that override o on fs. Flags are applied when fs
// is parsed, so options loaded from a file must be in o before that.
func (o *Options) AddFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&o.Output, "output", "o", o.Output, "output file for machine code")
	fs.BoolVar(&o.EmitImmediates, "emit-immediates", o.EmitImmediates, "lower integer constants to V_MOV_IMM")
	fs.BoolVar(&o.Color, "color", o.Color, "colorize diagnostics")
	fs.BoolVar(&o.Listing, "emit-asm", o.Listing, "print the assembly listing")
	fs.StringSliceVar(&o.DumpAfter, "dump-after", o.DumpAfter, "dump state after the named stages (\"*\" for all)")
	fs.BoolVar(&o.Verify, "verify", o.Verify, "verify the IR after it is built")
}

// ApplyFlags copies onto o every flag explicitly set on fs, where fs was
// populated by AddFlags on another Options. This lets flags win over a
// config file whose path is only known after parsing.
func (o *Options) ApplyFlags(fs *pflag.FlagSet) error {
	dst := pflag.NewFlagSet("apply", pflag.ContinueOnError)
	o.AddFlags(dst)

	var err error
	fs.Visit(func(f *pflag.Flag) {
		target := dst.Lookup(f.Name)
		if target == nil || err != nil {
			return
		}
		if src, ok := f.Value.(pflag.SliceValue); ok {
			err = target.Value.(pflag.SliceValue).Replace(src.GetSlice())
			return
		}
		err = target.Value.Set(f.Value.String())
	})
	return errors.Wrap(err, "applying flags")
}

func isStage(name string) bool {
	for _, s := range Stages {
		if s == name {
			return true
		}
	}
	return false
}
