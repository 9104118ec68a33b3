package diag

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/golang/glog"

	"github.com/you-not-fish/prism/internal/contract"
)

// Sink facilitates pluggable diagnostics messages.
type Sink interface {
	// Count fetches the total number of diagnostics issued (errors plus warnings).
	Count() int
	// Errors fetches the number of errors issued.
	Errors() int
	// Warnings fetches the number of warnings issued.
	Warnings() int
	// Success returns true if this sink is currently error-free.
	Success() bool

	// Report issues a diagnostic at its default severity.
	Report(diag *Diag, args ...interface{})
	// Infof issues an informational message.
	Infof(diag *Diag, args ...interface{})
	// Warningf issues a new warning diagnostic.
	Warningf(diag *Diag, args ...interface{})
	// Errorf issues a new error diagnostic.
	Errorf(diag *Diag, args ...interface{})

	// Stringify stringifies a diagnostic in the usual way (e.g., "ast.yaml:7:3: warning PC100: ...\n").
	Stringify(sev Severity, diag *Diag, args ...interface{}) string
}

// Severity dictates the kind of diagnostic.
type Severity string

const (
	Info    Severity = "info"
	Warning Severity = "warning"
	Error   Severity = "error"
)

// FormatOptions controls the output style and content.
type FormatOptions struct {
	Color bool // if true, output will be colorized.
}

// IDPrefix prefixes numbered diagnostics.
const IDPrefix = "PC"

// DefaultSink returns a sink that writes informational messages to stdout and everything else to stderr.
func DefaultSink(stdout, stderr io.Writer, opts FormatOptions) Sink {
	contract.Require(stdout != nil, "stdout")
	contract.Require(stderr != nil, "stderr")
	return newDefaultSink(opts, map[Severity]io.Writer{
		Info:    stdout,
		Warning: stderr,
		Error:   stderr,
	})
}

// DiscardSink returns a sink that only counts.
func DiscardSink() Sink {
	return newDefaultSink(FormatOptions{}, map[Severity]io.Writer{
		Info:    io.Discard,
		Warning: io.Discard,
		Error:   io.Discard,
	})
}

func newDefaultSink(opts FormatOptions, writers map[Severity]io.Writer) *defaultSink {
	s := &defaultSink{opts: opts, writers: writers}
	s.palette = map[Severity]*color.Color{
		Info:    color.New(color.FgCyan),
		Warning: color.New(color.FgYellow, color.Bold),
		Error:   color.New(color.FgRed, color.Bold),
	}
	for _, c := range s.palette {
		if opts.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return s
}

// defaultSink is the default sink which logs output to the configured writers.
type defaultSink struct {
	opts     FormatOptions
	writers  map[Severity]io.Writer
	palette  map[Severity]*color.Color
	infos    int
	warnings int
	errors   int
}

func (d *defaultSink) Count() int    { return d.errors + d.warnings }
func (d *defaultSink) Errors() int   { return d.errors }
func (d *defaultSink) Warnings() int { return d.warnings }
func (d *defaultSink) Success() bool { return d.errors == 0 }

func (d *defaultSink) Report(diag *Diag, args ...interface{}) {
	switch diag.Severity {
	case Error:
		d.Errorf(diag, args...)
	case Info:
		d.Infof(diag, args...)
	default:
		d.Warningf(diag, args...)
	}
}

func (d *defaultSink) Infof(diag *Diag, args ...interface{}) {
	msg := d.Stringify(Info, diag, args...)
	if glog.V(5) {
		glog.V(5).Infof("defaultSink::Info(%v)", msg[:len(msg)-1])
	}
	fmt.Fprint(d.writers[Info], msg)
	d.infos++
}

func (d *defaultSink) Warningf(diag *Diag, args ...interface{}) {
	msg := d.Stringify(Warning, diag, args...)
	if glog.V(4) {
		glog.V(4).Infof("defaultSink::Warning(%v)", msg[:len(msg)-1])
	}
	fmt.Fprint(d.writers[Warning], msg)
	d.warnings++
}

func (d *defaultSink) Errorf(diag *Diag, args ...interface{}) {
	msg := d.Stringify(Error, diag, args...)
	if glog.V(3) {
		glog.V(3).Infof("defaultSink::Error(%v)", msg[:len(msg)-1])
	}
	fmt.Fprint(d.writers[Error], msg)
	d.errors++
}

func (d *defaultSink) Stringify(sev Severity, diag *Diag, args ...interface{}) string {
	contract.Require(diag != nil, "diag")

	var buffer bytes.Buffer
	if diag.Pos != nil && diag.Pos.IsValid() {
		buffer.WriteString(diag.Pos.String())
		buffer.WriteString(": ")
	}

	prefix := string(sev)
	if diag.ID > 0 {
		prefix += " " + IDPrefix + strconv.Itoa(int(diag.ID))
	}
	c, ok := d.palette[sev]
	if !ok {
		contract.Failf("Unrecognized diagnostic severity: %v", sev)
	}
	buffer.WriteString(c.Sprint(prefix))
	buffer.WriteString(": ")

	// Arguments are never interpreted as format directives.
	buffer.WriteString(fmt.Sprintf(diag.Message, args...))
	buffer.WriteRune('\n')
	return buffer.String()
}
