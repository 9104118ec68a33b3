// Package link binds top-level shader resources to hardware: attributes to
// vector registers and uniforms to byte offsets in the uniform buffer.
package link

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/golang/glog"

	"github.com/you-not-fish/prism/internal/rtabi"
	"github.com/you-not-fish/prism/internal/syntax"
)

// Kind is the class of a resource.
type Kind int

const (
	Attribute Kind = iota // per-vertex input, bound to a register
	Uniform               // shared constant, bound to a buffer offset
)

func (k Kind) String() string {
	if k == Uniform {
		return "uniform"
	}
	return "attribute"
}

// Resource is one linked declaration. Exactly one of Register and Offset is
// meaningful; the other holds -1.
type Resource struct {
	Name     string
	Kind     Kind
	Type     string // declared type name, for listings
	Register int
	Offset   int
}

// Linker holds the resources of one compilation in declaration order.
type Linker struct {
	resources []*Resource
	byName    map[string]*Resource
}

// New returns an empty linker.
func New() *Linker {
	return &Linker{byName: make(map[string]*Resource)}
}

// Collect records every top-level variable declaration of unit whose name
// carries a resource prefix. Nested declarations and other names are
// ignored. If a name is declared twice the first declaration wins.
func (l *Linker) Collect(unit *syntax.TranslationUnit) {
	if unit == nil {
		return
	}
	for _, item := range unit.Items {
		d, ok := item.(*syntax.VarDecl)
		if !ok || d == nil {
			continue
		}
		var kind Kind
		switch rtabi.BindingOf(d.Name) {
		case rtabi.BindAttribute:
			kind = Attribute
		case rtabi.BindUniform:
			kind = Uniform
		default:
			continue
		}
		if _, dup := l.byName[d.Name]; dup {
			glog.V(3).Infof("link: ignoring duplicate resource %s", d.Name)
			continue
		}
		r := &Resource{Name: d.Name, Kind: kind, Register: -1, Offset: -1}
		if d.TypeName != nil {
			r.Type = d.TypeName.Name
		}
		l.resources = append(l.resources, r)
		l.byName[d.Name] = r
	}
}

// Link assigns slots: attributes get registers 0, 1, 2, ... and uniforms get
// offsets 0, 16, 32, ... in declaration order. Linking again yields the
// same layout.
func (l *Linker) Link() {
	vgpr, uniforms := 0, 0
	for _, r := range l.resources {
		switch r.Kind {
		case Attribute:
			r.Register, r.Offset = vgpr, -1
			vgpr++
		case Uniform:
			r.Register, r.Offset = -1, rtabi.UniformOffset(uniforms)
			uniforms++
		}
	}
	if glog.V(3) {
		glog.V(3).Infof("link: %d attributes, %d uniforms", vgpr, uniforms)
	}
}

// Find returns the resource called name.
func (l *Linker) Find(name string) (*Resource, bool) {
	r, ok := l.byName[name]
	return r, ok
}

// Resources returns the resources in declaration order.
func (l *Linker) Resources() []*Resource {
	return l.resources
}

// Fprint writes the layout table of l to w.
func Fprint(w io.Writer, l *Linker) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tKIND\tTYPE\tREG\tOFFSET")
	for _, r := range l.resources {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\n", r.Name, r.Kind, r.Type, r.Register, r.Offset)
	}
	return tw.Flush()
}
