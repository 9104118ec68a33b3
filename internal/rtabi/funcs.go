package rtabi

import "strings"

// Binding is the class of hardware resource a name is bound to.
type Binding int

const (
	BindNone      Binding = iota // not a shader resource
	BindAttribute                // vertex input, addressed by register
	BindUniform                  // uniform buffer entry, addressed by byte offset
)

func (b Binding) String() string {
	switch b {
	case BindAttribute:
		return "attribute"
	case BindUniform:
		return "uniform"
	}
	return "none"
}

// BindingOf classifies a declaration by the prefix of its name.
func BindingOf(name string) Binding {
	switch {
	case strings.HasPrefix(name, AttributePrefix):
		return BindAttribute
	case strings.HasPrefix(name, UniformPrefix):
		return BindUniform
	}
	return BindNone
}

// VReg maps a value index to a vector register. Indices wrap around the
// register file; no liveness is considered.
func VReg(index int) int {
	return index % VectorRegs
}

// SReg maps a value index to a scalar register.
func SReg(index int) int {
	return ScalarBase + index%ScalarSpan
}

// UniformOffset returns the byte offset of the i-th uniform.
func UniformOffset(i int) int {
	return i * UniformStride
}
