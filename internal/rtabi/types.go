// Package rtabi defines the shader ABI constants shared between the compiler
// and the driver that loads its output. These values must be kept in sync
// with the driver's resource setup.
package rtabi

// Resource naming. A top-level declaration is bound to hardware by the
// prefix of its name.
const (
	// AttributePrefix marks a per-vertex input attribute.
	AttributePrefix = "v_"

	// UniformPrefix marks a constant shared by every invocation.
	UniformPrefix = "u_"
)

// Uniform buffer layout
const (
	// UniformStride is the byte distance between consecutive uniforms. Every
	// uniform occupies one 16-byte slot regardless of its type.
	UniformStride = 16

	// UniformBaseReg is the scalar register holding the uniform buffer base
	// address.
	UniformBaseReg = 0
)

// Register file layout
const (
	// VectorRegs is the number of vector registers available to a shader.
	VectorRegs = 8

	// ScalarBase is the first scalar register handed out to values.
	ScalarBase = 10

	// ScalarSpan is the number of scalar registers handed out to values.
	ScalarSpan = 100
)

// Machine word layout
const (
	// WordSize is the size in bytes of one encoded instruction.
	WordSize = 4

	// MaxImmediate is the largest value an I-type immediate can hold.
	MaxImmediate = 1<<16 - 1
)
