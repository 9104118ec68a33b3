// Package types implements the data types, symbols and lexical scopes used by
// semantic analysis. This package has no AST dependencies.
package types

// DataType is the resolved type of an AST node or symbol.
type DataType int

const (
	Unknown DataType = iota // not yet resolved, or an unrecognized type name
	Void
	Int
	Float
	Bool
	Vec2
	Vec3
	Vec4
	Struct
	Error // marker for a node whose resolution failed
)

var dataTypeNames = [...]string{
	Unknown: "unknown",
	Void:    "void",
	Int:     "int",
	Float:   "float",
	Bool:    "bool",
	Vec2:    "vec2",
	Vec3:    "vec3",
	Vec4:    "vec4",
	Struct:  "struct",
	Error:   "error",
}

// String returns the source spelling of the type.
func (t DataType) String() string {
	if t >= 0 && int(t) < len(dataTypeNames) {
		return dataTypeNames[t]
	}
	return "unknown"
}

// Components returns the number of 32-bit lanes a value of this type occupies.
func (t DataType) Components() int {
	switch t {
	case Vec2:
		return 2
	case Vec3:
		return 3
	case Vec4:
		return 4
	default:
		return 1
	}
}

// IsVector reports whether t is one of the vecN types.
func (t DataType) IsVector() bool {
	return t == Vec2 || t == Vec3 || t == Vec4
}

// IsValid reports whether t is a resolved, non-error type.
func (t DataType) IsValid() bool {
	return t != Unknown && t != Error
}
