package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want DataType
	}{
		{"int", Int},
		{"float", Float},
		{"bool", Bool},
		{"vec3", Vec3},
		{"vec4", Vec4},
		{"void", Void},
		{"vec2", Unknown},
		{"mat4", Unknown},
		{"", Unknown},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LookupType(tt.name), "LookupType(%q)", tt.name)
	}
}

func TestDataTypeString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "vec3", Vec3.String())
	assert.Equal(t, "unknown", Unknown.String())
	assert.Equal(t, "error", Error.String())
	assert.Equal(t, "unknown", DataType(99).String())
}

func TestDataTypeComponents(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, Float.Components())
	assert.Equal(t, 2, Vec2.Components())
	assert.Equal(t, 3, Vec3.Components())
	assert.Equal(t, 4, Vec4.Components())
	assert.True(t, Vec4.IsVector())
	assert.False(t, Int.IsVector())
	assert.False(t, Error.IsValid())
	assert.True(t, Void.IsValid())
}

func TestSuggestType(t *testing.T) {
	t.Parallel()

	s, ok := SuggestType("vec")
	assert.True(t, ok)
	assert.Equal(t, "vec3", s)

	s, ok = SuggestType("flaot")
	assert.True(t, ok)
	assert.Equal(t, "float", s)

	_, ok = SuggestType("sampler2DArray")
	assert.False(t, ok)
}
