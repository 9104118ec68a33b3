package ssa

import (
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyValid(t *testing.T) {
	s := NewShader("ok")
	then, els, merge := s.NewBlock(), s.NewBlock(), s.NewBlock()
	c := s.BuildLoad(s.Entry, "c", 1)
	s.BuildBranch(s.Entry, &c.Dest, then, els)
	v := s.BuildMov(then, nil)
	s.BuildStore(then, "x", &v.Dest, FullMask)
	s.BuildJump(then, merge)
	s.BuildJump(els, merge)
	s.BuildALU(merge, OpFAdd, &c.Dest, &c.Dest)

	assert.NoError(t, Verify(s))
}

func TestVerifyViolations(t *testing.T) {
	tests := []struct {
		name  string
		build func() *Shader
		want  string
	}{
		{
			name: "unreachable block",
			build: func() *Shader {
				s := NewShader("s")
				s.NewBlock()
				return s
			},
			want: "B1: unreachable",
		},
		{
			name: "terminator not last",
			build: func() *Shader {
				s := NewShader("s")
				b1 := s.NewBlock()
				s.BuildJump(s.Entry, b1)
				s.BuildMov(s.Entry, nil)
				return s
			},
			want: "jump at index 0 is not last",
		},
		{
			name: "missing successor edge",
			build: func() *Shader {
				s := NewShader("s")
				s.Entry.append(&Instr{Op: OpJump})
				return s
			},
			want: "B0: 0 succs, want 1",
		},
		{
			name: "duplicate def index",
			build: func() *Shader {
				s := NewShader("s")
				a := s.BuildMov(s.Entry, nil)
				b := s.BuildMov(s.Entry, nil)
				b.Dest.Index = a.Dest.Index
				return s
			},
			want: "def index reused",
		},
		{
			name: "store with a result",
			build: func() *Shader {
				s := NewShader("s")
				v := s.BuildMov(s.Entry, nil)
				st := s.BuildStore(s.Entry, "x", &v.Dest, FullMask)
				st.Dest.Index = 9
				return s
			},
			want: "store_var must not produce a value",
		},
		{
			name: "foreign def",
			build: func() *Shader {
				other := NewShader("other")
				v := other.BuildMov(other.Entry, nil)
				s := NewShader("s")
				s.BuildStore(s.Entry, "x", &v.Dest, FullMask)
				return s
			},
			want: "not defined in shader",
		},
		{
			name: "use before definition",
			build: func() *Shader {
				s := NewShader("s")
				st := s.BuildStore(s.Entry, "x", nil, FullMask)
				v := s.BuildMov(s.Entry, nil)
				st.Srcs[0].Def = &v.Dest
				return s
			},
			want: "used before its definition",
		},
		{
			name: "def does not dominate use",
			build: func() *Shader {
				s := NewShader("s")
				then, els, merge := s.NewBlock(), s.NewBlock(), s.NewBlock()
				c := s.BuildMov(s.Entry, nil)
				s.BuildBranch(s.Entry, &c.Dest, then, els)
				v := s.BuildMov(then, nil)
				s.BuildJump(then, merge)
				s.BuildJump(els, merge)
				s.BuildStore(merge, "x", &v.Dest, FullMask)
				return s
			},
			want: "does not dominate B3",
		},
		{
			name: "alu missing operand",
			build: func() *Shader {
				s := NewShader("s")
				a := s.BuildMov(s.Entry, nil)
				s.BuildALU(s.Entry, OpFMul, &a.Dest, nil)
				return s
			},
			want: "fmul has 1 srcs, want 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Verify(tt.build())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestVerifyCollectsAll(t *testing.T) {
	s := NewShader("s")
	s.NewBlock()
	s.NewBlock()

	err := Verify(s)
	require.Error(t, err)
	merr, ok := err.(*multierror.Error)
	require.True(t, ok, "want *multierror.Error, got %T", err)
	assert.Len(t, merr.Errors, 2)
}
