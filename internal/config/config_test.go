package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prism.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	opts := Default()
	assert.Equal(t, "shader.bin", opts.Output)
	assert.True(t, opts.Verify)
	assert.False(t, opts.EmitImmediates)
	assert.Empty(t, opts.DumpAfter)
}

func TestLoadEmptyPath(t *testing.T) {
	opts, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), opts)
}

func TestLoadKeepsDefaults(t *testing.T) {
	path := writeFile(t, "emitImmediates: true\ndumpAfter: [ssa, codegen]\n")
	opts, err := Load(path)
	require.NoError(t, err)
	assert.True(t, opts.EmitImmediates)
	assert.Equal(t, []string{"ssa", "codegen"}, opts.DumpAfter)
	assert.Equal(t, "shader.bin", opts.Output)
	assert.True(t, opts.Verify)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config")
}

func TestLoadMalformed(t *testing.T) {
	_, err := Load(writeFile(t, "output: [1, 2\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}

func TestLoadUnknownStage(t *testing.T) {
	_, err := Load(writeFile(t, "dumpAfter: [optimize]\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown stage "optimize"`)
}

func TestDumpsAfter(t *testing.T) {
	opts := &Options{DumpAfter: []string{"link"}}
	assert.True(t, opts.DumpsAfter("link"))
	assert.False(t, opts.DumpsAfter("ssa"))

	opts.DumpAfter = []string{"*"}
	for _, s := range Stages {
		assert.True(t, opts.DumpsAfter(s), s)
	}
}

func TestFlagsOverrideFile(t *testing.T) {
	opts, err := Load(writeFile(t, "output: a.bin\ncolor: true\n"))
	require.NoError(t, err)

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	opts.AddFlags(fs)
	require.NoError(t, fs.Parse([]string{"-o", "b.bin", "--emit-asm", "--dump-after", "ssa,link"}))

	assert.Equal(t, "b.bin", opts.Output)
	assert.True(t, opts.Color)
	assert.True(t, opts.Listing)
	assert.Equal(t, []string{"ssa", "link"}, opts.DumpAfter)
	assert.NoError(t, opts.Validate())
}

func TestApplyFlags(t *testing.T) {
	flagOpts := Default()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flagOpts.AddFlags(fs)
	require.NoError(t, fs.Parse([]string{"--emit-immediates", "--dump-after", "ssa,link", "--verify=false"}))

	fileOpts, err := Load(writeFile(t, "output: file.bin\ndumpAfter: [sema]\nverify: true\n"))
	require.NoError(t, err)
	require.NoError(t, fileOpts.ApplyFlags(fs))

	assert.Equal(t, "file.bin", fileOpts.Output)
	assert.True(t, fileOpts.EmitImmediates)
	assert.False(t, fileOpts.Verify)
	assert.Equal(t, []string{"ssa", "link"}, fileOpts.DumpAfter)
}
