package e2e

import (
	"bytes"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you-not-fish/prism/internal/compiler"
	"github.com/you-not-fish/prism/internal/config"
	"github.com/you-not-fish/prism/internal/diag"
	"github.com/you-not-fish/prism/internal/pisa"
	"github.com/you-not-fish/prism/internal/syntax"
)

var update = flag.Bool("update", false, "rewrite .golden files")

// TestGolden compiles every testdata/*.ast.yaml file and compares the
// diagnostics and assembly listing against the matching .golden file.
// An optional <name>.config.yaml supplies compile options.
func TestGolden(t *testing.T) {
	testFiles, err := filepath.Glob("testdata/*.ast.yaml")
	require.NoError(t, err)
	require.NotEmpty(t, testFiles, "no .ast.yaml files in testdata/")

	for _, testFile := range testFiles {
		name := strings.TrimSuffix(filepath.Base(testFile), ".ast.yaml")
		t.Run(name, func(t *testing.T) {
			runGoldenTest(t, filepath.Join("testdata", name))
		})
	}
}

func runGoldenTest(t *testing.T, base string) {
	t.Helper()

	f, err := os.Open(base + ".ast.yaml")
	require.NoError(t, err)
	defer f.Close()
	unit, err := syntax.Decode(f)
	require.NoError(t, err)

	configPath := base + ".config.yaml"
	if _, err := os.Stat(configPath); err != nil {
		configPath = ""
	}
	opts, err := config.Load(configPath)
	require.NoError(t, err)
	opts.Listing = true

	var out bytes.Buffer
	sink := diag.DefaultSink(&out, &out, diag.FormatOptions{})
	res, err := compiler.Compile(unit, &compiler.Config{Options: opts, Diag: sink, Out: &out})
	require.NoError(t, err)

	checkListingMatchesCode(t, out.String(), res.Buffer)

	goldenFile := base + ".golden"
	if *update {
		require.NoError(t, os.WriteFile(goldenFile, out.Bytes(), 0o644))
		return
	}
	expected, err := os.ReadFile(goldenFile)
	require.NoError(t, err, "reading golden file")
	assert.Equal(t, string(expected), out.String())
}

// checkListingMatchesCode decodes the emitted words and compares them with
// the instruction lines of the listing.
func checkListingMatchesCode(t *testing.T, listing string, buf *pisa.Buffer) {
	t.Helper()

	var listed []string
	for _, line := range strings.Split(listing, "\n") {
		if strings.HasPrefix(line, "  ") {
			listed = append(listed, strings.TrimSpace(line))
		}
	}
	var decoded []string
	for _, w := range buf.Words() {
		decoded = append(decoded, pisa.Decode(w).String())
	}
	assert.Equal(t, listed, decoded)
}

func TestArtifactRoundTrip(t *testing.T) {
	f, err := os.Open("testdata/operators.ast.yaml")
	require.NoError(t, err)
	defer f.Close()
	unit, err := syntax.Decode(f)
	require.NoError(t, err)

	res, err := compiler.Compile(unit, nil)
	require.NoError(t, err)
	require.Equal(t, 18, res.Buffer.Len())

	path := filepath.Join(t.TempDir(), "operators.bin")
	out, err := os.Create(path)
	require.NoError(t, err)
	_, err = res.Buffer.WriteTo(out)
	require.NoError(t, err)
	require.NoError(t, out.Close())

	in, err := os.Open(path)
	require.NoError(t, err)
	defer in.Close()
	words, err := pisa.ReadWords(in)
	require.NoError(t, err)
	assert.Equal(t, res.Buffer.Words(), words)
}
