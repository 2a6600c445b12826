package doxygen

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	derrors "git.home.luguber.info/inful/docconf/internal/errors"
)

const sampleTemplate = `PROJECT_NAME     = "eecs"
INPUT            = @DOXYGEN_INPUT_DIR@
OUTPUT_DIRECTORY = @DOXYGEN_OUTPUT_DIR@
GENERATE_XML     = YES
`

func TestSubstituteKnownPaths(t *testing.T) {
	got := Substitute(sampleTemplate, "../src", "build")

	want := `PROJECT_NAME     = "eecs"
INPUT            = ../src
OUTPUT_DIRECTORY = build
GENERATE_XML     = YES
`
	assert.Equal(t, want, got)
}

func TestSubstituteReplacesEveryOccurrence(t *testing.T) {
	tmpl := "@DOXYGEN_INPUT_DIR@|@DOXYGEN_OUTPUT_DIR@|@DOXYGEN_INPUT_DIR@/x|@DOXYGEN_OUTPUT_DIR@@DOXYGEN_OUTPUT_DIR@"

	got := Substitute(tmpl, "IN", "OUT")

	assert.Equal(t, "IN|OUT|IN/x|OUTOUT", got)
	assert.NotContains(t, got, InputDirToken)
	assert.NotContains(t, got, OutputDirToken)
}

func TestSubstituteLeavesOtherContentIntact(t *testing.T) {
	cases := []string{
		"",
		"no tokens at all\n",
		"@DOXYGEN_INPUT_DIR\n@DOXYGEN_OUTPUT_DIR@@\r\n\t unicode: ✓",
		"@doxygen_input_dir@ is case sensitive",
	}
	for _, tmpl := range cases {
		got := Substitute(tmpl, "A", "B")
		// Undo the substitution by hand: every non-token byte must survive.
		expected := strings.ReplaceAll(strings.ReplaceAll(tmpl, InputDirToken, "A"), OutputDirToken, "B")
		assert.Equal(t, expected, got)
	}
}

func TestSubstituteDoesNotRescanReplacements(t *testing.T) {
	got := Substitute("@DOXYGEN_INPUT_DIR@ @DOXYGEN_OUTPUT_DIR@", OutputDirToken, "out")
	assert.Equal(t, OutputDirToken+" out", got)
}

func TestOutputPathFor(t *testing.T) {
	assert.Equal(t, filepath.Join("..", "doxygen", "Doxyfile"), OutputPathFor(filepath.Join("..", "doxygen", "Doxyfile.in")))
	assert.Equal(t, "Doxyfile", OutputPathFor("Doxyfile"))
}

func TestRenderFileWritesSibling(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "Doxyfile.in")
	out := filepath.Join(dir, "Doxyfile")
	require.NoError(t, os.WriteFile(in, []byte(sampleTemplate), 0o644))
	require.NoError(t, os.WriteFile(out, []byte("stale content that is much longer than the rendered file will be ..........................................................................................................."), 0o644))

	require.NoError(t, RenderFile(in, out, "../src", "build"))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, Substitute(sampleTemplate, "../src", "build"), string(data))

	// The template itself is untouched.
	orig, err := os.ReadFile(in)
	require.NoError(t, err)
	assert.Equal(t, sampleTemplate, string(orig))
}

func TestRenderFileMissingTemplate(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "Doxyfile")

	err := RenderFile(filepath.Join(dir, "Doxyfile.in"), out, "../src", "build")

	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.True(t, derrors.IsCategory(err, derrors.CategoryFileSystem))
	_, statErr := os.Stat(out)
	assert.ErrorIs(t, statErr, fs.ErrNotExist, "no output file may be created")
}
