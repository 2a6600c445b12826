package doxygen

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	derrors "git.home.luguber.info/inful/docconf/internal/errors"
)

// Placeholder tokens recognised in a Doxyfile template.
const (
	InputDirToken  = "@DOXYGEN_INPUT_DIR@"
	OutputDirToken = "@DOXYGEN_OUTPUT_DIR@"
)

// Substitute replaces every occurrence of InputDirToken with inputDir and of
// OutputDirToken with outputDir. Replacement happens in a single pass, so a
// directory that itself contains a token is written out literally.
func Substitute(template, inputDir, outputDir string) string {
	r := strings.NewReplacer(
		InputDirToken, inputDir,
		OutputDirToken, outputDir,
	)
	return r.Replace(template)
}

// OutputPathFor returns the sibling path a template renders to: the template
// path with its ".in" suffix removed.
func OutputPathFor(templatePath string) string {
	return strings.TrimSuffix(templatePath, ".in")
}

// RenderFile reads templatePath, substitutes both placeholders and writes the
// result to outputPath, replacing any existing file. The template is read in
// full before outputPath is touched, so a missing template never leaves an
// empty output behind.
func RenderFile(templatePath, outputPath, inputDir, outputDir string) error {
	data, err := os.ReadFile(templatePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return derrors.TemplateNotFound(templatePath, err)
		}
		return derrors.Wrap(err, derrors.CategoryFileSystem, derrors.SeverityFatal, "doxygen template unreadable").
			WithContext("path", templatePath)
	}

	out := Substitute(string(data), inputDir, outputDir)
	if err := os.WriteFile(outputPath, []byte(out), 0o644); err != nil {
		return derrors.FileWriteFailed(outputPath, err)
	}
	return nil
}
