package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	derrors "git.home.luguber.info/inful/docconf/internal/errors"
)

func TestDefaultMatchesEECSSetup(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "eecs", cfg.Project.Name)
	assert.Equal(t, "Dimitri", cfg.Project.Author)
	assert.Equal(t, "2025, Dimitri", cfg.Project.Copyright)
	assert.Equal(t, "shibuya", cfg.Sphinx.Theme)
	assert.Equal(t, map[string]string{"accent_color": "grass"}, cfg.Sphinx.ThemeOptions)
	assert.Equal(t, []string{"breathe", "myst_parser", "sphinx.ext.graphviz"}, cfg.Sphinx.Extensions)
	assert.Equal(t, []string{"_templates"}, cfg.Sphinx.TemplatesPath)
	assert.Equal(t, []string{"_build", "Thumbs.db", ".DS_Store"}, cfg.Sphinx.ExcludePatterns)
	assert.Equal(t, []string{"_static"}, cfg.Sphinx.StaticPath)
	assert.Empty(t, cfg.Sphinx.ConfPath, "writing conf.py must be opt-in")
	assert.Equal(t, filepath.Join("..", "doxygen", "Doxyfile.in"), cfg.Doxygen.Template)
	assert.Equal(t, filepath.Join("..", "doxygen", "Doxyfile"), cfg.Doxygen.Output)
	assert.Equal(t, filepath.Join("..", "src"), cfg.Doxygen.InputDir)
	assert.Equal(t, "build", cfg.Doxygen.OutputDir)
	assert.Equal(t, "doxygen", cfg.Doxygen.Command)
	assert.False(t, cfg.Doxygen.FailOnError)
	assert.Equal(t, "READTHEDOCS", cfg.Hosted.EnvVar)
	assert.Equal(t, "True", cfg.Hosted.Value)
	assert.Equal(t, LogLevelInfo, cfg.Logging.Level)
	assert.Equal(t, LogFormatText, cfg.Logging.Format)
	require.NoError(t, cfg.Validate())
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("does-not-exist.yaml")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadParsesFileAndExpandsEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("DOCCONF_TEST_AUTHOR", "Ada")

	path := filepath.Join(dir, DefaultPath)
	content := `
project:
  name: widgets
  author: ${DOCCONF_TEST_AUTHOR}
sphinx:
  theme: furo
  extensions: [breathe]
doxygen:
  template: api/Doxyfile.in
  input_dir: ../include
  output_dir: /tmp/doxy
  fail_on_error: true
logging:
  level: DEBUG
  format: json
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "widgets", cfg.Project.Name)
	assert.Equal(t, "Ada", cfg.Project.Author)
	assert.Equal(t, "2025, Ada", cfg.Project.Copyright)
	assert.Equal(t, "furo", cfg.Sphinx.Theme)
	assert.Equal(t, []string{"breathe"}, cfg.Sphinx.Extensions)
	assert.Equal(t, "api/Doxyfile", cfg.Doxygen.Output)
	assert.Equal(t, "../include", cfg.Doxygen.InputDir)
	assert.True(t, cfg.Doxygen.FailOnError)
	assert.Equal(t, LogLevelDebug, cfg.Logging.Level)
	assert.Equal(t, LogFormatJSON, cfg.Logging.Format)
}

func TestParseRejectsInvalidYAML(t *testing.T) {
	_, err := Parse([]byte("project: [unterminated"), "bad.yaml")
	require.Error(t, err)
	assert.True(t, derrors.IsCategory(err, derrors.CategoryConfig))
}

func TestParseRejectsOutputEqualToTemplate(t *testing.T) {
	_, err := Parse([]byte("doxygen:\n  template: Doxyfile\n  output: Doxyfile\n"), "x.yaml")
	require.Error(t, err)
	assert.True(t, derrors.IsCategory(err, derrors.CategoryValidation))
}

func TestTemplateWithoutInSuffixGetsDistinctOutput(t *testing.T) {
	cfg, err := Parse([]byte("doxygen:\n  template: Doxyfile.tmpl\n"), "x.yaml")
	require.NoError(t, err)
	assert.Equal(t, "Doxyfile.tmpl.out", cfg.Doxygen.Output)
}

func TestValidateRequiredFields(t *testing.T) {
	cfg := Default()
	cfg.Doxygen.Command = "  "

	err := cfg.Validate()
	require.Error(t, err)
	dce, ok := derrors.As(err)
	require.True(t, ok)
	assert.Equal(t, "doxygen.command", dce.Context["field"])
}

func TestXMLDir(t *testing.T) {
	d := DoxygenConfig{Template: filepath.Join("..", "doxygen", "Doxyfile.in"), OutputDir: "build"}
	assert.Equal(t, filepath.Join("..", "doxygen", "build", "xml"), d.XMLDir())

	d.OutputDir = "/abs/out"
	assert.Equal(t, filepath.Join("/abs/out", "xml"), d.XMLDir())
}

func TestInitWritesLoadableConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultPath)

	require.NoError(t, Init(path, false))
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Example(), cfg)
	assert.Equal(t, "conf.py", cfg.Sphinx.ConfPath)

	err = Init(path, false)
	require.Error(t, err)
	assert.True(t, derrors.IsCategory(err, derrors.CategoryConfig))

	require.NoError(t, Init(path, true))
}

func TestNewLoggerHonoursFormatAndVerbose(t *testing.T) {
	var buf bytes.Buffer
	l := LoggingConfig{Level: LogLevelWarn, Format: LogFormatJSON}.NewLogger(&buf, false)
	l.Info("hidden")
	l.Warn("shown")
	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.True(t, strings.HasPrefix(out, "{"), "expected JSON output, got %q", out)

	buf.Reset()
	l = LoggingConfig{Level: LogLevelError, Format: LogFormatText}.NewLogger(&buf, true)
	l.Debug("debugging")
	assert.Contains(t, buf.String(), "msg=debugging")
}

func TestNormalizeLogLevel(t *testing.T) {
	assert.Equal(t, LogLevelWarn, NormalizeLogLevel("Warning"))
	assert.Equal(t, LogLevelError, NormalizeLogLevel(" error "))
	assert.Equal(t, LogLevelInfo, NormalizeLogLevel("loud"))
	assert.Equal(t, LogFormatText, NormalizeLogFormat("yaml"))
}
