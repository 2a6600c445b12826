package sphinx

import (
	"bytes"
	"fmt"
	"os"
	"slices"
	"strings"
	"text/template"

	derrors "git.home.luguber.info/inful/docconf/internal/errors"
	"git.home.luguber.info/inful/docconf/internal/version"
)

const confTemplate = `# Configuration file for the Sphinx documentation builder.
# Generated by docconf {{ version }}. Edit the docconf configuration instead.
#
# https://www.sphinx-doc.org/en/master/usage/configuration.html

# -- Project information -----------------------------------------------------

project = {{ py .Project }}
copyright = {{ py .Copyright }}
author = {{ py .Author }}

# -- General configuration ---------------------------------------------------
{{ if .ExtraSysPath }}
import sys
from pathlib import Path
{{ range .ExtraSysPath }}
sys.path.append(str(Path({{ py . }}).resolve()))
{{- end }}
{{ end }}
extensions = {{ pylist .Extensions }}

templates_path = {{ pylist .TemplatesPath }}
exclude_patterns = {{ pylist .ExcludePatterns }}

# -- Options for HTML output -------------------------------------------------

html_theme = {{ py .HTMLTheme }}
html_theme_options = {{ pydict .HTMLThemeOptions }}
html_static_path = {{ pylist .HTMLStaticPath }}

# -- Breathe configuration ---------------------------------------------------

breathe_default_project = {{ py .BreatheDefaultProject }}
breathe_projects = {{ pydict .BreatheProjects }}
`

var confTpl = template.Must(template.New("conf.py").Funcs(template.FuncMap{
	"py":      pyString,
	"pylist":  pyList,
	"pydict":  pyDict,
	"version": func() string { return version.Version },
}).Option("missingkey=error").Parse(confTemplate))

// RenderConf renders s as a Python conf.py.
func RenderConf(s Settings) ([]byte, error) {
	var buf bytes.Buffer
	if err := confTpl.Execute(&buf, s); err != nil {
		return nil, derrors.ConfRenderFailed(fmt.Errorf("render conf.py: %w", err))
	}
	return buf.Bytes(), nil
}

// WriteConf renders s and writes it to path, replacing any existing file.
func WriteConf(path string, s Settings) error {
	data, err := RenderConf(s)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return derrors.FileWriteFailed(path, err)
	}
	return nil
}

// pyString quotes s as a single-quoted Python string literal.
func pyString(s string) string {
	var b strings.Builder
	b.WriteByte('\'')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '\'':
			b.WriteString(`\'`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(&b, `\x%02x`, r)
				continue
			}
			b.WriteRune(r)
		}
	}
	b.WriteByte('\'')
	return b.String()
}

func pyList(items []string) string {
	quoted := make([]string, len(items))
	for i, it := range items {
		quoted[i] = pyString(it)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

// pyDict renders m with keys sorted so output is stable across runs.
func pyDict(m map[string]string) string {
	if len(m) == 0 {
		return "{}"
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	var b strings.Builder
	b.WriteString("{\n")
	for _, k := range keys {
		fmt.Fprintf(&b, "    %s: %s,\n", pyString(k), pyString(m[k]))
	}
	b.WriteString("}")
	return b.String()
}
