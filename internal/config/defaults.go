package config

import (
	"path/filepath"
	"strings"
)

// Default returns the configuration used when no file is present. The values
// reproduce the eecs documentation setup.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Example returns the configuration written by Init: the defaults plus an
// explicit conf.py target, since writing conf.py is opt-in.
func Example() *Config {
	cfg := Default()
	cfg.Sphinx.ConfPath = "conf.py"
	return cfg
}

func applyDefaults(cfg *Config) {
	p := &cfg.Project
	if p.Name == "" {
		p.Name = "eecs"
	}
	if p.Author == "" {
		p.Author = "Dimitri"
	}
	if p.Copyright == "" {
		p.Copyright = "2025, " + p.Author
	}

	s := &cfg.Sphinx
	if s.Theme == "" {
		s.Theme = "shibuya"
	}
	if s.ThemeOptions == nil {
		s.ThemeOptions = map[string]string{"accent_color": "grass"}
	}
	if s.Extensions == nil {
		s.Extensions = []string{"breathe", "myst_parser", "sphinx.ext.graphviz"}
	}
	if s.TemplatesPath == nil {
		s.TemplatesPath = []string{"_templates"}
	}
	if s.ExcludePatterns == nil {
		s.ExcludePatterns = []string{"_build", "Thumbs.db", ".DS_Store"}
	}
	if s.StaticPath == nil {
		s.StaticPath = []string{"_static"}
	}

	d := &cfg.Doxygen
	if d.Template == "" {
		d.Template = filepath.Join("..", "doxygen", "Doxyfile.in")
	}
	if d.Output == "" {
		d.Output = strings.TrimSuffix(d.Template, ".in")
		if d.Output == d.Template {
			d.Output = d.Template + ".out"
		}
	}
	if d.InputDir == "" {
		d.InputDir = filepath.Join("..", "src")
	}
	if d.OutputDir == "" {
		d.OutputDir = "build"
	}
	if d.Command == "" {
		d.Command = "doxygen"
	}

	h := &cfg.Hosted
	if h.EnvVar == "" {
		h.EnvVar = "READTHEDOCS"
	}
	if h.Value == "" {
		h.Value = "True"
	}

	cfg.Logging.Level = NormalizeLogLevel(string(cfg.Logging.Level))
	cfg.Logging.Format = NormalizeLogFormat(string(cfg.Logging.Format))
}

// WorkDir is the directory doxygen runs in: the template's directory.
func (d DoxygenConfig) WorkDir() string {
	return filepath.Dir(d.Template)
}

// XMLDir is the generated XML index directory as seen from the docs directory.
func (d DoxygenConfig) XMLDir() string {
	if filepath.IsAbs(d.OutputDir) {
		return filepath.Join(d.OutputDir, "xml")
	}
	return filepath.Join(d.WorkDir(), d.OutputDir, "xml")
}
