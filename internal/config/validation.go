package config

import (
	"strings"

	derrors "git.home.luguber.info/inful/docconf/internal/errors"
)

// Validate checks the fields the configurator cannot run without.
func (c *Config) Validate() error {
	required := []struct {
		field string
		value string
	}{
		{"project.name", c.Project.Name},
		{"sphinx.theme", c.Sphinx.Theme},
		{"doxygen.template", c.Doxygen.Template},
		{"doxygen.input_dir", c.Doxygen.InputDir},
		{"doxygen.output_dir", c.Doxygen.OutputDir},
		{"doxygen.command", c.Doxygen.Command},
		{"hosted.env_var", c.Hosted.EnvVar},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return derrors.ValidationFailed(r.field, "must not be empty")
		}
	}
	if c.Doxygen.Output == c.Doxygen.Template {
		return derrors.ValidationFailed("doxygen.output", "must differ from doxygen.template")
	}
	for _, ext := range c.Sphinx.Extensions {
		if strings.TrimSpace(ext) == "" {
			return derrors.ValidationFailed("sphinx.extensions", "contains an empty extension name")
		}
	}
	return nil
}
