// Package sphinx turns configurator settings into the conf.py consumed by
// sphinx-build.
package sphinx

import (
	"maps"
	"slices"

	"git.home.luguber.info/inful/docconf/internal/config"
)

// Settings is the static metadata exposed to Sphinx and its extensions.
type Settings struct {
	Project   string `yaml:"project"`
	Author    string `yaml:"author"`
	Copyright string `yaml:"copyright"`

	Extensions      []string `yaml:"extensions"`
	TemplatesPath   []string `yaml:"templates_path"`
	ExcludePatterns []string `yaml:"exclude_patterns"`
	ExtraSysPath    []string `yaml:"extra_sys_path,omitempty"`

	HTMLTheme        string            `yaml:"html_theme"`
	HTMLThemeOptions map[string]string `yaml:"html_theme_options"`
	HTMLStaticPath   []string          `yaml:"html_static_path"`

	BreatheDefaultProject string            `yaml:"breathe_default_project"`
	BreatheProjects       map[string]string `yaml:"breathe_projects"`
}

// NewSettings derives Settings from cfg. projects is the Breathe project to
// XML directory mapping. Slices and maps are copied so later changes to cfg
// or projects do not leak into the returned Settings.
func NewSettings(cfg *config.Config, projects map[string]string) Settings {
	return Settings{
		Project:               cfg.Project.Name,
		Author:                cfg.Project.Author,
		Copyright:             cfg.Project.Copyright,
		Extensions:            slices.Clone(cfg.Sphinx.Extensions),
		TemplatesPath:         slices.Clone(cfg.Sphinx.TemplatesPath),
		ExcludePatterns:       slices.Clone(cfg.Sphinx.ExcludePatterns),
		ExtraSysPath:          slices.Clone(cfg.Sphinx.ExtraSysPath),
		HTMLTheme:             cfg.Sphinx.Theme,
		HTMLThemeOptions:      maps.Clone(cfg.Sphinx.ThemeOptions),
		HTMLStaticPath:        slices.Clone(cfg.Sphinx.StaticPath),
		BreatheDefaultProject: cfg.Project.Name,
		BreatheProjects:       maps.Clone(projects),
	}
}
