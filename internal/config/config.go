package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	derrors "git.home.luguber.info/inful/docconf/internal/errors"
)

// DefaultPath is the configuration file looked up when --config is not given.
const DefaultPath = "docconf.yaml"

// Config represents the configurator settings. It is treated as immutable once
// Load returns.
type Config struct {
	Project ProjectConfig `yaml:"project"`
	Sphinx  SphinxConfig  `yaml:"sphinx"`
	Doxygen DoxygenConfig `yaml:"doxygen"`
	Hosted  HostedConfig  `yaml:"hosted"`
	Logging LoggingConfig `yaml:"logging"`
}

// ProjectConfig holds the project information block of conf.py.
type ProjectConfig struct {
	Name      string `yaml:"name"`
	Author    string `yaml:"author"`
	Copyright string `yaml:"copyright"`
}

// SphinxConfig holds general and HTML output options passed through to Sphinx.
type SphinxConfig struct {
	Theme           string            `yaml:"theme"`
	ThemeOptions    map[string]string `yaml:"theme_options,omitempty"`
	Extensions      []string          `yaml:"extensions"`
	TemplatesPath   []string          `yaml:"templates_path"`
	ExcludePatterns []string          `yaml:"exclude_patterns"`
	StaticPath      []string          `yaml:"static_path"`
	ExtraSysPath    []string          `yaml:"extra_sys_path,omitempty"`
	// ConfPath is where conf.py is written. Empty (the default) disables
	// writing, so an existing hand-written conf.py is never replaced.
	ConfPath string `yaml:"conf_path"`
}

// DoxygenConfig describes the Doxyfile template and the extraction command.
type DoxygenConfig struct {
	Template  string   `yaml:"template"`
	Output    string   `yaml:"output,omitempty"` // defaults to Template without ".in"
	InputDir  string   `yaml:"input_dir"`
	OutputDir string   `yaml:"output_dir"`
	Command   string   `yaml:"command"`
	Args      []string `yaml:"args,omitempty"`
	// FailOnError turns a failing doxygen run into a build failure.
	FailOnError bool `yaml:"fail_on_error"`
}

// HostedConfig names the environment variable that signals a hosted build.
type HostedConfig struct {
	EnvVar string `yaml:"env_var"`
	Value  string `yaml:"value"`
}

// LoggingConfig selects slog level and handler.
type LoggingConfig struct {
	Level  LogLevel  `yaml:"level"`
	Format LogFormat `yaml:"format"`
}

// Load reads the configuration at configPath. A missing file is not an error:
// the defaults are returned instead, matching a docs tree with no config.
func Load(configPath string) (*Config, error) {
	if _, err := LoadEnvFiles(); err != nil {
		// Don't fail if .env doesn't exist
		fmt.Fprintf(os.Stderr, "Note: .env file not loaded: %v\n", err)
	}

	data, err := os.ReadFile(configPath)
	if errors.Is(err, fs.ErrNotExist) {
		cfg := Default()
		return cfg, nil
	}
	if err != nil {
		return nil, derrors.ConfigInvalid(configPath, err)
	}
	return Parse(data, configPath)
}

// Parse decodes YAML configuration, expands ${VAR} references from the
// environment, applies defaults and validates the result.
func Parse(data []byte, source string) (*Config, error) {
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, derrors.ConfigInvalid(source, fmt.Errorf("failed to unmarshal config: %w", err))
	}
	applyDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Init writes an example configuration file populated with the defaults and
// an explicit sphinx.conf_path.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return derrors.ConfigExists(configPath)
	}

	data, err := yaml.Marshal(Example())
	if err != nil {
		return derrors.InternalError("failed to marshal config", err)
	}

	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return derrors.FileWriteFailed(configPath, err)
	}
	return nil
}
