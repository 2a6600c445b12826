package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/docconf/internal/config"
	"git.home.luguber.info/inful/docconf/internal/metrics"
)

// Global carries state shared by subcommands once flags are parsed.
type Global struct {
	Logger   *slog.Logger
	Config   *config.Config
	Recorder metrics.Recorder
	// Prometheus is non-nil when --metrics-file is set.
	Prometheus *metrics.PrometheusRecorder

	Stdout io.Writer
	Stderr io.Writer
	// LookupEnv resolves the hosted-build variable; os.LookupEnv when nil.
	LookupEnv func(string) (string, bool)
}

// CLI definition & global flags.
type CLI struct {
	Config      string           `short:"c" help:"Configuration file path" default:"docconf.yaml" type:"path"`
	Verbose     bool             `short:"v" help:"Enable verbose logging"`
	MetricsFile string           `name:"metrics-file" help:"Write Prometheus metrics in textfile format to this path after the run" type:"path"`
	Version     kong.VersionFlag `name:"version" help:"Show version and exit"`

	Build  BuildCmd  `cmd:"" default:"withargs" help:"Write conf.py and, for hosted builds, render the Doxyfile and run doxygen"`
	Render RenderCmd `cmd:"" help:"Render the Doxyfile template without running doxygen"`
	Conf   ConfCmd   `cmd:"" help:"Write conf.py only"`
	Show   ShowCmd   `cmd:"" help:"Print the resolved Sphinx settings as YAML"`
	Init   InitCmd   `cmd:"" help:"Initialize a new configuration file"`
	Watch  WatchCmd  `cmd:"" help:"Re-run build whenever the configuration or Doxyfile template changes"`
}

// AfterApply runs after flag parsing; sets up a default logger until the
// configuration is loaded.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply(g *Global) error {
	if g.Stdout == nil {
		g.Stdout = os.Stdout
	}
	if g.Stderr == nil {
		g.Stderr = os.Stderr
	}
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	g.Logger = slog.New(slog.NewTextHandler(g.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(g.Logger)
	return nil
}

// Prepare loads the configuration, replaces the logger with the configured
// one and picks the metrics recorder. Subsequent calls are no-ops.
func (c *CLI) Prepare(g *Global) error {
	if g.Config != nil {
		return nil
	}
	if err := c.Reload(g); err != nil {
		return err
	}

	if c.MetricsFile != "" {
		g.Prometheus = metrics.NewPrometheusRecorder(nil)
		g.Recorder = g.Prometheus
	} else {
		g.Recorder = metrics.NoopRecorder{}
	}
	return nil
}

// Reload re-reads the configuration file and rebuilds the logger from it.
// On error g is left unchanged. The metrics recorder is kept.
func (c *CLI) Reload(g *Global) error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	g.Config = cfg
	g.Logger = cfg.Logging.NewLogger(g.Stderr, c.Verbose)
	slog.SetDefault(g.Logger)
	return nil
}

// FlushMetrics writes the metrics textfile when one was requested.
func (c *CLI) FlushMetrics(g *Global) error {
	if c.MetricsFile == "" || g.Prometheus == nil {
		return nil
	}
	return g.Prometheus.WriteTextfile(c.MetricsFile)
}

// HostedMode is the value of --hosted.
type HostedMode string

const (
	HostedAuto  HostedMode = "auto"
	HostedTrue  HostedMode = "true"
	HostedFalse HostedMode = "false"
)

// Resolve turns the flag into the explicit flag passed to the configurator.
// auto consults the configured environment variable.
func (m HostedMode) Resolve(g *Global) bool {
	switch m {
	case HostedTrue:
		return true
	case HostedFalse:
		return false
	default:
		return config.HostedFromEnv(g.LookupEnv, g.Config.Hosted)
	}
}

func (g *Global) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(g.Stdout, format, args...)
}

// NewParser builds the kong parser for cli with g bound for hooks and Run methods.
func NewParser(cli *CLI, g *Global, options ...kong.Option) (*kong.Kong, error) {
	return kong.New(cli, append([]kong.Option{kong.Bind(g)}, options...)...)
}
