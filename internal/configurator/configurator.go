// Package configurator runs the documentation build configuration: it
// exposes Sphinx settings and, for hosted builds, renders the Doxyfile and
// runs doxygen before the Breathe project mapping is published.
package configurator

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/docconf/internal/config"
	"git.home.luguber.info/inful/docconf/internal/doxygen"
	"git.home.luguber.info/inful/docconf/internal/logfields"
	"git.home.luguber.info/inful/docconf/internal/metrics"
	"git.home.luguber.info/inful/docconf/internal/sphinx"
)

// Step names used for logging and metrics.
const (
	StepRenderTemplate = "render_template"
	StepRunDoxygen     = "run_doxygen"
	StepWriteConf      = "write_conf"
)

// Configurator holds the collaborators of a run. It is safe to call Run
// repeatedly; it keeps no state between runs.
type Configurator struct {
	cfg       *config.Config
	runner    doxygen.Runner
	recorder  metrics.Recorder
	logger    *slog.Logger
	writeConf bool
}

// Option customises a Configurator.
type Option func(*Configurator)

// WithRunner replaces the doxygen subprocess runner.
func WithRunner(r doxygen.Runner) Option {
	return func(c *Configurator) { c.runner = r }
}

// WithRecorder sets the metrics recorder.
func WithRecorder(r metrics.Recorder) Option {
	return func(c *Configurator) { c.recorder = r }
}

// WithLogger sets the logger; slog.Default() is used otherwise.
func WithLogger(l *slog.Logger) Option {
	return func(c *Configurator) { c.logger = l }
}

// WithoutConfFile disables writing conf.py even when a path is configured.
func WithoutConfFile() Option {
	return func(c *Configurator) { c.writeConf = false }
}

// New returns a Configurator for cfg.
func New(cfg *config.Config, opts ...Option) *Configurator {
	c := &Configurator{
		cfg:       cfg,
		runner:    doxygen.NewExecRunner(cfg.Doxygen.Command, cfg.Doxygen.Args...),
		recorder:  metrics.NoopRecorder{},
		logger:    slog.Default(),
		writeConf: cfg.Sphinx.ConfPath != "",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Result describes what a run did.
type Result struct {
	RunID    string
	Hosted   bool
	Settings sphinx.Settings

	// BreatheProjects maps the project name to the doxygen XML directory.
	BreatheProjects map[string]string

	// DoxyfilePath is the rendered Doxyfile, empty when nothing was rendered.
	DoxyfilePath string
	DoxygenRan   bool
	// DoxygenErr is the doxygen failure that was tolerated, if any.
	DoxygenErr error

	// ConfPath is the conf.py that was written, empty when none was.
	ConfPath string
	Duration time.Duration
}

// Run executes one configuration pass. hosted selects whether the Doxyfile
// is rendered and doxygen executed; when false no subprocess is started and
// the only file written is conf.py, and only when sphinx.conf_path is set.
func (c *Configurator) Run(ctx context.Context, hosted bool) (*Result, error) {
	start := time.Now()
	res := &Result{RunID: uuid.NewString(), Hosted: hosted}
	log := c.logger.With(logfields.RunID(res.RunID))
	c.recorder.SetHosted(hosted)

	log.Info("Starting documentation configuration",
		logfields.Project(c.cfg.Project.Name),
		logfields.Hosted(hosted))

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	outcome := metrics.OutcomeSuccess
	finish := func(err error) (*Result, error) {
		res.Duration = time.Since(start)
		c.recorder.ObserveRunDuration(res.Duration)
		if err != nil {
			outcome = metrics.OutcomeFailed
			log.Error("Documentation configuration failed", logfields.Error(err))
		} else {
			log.Info("Documentation configuration complete",
				logfields.DurationMS(float64(res.Duration.Microseconds())/1000))
		}
		c.recorder.IncRunOutcome(outcome)
		if err != nil {
			return nil, err
		}
		return res, nil
	}

	if hosted {
		d := c.cfg.Doxygen
		err := c.step(log, StepRenderTemplate, func() error {
			return doxygen.RenderFile(d.Template, d.Output, d.InputDir, d.OutputDir)
		})
		if err != nil {
			return finish(err)
		}
		res.DoxyfilePath = d.Output
		log.Info("Rendered Doxyfile", logfields.Template(d.Template), logfields.Path(d.Output))

		if err := c.runDoxygen(ctx, log, res); err != nil {
			return finish(err)
		}
		if res.DoxygenErr != nil {
			outcome = metrics.OutcomeWarning
		}
	} else {
		log.Debug("Not a hosted build; skipping doxygen")
		c.recorder.IncStepResult(StepRenderTemplate, metrics.ResultSkipped)
		c.recorder.IncStepResult(StepRunDoxygen, metrics.ResultSkipped)
	}

	res.BreatheProjects = map[string]string{c.cfg.Project.Name: c.cfg.Doxygen.XMLDir()}
	log.Debug("Breathe projects mapped",
		logfields.Project(c.cfg.Project.Name),
		logfields.Path(res.BreatheProjects[c.cfg.Project.Name]))
	res.Settings = sphinx.NewSettings(c.cfg, res.BreatheProjects)

	if c.writeConf {
		path := c.cfg.Sphinx.ConfPath
		if err := c.step(log, StepWriteConf, func() error { return sphinx.WriteConf(path, res.Settings) }); err != nil {
			return finish(err)
		}
		res.ConfPath = path
		log.Info("Wrote Sphinx configuration", logfields.Path(path))
	}

	return finish(nil)
}

// runDoxygen waits for the subprocess. Its failure is recorded on res and
// only returned when the configuration asks for strict handling.
func (c *Configurator) runDoxygen(ctx context.Context, log *slog.Logger, res *Result) error {
	stepStart := time.Now()
	err := c.runner.Run(ctx, c.cfg.Doxygen.WorkDir())
	c.recorder.ObserveStepDuration(StepRunDoxygen, time.Since(stepStart))
	res.DoxygenRan = true

	if err == nil {
		c.recorder.IncStepResult(StepRunDoxygen, metrics.ResultSuccess)
		return nil
	}
	if c.cfg.Doxygen.FailOnError {
		c.recorder.IncStepResult(StepRunDoxygen, metrics.ResultFatal)
		return err
	}
	c.recorder.IncStepResult(StepRunDoxygen, metrics.ResultWarning)
	res.DoxygenErr = err
	log.Warn("Doxygen failed; continuing without API reference",
		logfields.Step(StepRunDoxygen),
		logfields.Error(err))
	return nil
}

func (c *Configurator) step(log *slog.Logger, name string, fn func() error) error {
	stepStart := time.Now()
	err := fn()
	c.recorder.ObserveStepDuration(name, time.Since(stepStart))
	if err != nil {
		c.recorder.IncStepResult(name, metrics.ResultFatal)
		log.Error("Step failed", logfields.Step(name), logfields.Error(err))
		return err
	}
	c.recorder.IncStepResult(name, metrics.ResultSuccess)
	log.Debug("Step complete", logfields.Step(name))
	return nil
}
