package commands

import (
	"context"
	"os/signal"
	"syscall"

	"git.home.luguber.info/inful/docconf/internal/configurator"
)

// BuildCmd implements the 'build' command.
type BuildCmd struct {
	Hosted HostedMode `help:"Hosted build mode (auto reads the hosted env var)" enum:"auto,true,false" default:"auto"`
	NoConf bool       `name:"no-conf" help:"Do not write conf.py"`
}

func (b *BuildCmd) Run(g *Global, root *CLI) error {
	if err := root.Prepare(g); err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	return RunBuild(ctx, g, b.Hosted.Resolve(g), b.NoConf)
}

// RunBuild performs one configurator pass and prints a short summary.
func RunBuild(ctx context.Context, g *Global, hosted, noConf bool) error {
	opts := []configurator.Option{
		configurator.WithLogger(g.Logger),
		configurator.WithRecorder(g.Recorder),
	}
	if noConf {
		opts = append(opts, configurator.WithoutConfFile())
	}

	res, err := configurator.New(g.Config, opts...).Run(ctx, hosted)
	if err != nil {
		return err
	}

	if res.DoxyfilePath != "" {
		g.printf("Rendered %s\n", res.DoxyfilePath)
	}
	if res.DoxygenErr != nil {
		g.printf("doxygen failed (continuing): %v\n", res.DoxygenErr)
	}
	if res.ConfPath != "" {
		g.printf("Wrote %s\n", res.ConfPath)
	}
	for name, dir := range res.BreatheProjects {
		g.printf("breathe project %s -> %s\n", name, dir)
	}
	return nil
}
