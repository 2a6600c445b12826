package commands

import (
	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/docconf/internal/config"
	derrors "git.home.luguber.info/inful/docconf/internal/errors"
	"git.home.luguber.info/inful/docconf/internal/sphinx"
)

// ConfCmd writes conf.py without touching doxygen.
type ConfCmd struct {
	Output string `short:"o" help:"conf.py path (default from config)" type:"path"`
}

func (c *ConfCmd) Run(g *Global, root *CLI) error {
	if err := root.Prepare(g); err != nil {
		return err
	}

	path := firstNonEmpty(c.Output, g.Config.Sphinx.ConfPath, "conf.py")
	if err := sphinx.WriteConf(path, settingsFor(g.Config)); err != nil {
		return err
	}
	g.printf("Wrote %s\n", path)
	return nil
}

// ShowCmd prints the settings conf.py would carry.
type ShowCmd struct{}

func (s *ShowCmd) Run(g *Global, root *CLI) error {
	if err := root.Prepare(g); err != nil {
		return err
	}

	out := struct {
		Hosted   bool            `yaml:"hosted"`
		Settings sphinx.Settings `yaml:"settings"`
	}{
		Hosted:   HostedAuto.Resolve(g),
		Settings: settingsFor(g.Config),
	}
	data, err := yaml.Marshal(out)
	if err != nil {
		return derrors.InternalError("failed to marshal settings", err)
	}
	_, err = g.Stdout.Write(data)
	return err
}

func settingsFor(cfg *config.Config) sphinx.Settings {
	return sphinx.NewSettings(cfg, map[string]string{cfg.Project.Name: cfg.Doxygen.XMLDir()})
}
