package commands

import (
	"log/slog"

	"git.home.luguber.info/inful/docconf/internal/doxygen"
	"git.home.luguber.info/inful/docconf/internal/logfields"
)

// RenderCmd substitutes the Doxyfile placeholders without running doxygen.
type RenderCmd struct {
	Template  string `short:"t" help:"Doxyfile template (default from config)" type:"path"`
	Output    string `short:"o" help:"Rendered Doxyfile (default: template without .in)" type:"path"`
	InputDir  string `name:"input-dir" help:"Value for @DOXYGEN_INPUT_DIR@ (default from config)"`
	OutputDir string `name:"output-dir" help:"Value for @DOXYGEN_OUTPUT_DIR@ (default from config)"`
}

func (r *RenderCmd) Run(g *Global, root *CLI) error {
	if err := root.Prepare(g); err != nil {
		return err
	}

	d := g.Config.Doxygen
	template := firstNonEmpty(r.Template, d.Template)
	output := r.Output
	if output == "" {
		if r.Template != "" {
			output = doxygen.OutputPathFor(r.Template)
		} else {
			output = d.Output
		}
	}
	inputDir := firstNonEmpty(r.InputDir, d.InputDir)
	outputDir := firstNonEmpty(r.OutputDir, d.OutputDir)

	if err := doxygen.RenderFile(template, output, inputDir, outputDir); err != nil {
		return err
	}
	slog.Info("Rendered Doxyfile", logfields.Template(template), logfields.Path(output))
	g.printf("Rendered %s\n", output)
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
