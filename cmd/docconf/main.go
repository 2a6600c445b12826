package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/docconf/cmd/docconf/commands"
	derrors "git.home.luguber.info/inful/docconf/internal/errors"
	"git.home.luguber.info/inful/docconf/internal/version"
)

func main() {
	var cli commands.CLI
	g := &commands.Global{}

	parser, err := commands.NewParser(&cli, g,
		kong.Name("docconf"),
		kong.Description("Configure Sphinx and Doxygen for the documentation build."),
		kong.UsageOnError(),
		kong.Vars{"version": version.String()},
	)
	if err != nil {
		panic(err)
	}

	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	err = ctx.Run(&cli)
	if ferr := cli.FlushMetrics(g); ferr != nil {
		slog.Warn("Failed to write metrics file", "error", ferr)
	}
	derrors.NewCLIErrorAdapter(cli.Verbose, slog.Default()).HandleError(err)
}
