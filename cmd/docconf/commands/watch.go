package commands

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"git.home.luguber.info/inful/docconf/internal/logfields"
	"git.home.luguber.info/inful/docconf/internal/watch"
)

// WatchCmd re-runs build when the configuration or the template changes.
type WatchCmd struct {
	Hosted   HostedMode    `help:"Hosted build mode (auto reads the hosted env var)" enum:"auto,true,false" default:"auto"`
	Debounce time.Duration `help:"Quiet period before re-running" default:"500ms"`
}

func (w *WatchCmd) Run(g *Global, root *CLI) error {
	if err := root.Prepare(g); err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := RunBuild(ctx, g, w.Hosted.Resolve(g), false); err != nil {
		g.Logger.Error("Initial build failed", logfields.Error(err))
	}
	return w.watch(ctx, g, root)
}

// watch runs until ctx is done. Each change reloads the configuration
// (and with it the logger) before building; when a reload points at a
// different template the file watcher is re-created for the new path.
func (w *WatchCmd) watch(ctx context.Context, g *Global, root *CLI) error {
	for {
		template := g.Config.Doxygen.Template
		wctx, stop := context.WithCancel(ctx)

		watcher, err := watch.New([]string{root.Config, template}, w.Debounce, func(cctx context.Context) error {
			if err := root.Reload(g); err != nil {
				return err
			}
			if g.Config.Doxygen.Template != template {
				g.Logger.Info("Template path changed; re-creating watcher",
					logfields.Template(g.Config.Doxygen.Template))
				defer stop()
			}
			return RunBuild(cctx, g, w.Hosted.Resolve(g), false)
		})
		if err != nil {
			stop()
			return err
		}

		g.Logger.Info("Watching for changes", logfields.Path(root.Config), logfields.Template(template))
		err = watcher.Run(wctx)
		stop()
		if err != nil || ctx.Err() != nil {
			return err
		}
	}
}
