package doxygen

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	derrors "git.home.luguber.info/inful/docconf/internal/errors"
	"git.home.luguber.info/inful/docconf/internal/logfields"
)

// Runner executes the extraction tool in dir and blocks until it exits.
type Runner interface {
	Run(ctx context.Context, dir string) error
}

// ExecRunner runs an external binary via os/exec.
type ExecRunner struct {
	Command string
	Args    []string
	Stdout  io.Writer
	Stderr  io.Writer
}

// NewExecRunner returns a runner for command that forwards output to the
// process's stdout and stderr.
func NewExecRunner(command string, args ...string) *ExecRunner {
	return &ExecRunner{
		Command: command,
		Args:    args,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}
}

// Run starts the command with dir as working directory. A missing binary or
// non-zero exit is returned as a doxygen-category error; callers decide
// whether it is fatal.
func (r *ExecRunner) Run(ctx context.Context, dir string) error {
	cmd := exec.CommandContext(ctx, r.Command, r.Args...)
	cmd.Dir = dir
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	slog.Info("Running doxygen", logfields.Command(r.commandLine()), logfields.Dir(dir))
	if err := cmd.Run(); err != nil {
		return derrors.DoxygenFailed(r.commandLine(), fmt.Errorf("%s: %w", r.Command, err)).
			WithContext("dir", dir)
	}
	return nil
}

func (r *ExecRunner) commandLine() string {
	if len(r.Args) == 0 {
		return r.Command
	}
	return r.Command + " " + strings.Join(r.Args, " ")
}

// RunnerFunc adapts a function to the Runner interface.
type RunnerFunc func(ctx context.Context, dir string) error

// Run calls f(ctx, dir).
func (f RunnerFunc) Run(ctx context.Context, dir string) error { return f(ctx, dir) }
