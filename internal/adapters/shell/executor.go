// Package shell provides the process executor that runs planned invocations.
package shell

import (
	"context"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"go.trai.ch/mars/internal/core/domain"
	"go.trai.ch/mars/internal/core/ports"
	"go.trai.ch/zerr"
)

// Executor implements ports.Executor using os/exec with inherited stdio.
type Executor struct {
	logger ports.Logger
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// NewExecutor creates a new Executor bound to the process's standard streams.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{
		logger: logger,
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

// WithOutput returns a copy of the executor writing the child's output to stdout and stderr.
func (e *Executor) WithOutput(stdout, stderr io.Writer) *Executor {
	c := *e
	c.stdin = nil
	c.stdout = stdout
	c.stderr = stderr
	return &c
}

// Run spawns the invocation and blocks until it exits. Cancelling ctx kills the child.
func (e *Executor) Run(ctx context.Context, inv domain.Invocation) error {
	if inv.Binary == "" {
		return nil
	}

	if inv.Verbose && e.logger != nil {
		e.logger.Info(CommandLine(inv))
	}

	env := inv.Env.List()

	executable := inv.Binary
	if !filepath.IsAbs(executable) {
		if lp, err := lookPath(executable, inv.Env.Get("PATH")); err == nil {
			executable = lp
		}
	}

	cmd := exec.CommandContext(ctx, executable, inv.Args...) //nolint:gosec // planned build command
	if len(cmd.Args) > 0 {
		cmd.Args[0] = inv.Binary
	}
	cmd.Env = env
	cmd.Stdin = e.stdin
	cmd.Stdout = e.stdout
	cmd.Stderr = e.stderr

	if err := cmd.Run(); err != nil {
		exitCode := -1
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
		return zerr.With(zerr.With(zerr.Wrap(err, domain.ErrCommandFailed.Error()),
			"exit_code", exitCode), "binary", inv.Binary)
	}

	return nil
}

// CommandLine renders the invocation the way a shell user would type it.
func CommandLine(inv domain.Invocation) string {
	parts := make([]string, 0, len(inv.Args)+1)
	parts = append(parts, quote(inv.Binary))
	for _, a := range inv.Args {
		parts = append(parts, quote(a))
	}
	return strings.Join(parts, " ")
}

func quote(s string) string {
	if s == "" {
		return "''"
	}
	if !strings.ContainsAny(s, " \t\n\"'\\$`") {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// lookPath searches the directories of the child's PATH, not the parent's.
func lookPath(file, path string) (string, error) {
	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			dir = "."
		}
		candidate := filepath.Join(dir, file)
		if err := findExecutable(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
