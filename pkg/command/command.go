// Package command wraps external process execution behind a small
// interface so steps can be exercised in tests without touching the
// system. The OS implementation inherits stdio for interactive tools
// (pacman, makepkg, chsh) and captures output for quiet probes.
package command

import (
	"context"
	"os"
	"os/exec"
	"strings"

	"github.com/arthur-debert/archup/pkg/errors"
	"github.com/arthur-debert/archup/pkg/logging"
	"github.com/rs/zerolog"
)

// Runner executes external commands
type Runner interface {
	// Run executes a command with stdio inherited from the process.
	// Interactive programs (sudo password prompts, chsh) need this.
	Run(ctx context.Context, name string, args ...string) error

	// RunIn is Run with a working directory
	RunIn(ctx context.Context, dir, name string, args ...string) error

	// Quiet executes a command capturing its output. On failure the
	// tail of the combined output is folded into the error message.
	Quiet(ctx context.Context, name string, args ...string) error

	// Output executes a command and returns its trimmed stdout
	Output(ctx context.Context, name string, args ...string) (string, error)

	// LookPath resolves a binary on PATH
	LookPath(name string) (string, error)
}

// osRunner is the production Runner backed by os/exec
type osRunner struct {
	logger zerolog.Logger
}

// NewOS creates a Runner that executes commands on the host
func NewOS() Runner {
	return &osRunner{logger: logging.GetLogger("command")}
}

func (r *osRunner) Run(ctx context.Context, name string, args ...string) error {
	logging.LogCommand(name, args)

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, errors.ErrCommandRun, "%s failed", name)
	}
	return nil
}

func (r *osRunner) RunIn(ctx context.Context, dir, name string, args ...string) error {
	logging.LogCommand(name, args)

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, errors.ErrCommandRun, "%s failed in %s", name, dir)
	}
	return nil
}

func (r *osRunner) Quiet(ctx context.Context, name string, args ...string) error {
	logging.LogCommand(name, args)

	cmd := exec.CommandContext(ctx, name, args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return errors.Wrapf(err, errors.ErrCommandRun, "%s failed: %s", name, outputTail(out))
	}

	r.logger.Trace().
		Str("command", name).
		Str("output", strings.TrimSpace(string(out))).
		Msg("Command output")
	return nil
}

func (r *osRunner) Output(ctx context.Context, name string, args ...string) (string, error) {
	logging.LogCommand(name, args)

	cmd := exec.CommandContext(ctx, name, args...)
	out, err := cmd.Output()
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrCommandRun, "%s failed", name)
	}
	return strings.TrimSpace(string(out)), nil
}

func (r *osRunner) LookPath(name string) (string, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrCommandMissing, "%s not found on PATH", name)
	}
	return path, nil
}

// outputTail keeps error messages readable when a command dumps pages
// of output before failing
func outputTail(out []byte) string {
	s := strings.TrimSpace(string(out))
	if s == "" {
		return "no output"
	}
	const max = 300
	if len(s) > max {
		s = "..." + s[len(s)-max:]
	}
	return s
}
