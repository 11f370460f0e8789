package testutil

import (
	"context"
	"strings"

	"github.com/arthur-debert/archup/pkg/errors"
)

// RecordedCommand is a single call captured by the CommandRecorder
type RecordedCommand struct {
	Name string
	Args []string
	Dir  string
}

// Line renders the call the way it would appear in a shell
func (c RecordedCommand) Line() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Args, " ")
}

type failureRule struct {
	substr string
	err    error
}

type outputRule struct {
	substr string
	out    string
}

// CommandRecorder implements command.Runner for tests. Every call is
// recorded instead of executed; failures and outputs are scripted by
// substring match against the rendered command line.
type CommandRecorder struct {
	Commands []RecordedCommand

	failures []failureRule
	outputs  []outputRule
	missing  map[string]bool
}

// NewCommandRecorder creates an empty recorder where every command
// succeeds and every binary resolves
func NewCommandRecorder() *CommandRecorder {
	return &CommandRecorder{missing: make(map[string]bool)}
}

// FailOn makes any command whose line contains substr return err
func (r *CommandRecorder) FailOn(substr string, err error) {
	r.failures = append(r.failures, failureRule{substr: substr, err: err})
}

// RespondWith scripts the stdout for Output calls matching substr
func (r *CommandRecorder) RespondWith(substr, out string) {
	r.outputs = append(r.outputs, outputRule{substr: substr, out: out})
}

// MarkMissing makes LookPath fail for the named binary
func (r *CommandRecorder) MarkMissing(binary string) {
	r.missing[binary] = true
}

// Ran reports whether any recorded command line contains substr
func (r *CommandRecorder) Ran(substr string) bool {
	for _, c := range r.Commands {
		if strings.Contains(c.Line(), substr) {
			return true
		}
	}
	return false
}

// Lines returns all recorded command lines in call order
func (r *CommandRecorder) Lines() []string {
	lines := make([]string, len(r.Commands))
	for i, c := range r.Commands {
		lines[i] = c.Line()
	}
	return lines
}

func (r *CommandRecorder) record(dir, name string, args []string) RecordedCommand {
	c := RecordedCommand{Name: name, Args: args, Dir: dir}
	r.Commands = append(r.Commands, c)
	return c
}

func (r *CommandRecorder) failureFor(c RecordedCommand) error {
	line := c.Line()
	for _, rule := range r.failures {
		if strings.Contains(line, rule.substr) {
			return rule.err
		}
	}
	return nil
}

func (r *CommandRecorder) Run(ctx context.Context, name string, args ...string) error {
	return r.failureFor(r.record("", name, args))
}

func (r *CommandRecorder) RunIn(ctx context.Context, dir, name string, args ...string) error {
	return r.failureFor(r.record(dir, name, args))
}

func (r *CommandRecorder) Quiet(ctx context.Context, name string, args ...string) error {
	return r.failureFor(r.record("", name, args))
}

func (r *CommandRecorder) Output(ctx context.Context, name string, args ...string) (string, error) {
	c := r.record("", name, args)
	if err := r.failureFor(c); err != nil {
		return "", err
	}
	line := c.Line()
	for _, rule := range r.outputs {
		if strings.Contains(line, rule.substr) {
			return rule.out, nil
		}
	}
	return "", nil
}

func (r *CommandRecorder) LookPath(name string) (string, error) {
	if r.missing[name] {
		return "", errors.Newf(errors.ErrCommandMissing, "%s not found on PATH", name)
	}
	return "/usr/bin/" + name, nil
}
