package envsetup

import (
	"context"
	"path/filepath"

	"github.com/arthur-debert/archup/pkg/command"
	"github.com/arthur-debert/archup/pkg/errors"
)

// LoginShell switches the login shell when its base name differs from
// the target
type LoginShell struct {
	cmd     command.Runner
	current string
	target  string
}

// NewLoginShell creates the shell step. current is the login shell at
// startup (normally $SHELL), target a bare shell name like "zsh".
func NewLoginShell(cmd command.Runner, current, target string) *LoginShell {
	return &LoginShell{cmd: cmd, current: current, target: target}
}

// Matches reports whether the login shell already is the target
func (s *LoginShell) Matches(ctx context.Context) (bool, error) {
	return filepath.Base(s.current) == s.target, nil
}

// Change resolves the target shell on PATH and asks chsh to switch.
// chsh prompts for the password on its own.
func (s *LoginShell) Change(ctx context.Context) error {
	path, err := s.cmd.LookPath(s.target)
	if err != nil {
		return errors.Wrapf(err, errors.ErrShellChange, "%s is not installed", s.target)
	}

	if err := s.cmd.Run(ctx, "chsh", "-s", path); err != nil {
		return errors.Wrap(err, errors.ErrShellChange, "changing login shell failed")
	}
	return nil
}
