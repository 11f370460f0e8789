package envsetup

import (
	"context"

	"github.com/arthur-debert/archup/pkg/command"
	"github.com/arthur-debert/archup/pkg/errors"
)

// GitIdentity pins the global git author values
type GitIdentity struct {
	cmd   command.Runner
	email string
	name  string
}

// NewGitIdentity creates the identity step
func NewGitIdentity(cmd command.Runner, email, name string) *GitIdentity {
	return &GitIdentity{cmd: cmd, email: email, name: name}
}

// Apply writes both values unconditionally, overwriting whatever was
// configured before
func (g *GitIdentity) Apply(ctx context.Context) error {
	if err := g.cmd.Quiet(ctx, "git", "config", "--global", "user.email", g.email); err != nil {
		return errors.Wrap(err, errors.ErrCommandRun, "setting git user.email failed")
	}
	if err := g.cmd.Quiet(ctx, "git", "config", "--global", "user.name", g.name); err != nil {
		return errors.Wrap(err, errors.ErrCommandRun, "setting git user.name failed")
	}
	return nil
}
