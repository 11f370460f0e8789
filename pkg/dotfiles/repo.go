// Package dotfiles acquires the personal configuration repository and
// materializes its files into their fixed locations. An existing clone
// is never refreshed, and link targets are force-replaced so repeated
// runs converge on the same tree.
package dotfiles

import (
	"context"
	"os"

	"github.com/arthur-debert/archup/pkg/command"
	"github.com/arthur-debert/archup/pkg/errors"
	"github.com/arthur-debert/archup/pkg/logging"
	"github.com/arthur-debert/archup/pkg/types"
	"github.com/rs/zerolog"
)

// Repo handles acquisition of the dotfiles tree
type Repo struct {
	cmd    command.Runner
	fs     types.FS
	remote string
	dir    string
	logger zerolog.Logger
}

// NewRepo creates a Repo that clones remote into dir
func NewRepo(cmd command.Runner, fs types.FS, remote, dir string) *Repo {
	return &Repo{
		cmd:    cmd,
		fs:     fs,
		remote: remote,
		dir:    dir,
		logger: logging.GetLogger("dotfiles"),
	}
}

// Dir returns the local dotfiles directory
func (r *Repo) Dir() string {
	return r.dir
}

// Cloned reports whether the dotfiles directory already exists. Stale
// clones are not refreshed, existence is the whole check.
func (r *Repo) Cloned(ctx context.Context) (bool, error) {
	_, err := r.fs.Stat(r.dir)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, errors.Wrapf(err, errors.ErrFileAccess, "could not stat %s", r.dir)
}

// Clone fetches the dotfiles repository from the remote
func (r *Repo) Clone(ctx context.Context) error {
	r.logger.Info().
		Str("remote", r.remote).
		Str("dir", r.dir).
		Msg("Cloning dotfiles")

	if err := r.cmd.Run(ctx, "git", "clone", r.remote, r.dir); err != nil {
		return errors.Wrapf(err, errors.ErrRepoClone, "cloning %s failed", r.remote)
	}
	return nil
}
