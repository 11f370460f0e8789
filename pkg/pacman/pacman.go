// Package pacman drives the system package manager and the AUR
// helper. Batches run with auto-confirmation and skip
// already-satisfied packages, which is what makes re-runs safe.
package pacman

import (
	"context"
	"path/filepath"

	"github.com/arthur-debert/archup/pkg/command"
	"github.com/arthur-debert/archup/pkg/errors"
	"github.com/arthur-debert/archup/pkg/logging"
	"github.com/arthur-debert/archup/pkg/types"
	"github.com/rs/zerolog"
)

const (
	// HelperBinary is the AUR helper the tool bootstraps and uses
	HelperBinary = "yay"

	// helperRepoURL hosts the helper's build recipe
	helperRepoURL = "https://aur.archlinux.org/yay.git"
)

// Manager wraps pacman and the AUR helper
type Manager struct {
	cmd     command.Runner
	fs      types.FS
	scratch string
	logger  zerolog.Logger
}

// New creates a Manager. scratch is where the AUR helper gets built
// and is removed after a successful build.
func New(cmd command.Runner, fs types.FS, scratch string) *Manager {
	return &Manager{
		cmd:     cmd,
		fs:      fs,
		scratch: scratch,
		logger:  logging.GetLogger("pacman"),
	}
}

// UpdateSystem refreshes the package database and upgrades the whole
// system in one transaction
func (m *Manager) UpdateSystem(ctx context.Context) error {
	if err := m.cmd.Run(ctx, "sudo", "pacman", "-Syu", "--noconfirm"); err != nil {
		return errors.Wrap(err, errors.ErrSystemUpdate, "system update failed")
	}
	return nil
}

// InstallOfficial installs the batch from the official repositories.
// --needed turns already-installed packages into no-ops.
func (m *Manager) InstallOfficial(ctx context.Context, packages []string) error {
	if len(packages) == 0 {
		return nil
	}

	args := append([]string{"pacman", "-S", "--needed", "--noconfirm"}, packages...)
	if err := m.cmd.Run(ctx, "sudo", args...); err != nil {
		return errors.Wrap(err, errors.ErrPackageInstall, "official package install failed")
	}
	return nil
}

// HelperInstalled reports whether the AUR helper already resolves on
// PATH
func (m *Manager) HelperInstalled(ctx context.Context) (bool, error) {
	_, err := m.cmd.LookPath(HelperBinary)
	return err == nil, nil
}

// BootstrapHelper builds the AUR helper from its upstream recipe. The
// scratch tree is cleared first so a clone left behind by an aborted
// run cannot fail this one, and removed again after a successful
// build. makepkg runs unprivileged and escalates on its own for the
// install phase.
func (m *Manager) BootstrapHelper(ctx context.Context) error {
	if err := m.fs.RemoveAll(m.scratch); err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "could not clear %s", m.scratch)
	}
	if err := m.fs.MkdirAll(filepath.Dir(m.scratch), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "could not create build dir for %s", HelperBinary)
	}

	m.logger.Info().Str("repo", helperRepoURL).Str("dir", m.scratch).Msg("Bootstrapping AUR helper")

	if err := m.cmd.Run(ctx, "git", "clone", helperRepoURL, m.scratch); err != nil {
		return errors.Wrapf(err, errors.ErrRepoClone, "cloning %s failed", helperRepoURL)
	}
	if err := m.cmd.RunIn(ctx, m.scratch, "makepkg", "-si", "--noconfirm"); err != nil {
		return errors.Wrapf(err, errors.ErrHelperBuild, "building %s failed", HelperBinary)
	}

	if err := m.fs.RemoveAll(m.scratch); err != nil {
		m.logger.Warn().Err(err).Str("dir", m.scratch).Msg("Could not remove scratch dir")
	}
	return nil
}

// InstallAUR installs the batch through the helper. The helper calls
// sudo itself, so this runs unprivileged.
func (m *Manager) InstallAUR(ctx context.Context, packages []string) error {
	if len(packages) == 0 {
		return nil
	}

	args := append([]string{"-S", "--needed", "--noconfirm"}, packages...)
	if err := m.cmd.Run(ctx, HelperBinary, args...); err != nil {
		return errors.Wrap(err, errors.ErrPackageInstall, "AUR package install failed")
	}
	return nil
}
