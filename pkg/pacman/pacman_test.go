// pkg/pacman/pacman_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: CommandRecorder, temp dirs
// PURPOSE: Test package manager invocations and the AUR helper
// bootstrap lifecycle

package pacman_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/archup/pkg/errors"
	"github.com/arthur-debert/archup/pkg/filesystem"
	"github.com/arthur-debert/archup/pkg/pacman"
	"github.com/arthur-debert/archup/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newManager(recorder *testutil.CommandRecorder, scratch string) *pacman.Manager {
	return pacman.New(recorder, filesystem.NewOS(), scratch)
}

func TestUpdateSystem(t *testing.T) {
	ctx := context.Background()
	recorder := testutil.NewCommandRecorder()

	require.NoError(t, newManager(recorder, t.TempDir()).UpdateSystem(ctx))

	require.Len(t, recorder.Commands, 1)
	assert.Equal(t, "sudo pacman -Syu --noconfirm", recorder.Commands[0].Line())
}

func TestUpdateSystemFailure(t *testing.T) {
	ctx := context.Background()
	recorder := testutil.NewCommandRecorder()
	recorder.FailOn("pacman -Syu", errors.New(errors.ErrCommandRun, "mirror timeout"))

	err := newManager(recorder, t.TempDir()).UpdateSystem(ctx)

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrSystemUpdate))
}

func TestInstallOfficial(t *testing.T) {
	ctx := context.Background()
	recorder := testutil.NewCommandRecorder()

	err := newManager(recorder, t.TempDir()).InstallOfficial(ctx, []string{"git", "sway", "zsh"})
	require.NoError(t, err)

	require.Len(t, recorder.Commands, 1)
	assert.Equal(t, "sudo pacman -S --needed --noconfirm git sway zsh", recorder.Commands[0].Line())
}

func TestInstallOfficialEmptyBatch(t *testing.T) {
	ctx := context.Background()
	recorder := testutil.NewCommandRecorder()

	require.NoError(t, newManager(recorder, t.TempDir()).InstallOfficial(ctx, nil))
	assert.Empty(t, recorder.Commands)
}

func TestHelperInstalled(t *testing.T) {
	ctx := context.Background()

	t.Run("resolvable", func(t *testing.T) {
		recorder := testutil.NewCommandRecorder()
		installed, err := newManager(recorder, t.TempDir()).HelperInstalled(ctx)
		require.NoError(t, err)
		assert.True(t, installed)
	})

	t.Run("missing", func(t *testing.T) {
		recorder := testutil.NewCommandRecorder()
		recorder.MarkMissing("yay")
		installed, err := newManager(recorder, t.TempDir()).HelperInstalled(ctx)
		require.NoError(t, err)
		assert.False(t, installed)
	})
}

func TestBootstrapHelper(t *testing.T) {
	ctx := context.Background()
	scratch := filepath.Join(t.TempDir(), "build", "yay")
	recorder := testutil.NewCommandRecorder()

	require.NoError(t, newManager(recorder, scratch).BootstrapHelper(ctx))

	lines := recorder.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "git clone https://aur.archlinux.org/yay.git "+scratch, lines[0])
	assert.Equal(t, "makepkg -si --noconfirm", lines[1])
	assert.Equal(t, scratch, recorder.Commands[1].Dir, "makepkg must run inside the clone")
}

func TestBootstrapHelperClearsStaleScratch(t *testing.T) {
	ctx := context.Background()
	parent := t.TempDir()
	scratch := testutil.CreateDir(t, parent, "yay")
	testutil.CreateFile(t, scratch, "PKGBUILD", "half-finished clone\n")
	recorder := testutil.NewCommandRecorder()

	require.NoError(t, newManager(recorder, scratch).BootstrapHelper(ctx))

	// The recorder never executes git, so a cleared tree stays gone
	_, err := os.Stat(scratch)
	assert.True(t, os.IsNotExist(err), "stale scratch tree should be cleared before cloning")
}

func TestBootstrapHelperCloneFailure(t *testing.T) {
	ctx := context.Background()
	recorder := testutil.NewCommandRecorder()
	recorder.FailOn("git clone", errors.New(errors.ErrCommandRun, "could not resolve host"))

	err := newManager(recorder, filepath.Join(t.TempDir(), "yay")).BootstrapHelper(ctx)

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrRepoClone))
	assert.False(t, recorder.Ran("makepkg"), "build must not run after a failed clone")
}

func TestBootstrapHelperBuildFailure(t *testing.T) {
	ctx := context.Background()
	recorder := testutil.NewCommandRecorder()
	recorder.FailOn("makepkg", errors.New(errors.ErrCommandRun, "missing base-devel"))

	err := newManager(recorder, filepath.Join(t.TempDir(), "yay")).BootstrapHelper(ctx)

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrHelperBuild))
}

func TestInstallAUR(t *testing.T) {
	ctx := context.Background()
	recorder := testutil.NewCommandRecorder()

	err := newManager(recorder, t.TempDir()).InstallAUR(ctx, []string{"spotify", "slack-desktop"})
	require.NoError(t, err)

	require.Len(t, recorder.Commands, 1)
	assert.Equal(t, "yay -S --needed --noconfirm spotify slack-desktop", recorder.Commands[0].Line())
}

func TestInstallAURFailure(t *testing.T) {
	ctx := context.Background()
	recorder := testutil.NewCommandRecorder()
	recorder.FailOn("yay", errors.New(errors.ErrCommandRun, "yay: command not found"))

	err := newManager(recorder, t.TempDir()).InstallAUR(ctx, []string{"spotify"})

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPackageInstall))
}
