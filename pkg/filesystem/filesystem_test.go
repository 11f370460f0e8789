// pkg/filesystem/filesystem_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Verify the OS and afero FS implementations agree on basic behavior

package filesystem_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/archup/pkg/filesystem"
	"github.com/arthur-debert/archup/pkg/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOSFS(t *testing.T) {
	fs := filesystem.NewOS()
	dir := t.TempDir()

	t.Run("write_and_read_file", func(t *testing.T) {
		path := filepath.Join(dir, "zshrc")
		require.NoError(t, fs.WriteFile(path, []byte("export EDITOR=nvim\n"), 0644))

		data, err := fs.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "export EDITOR=nvim\n", string(data))
	})

	t.Run("mkdir_all", func(t *testing.T) {
		path := filepath.Join(dir, "config", "sway")
		require.NoError(t, fs.MkdirAll(path, 0755))

		info, err := fs.Stat(path)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("symlink_and_readlink", func(t *testing.T) {
		source := filepath.Join(dir, "source")
		target := filepath.Join(dir, "link")
		require.NoError(t, fs.WriteFile(source, []byte("x"), 0644))
		require.NoError(t, fs.Symlink(source, target))

		dest, err := fs.Readlink(target)
		require.NoError(t, err)
		assert.Equal(t, source, dest)

		// Lstat sees the link itself, Stat follows it
		info, err := fs.Lstat(target)
		require.NoError(t, err)
		assert.NotZero(t, info.Mode()&os.ModeSymlink)
	})

	t.Run("remove_all", func(t *testing.T) {
		scratch := filepath.Join(dir, "scratch", "yay")
		require.NoError(t, fs.MkdirAll(scratch, 0755))
		require.NoError(t, fs.WriteFile(filepath.Join(scratch, "PKGBUILD"), []byte("pkgname=yay"), 0644))

		require.NoError(t, fs.RemoveAll(filepath.Join(dir, "scratch")))
		_, err := fs.Stat(scratch)
		assert.True(t, os.IsNotExist(err))
	})
}

func TestAferoFS(t *testing.T) {
	newFS := func() types.FS {
		return filesystem.NewAferoFS(afero.NewMemMapFs())
	}

	t.Run("write_and_read_file", func(t *testing.T) {
		fs := newFS()
		require.NoError(t, fs.WriteFile("/home/user/.gitconfig", []byte("[user]\n"), 0644))

		data, err := fs.ReadFile("/home/user/.gitconfig")
		require.NoError(t, err)
		assert.Equal(t, "[user]\n", string(data))
	})

	t.Run("read_dir_fails", func(t *testing.T) {
		fs := newFS()
		require.NoError(t, fs.MkdirAll("/home/user/dotfiles", 0755))

		_, err := fs.ReadFile("/home/user/dotfiles")
		assert.Error(t, err)
	})

	t.Run("simulated_symlink", func(t *testing.T) {
		fs := newFS()
		require.NoError(t, fs.Symlink("/home/user/dotfiles/zshrc", "/home/user/.zshrc"))

		dest, err := fs.Readlink("/home/user/.zshrc")
		require.NoError(t, err)
		assert.Equal(t, "/home/user/dotfiles/zshrc", dest)
	})

	t.Run("remove", func(t *testing.T) {
		fs := newFS()
		require.NoError(t, fs.WriteFile("/tmp/f", []byte("x"), 0644))
		require.NoError(t, fs.Remove("/tmp/f"))

		_, err := fs.Stat("/tmp/f")
		assert.Error(t, err)
	})
}
