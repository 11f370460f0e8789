// Package paths provides centralized path handling for archup.
// It implements XDG Base Directory specification compliance and
// provides a consistent API for all path operations in the codebase.
package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/archup/pkg/errors"
)

// Environment variable names
const (
	// EnvDotfilesDir overrides the dotfiles checkout location
	EnvDotfilesDir = "ARCHUP_DOTFILES_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default directories and files
const (
	// DefaultDotfilesDir is the default directory name for the dotfiles checkout
	DefaultDotfilesDir = "dotfiles"

	// ArchupDirName is the directory name for archup-specific files
	ArchupDirName = "archup"

	// BuildDirName is the subdirectory for package build scratch space
	BuildDirName = "build"

	// LogFileName is the name of the log file
	LogFileName = "archup.log"

	// NvmDirName is the directory the node version manager installs into
	NvmDirName = ".nvm"

	// NvmScriptName is the shell script that activates the version manager
	NvmScriptName = "nvm.sh"
)

// Paths provides centralized path management for archup
type Paths struct {
	// home is the invoking user's home directory
	home string

	// dotfilesDir is where the dotfiles repository gets cloned
	dotfilesDir string

	// xdgCache is the XDG cache directory for archup
	xdgCache string

	// xdgState is the XDG state directory for archup
	xdgState string
}

// New creates a new Paths instance rooted at the given home directory.
// If home is empty, it is resolved from the environment.
func New(home string) (*Paths, error) {
	p := &Paths{home: home}

	if p.home == "" {
		resolved, err := os.UserHomeDir()
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrFileAccess, "failed to resolve home directory")
		}
		p.home = resolved
	}

	absHome, err := filepath.Abs(p.home)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for home")
	}
	p.home = absHome

	// Dotfiles checkout location, overridable for alternate layouts
	if dir := os.Getenv(EnvDotfilesDir); dir != "" {
		p.dotfilesDir = p.ExpandHome(dir)
	} else {
		p.dotfilesDir = filepath.Join(p.home, DefaultDotfilesDir)
	}

	// The xdg package caches its values at init, so explicit env
	// overrides are checked manually to keep relocated runs and tests
	// inside their sandbox
	if cacheDir := os.Getenv("XDG_CACHE_HOME"); cacheDir != "" {
		p.xdgCache = filepath.Join(p.ExpandHome(cacheDir), ArchupDirName)
	} else {
		p.xdgCache = filepath.Join(xdg.CacheHome, ArchupDirName)
	}
	if stateDir := os.Getenv("XDG_STATE_HOME"); stateDir != "" {
		p.xdgState = filepath.Join(p.ExpandHome(stateDir), ArchupDirName)
	} else {
		p.xdgState = filepath.Join(xdg.StateHome, ArchupDirName)
	}

	return p, nil
}

// Home returns the user's home directory
func (p *Paths) Home() string {
	return p.home
}

// DotfilesDir returns the dotfiles checkout directory
func (p *Paths) DotfilesDir() string {
	return p.dotfilesDir
}

// DotfilePath returns the path of a file inside the dotfiles checkout
func (p *Paths) DotfilePath(relPath string) string {
	return filepath.Join(p.dotfilesDir, relPath)
}

// ConfigHome returns the base XDG config directory (usually ~/.config).
// It is resolved against the configured home so tests can relocate it.
func (p *Paths) ConfigHome() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return p.ExpandHome(dir)
	}
	return filepath.Join(p.home, ".config")
}

// CacheDir returns the XDG cache directory for archup
func (p *Paths) CacheDir() string {
	return p.xdgCache
}

// StateDir returns the XDG state directory for archup
func (p *Paths) StateDir() string {
	return p.xdgState
}

// LogFilePath returns the path of the log file
func (p *Paths) LogFilePath() string {
	return filepath.Join(p.xdgState, LogFileName)
}

// BuildDir returns a scratch directory for building the named package
func (p *Paths) BuildDir(name string) string {
	return filepath.Join(p.xdgCache, BuildDirName, name)
}

// NvmScript returns the path of the version manager activation script
func (p *Paths) NvmScript() string {
	return filepath.Join(p.home, NvmDirName, NvmScriptName)
}

// ExpandHome expands a leading ~ to the configured home directory
func (p *Paths) ExpandHome(path string) string {
	if path == "~" {
		return p.home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(p.home, path[2:])
	}
	return path
}
