// Package paths provides centralized path handling for archup.
//
// This package implements the XDG Base Directory specification and provides
// a consistent API for all path operations throughout the archup codebase.
// It handles:
//
//   - Dotfiles checkout location and override
//   - XDG directory structure (cache, state)
//   - Home expansion for link targets
//   - Build scratch directories for AUR packages
//
// # Environment Variables
//
// The package respects the following environment variables:
//
//   - ARCHUP_DOTFILES_DIR: Override the dotfiles checkout (default: ~/dotfiles)
//   - XDG_CONFIG_HOME: Base for config targets (default: ~/.config)
//   - XDG_CACHE_HOME: Base for build scratch space (default: ~/.cache)
//   - XDG_STATE_HOME: Base for the log file (default: ~/.local/state)
//
// # Usage
//
//	import "github.com/arthur-debert/archup/pkg/paths"
//
//	p, err := paths.New("") // Resolve home from the environment
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	dotfiles := p.DotfilesDir()       // /home/user/dotfiles
//	sway := p.ConfigHome()            // /home/user/.config
//	scratch := p.BuildDir("yay")      // /home/user/.cache/archup/build/yay
package paths
