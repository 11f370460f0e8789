package provision

import (
	"path/filepath"

	"github.com/arthur-debert/archup/pkg/dotfiles"
	"github.com/arthur-debert/archup/pkg/paths"
)

// Manifest is the fixed description of what a provisioned workstation
// gets. Values live in source, not in a configuration file; changing
// the machine means changing this file and rebuilding.
type Manifest struct {
	OfficialPackages []string
	AURPackages      []string
	DotfilesRemote   string
	GitEmail         string
	GitName          string
	TargetShell      string
}

// Default returns the manifest every run applies
func Default() Manifest {
	return Manifest{
		OfficialPackages: []string{
			"base-devel",
			"git",
			"iwd",
			"sway",
			"swaybg",
			"swaylock",
			"waybar",
			"foot",
			"neovim",
			"tmux",
			"zsh",
			"wget",
			"unzip",
			"grim",
			"slurp",
			"brightnessctl",
			"ttf-jetbrains-mono",
		},
		AURPackages: []string{
			"nvm",
			"google-chrome",
			"spotify",
		},
		DotfilesRemote: "https://github.com/arthur-debert/dotfiles.git",
		GitEmail:       "arthur-debert@users.noreply.github.com",
		GitName:        "Arthur Debert",
		TargetShell:    "zsh",
	}
}

// Links returns the configuration targets resolved against p. Sway's
// entry copies the stock system config instead of linking, and only
// when the system provides one; the zshrc entry tolerates a dotfiles
// tree that does not carry it.
func (m Manifest) Links(p *paths.Paths) []dotfiles.LinkSpec {
	return []dotfiles.LinkSpec{
		{
			Source: p.DotfilePath("nvim"),
			Target: filepath.Join(p.ConfigHome(), "nvim"),
			Mode:   dotfiles.ModeLink,
		},
		{
			Source: p.DotfilePath("foot"),
			Target: filepath.Join(p.ConfigHome(), "foot"),
			Mode:   dotfiles.ModeLink,
		},
		{
			Source: p.DotfilePath("waybar"),
			Target: filepath.Join(p.ConfigHome(), "waybar"),
			Mode:   dotfiles.ModeLink,
		},
		{
			Source: p.DotfilePath(".tmux.conf"),
			Target: filepath.Join(p.Home(), ".tmux.conf"),
			Mode:   dotfiles.ModeLink,
		},
		{
			Source: "/etc/sway/config",
			Target: filepath.Join(p.ConfigHome(), "sway", "config"),
			Mode:   dotfiles.ModeCopyIfExists,
		},
		{
			Source: p.DotfilePath(".zsh/.zshrc"),
			Target: filepath.Join(p.Home(), ".zshrc"),
			Mode:   dotfiles.ModeLinkIfExists,
		},
	}
}
