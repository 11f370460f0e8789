package provision

import (
	"context"
	"fmt"

	"github.com/arthur-debert/archup/pkg/command"
	"github.com/arthur-debert/archup/pkg/dotfiles"
	"github.com/arthur-debert/archup/pkg/envsetup"
	"github.com/arthur-debert/archup/pkg/network"
	"github.com/arthur-debert/archup/pkg/pacman"
	"github.com/arthur-debert/archup/pkg/paths"
	"github.com/arthur-debert/archup/pkg/types"
	"github.com/arthur-debert/archup/pkg/ui"
)

// Env carries the process-level dependencies the plan wires into its
// steps. Everything is constructed once at startup and discarded at
// exit.
type Env struct {
	Cmd    command.Runner
	FS     types.FS
	Paths  *paths.Paths
	Prompt ui.Prompter

	// Shell is the login shell at startup, normally $SHELL
	Shell string
}

// Plan builds the fixed ten-step sequence. Declaration order is
// execution order; every step assumes the ones before it succeeded.
func Plan(env Env, m Manifest) []Step {
	net := network.New(env.Cmd, env.Prompt)
	pac := pacman.New(env.Cmd, env.FS, env.Paths.BuildDir(pacman.HelperBinary))
	repo := dotfiles.NewRepo(env.Cmd, env.FS, m.DotfilesRemote, env.Paths.DotfilesDir())
	linker := dotfiles.NewLinker(env.FS)
	node := envsetup.NewNodeToolchain(env.Cmd, env.FS, env.Paths.NvmScript())
	identity := envsetup.NewGitIdentity(env.Cmd, m.GitEmail, m.GitName)
	shell := envsetup.NewLoginShell(env.Cmd, env.Shell, m.TargetShell)

	links := m.Links(env.Paths)

	return []Step{
		{
			Name:    "network-setup",
			Summary: "bring up wireless and verify connectivity",
			Run:     net.Setup,
		},
		{
			Name:    "system-update",
			Summary: "refresh and upgrade installed packages",
			Run:     pac.UpdateSystem,
		},
		{
			Name:    "official-packages",
			Summary: fmt.Sprintf("install %d packages from the official repositories", len(m.OfficialPackages)),
			Run: func(ctx context.Context) error {
				return pac.InstallOfficial(ctx, m.OfficialPackages)
			},
		},
		{
			Name:     "aur-helper",
			Summary:  "bootstrap " + pacman.HelperBinary + " from its build recipe",
			Check:    pac.HelperInstalled,
			DoneNote: pacman.HelperBinary + " already on PATH",
			Run:      pac.BootstrapHelper,
		},
		{
			Name:    "aur-packages",
			Summary: fmt.Sprintf("install %d packages from the AUR", len(m.AURPackages)),
			Run: func(ctx context.Context) error {
				return pac.InstallAUR(ctx, m.AURPackages)
			},
		},
		{
			Name:     "dotfiles-clone",
			Summary:  "clone " + m.DotfilesRemote,
			Check:    repo.Cloned,
			DoneNote: "dotfiles directory exists",
			Run:      repo.Clone,
		},
		{
			Name:    "dotfiles-links",
			Summary: "materialize configuration links",
			Run: func(ctx context.Context) error {
				return linker.Materialize(ctx, links)
			},
		},
		{
			Name:    "node-toolchain",
			Summary: "install the latest node through nvm",
			Run:     node.Install,
		},
		{
			Name:    "git-identity",
			Summary: "set the global git author values",
			Run:     identity.Apply,
		},
		{
			Name:     "login-shell",
			Summary:  "switch the login shell to " + m.TargetShell,
			Check:    shell.Matches,
			DoneNote: "login shell already " + m.TargetShell,
			Run:      shell.Change,
		},
	}
}
