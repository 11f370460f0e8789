package envsetup

import (
	"context"
	"fmt"
	"os"

	"github.com/arthur-debert/archup/pkg/command"
	"github.com/arthur-debert/archup/pkg/errors"
	"github.com/arthur-debert/archup/pkg/logging"
	"github.com/arthur-debert/archup/pkg/types"
	"github.com/rs/zerolog"
)

// NodeToolchain installs the latest node runtime through the version
// manager's load script
type NodeToolchain struct {
	cmd    command.Runner
	fs     types.FS
	script string
	logger zerolog.Logger
}

// NewNodeToolchain creates the toolchain step. script is the version
// manager's load script, normally ~/.nvm/nvm.sh.
func NewNodeToolchain(cmd command.Runner, fs types.FS, script string) *NodeToolchain {
	return &NodeToolchain{
		cmd:    cmd,
		fs:     fs,
		script: script,
		logger: logging.GetLogger("envsetup.node"),
	}
}

// Install sources the version manager and installs the latest runtime.
// A missing load script is a diagnostic skip, not a failure: the AUR
// package may not have produced the expected layout yet.
func (n *NodeToolchain) Install(ctx context.Context) error {
	if _, err := n.fs.Stat(n.script); err != nil {
		if os.IsNotExist(err) {
			n.logger.Info().
				Str("script", n.script).
				Msg("Version manager not found, skipping node install")
			return nil
		}
		return errors.Wrapf(err, errors.ErrFileAccess, "could not stat %s", n.script)
	}

	// A process cannot source a shell script into itself, so the
	// install runs through a shell that does
	line := fmt.Sprintf(". %s && nvm install node", n.script)
	if err := n.cmd.Run(ctx, "bash", "-c", line); err != nil {
		return errors.Wrap(err, errors.ErrPackageInstall, "node install failed")
	}
	return nil
}
