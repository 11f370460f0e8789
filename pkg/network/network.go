// Package network brings the machine online: best-effort wireless
// bring-up, a human-in-the-loop wait while the operator joins a
// network, and a hard connectivity gate. Only the gate decides whether
// the run continues.
package network

import (
	"context"
	"fmt"

	"github.com/arthur-debert/archup/pkg/command"
	"github.com/arthur-debert/archup/pkg/errors"
	"github.com/arthur-debert/archup/pkg/logging"
	"github.com/arthur-debert/archup/pkg/ui"
	"github.com/rs/zerolog"
)

const (
	// DefaultInterface is the wireless interface activated before the
	// operator joins a network
	DefaultInterface = "wlan0"

	// DefaultProbeAddr is the address the connectivity gate pings
	DefaultProbeAddr = "1.1.1.1"

	// The gate sends three echoes with a two second reply window each
	probeCount       = "3"
	probeWaitSeconds = "2"
)

// Network is the connectivity step
type Network struct {
	cmd       command.Runner
	prompt    ui.Prompter
	iface     string
	probeAddr string
	logger    zerolog.Logger
}

// New creates the network step backed by the given runner and prompter
func New(cmd command.Runner, prompt ui.Prompter) *Network {
	return &Network{
		cmd:       cmd,
		prompt:    prompt,
		iface:     DefaultInterface,
		probeAddr: DefaultProbeAddr,
		logger:    logging.GetLogger("network"),
	}
}

// Setup runs the bring-up sequence: start the wireless daemon and
// activate the interface (both best-effort), wait for the operator to
// join a network, then probe. Bring-up failures are logged and
// ignored; the probe alone gates continuation.
func (n *Network) Setup(ctx context.Context) error {
	if err := n.cmd.Quiet(ctx, "sudo", "systemctl", "start", "iwd"); err != nil {
		n.logger.Warn().Err(err).Msg("Could not start iwd, continuing")
	}
	if err := n.cmd.Quiet(ctx, "sudo", "ip", "link", "set", n.iface, "up"); err != nil {
		n.logger.Warn().
			Err(err).
			Str("interface", n.iface).
			Msg("Could not activate interface, continuing")
	}

	err := n.prompt.Confirm(ctx,
		"Join a wireless network",
		fmt.Sprintf("Run `iwctl station %s connect <network>` in another terminal, then continue.", n.iface),
	)
	if err != nil {
		return err
	}

	return n.Probe(ctx)
}

// Probe sends a bounded burst of ICMP echoes to the fixed public
// address. All echoes failing means the machine is offline and the
// run must stop.
func (n *Network) Probe(ctx context.Context) error {
	err := n.cmd.Quiet(ctx, "ping", "-c", probeCount, "-W", probeWaitSeconds, n.probeAddr)
	if err != nil {
		return errors.Wrapf(err, errors.ErrNoConnectivity,
			"no route to %s; join a network and re-run", n.probeAddr)
	}

	n.logger.Info().Str("address", n.probeAddr).Msg("Connectivity confirmed")
	return nil
}
