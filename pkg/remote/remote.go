// Package remote runs hook commands and file transfers against the
// configured host. Hooks ride ssh and copies ride scp, both as plain
// subprocesses, so the user's ssh config, agents and host aliases all
// apply unchanged.
package remote

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/hoist/pkg/engine"
	"github.com/arthur-debert/hoist/pkg/logging"
)

// Target identifies the host a run talks to.
type Target struct {
	Host string
	User string
}

// Address returns the ssh destination, with the user prefix when one is
// configured.
func (t Target) Address() string {
	if t.User != "" {
		return t.User + "@" + t.Host
	}
	return t.Host
}

// Options configures the transports for a run.
type Options struct {
	Target Target

	// Root is the local repository root transfers copy from.
	Root string

	// SSHBinary and SCPBinary override the standard binary names.
	SSHBinary string
	SCPBinary string
}

func (o Options) ssh() string {
	if o.SSHBinary != "" {
		return o.SSHBinary
	}
	return "ssh"
}

func (o Options) scp() string {
	if o.SCPBinary != "" {
		return o.SCPBinary
	}
	return "scp"
}

// SSHRunner executes hook command lines on the target over ssh.
type SSHRunner struct {
	target Target
	binary string
	logger zerolog.Logger
}

// NewSSHRunner creates a runner for the configured target.
func NewSSHRunner(opts Options) *SSHRunner {
	return &SSHRunner{
		target: opts.Target,
		binary: opts.ssh(),
		logger: logging.GetLogger("remote.ssh"),
	}
}

// Run executes command on the target and returns its trimmed output.
// The hook name arrives as $0 and the arguments as $1..$n, so commands
// can reference them positionally.
func (r *SSHRunner) Run(ctx context.Context, command string, name string, args []string) (string, error) {
	invocation := remoteCommand(command, name, args)
	logging.LogCommand(r.binary, []string{r.target.Address(), invocation})

	cmd := exec.CommandContext(ctx, r.binary, r.target.Address(), invocation)
	output, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok && len(exitErr.Stderr) > 0 {
			return "", fmt.Errorf("%w: %s", err, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", err
	}
	return strings.TrimSpace(string(output)), nil
}

// remoteCommand builds the shell invocation ssh hands to the target.
// ssh joins its command words with spaces and lets the remote shell
// re-split them, so every word is quoted before the trip.
func remoteCommand(command string, name string, args []string) string {
	words := []string{"sh", "-c", shellQuote(command), shellQuote(name)}
	for _, arg := range args {
		words = append(words, shellQuote(arg))
	}
	return strings.Join(words, " ")
}

// shellQuote wraps s in single quotes, escaping any embedded single quotes.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// SCPTransferrer copies files to the target with scp.
type SCPTransferrer struct {
	target Target
	root   string
	binary string
	logger zerolog.Logger
}

// NewSCPTransferrer creates a transferrer that copies from the local
// repository at opts.Root to the target.
func NewSCPTransferrer(opts Options) *SCPTransferrer {
	return &SCPTransferrer{
		target: opts.Target,
		root:   opts.Root,
		binary: opts.scp(),
		logger: logging.GetLogger("remote.scp"),
	}
}

// Copy implements engine.Transferrer.
func (t *SCPTransferrer) Copy(ctx context.Context, transfer engine.Transfer) error {
	args := scpArgs(t.root, t.target, transfer)
	logging.LogCommand(t.binary, args)

	cmd := exec.CommandContext(ctx, t.binary, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("%w: %s", err, strings.TrimSpace(string(output)))
	}
	return nil
}

// scpArgs composes the argument list for a transfer.
func scpArgs(root string, target Target, transfer engine.Transfer) []string {
	var args []string
	if transfer.Recursive {
		args = append(args, "-r")
	}
	return append(args,
		filepath.Join(root, transfer.Source),
		target.Address()+":"+transfer.Destination,
	)
}

// DryRunTransferrer reports the copies a run would perform without
// touching the host.
type DryRunTransferrer struct {
	target Target
	root   string
	binary string
	logger zerolog.Logger

	mu      sync.Mutex
	planned []string
}

// NewDryRunTransferrer creates a transferrer that only records.
func NewDryRunTransferrer(opts Options) *DryRunTransferrer {
	return &DryRunTransferrer{
		target: opts.Target,
		root:   opts.Root,
		binary: opts.scp(),
		logger: logging.GetLogger("remote.dryrun"),
	}
}

// Copy implements engine.Transferrer. It records the scp command a real
// run would execute and succeeds.
func (t *DryRunTransferrer) Copy(ctx context.Context, transfer engine.Transfer) error {
	line := strings.Join(append([]string{t.binary}, scpArgs(t.root, t.target, transfer)...), " ")

	t.mu.Lock()
	t.planned = append(t.planned, line)
	t.mu.Unlock()

	t.logger.Info().Str("command", line).Msg("dry run: transfer skipped")
	return nil
}

// Planned returns the command lines a real run would have executed, in
// order.
func (t *DryRunTransferrer) Planned() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]string, len(t.planned))
	copy(out, t.planned)
	return out
}
