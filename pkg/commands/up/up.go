// Package up implements the up command: resolve every candidate file's
// remote destination and copy it to the configured host.
package up

import (
	"context"

	"github.com/arthur-debert/hoist/pkg/commands/internal"
	"github.com/arthur-debert/hoist/pkg/engine"
	"github.com/arthur-debert/hoist/pkg/git"
	"github.com/arthur-debert/hoist/pkg/hooks"
	"github.com/arthur-debert/hoist/pkg/logging"
	"github.com/arthur-debert/hoist/pkg/remote"
	"github.com/arthur-debert/hoist/pkg/resolver"
)

// Options holds options for the up command.
type Options struct {
	// Files are explicit candidates; empty means the repository's
	// modified files.
	Files []string

	// DryRun resolves everything but only reports the copies.
	DryRun bool

	// Host and User override the configured target.
	Host string
	User string

	// Dir is where repository discovery starts; empty means the
	// working directory.
	Dir string

	// Git, Runner and Transferrer are injectable for testing. Nil
	// picks the real collaborators.
	Git         git.Client
	Runner      hooks.Runner
	Transferrer engine.Transferrer
}

// Result is the outcome of an up run.
type Result struct {
	Repo   string
	Root   string
	Report *engine.Report
	DryRun bool

	// Planned carries the composed copy commands of a dry run.
	Planned []string
}

// Up maps the candidate files, executes the hook closure and transfers
// the results. Partial transfer failures return both the report and the
// aggregated error.
func Up(ctx context.Context, opts Options) (*Result, error) {
	logger := logging.GetLogger("commands.up")

	gitClient := opts.Git
	if gitClient == nil {
		gitClient = git.NewShellClient()
	}

	session, err := internal.Load(ctx, internal.LoadOptions{
		Git:   gitClient,
		Dir:   opts.Dir,
		Files: opts.Files,
	})
	if err != nil {
		return nil, err
	}

	rules, err := session.Config.Rules()
	if err != nil {
		return nil, err
	}
	registry, err := hooks.NewRegistry(session.Config.Hooks)
	if err != nil {
		return nil, err
	}

	target, err := session.Target(opts.Host, opts.User)
	if err != nil {
		return nil, err
	}
	remoteOpts := session.RemoteOptions(target)

	runner := opts.Runner
	if runner == nil {
		runner = remote.NewSSHRunner(remoteOpts)
	}

	var dryRun *remote.DryRunTransferrer
	transferrer := opts.Transferrer
	if transferrer == nil {
		if opts.DryRun {
			dryRun = remote.NewDryRunTransferrer(remoteOpts)
			transferrer = dryRun
		} else {
			transferrer = remote.NewSCPTransferrer(remoteOpts)
		}
	}

	eng := engine.New(engine.Options{
		Root:        session.Root,
		Rules:       rules,
		Variables:   session.Config.Variables,
		Hooks:       registry,
		Runner:      runner,
		Transferrer: transferrer,
		Concurrency: session.Settings.Concurrency(),
		Resolver:    resolver.Options{LeafNameAsValue: session.Settings.LeafNameAsValue()},
	})

	logger.Info().
		Str("repo", session.Repo).
		Str("host", target.Address()).
		Int("files", len(session.Files)).
		Bool("dry_run", opts.DryRun).
		Msg("starting run")

	report, runErr := eng.Run(ctx, session.Files)

	result := &Result{
		Repo:   session.Repo,
		Root:   session.Root,
		Report: report,
		DryRun: opts.DryRun,
	}
	if dryRun != nil {
		result.Planned = dryRun.Planned()
	}
	return result, runErr
}
