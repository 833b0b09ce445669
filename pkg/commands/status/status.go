// Package status implements the status command: compute the full
// manifest — matches, hook results and composed destinations — without
// copying anything.
package status

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

// Options holds options for the status command.
type Options struct {
	// Files are explicit candidates; empty means the repository's
	// modified files.
	Files []string

	// Host and User override the configured target the hooks run on.
	Host string
	User string

	// Dir is where repository discovery starts.
	Dir string

	// Git and Runner are injectable for testing.
	Git    git.Client
	Runner hooks.Runner
}

// Result is the computed plan.
type Result struct {
	Repo     string
	Root     string
	Manifest *engine.Manifest
}

// Status resolves the candidate files into a manifest. Hooks execute —
// their values are part of the answer — but no file is transferred.
func Status(ctx context.Context, opts Options) (*Result, error) {
	logger := logging.GetLogger("commands.status")

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

	runner := opts.Runner
	if runner == nil {
		runner = remote.NewSSHRunner(session.RemoteOptions(target))
	}

	eng := engine.New(engine.Options{
		Root:        session.Root,
		Rules:       rules,
		Variables:   session.Config.Variables,
		Hooks:       registry,
		Runner:      runner,
		Concurrency: session.Settings.Concurrency(),
		Resolver:    resolver.Options{LeafNameAsValue: session.Settings.LeafNameAsValue()},
	})

	logger.Info().
		Str("repo", session.Repo).
		Int("files", len(session.Files)).
		Msg("computing manifest")

	manifest, err := eng.Plan(ctx, session.Files)
	if err != nil {
		return nil, err
	}

	return &Result{
		Repo:     session.Repo,
		Root:     session.Root,
		Manifest: manifest,
	}, nil
}
