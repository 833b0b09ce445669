// Package check implements the check command: validate the current
// repository's whole mapping configuration without touching the host.
// Every rule is parsed and its variable closure resolved, so unknown
// variables and hooks surface together before any real run.
package check

import (
	"context"

	"github.com/arthur-debert/hoist/pkg/commands/internal"
	"github.com/arthur-debert/hoist/pkg/errors"
	"github.com/arthur-debert/hoist/pkg/git"
	"github.com/arthur-debert/hoist/pkg/hooks"
	"github.com/arthur-debert/hoist/pkg/logging"
	"github.com/arthur-debert/hoist/pkg/mapping"
	"github.com/arthur-debert/hoist/pkg/resolver"
)

// Options holds options for the check command.
type Options struct {
	// Dir is where repository discovery starts.
	Dir string

	// Git is injectable for testing.
	Git git.Client
}

// Result summarizes what was validated.
type Result struct {
	Repo      string
	RuleCount int
	VarCount  int
	HookCount int
}

// Check validates the repository's configuration. The result is always
// returned; the error aggregates every diagnostic found.
func Check(ctx context.Context, opts Options) (*Result, error) {
	logger := logging.GetLogger("commands.check")

	gitClient := opts.Git
	if gitClient == nil {
		gitClient = git.NewShellClient()
	}

	session, err := internal.Load(ctx, internal.LoadOptions{
		Git:       gitClient,
		Dir:       opts.Dir,
		SkipFiles: true,
	})
	if err != nil {
		return nil, err
	}

	errs := errors.NewList()

	// Parse declarations one by one so a malformed rule does not hide
	// resolution problems in the well-formed ones.
	var rules []mapping.Rule
	for _, declaration := range session.Config.Paths {
		rule, err := mapping.ParseRule(declaration)
		if err != nil {
			errs.Add(err)
			continue
		}
		rules = append(rules, rule)
	}

	registry, err := hooks.NewRegistry(session.Config.Hooks)
	if err != nil {
		errs.Add(errors.Flatten(err)...)
		registry, _ = hooks.NewRegistry(nil)
	}

	leafNameAsValue := session.Settings.LeafNameAsValue()
	for _, rule := range rules {
		_, err := resolver.Resolve(rule.Remote, session.Config.Variables, registry,
			resolver.Options{LeafNameAsValue: leafNameAsValue})
		if err != nil {
			errs.Add(errors.Flatten(err)...)
		}
	}

	result := &Result{
		Repo:      session.Repo,
		RuleCount: len(rules),
		VarCount:  len(session.Config.Variables),
		HookCount: len(session.Config.Hooks),
	}

	logger.Info().
		Str("repo", session.Repo).
		Int("rules", result.RuleCount).
		Int("diagnostics", errs.Len()).
		Msg("configuration checked")

	return result, errs.ErrOrNil()
}
