// Package engine orchestrates a run: it stats the candidate files,
// matches each against the repository's path rules, resolves the
// variable and hook closure of every matched rule, dispatches the unique
// hook calls, substitutes the resolved values into remote templates, and
// hands the composed transfers to the transfer capability.
//
// Within a phase every independent unit of work is attempted and the
// failures are reported together; a phase with failures halts the run
// before the next phase begins, so no file is transferred off an
// incomplete resolution.
package engine

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/arthur-debert/hoist/pkg/errors"
	"github.com/arthur-debert/hoist/pkg/hooks"
	"github.com/arthur-debert/hoist/pkg/logging"
	"github.com/arthur-debert/hoist/pkg/mapping"
	"github.com/arthur-debert/hoist/pkg/resolver"
	"github.com/arthur-debert/hoist/pkg/tmpl"
)

// Options configures an engine for one repository.
type Options struct {
	// Root is the absolute local path of the repository.
	Root string

	// Rules are the repository's ordered path rules.
	Rules []mapping.Rule

	// Variables is the repository's static variable table.
	Variables map[string]string

	// Hooks is the repository's validated hook registry.
	Hooks *hooks.Registry

	// Runner executes hook command lines.
	Runner hooks.Runner

	// Transferrer performs the composed copies.
	Transferrer Transferrer

	// Concurrency bounds the stat and hook fan-outs. Non-positive
	// values fall back to hooks.DefaultConcurrency.
	Concurrency int

	// Resolver controls variable resolution behavior.
	Resolver resolver.Options

	Logger zerolog.Logger
}

// Engine maps candidate files to remote destinations and transfers them.
type Engine struct {
	opts       Options
	dispatcher *hooks.Dispatcher
	logger     zerolog.Logger
}

// New creates an engine from the given options.
func New(opts Options) *Engine {
	if opts.Concurrency <= 0 {
		opts.Concurrency = hooks.DefaultConcurrency
	}

	logger := opts.Logger
	if logger.GetLevel() == zerolog.Disabled {
		logger = logging.GetLogger("engine")
	}

	return &Engine{
		opts:       opts,
		dispatcher: hooks.NewDispatcher(opts.Hooks, opts.Runner, opts.Concurrency),
		logger:     logger,
	}
}

// Plan resolves every candidate path into a transfer without performing
// any copy: stat, match, resolve, dispatch hooks, substitute, compose.
func (e *Engine) Plan(ctx context.Context, paths []string) (*Manifest, error) {
	done := logging.LogOperationStart(e.logger, "plan")
	defer done()

	inputs, err := e.statInputs(paths)
	if err != nil {
		return nil, err
	}

	matched, err := e.matchInputs(inputs)
	if err != nil {
		return nil, err
	}

	values, calls, err := e.resolveRules(matched)
	if err != nil {
		return nil, err
	}

	if err := e.dispatcher.Dispatch(ctx, calls, values); err != nil {
		return nil, err
	}

	transfers, err := e.composeTransfers(inputs, matched, values)
	if err != nil {
		return nil, err
	}

	return &Manifest{
		Transfers: transfers,
		Hooks:     hooks.Deduplicate(calls),
		Values:    values,
	}, nil
}

// Run plans the candidate paths and performs every transfer. Transfers
// are attempted in order even when earlier ones fail; the failures are
// aggregated into the returned error, and the report records the outcome
// of each transfer.
func (e *Engine) Run(ctx context.Context, paths []string) (*Report, error) {
	manifest, err := e.Plan(ctx, paths)
	if err != nil {
		return nil, err
	}

	report := &Report{
		Manifest: manifest,
		Results:  make([]TransferResult, 0, len(manifest.Transfers)),
	}

	errs := errors.NewList()
	for _, transfer := range manifest.Transfers {
		copyErr := e.opts.Transferrer.Copy(ctx, transfer)
		if copyErr != nil {
			copyErr = errors.Wrapf(copyErr, errors.ErrTransferFailure,
				"transfer of %s failed", transfer.Source)
			errs.Add(copyErr)
			e.logger.Error().
				Err(copyErr).
				Str("source", transfer.Source).
				Str("destination", transfer.Destination).
				Msg("Transfer failed")
		} else {
			e.logger.Info().
				Str("source", transfer.Source).
				Str("destination", transfer.Destination).
				Bool("recursive", transfer.Recursive).
				Msg("Transferred")
		}
		report.Results = append(report.Results, TransferResult{Transfer: transfer, Err: copyErr})
	}

	return report, errs.ErrOrNil()
}

// statInputs checks existence and type of every candidate concurrently.
// Each task writes only its own slot; the join collects every failure.
func (e *Engine) statInputs(paths []string) ([]Input, error) {
	inputs := make([]Input, len(paths))
	failures := make([]error, len(paths))

	var group errgroup.Group
	group.SetLimit(e.opts.Concurrency)
	for i, path := range paths {
		group.Go(func() error {
			info, err := os.Stat(filepath.Join(e.opts.Root, path))
			if err != nil {
				failures[i] = errors.Wrapf(err, errors.ErrStatFailure,
					"cannot stat %s", path)
				return nil
			}
			inputs[i] = Input{Path: path, IsDirectory: info.IsDir()}
			return nil
		})
	}
	_ = group.Wait()

	errs := errors.NewList()
	errs.Add(failures...)
	if err := errs.ErrOrNil(); err != nil {
		return nil, err
	}
	return inputs, nil
}

// matchInputs assigns each input to the first rule whose prefix matches.
// The result maps input index to rule index.
func (e *Engine) matchInputs(inputs []Input) ([]int, error) {
	matched := make([]int, len(inputs))
	errs := errors.NewList()
	for i, input := range inputs {
		idx, err := mapping.Match(input.Path, e.opts.Rules)
		if err != nil {
			errs.Add(err)
			continue
		}
		matched[i] = idx
	}
	if err := errs.ErrOrNil(); err != nil {
		return nil, err
	}
	return matched, nil
}

// resolveRules expands the closure of every rule in use, echoing plain
// variables into the value table and collecting the hook calls to
// dispatch. Resolution failures accumulate across rules.
func (e *Engine) resolveRules(matched []int) (hooks.Values, []hooks.Call, error) {
	values := hooks.NewValues()
	var calls []hooks.Call
	errs := errors.NewList()

	for _, ruleIdx := range e.usedRules(matched) {
		rule := e.opts.Rules[ruleIdx]
		closure, err := resolver.Resolve(rule.Remote, e.opts.Variables, e.opts.Hooks, e.opts.Resolver)
		if err != nil {
			errs.Add(errors.Flatten(err)...)
			continue
		}

		e.logger.Debug().
			Str("template", rule.Remote).
			Strs("refs", closure.Refs).
			Int("hooks", len(closure.Hooks)).
			Msg("Resolved rule closure")

		// Raw values land before hook results so a bound variable keeps
		// its composite value and substitution walks through it.
		for name, value := range closure.Vars {
			values.Set(name, value)
		}
		calls = append(calls, closure.Hooks...)
	}

	if err := errs.ErrOrNil(); err != nil {
		return nil, nil, err
	}
	return values, calls, nil
}

// usedRules returns the distinct rule indices in first-use order.
func (e *Engine) usedRules(matched []int) []int {
	seen := make(map[int]bool, len(matched))
	var used []int
	for _, idx := range matched {
		if seen[idx] {
			continue
		}
		seen[idx] = true
		used = append(used, idx)
	}
	return used
}

// composeTransfers substitutes each rule's remote template and composes
// the final destination for every input. Substitution failures across
// rules are aggregated; any failure drops the whole manifest.
func (e *Engine) composeTransfers(inputs []Input, matched []int, values hooks.Values) ([]Transfer, error) {
	ruleFiles := make(map[int][]string, len(e.opts.Rules))
	for i, input := range inputs {
		ruleFiles[matched[i]] = append(ruleFiles[matched[i]], input.Path)
	}

	resolvedRemotes := make(map[int]string, len(e.opts.Rules))
	errs := errors.NewList()
	for _, ruleIdx := range e.usedRules(matched) {
		rule := e.opts.Rules[ruleIdx]
		resolved, err := tmpl.Substitute(rule.Remote, values)
		if err != nil {
			errs.Add(errors.Wrapf(err, errors.ErrUnresolvedRef,
				"mapping failed for %s", strings.Join(ruleFiles[ruleIdx], ", ")))
			continue
		}
		resolvedRemotes[ruleIdx] = resolved
	}
	if err := errs.ErrOrNil(); err != nil {
		return nil, err
	}

	transfers := make([]Transfer, 0, len(inputs))
	for i, input := range inputs {
		destination, recursive := mapping.Compose(
			e.opts.Rules[matched[i]], resolvedRemotes[matched[i]], input.Path, input.IsDirectory)
		transfers = append(transfers, Transfer{
			Source:      input.Path,
			Destination: destination,
			Recursive:   recursive,
		})
	}
	return transfers, nil
}
