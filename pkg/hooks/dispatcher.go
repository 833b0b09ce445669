package hooks

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/arthur-debert/hoist/pkg/errors"
	"github.com/arthur-debert/hoist/pkg/logging"
)

// DefaultConcurrency bounds hook fan-out when the caller does not choose
// a limit.
const DefaultConcurrency = 8

// Runner executes a hook's command line. The command runs with the hook
// name and its arguments as positional parameters; the trimmed output is
// the hook's value.
type Runner interface {
	Run(ctx context.Context, command string, name string, args []string) (string, error)
}

// Dispatcher executes the unique hook calls of a run concurrently.
type Dispatcher struct {
	registry *Registry
	runner   Runner
	limit    int
	logger   zerolog.Logger
}

// NewDispatcher creates a dispatcher over the given registry and runner.
// A non-positive limit falls back to DefaultConcurrency.
func NewDispatcher(registry *Registry, runner Runner, limit int) *Dispatcher {
	if limit <= 0 {
		limit = DefaultConcurrency
	}
	return &Dispatcher{
		registry: registry,
		runner:   runner,
		limit:    limit,
		logger:   logging.GetLogger("hooks.dispatcher"),
	}
}

// Dispatch deduplicates calls by signature, runs each unique call once,
// and records its output in values under both the signature and the bound
// variable name. Every call is attempted even when siblings fail; the
// failures are aggregated and returned together after all calls complete.
// Successful outputs stay in values regardless — there is no rollback.
func (d *Dispatcher) Dispatch(ctx context.Context, calls []Call, values Values) error {
	unique := Deduplicate(calls)
	if len(unique) == 0 {
		return nil
	}

	d.logger.Debug().
		Int("calls", len(calls)).
		Int("unique", len(unique)).
		Msg("Dispatching hooks")

	// Each task writes only its own slot, so the join needs no locking.
	outputs := make([]string, len(unique))
	failures := make([]error, len(unique))

	var group errgroup.Group
	group.SetLimit(d.limit)
	for i, call := range unique {
		group.Go(func() error {
			command, err := d.registry.Command(call.Name)
			if err != nil {
				failures[i] = err
				return nil
			}
			output, err := d.runner.Run(ctx, command, call.Name, call.Args)
			if err != nil {
				failures[i] = errors.Wrapf(err, errors.ErrHookFailure,
					"hook %s failed", call.Signature())
				return nil
			}
			outputs[i] = output
			return nil
		})
	}
	// Tasks record failures in their slot and return nil, so the run
	// always waits for every call before reporting.
	_ = group.Wait()

	errs := errors.NewList()
	for i, call := range unique {
		if failures[i] != nil {
			errs.Add(failures[i])
			continue
		}
		values.Set(call.Signature(), outputs[i])
		if call.BoundVar != "" {
			values.Set(call.BoundVar, outputs[i])
		}
	}

	d.logger.Debug().
		Int("resolved", len(unique)-errs.Len()).
		Int("failed", errs.Len()).
		Msg("Hook dispatch complete")

	return errs.ErrOrNil()
}
