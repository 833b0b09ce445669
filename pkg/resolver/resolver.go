// Package resolver computes the transitive closure of variables and hook
// calls a remote path template depends on. It walks the reference graph
// breadth-first with a visited set, so cyclic or repeated references
// terminate, and it classifies every name it encounters before giving up,
// so one run reports every broken reference at once.
package resolver

import (
	"github.com/arthur-debert/hoist/pkg/errors"
	"github.com/arthur-debert/hoist/pkg/hooks"
	"github.com/arthur-debert/hoist/pkg/tmpl"
)

// Options control resolution behavior.
type Options struct {
	// LeafNameAsValue makes a variable whose value carries no further
	// references resolve to its own name instead of its configured
	// value. Off by default: leaves resolve to their configured value.
	LeafNameAsValue bool
}

// Closure is the fully expanded dependency set of one template.
type Closure struct {
	// Refs holds the distinct reference names encountered, in
	// discovery order.
	Refs []string

	// Vars maps each referenced plain variable to the value it echoes
	// into the run's table. Values are recorded verbatim, so entries
	// may still carry references of their own; substitution walks
	// through them once hooks have resolved.
	Vars map[string]string

	// Hooks are the required hook calls. Each newly discovered call is
	// inserted at the front: hooks discovered deeper in the graph are
	// required earlier.
	Hooks []hooks.Call
}

// workItem is one queued reference. origin names the variable whose raw
// value produced the reference; it is empty for references made directly
// by the template.
type workItem struct {
	name   string
	origin string
}

// Resolve expands template against the repository's variable table and
// hook registry. Names that are neither defined variables nor registered
// hooks accumulate; the full error set is returned after the whole graph
// has been walked.
func Resolve(template string, variables map[string]string, registry *hooks.Registry, opts Options) (*Closure, error) {
	closure := &Closure{Vars: make(map[string]string)}
	errs := errors.NewList()
	seen := make(map[string]bool)

	var queue []workItem
	for _, name := range tmpl.FindReferences(template) {
		queue = append(queue, workItem{name: name})
	}

	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]

		if seen[item.name] {
			continue
		}
		seen[item.name] = true
		closure.Refs = append(closure.Refs, item.name)

		if hookName, args, ok := tmpl.ParseHook(item.name); ok {
			if !registry.Has(hookName) {
				errs.Add(errors.Newf(errors.ErrUnknownHook,
					"no hook named %q is configured", hookName).
					WithDetail("reference", item.name))
				continue
			}
			boundVar := item.origin
			if boundVar == "" {
				// Referenced directly by the template: bind the
				// reference text itself.
				boundVar = item.name
			}
			call := hooks.Call{Name: hookName, Args: args, BoundVar: boundVar}
			closure.Hooks = append([]hooks.Call{call}, closure.Hooks...)
			continue
		}

		raw, ok := variables[item.name]
		if !ok {
			errs.Add(errors.Newf(errors.ErrUnknownVariable,
				"no variable named %q is defined", item.name))
			continue
		}

		refs := tmpl.FindReferences(raw)
		if len(refs) == 0 {
			if opts.LeafNameAsValue {
				closure.Vars[item.name] = item.name
			} else {
				closure.Vars[item.name] = raw
			}
			continue
		}

		closure.Vars[item.name] = raw
		for _, ref := range refs {
			queue = append(queue, workItem{name: ref, origin: item.name})
		}
	}

	if err := errs.ErrOrNil(); err != nil {
		return nil, err
	}
	return closure, nil
}
