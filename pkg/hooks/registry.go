package hooks

import (
	"sort"

	"github.com/arthur-debert/hoist/pkg/errors"
)

// Registry holds the hooks a repository declares: hook name mapped to the
// remote command line that produces its value. A registry is built once
// from configuration and never mutated, so unknown hook references surface
// as configuration errors at resolution time rather than runtime crashes,
// and concurrent dispatch can read it without locking.
type Registry struct {
	commands map[string]string
}

// NewRegistry validates and indexes the declared hooks. Every invalid
// entry is reported, not just the first.
func NewRegistry(commands map[string]string) (*Registry, error) {
	errs := errors.NewList()
	indexed := make(map[string]string, len(commands))
	for name, command := range commands {
		if name == "" {
			errs.Add(errors.New(errors.ErrInvalidInput, "hook name cannot be empty"))
			continue
		}
		if command == "" {
			errs.Add(errors.Newf(errors.ErrInvalidInput, "hook %q has an empty command", name))
			continue
		}
		indexed[name] = command
	}
	if err := errs.ErrOrNil(); err != nil {
		return nil, err
	}
	return &Registry{commands: indexed}, nil
}

// Has checks if a hook is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.commands[name]
	return ok
}

// Command returns the command line registered for a hook.
func (r *Registry) Command(name string) (string, error) {
	command, ok := r.commands[name]
	if !ok {
		return "", errors.Newf(errors.ErrUnknownHook, "no hook named %q is configured", name)
	}
	return command, nil
}

// Names returns all registered hook names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
