// Package hooks models the external lookups a resolution pass depends on:
// named remote commands invoked with positional arguments whose trimmed
// output becomes a resolved value. Calls are deduplicated by signature and
// executed exactly once per run.
package hooks

import (
	"strings"
)

// Call is a single hook invocation required by a resolution pass.
// BoundVar names the variable whose raw value referenced the hook, or the
// reference text itself when a template referenced the hook directly.
type Call struct {
	Name     string
	Args     []string
	BoundVar string
}

// Signature returns the canonical identity of the invocation: the hook
// name and its arguments in bracketed reference form. Two calls with the
// same signature are the same remote query regardless of which variables
// they are bound to.
func (c Call) Signature() string {
	if len(c.Args) == 0 {
		return "[" + c.Name + "]"
	}
	return "[" + c.Name + " " + strings.Join(c.Args, " ") + "]"
}

// Deduplicate returns the unique calls by signature, first occurrence
// wins, order preserved.
func Deduplicate(calls []Call) []Call {
	seen := make(map[string]bool, len(calls))
	unique := make([]Call, 0, len(calls))
	for _, call := range calls {
		sig := call.Signature()
		if seen[sig] {
			continue
		}
		seen[sig] = true
		unique = append(unique, call)
	}
	return unique
}
