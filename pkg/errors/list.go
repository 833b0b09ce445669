package errors

import (
	"fmt"
	"strings"
)

// List collects the failures of one phase of a run. Phases attempt every
// independent unit of work before reporting, so a single run surfaces every
// broken variable, hook, or file at once instead of one per invocation.
type List struct {
	errs []error
}

// NewList creates a List pre-populated with the given errors. Nil entries
// are dropped.
func NewList(errs ...error) *List {
	l := &List{}
	l.Add(errs...)
	return l
}

// Add appends errors to the list, skipping nils.
func (l *List) Add(errs ...error) {
	for _, err := range errs {
		if err != nil {
			l.errs = append(l.errs, err)
		}
	}
}

// Len returns the number of collected errors.
func (l *List) Len() int {
	return len(l.errs)
}

// Errors returns the collected errors in the order they were added.
func (l *List) Errors() []error {
	out := make([]error, len(l.errs))
	copy(out, l.errs)
	return out
}

// ErrOrNil collapses the list: nil when empty, the sole member when it holds
// exactly one error, otherwise the list itself.
func (l *List) ErrOrNil() error {
	switch len(l.errs) {
	case 0:
		return nil
	case 1:
		return l.errs[0]
	default:
		return l
	}
}

// Error implements the error interface, rendering one line per member.
func (l *List) Error() string {
	if len(l.errs) == 0 {
		return "no errors"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d errors occurred:", len(l.errs))
	for _, err := range l.errs {
		b.WriteString("\n  * ")
		b.WriteString(err.Error())
	}
	return b.String()
}

// Unwrap exposes the members so errors.Is and errors.As see through the
// aggregate.
func (l *List) Unwrap() []error {
	return l.errs
}

// Flatten expands an error into its individual members: a List yields each
// collected error (recursively), anything else yields itself, nil yields
// nothing. Callers use it to render every failure as a distinct message.
func Flatten(err error) []error {
	if err == nil {
		return nil
	}
	l, ok := err.(*List)
	if !ok {
		return []error{err}
	}
	var out []error
	for _, member := range l.errs {
		out = append(out, Flatten(member)...)
	}
	return out
}
