package testutil

import (
	"context"
	"fmt"
	"sync"

	"github.com/arthur-debert/hoist/pkg/engine"
	"github.com/arthur-debert/hoist/pkg/hooks"
)

// RecordingRunner is a scripted hooks.Runner. Outputs and failures are
// keyed by call signature, and every invocation is counted so tests can
// assert deduplication.
type RecordingRunner struct {
	mu       sync.Mutex
	outputs  map[string]string
	failures map[string]error
	calls    map[string]int
	commands map[string]string
}

// NewRecordingRunner creates an empty recording runner. Unscripted calls
// fail, so a test that forgets to script a hook hears about it.
func NewRecordingRunner() *RecordingRunner {
	return &RecordingRunner{
		outputs:  make(map[string]string),
		failures: make(map[string]error),
		calls:    make(map[string]int),
		commands: make(map[string]string),
	}
}

// Script sets the output returned for a call signature.
func (r *RecordingRunner) Script(signature, output string) *RecordingRunner {
	r.outputs[signature] = output
	return r
}

// Fail sets the error returned for a call signature.
func (r *RecordingRunner) Fail(signature string, err error) *RecordingRunner {
	r.failures[signature] = err
	return r
}

// Run implements hooks.Runner.
func (r *RecordingRunner) Run(ctx context.Context, command string, name string, args []string) (string, error) {
	signature := hooks.Call{Name: name, Args: args}.Signature()

	r.mu.Lock()
	r.calls[signature]++
	r.commands[signature] = command
	r.mu.Unlock()

	if err, ok := r.failures[signature]; ok {
		return "", err
	}
	if output, ok := r.outputs[signature]; ok {
		return output, nil
	}
	return "", fmt.Errorf("no scripted output for %s", signature)
}

// CallCount returns how many times a signature was invoked.
func (r *RecordingRunner) CallCount(signature string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls[signature]
}

// TotalCalls returns the number of invocations across all signatures.
func (r *RecordingRunner) TotalCalls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	total := 0
	for _, n := range r.calls {
		total += n
	}
	return total
}

// CommandFor returns the command line the runner received for a signature.
func (r *RecordingRunner) CommandFor(signature string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.commands[signature]
}

// RecordingTransferrer is an engine.Transferrer that records every copy
// it is asked to perform. Failures can be scripted per source path.
type RecordingTransferrer struct {
	mu       sync.Mutex
	copies   []engine.Transfer
	failures map[string]error
}

// NewRecordingTransferrer creates an empty recording transferrer.
func NewRecordingTransferrer() *RecordingTransferrer {
	return &RecordingTransferrer{failures: make(map[string]error)}
}

// FailOn makes transfers of the given source path fail with err.
func (r *RecordingTransferrer) FailOn(source string, err error) *RecordingTransferrer {
	r.failures[source] = err
	return r
}

// Copy implements engine.Transferrer.
func (r *RecordingTransferrer) Copy(ctx context.Context, t engine.Transfer) error {
	r.mu.Lock()
	r.copies = append(r.copies, t)
	r.mu.Unlock()

	if err, ok := r.failures[t.Source]; ok {
		return err
	}
	return nil
}

// Copies returns every transfer attempted, in order.
func (r *RecordingTransferrer) Copies() []engine.Transfer {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]engine.Transfer, len(r.copies))
	copy(out, r.copies)
	return out
}

// ScriptedGitClient is a git.Client backed by fixed answers, so command
// tests can run without a repository.
type ScriptedGitClient struct {
	RepoRoot string
	Origin   string
	Modified []string
	Err      error
}

// Root returns the scripted repository root.
func (c *ScriptedGitClient) Root(ctx context.Context, dir string) (string, error) {
	if c.Err != nil {
		return "", c.Err
	}
	return c.RepoRoot, nil
}

// OriginURL returns the scripted origin URL.
func (c *ScriptedGitClient) OriginURL(ctx context.Context, root string) (string, error) {
	if c.Err != nil {
		return "", c.Err
	}
	return c.Origin, nil
}

// ModifiedFiles returns the scripted modified paths.
func (c *ScriptedGitClient) ModifiedFiles(ctx context.Context, root string) ([]string, error) {
	if c.Err != nil {
		return nil, c.Err
	}
	return c.Modified, nil
}
