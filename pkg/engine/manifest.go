package engine

import (
	"context"

	"github.com/arthur-debert/hoist/pkg/hooks"
)

// Input is one candidate file after the stat phase.
type Input struct {
	Path        string // repo-relative
	IsDirectory bool
}

// Transfer is one copy operation handed to the transfer capability.
// Source is repo-relative; Destination is the final, variable-free
// remote path.
type Transfer struct {
	Source      string
	Destination string
	Recursive   bool
}

// Transferrer copies a local file or directory to its remote destination.
type Transferrer interface {
	Copy(ctx context.Context, t Transfer) error
}

// Manifest is the fully resolved plan of a run: the ordered transfers,
// the unique hook calls the resolution required, and the value table
// they produced.
type Manifest struct {
	Transfers []Transfer
	Hooks     []hooks.Call
	Values    hooks.Values
}

// TransferResult records the outcome of one transfer.
type TransferResult struct {
	Transfer Transfer
	Err      error
}

// Report is the outcome of a full run.
type Report struct {
	Manifest *Manifest
	Results  []TransferResult
}

// Failed returns the number of transfers that reported an error.
func (r *Report) Failed() int {
	failed := 0
	for _, result := range r.Results {
		if result.Err != nil {
			failed++
		}
	}
	return failed
}
