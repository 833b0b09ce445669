// Package git queries the repository hoist runs in: its root, its
// identity, and the files that currently differ from HEAD. The engine
// treats these as opaque inputs; no other git knowledge leaks past this
// package.
package git

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/hoist/pkg/errors"
	"github.com/arthur-debert/hoist/pkg/logging"
)

// Client provides the repository queries a run needs.
type Client interface {
	// Root returns the absolute path of the repository containing dir.
	Root(ctx context.Context, dir string) (string, error)

	// OriginURL returns the repository's origin remote URL, used as the
	// configuration lookup key.
	OriginURL(ctx context.Context, root string) (string, error)

	// ModifiedFiles returns the repo-relative paths that differ from
	// HEAD, including untracked files and excluding deletions.
	ModifiedFiles(ctx context.Context, root string) ([]string, error)
}

// ShellClient implements Client by shelling out to the git command.
type ShellClient struct {
	logger zerolog.Logger
}

// NewShellClient creates a new git client that uses the git command.
func NewShellClient() *ShellClient {
	return &ShellClient{logger: logging.GetLogger("git")}
}

// Root returns the toplevel of the repository containing dir.
func (c *ShellClient) Root(ctx context.Context, dir string) (string, error) {
	output, err := c.run(ctx, dir, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", errors.Wrap(err, errors.ErrGit, "not inside a git repository")
	}
	return output, nil
}

// OriginURL returns the origin remote URL of the repository at root.
func (c *ShellClient) OriginURL(ctx context.Context, root string) (string, error) {
	output, err := c.run(ctx, root, "config", "--get", "remote.origin.url")
	if err != nil {
		return "", errors.Wrap(err, errors.ErrGit, "repository has no origin remote")
	}
	return output, nil
}

// ModifiedFiles returns the working-tree paths that differ from HEAD.
func (c *ShellClient) ModifiedFiles(ctx context.Context, root string) ([]string, error) {
	output, err := c.run(ctx, root, "status", "--porcelain")
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrGit, "cannot read repository status")
	}
	return parsePorcelain(output), nil
}

// run executes git -C dir with the given arguments and returns trimmed
// stdout. Failures carry git's combined output.
func (c *ShellClient) run(ctx context.Context, dir string, args ...string) (string, error) {
	full := append([]string{"-C", dir}, args...)
	logging.LogCommand("git", full)

	cmd := exec.CommandContext(ctx, "git", full...)
	output, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok && len(exitErr.Stderr) > 0 {
			return "", fmt.Errorf("%w: %s", err, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", err
	}
	return strings.TrimSpace(string(output)), nil
}

// parsePorcelain extracts transferable paths from git status --porcelain
// output. Deletions are skipped — there is nothing on disk to copy — and
// renames yield the new name.
func parsePorcelain(output string) []string {
	var files []string
	for _, line := range strings.Split(output, "\n") {
		if len(line) < 4 {
			continue
		}
		status, entry := line[:2], line[3:]
		if strings.ContainsRune(status, 'D') {
			continue
		}

		// Renames and copies are reported as "orig -> new".
		if idx := strings.Index(entry, " -> "); idx >= 0 && (status[0] == 'R' || status[0] == 'C') {
			entry = entry[idx+4:]
		}

		// Paths with special characters arrive quoted.
		if strings.HasPrefix(entry, "\"") {
			if unquoted, err := strconv.Unquote(entry); err == nil {
				entry = unquoted
			}
		}

		files = append(files, entry)
	}
	return files
}
