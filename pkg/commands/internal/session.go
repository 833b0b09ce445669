// Package internal carries the plumbing the command layer shares:
// configuration loading, repository discovery and candidate file
// normalization.
package internal

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/hoist/pkg/config"
	"github.com/arthur-debert/hoist/pkg/errors"
	"github.com/arthur-debert/hoist/pkg/git"
	"github.com/arthur-debert/hoist/pkg/logging"
	"github.com/arthur-debert/hoist/pkg/paths"
	"github.com/arthur-debert/hoist/pkg/remote"
)

// Session is everything a command needs to act on the current repository.
type Session struct {
	Paths    paths.Paths
	Settings *config.Settings
	Config   *config.RepoConfig

	// Repo is the repository identifier (origin URL).
	Repo string

	// GitRoot is the repository toplevel. Root is the mapping root the
	// path rules are relative to — the toplevel unless the user pinned
	// a different one with config set-root.
	GitRoot string
	Root    string

	// Files are the mapping-root-relative candidate paths.
	Files []string
}

// LoadOptions configures Load.
type LoadOptions struct {
	// Git answers the repository queries. Required.
	Git git.Client

	// Dir is where discovery starts; empty means the working directory.
	Dir string

	// Files are explicit candidate paths, absolute or Dir-relative.
	// Empty means every modified file in the repository.
	Files []string

	// SkipFiles suppresses candidate collection for commands that only
	// inspect configuration.
	SkipFiles bool
}

// Load discovers the repository, loads its configuration and normalizes
// the candidate file list.
func Load(ctx context.Context, opts LoadOptions) (*Session, error) {
	logger := logging.GetLogger("commands")

	p := paths.New()
	settings, err := config.LoadSettings(p)
	if err != nil {
		return nil, err
	}

	dir := opts.Dir
	if dir == "" {
		dir = "."
	}
	dir, err = filepath.Abs(dir)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrFileAccess, "cannot resolve working directory")
	}

	gitRoot, err := opts.Git.Root(ctx, dir)
	if err != nil {
		return nil, err
	}
	repo, err := opts.Git.OriginURL(ctx, gitRoot)
	if err != nil {
		return nil, err
	}

	repos, err := config.LoadRepos(p)
	if err != nil {
		return nil, err
	}
	repoConfig, err := repos.Lookup(repo)
	if err != nil {
		return nil, err
	}

	root := gitRoot
	if configured, ok := settings.RootFor(repo); ok {
		root = paths.ExpandHome(configured)
		if !filepath.IsAbs(root) {
			root = filepath.Join(gitRoot, root)
		}
	}

	session := &Session{
		Paths:    p,
		Settings: settings,
		Config:   repoConfig,
		Repo:     repo,
		GitRoot:  gitRoot,
		Root:     root,
	}

	if !opts.SkipFiles {
		session.Files, err = collectFiles(ctx, opts, dir, gitRoot, root, logger)
		if err != nil {
			return nil, err
		}
	}

	return session, nil
}

// Target resolves the transfer target, preferring the overrides.
func (s *Session) Target(host, user string) (remote.Target, error) {
	if host == "" {
		host = s.Settings.Host
	}
	if host == "" {
		return remote.Target{}, errors.New(errors.ErrInvalidInput,
			"no host configured; set one with hoist config set-host or --host")
	}
	if user == "" {
		user = s.Settings.User
	}
	return remote.Target{Host: host, User: user}, nil
}

// RemoteOptions composes the transport configuration for this session.
func (s *Session) RemoteOptions(target remote.Target) remote.Options {
	return remote.Options{
		Target:    target,
		Root:      s.Root,
		SSHBinary: s.Settings.SSHBinary(),
		SCPBinary: s.Settings.SCPBinary(),
	}
}

// collectFiles turns explicit arguments or the repository's modified set
// into mapping-root-relative paths. Explicit paths outside the root are
// errors; modified files outside it are skipped, since a narrowed root
// legitimately excludes parts of the repository.
func collectFiles(ctx context.Context, opts LoadOptions, dir, gitRoot, root string, logger zerolog.Logger) ([]string, error) {
	if len(opts.Files) > 0 {
		errs := errors.NewList()
		var files []string
		for _, f := range opts.Files {
			abs := f
			if !filepath.IsAbs(abs) {
				abs = filepath.Join(dir, f)
			}
			rel, ok := rootRelative(root, abs)
			if !ok {
				errs.Add(errors.Newf(errors.ErrInvalidInput, "%s does not name a file inside the mapping root %s", f, root))
				continue
			}
			files = append(files, rel)
		}
		if err := errs.ErrOrNil(); err != nil {
			return nil, err
		}
		return files, nil
	}

	modified, err := opts.Git.ModifiedFiles(ctx, gitRoot)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, f := range modified {
		rel, ok := rootRelative(root, filepath.Join(gitRoot, f))
		if !ok {
			logger.Debug().Str("file", f).Msg("modified file outside the mapping root, skipped")
			continue
		}
		files = append(files, rel)
	}
	return files, nil
}

// rootRelative rewrites abs relative to root, reporting false when the
// path escapes it or names the root itself.
func rootRelative(root, abs string) (string, bool) {
	rel, err := filepath.Rel(root, abs)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, "../") {
		return "", false
	}
	return rel, true
}
