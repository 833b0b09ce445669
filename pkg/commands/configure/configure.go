// Package configure implements the config subcommands: setting the
// target host and user, binding a repository to a mapping root, and
// showing the effective configuration.
package configure

import (
	"context"
	"path/filepath"

	"github.com/arthur-debert/hoist/pkg/config"
	"github.com/arthur-debert/hoist/pkg/errors"
	"github.com/arthur-debert/hoist/pkg/git"
	"github.com/arthur-debert/hoist/pkg/logging"
	"github.com/arthur-debert/hoist/pkg/paths"
)

// Options holds options for the repository-bound config commands.
type Options struct {
	// Root is the mapping root to record. Empty means the repository's
	// git toplevel.
	Root string

	// Dir is where repository discovery starts.
	Dir string

	// Git is injectable for testing.
	Git git.Client
}

// Result reports which repository a setting was recorded for.
type Result struct {
	Repo string
	Root string
}

// View is everything the show command displays: the host settings plus,
// when run inside a configured repository, that repository's mapping.
type View struct {
	Settings *config.Settings
	Repo     string
	Config   *config.RepoConfig
}

// SetHost records the remote host in the settings file.
func SetHost(host string) error {
	if host == "" {
		return errors.New(errors.ErrInvalidInput, "host cannot be empty")
	}
	p := paths.New()
	if err := config.SetHost(p, host); err != nil {
		return err
	}
	logger := logging.GetLogger("commands.config")
	logger.Info().Str("host", host).Msg("host configured")
	return nil
}

// SetUser records the remote user in the settings file. An empty user
// clears it, falling back to the local username at connect time.
func SetUser(user string) error {
	p := paths.New()
	if err := config.SetUser(p, user); err != nil {
		return err
	}
	logger := logging.GetLogger("commands.config")
	logger.Info().Str("user", user).Msg("user configured")
	return nil
}

// SetRoot binds the current repository to a mapping root. Rules resolve
// local paths relative to this root instead of the git toplevel, which
// is how a subtree of a larger repository gets mapped on its own.
func SetRoot(ctx context.Context, opts Options) (*Result, error) {
	gitClient := opts.Git
	if gitClient == nil {
		gitClient = git.NewShellClient()
	}

	dir := opts.Dir
	if dir == "" {
		dir = "."
	}

	gitRoot, err := gitClient.Root(ctx, dir)
	if err != nil {
		return nil, err
	}
	repo, err := gitClient.OriginURL(ctx, gitRoot)
	if err != nil {
		return nil, err
	}

	root := opts.Root
	if root == "" {
		root = gitRoot
	} else if !filepath.IsAbs(root) {
		abs, err := filepath.Abs(root)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrFileAccess, "cannot resolve root path")
		}
		root = abs
	}

	if err := config.SetRepoRoot(paths.New(), repo, root); err != nil {
		return nil, err
	}

	logger := logging.GetLogger("commands.config")
	logger.Info().
		Str("repo", repo).
		Str("root", root).
		Msg("mapping root configured")

	return &Result{Repo: repo, Root: root}, nil
}

// Show loads the effective configuration. The settings always load;
// the repository section fills in only when the working directory sits
// inside a repository that has a hoist configuration.
func Show(ctx context.Context, opts Options) (*View, error) {
	p := paths.New()

	settings, err := config.LoadSettings(p)
	if err != nil {
		return nil, err
	}
	view := &View{Settings: settings}

	gitClient := opts.Git
	if gitClient == nil {
		gitClient = git.NewShellClient()
	}

	dir := opts.Dir
	if dir == "" {
		dir = "."
	}

	gitRoot, err := gitClient.Root(ctx, dir)
	if err != nil {
		return view, nil
	}
	repo, err := gitClient.OriginURL(ctx, gitRoot)
	if err != nil {
		return view, nil
	}

	repos, err := config.LoadRepos(p)
	if err != nil {
		return nil, err
	}
	repoConfig, err := repos.Lookup(repo)
	if err != nil {
		view.Repo = repo
		return view, nil
	}

	view.Repo = repo
	view.Config = repoConfig
	return view, nil
}
