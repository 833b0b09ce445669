// Package config loads and writes hoist's two JSON files: config.json
// for user settings and repos.json for per-repository mappings. Settings
// are layered — built-in defaults, then the file, then HOIST_ environment
// variables — while repos.json is taken as written.
//
// Repository identifiers are opaque strings (origin URLs in practice),
// so structures keyed by them are stored as arrays rather than objects:
// object keys would collide with the config layer's path delimiter.
package config

import (
	"github.com/arthur-debert/hoist/pkg/errors"
	"github.com/arthur-debert/hoist/pkg/mapping"
)

// Settings is the merged user configuration. Transport and Run are
// pointers so a rewrite of config.json leaves them out unless the user
// set them there.
type Settings struct {
	Host      string     `koanf:"host" json:"host,omitempty"`
	User      string     `koanf:"user" json:"user,omitempty"`
	Roots     []RepoRoot `koanf:"roots" json:"roots,omitempty"`
	Transport *Transport `koanf:"transport" json:"transport,omitempty"`
	Run       *Run       `koanf:"run" json:"run,omitempty"`
}

// RepoRoot pins the local checkout used for a repository when a command
// starts outside of it.
type RepoRoot struct {
	Repo string `koanf:"repo" json:"repo"`
	Root string `koanf:"root" json:"root"`
}

// Transport names the binaries runs shell out to.
type Transport struct {
	SSH string `koanf:"ssh" json:"ssh,omitempty"`
	SCP string `koanf:"scp" json:"scp,omitempty"`
}

// Run holds engine tuning.
type Run struct {
	Concurrency     int  `koanf:"concurrency" json:"concurrency,omitempty"`
	LeafNameAsValue bool `koanf:"leaf_name_as_value" json:"leaf_name_as_value,omitempty"`
}

// RootFor returns the configured local root for a repository, if any.
func (s *Settings) RootFor(repo string) (string, bool) {
	for _, r := range s.Roots {
		if r.Repo == repo {
			return r.Root, true
		}
	}
	return "", false
}

// SSHBinary returns the ssh binary runs should use.
func (s *Settings) SSHBinary() string {
	if s.Transport != nil && s.Transport.SSH != "" {
		return s.Transport.SSH
	}
	return "ssh"
}

// SCPBinary returns the scp binary runs should use.
func (s *Settings) SCPBinary() string {
	if s.Transport != nil && s.Transport.SCP != "" {
		return s.Transport.SCP
	}
	return "scp"
}

// Concurrency returns the configured fan-out limit, zero when unset.
func (s *Settings) Concurrency() int {
	if s.Run != nil {
		return s.Run.Concurrency
	}
	return 0
}

// LeafNameAsValue reports whether a variable whose value is its own name
// should resolve to the name instead of the configured value.
func (s *Settings) LeafNameAsValue() bool {
	return s.Run != nil && s.Run.LeafNameAsValue
}

// Repos holds every configured repository.
type Repos struct {
	Repos []RepoConfig `koanf:"repos" json:"repos"`
}

// RepoConfig is one repository's mapping declaration: ordered path
// rules, the variable table, and the hook commands.
type RepoConfig struct {
	Repo      string            `koanf:"repo" json:"repo"`
	Paths     []string          `koanf:"paths" json:"paths"`
	Variables map[string]string `koanf:"variables" json:"variables,omitempty"`
	Hooks     map[string]string `koanf:"hooks" json:"hooks,omitempty"`
}

// Lookup returns the configuration for a repository identifier.
func (r *Repos) Lookup(repo string) (*RepoConfig, error) {
	for i := range r.Repos {
		if r.Repos[i].Repo == repo {
			return &r.Repos[i], nil
		}
	}
	return nil, errors.Newf(errors.ErrRepoNotConfigured, "repository %q has no hoist configuration", repo)
}

// Rules parses the repository's path declarations in order.
func (c *RepoConfig) Rules() ([]mapping.Rule, error) {
	return mapping.ParseRules(c.Paths)
}
