package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/arthur-debert/hoist/pkg/errors"
	"github.com/arthur-debert/hoist/pkg/paths"
)

// SetHost records the default host in config.json.
func SetHost(p paths.Paths, host string) error {
	return updateSettingsFile(p, func(s *Settings) {
		s.Host = host
	})
}

// SetUser records the ssh user in config.json.
func SetUser(p paths.Paths, user string) error {
	return updateSettingsFile(p, func(s *Settings) {
		s.User = user
	})
}

// SetRepoRoot records the local checkout root for a repository.
func SetRepoRoot(p paths.Paths, repo, root string) error {
	return updateSettingsFile(p, func(s *Settings) {
		for i := range s.Roots {
			if s.Roots[i].Repo == repo {
				s.Roots[i].Root = root
				return
			}
		}
		s.Roots = append(s.Roots, RepoRoot{Repo: repo, Root: root})
	})
}

// updateSettingsFile read-modify-writes config.json. Only what the file
// already holds plus the mutation lands back on disk; merged defaults
// and environment overrides never leak into it.
func updateSettingsFile(p paths.Paths, mutate func(*Settings)) error {
	settingsPath := p.SettingsPath()

	var settings Settings
	data, err := os.ReadFile(settingsPath)
	switch {
	case err == nil:
		if err := json.Unmarshal(data, &settings); err != nil {
			return errors.Wrapf(err, errors.ErrConfigParse, "cannot parse %s", settingsPath)
		}
	case os.IsNotExist(err):
		// First write creates the file.
	default:
		return errors.Wrapf(err, errors.ErrConfigLoad, "cannot read %s", settingsPath)
	}

	mutate(&settings)

	out, err := json.MarshalIndent(&settings, "", "  ")
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "cannot encode settings")
	}
	if err := os.MkdirAll(filepath.Dir(settingsPath), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot create config directory %s", filepath.Dir(settingsPath))
	}
	if err := os.WriteFile(settingsPath, append(out, '\n'), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot write %s", settingsPath)
	}
	return nil
}
