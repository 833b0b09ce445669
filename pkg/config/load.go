package config

import (
	"os"
	"strings"

	koanfjson "github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/hoist/pkg/errors"
	"github.com/arthur-debert/hoist/pkg/paths"
)

// envPrefix marks the environment variables that override settings, e.g.
// HOIST_HOST or HOIST_TRANSPORT_SSH.
const envPrefix = "HOIST_"

// LoadSettings loads the merged settings: built-in defaults, then
// config.json when present, then HOIST_ environment variables.
func LoadSettings(p paths.Paths) (*Settings, error) {
	k := koanf.New(".")

	// 1. Built-in defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultSettings}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load built-in defaults")
	}

	// 2. config.json if it exists
	settingsPath := p.SettingsPath()
	if _, err := os.Stat(settingsPath); err == nil {
		if err := k.Load(file.Provider(settingsPath), koanfjson.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load settings from %s", settingsPath)
		}
	}

	// 3. Environment overrides
	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "_", ".")
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	var settings Settings
	if err := k.Unmarshal("", &settings); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to unmarshal settings from %s", settingsPath)
	}
	return &settings, nil
}

// LoadRepos loads repos.json. A missing file is an empty configuration,
// not an error — individual lookups report unconfigured repositories.
func LoadRepos(p paths.Paths) (*Repos, error) {
	reposPath := p.ReposPath()
	if _, err := os.Stat(reposPath); err != nil {
		if os.IsNotExist(err) {
			return &Repos{}, nil
		}
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to read %s", reposPath)
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(reposPath), koanfjson.Parser()); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load repositories from %s", reposPath)
	}

	var repos Repos
	if err := k.Unmarshal("", &repos); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to unmarshal repositories from %s", reposPath)
	}
	return &repos, nil
}
