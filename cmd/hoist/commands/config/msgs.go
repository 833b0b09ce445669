package config

// Message constants
const (
	MsgShort = "Configure the remote target and per-repository settings"
	MsgLong  = `Config manages hoist's two configuration files: the global settings
(remote host, user, per-repository mapping roots) and the repository
declarations (path rules, variables, hooks).

Path rules, variables and hooks are edited directly in repos.json; the
subcommands here cover the settings hoist can write safely.`

	MsgSetHostShort = "Set the remote host"
	MsgSetUserShort = "Set the remote user"
	MsgSetRootShort = "Pin the mapping root for this repository"
	MsgSetRootLong  = `Set-root binds the current repository to a mapping root. Path rules
resolve local files relative to this root instead of the git toplevel,
which is how a subtree of a monorepo gets mapped on its own. With no
argument the root resets to the git toplevel.`
	MsgShowShort = "Show the effective configuration"

	MsgHostSetFormat = "host set to %s\n"
	MsgUserSetFormat = "user set to %s\n"
	MsgRootSetFormat = "%s\n  root pinned to %s\n"

	MsgRepoUnconfigured = "no hoist configuration for this repository"
)
