package commands

// Short messages (one-liners)
const (
	MsgRootShort       = "Push locally modified files to their place on a remote host"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun  = "Resolve and plan everything but copy nothing"
	MsgFlagHost    = "Remote host, overriding the configured one"
	MsgFlagUser    = "Remote user, overriding the configured one"
)

const MsgRootLong = `hoist pushes the files you changed in a git repository to where they
belong on a remote host, without a commit, a build, or a deploy cycle.

Each repository declares ordered path rules mapping local prefixes onto
remote templates. Templates may reference variables (%name%) and hooks
(%[name args]%) — remote commands whose output fills in the blanks, run
once per distinct invocation no matter how many rules need them.

Run 'hoist help topics' for the full reference.`

const MsgCompletionLong = `To load completions:

Bash:
  $ source <(hoist completion bash)
  # To load completions for each session, execute once:
  # Linux:
  $ hoist completion bash > /etc/bash_completion.d/hoist
  # macOS:
  $ hoist completion bash > /usr/local/etc/bash_completion.d/hoist

Zsh:
  $ hoist completion zsh > "${fpath[1]}/_hoist"
  # You will need to start a new shell for this setup to take effect.

Fish:
  $ hoist completion fish | source
  # To load completions for each session, execute once:
  $ hoist completion fish > ~/.config/fish/completions/hoist.fish

PowerShell:
  PS> hoist completion powershell | Out-String | Invoke-Expression`

// MsgUsageTemplate is the cobra usage template with bold section headers.
const MsgUsageTemplate = `{{bold "Usage:"}}{{if .Runnable}}
  {{.UseLine}}{{end}}{{if .HasAvailableSubCommands}}
  {{.CommandPath}} [command]{{end}}{{if gt (len .Aliases) 0}}

{{bold "Aliases:"}}
  {{.NameAndAliases}}{{end}}{{if .HasExample}}

{{bold "Examples:"}}
{{.Example}}{{end}}{{if .HasAvailableSubCommands}}{{$cmds := .Commands}}{{if eq (len .Groups) 0}}

{{bold "Available Commands:"}}{{range $cmds}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{else}}{{range $group := .Groups}}

{{bold $group.Title}}{{range $cmds}}{{if (and (eq .GroupID $group.ID) (or .IsAvailableCommand (eq .Name "help")))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{if not .AllChildCommandsHaveGroup}}

{{bold "Additional Commands:"}}{{range $cmds}}{{if (and (eq .GroupID "") (or .IsAvailableCommand (eq .Name "help")))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

{{bold "Flags:"}}
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableInheritedFlags}}

{{bold "Global Flags:"}}
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableSubCommands}}

Use "{{.CommandPath}} [command] --help" for more information about a command.{{end}}
`
