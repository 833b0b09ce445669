package up

// Message constants
const (
	MsgShort = "Copy modified files to the remote host"
	MsgLong  = `The 'up' command is hoist's primary command. It finds the files you
modified in the current repository (or takes the ones you name), works
out where each belongs on the remote host through the repository's path
rules, runs whatever hooks the rules reference, and copies the files
over with scp.

Every file must match a rule; files without a match fail the run before
anything is copied. Directories are copied recursively.`

	MsgExample = `  # Copy everything git reports as modified
  hoist up

  # Copy specific files
  hoist up src/fw/api.js lib/util.js

  # Preview the copies without touching the host
  hoist up --dry-run

  # One-off push to a different machine
  hoist up --host web2`

	MsgDryRunNotice  = "DRY RUN - nothing was copied"
	MsgNothingToCopy = "nothing to copy"
)
