package check

// Message constants
const (
	MsgShort = "Validate the repository's hoist configuration"
	MsgLong  = `Check parses every path rule and resolves every variable and hook
reference the rules use, without connecting to the host. All problems
are reported together: malformed rules, references to variables or
hooks that are not declared, and substitutions that cannot complete.`

	MsgExample = `  # Validate the current repository's configuration
  hoist check`

	MsgSummaryFormat = "%s: %d rules, %d variables, %d hooks\n"
	MsgConfigOK      = "configuration OK"
)
