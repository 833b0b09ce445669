package status

// Message constants
const (
	MsgShort = "Show what up would copy, and where"
	MsgLong  = `Status computes the full plan for the modified files: which rule each
file matched, the hook values the rules need, and the final remote
destination of every copy. Hooks do run — their output is part of the
answer — but nothing is transferred.`

	MsgExample = `  # Plan for everything git reports as modified
  hoist status

  # Plan for specific files
  hoist status src/fw/api.js`
)
