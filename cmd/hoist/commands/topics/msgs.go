package topics

// Message constants
const (
	MsgShort = "Display available documentation topics"
	MsgLong  = "Display a list of all available help topics that provide additional documentation beyond command help."
)
