package domain

// CommandType classifies what the user wants to do.
type CommandType int

const (
	CommandUnknown CommandType = iota
	CommandEnter
	CommandList
	CommandView
	CommandScale
	CommandReset
	CommandClear
	CommandCalories
	CommandHelp
	CommandExit
)

// String returns a human-readable command type.
func (c CommandType) String() string {
	switch c {
	case CommandEnter:
		return "enter"
	case CommandList:
		return "list"
	case CommandView:
		return "view"
	case CommandScale:
		return "scale"
	case CommandReset:
		return "reset"
	case CommandClear:
		return "clear"
	case CommandCalories:
		return "calories"
	case CommandHelp:
		return "help"
	case CommandExit:
		return "exit"
	default:
		return "unknown"
	}
}

// Command represents one parsed user action.
type Command struct {
	Type    CommandType
	Payload string // optional recipe name, e.g. "scale soup"
}
