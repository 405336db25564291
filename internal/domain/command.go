package domain

// Command is a recognized command keyword. Keywords are matched
// case-insensitively; the canonical form is uppercase.
type Command string

const (
	CommandHi        Command = "HI"
	CommandBye       Command = "BYE"
	CommandList      Command = "LIST"
	CommandMark      Command = "MARK"
	CommandUnmark    Command = "UNMARK"
	CommandTodo      Command = "TODO"
	CommandDeadline  Command = "DEADLINE"
	CommandEvent     Command = "EVENT"
	CommandDelete    Command = "DELETE"
	CommandDeleteAll Command = "DELETEALL"
	CommandFind      Command = "FIND"
)

// AllCommands returns every recognized command in help order.
func AllCommands() []Command {
	return []Command{
		CommandHi,
		CommandBye,
		CommandList,
		CommandMark,
		CommandUnmark,
		CommandTodo,
		CommandDeadline,
		CommandEvent,
		CommandDelete,
		CommandDeleteAll,
		CommandFind,
	}
}

// IsValid returns true if c is one of the recognized commands.
func (c Command) IsValid() bool {
	switch c {
	case CommandHi, CommandBye, CommandList, CommandMark, CommandUnmark,
		CommandTodo, CommandDeadline, CommandEvent, CommandDelete, CommandDeleteAll, CommandFind:
		return true
	default:
		return false
	}
}

// CreatesTask returns true for commands whose argument describes a new task.
func (c Command) CreatesTask() bool {
	return c == CommandTodo || c == CommandDeadline || c == CommandEvent
}

// TakesIndex returns true for commands whose argument is a 1-based task number.
func (c Command) TakesIndex() bool {
	return c == CommandMark || c == CommandUnmark || c == CommandDelete
}

// Mutates returns true if a successful run of the command changes the task list.
func (c Command) Mutates() bool {
	return c.CreatesTask() || c.TakesIndex() || c == CommandDeleteAll
}

// Usage returns the argument synopsis shown in help text.
func (c Command) Usage() string {
	switch c {
	case CommandMark, CommandUnmark, CommandDelete:
		return string(c) + " <n>"
	case CommandTodo:
		return "TODO <name>"
	case CommandDeadline:
		return "DEADLINE <name> /by <yyyy-mm-dd HHMM>"
	case CommandEvent:
		return "EVENT <name> /from <yyyy-mm-dd HHMM> /to <yyyy-mm-dd HHMM>"
	case CommandFind:
		return "FIND <text>"
	default:
		return string(c)
	}
}
