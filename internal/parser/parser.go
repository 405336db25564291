// Package parser turns single command lines into typed requests.
//
// Grammar (keywords are case-insensitive):
//
//	HI | BYE | LIST | DELETEALL
//	MARK <n> | UNMARK <n> | DELETE <n>
//	TODO <name>
//	DEADLINE <name> /by <yyyy-mm-dd HHMM>
//	EVENT <name> /from <yyyy-mm-dd HHMM> /to <yyyy-mm-dd HHMM>
//	FIND <text>
//
// Delimiters are found by first occurrence and are not escaped, so a name
// that itself contains " /by " or " /from " is cut at that point.
package parser

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/runoshun/taskbot/internal/domain"
)

// Argument delimiters.
const (
	byDelim   = " /by "
	fromDelim = " /from "
	toDelim   = " /to "
)

// Request is a parsed command line.
// Only the field matching Command is set.
type Request struct {
	Task    domain.Task    // TODO, DEADLINE, EVENT
	Query   string         // FIND
	Command domain.Command // Always set
	Index   int            // MARK, UNMARK, DELETE (1-based)
}

// Parse parses a full command line.
func Parse(line string) (Request, error) {
	cmd, err := ResolveCommand(ExtractCommand(line))
	if err != nil {
		return Request{}, err
	}

	req := Request{Command: cmd}
	switch {
	case cmd.CreatesTask():
		arg, err := ExtractArgument(line)
		if err != nil {
			return Request{}, err
		}
		if req.Task, err = ParseTask(cmd, arg); err != nil {
			return Request{}, err
		}
	case cmd.TakesIndex():
		arg, err := ExtractArgument(line)
		if err != nil {
			return Request{}, err
		}
		if req.Index, err = ParseIndex(arg); err != nil {
			return Request{}, err
		}
	case cmd == domain.CommandFind:
		if req.Query, err = ExtractArgument(line); err != nil {
			return Request{}, err
		}
	}
	return req, nil
}

// ExtractCommand returns the first whitespace-delimited token of line,
// uppercased. A line without whitespace is the keyword in full.
func ExtractCommand(line string) string {
	line = strings.TrimSpace(line)
	if i := strings.IndexFunc(line, unicode.IsSpace); i >= 0 {
		line = line[:i]
	}
	return strings.ToUpper(line)
}

// ExtractArgument returns everything after the first whitespace of line,
// trimmed. Keyword-only lines fail with ErrInvalidTask.
func ExtractArgument(line string) (string, error) {
	line = strings.TrimSpace(line)
	i := strings.IndexFunc(line, unicode.IsSpace)
	if i < 0 {
		return "", fmt.Errorf("%w: %s needs an argument", domain.ErrInvalidTask, strings.ToUpper(line))
	}
	return strings.TrimSpace(line[i:]), nil
}

// ResolveCommand maps a keyword to a command, ignoring case.
func ResolveCommand(keyword string) (domain.Command, error) {
	cmd := domain.Command(strings.ToUpper(keyword))
	if !cmd.IsValid() {
		return "", fmt.Errorf("%w: %q", domain.ErrUnknownCommand, keyword)
	}
	return cmd, nil
}

// ParseTask builds the task described by argument for TODO, DEADLINE or EVENT.
func ParseTask(cmd domain.Command, argument string) (domain.Task, error) {
	switch cmd {
	case domain.CommandTodo:
		return domain.NewTodo(argument)
	case domain.CommandDeadline:
		return parseDeadline(argument)
	case domain.CommandEvent:
		return parseEvent(argument)
	default:
		return domain.Task{}, fmt.Errorf("%w: %s does not create a task", domain.ErrInvalidTask, cmd)
	}
}

func parseDeadline(argument string) (domain.Task, error) {
	name, rest, ok := strings.Cut(argument, byDelim)
	if !ok {
		return domain.Task{}, fmt.Errorf("%w: missing %q", domain.ErrInvalidTask, strings.TrimSpace(byDelim))
	}
	if strings.TrimSpace(name) == "" {
		return domain.Task{}, fmt.Errorf("%w: name cannot be blank", domain.ErrInvalidTask)
	}
	due, err := domain.ParseTimestamp(rest)
	if err != nil {
		return domain.Task{}, err
	}
	return domain.NewDeadline(name, due)
}

// parseEvent splits "<name> /from <start> /to <end>". The /to delimiter is
// searched for after /from, so /to may appear inside the name.
func parseEvent(argument string) (domain.Task, error) {
	name, rest, ok := strings.Cut(argument, fromDelim)
	if !ok {
		return domain.Task{}, fmt.Errorf("%w: missing %q", domain.ErrInvalidTask, strings.TrimSpace(fromDelim))
	}
	startText, endText, ok := strings.Cut(rest, toDelim)
	if !ok {
		return domain.Task{}, fmt.Errorf("%w: missing %q after %q", domain.ErrInvalidTask,
			strings.TrimSpace(toDelim), strings.TrimSpace(fromDelim))
	}
	if strings.TrimSpace(name) == "" {
		return domain.Task{}, fmt.Errorf("%w: name cannot be blank", domain.ErrInvalidTask)
	}
	start, err := domain.ParseTimestamp(startText)
	if err != nil {
		return domain.Task{}, err
	}
	end, err := domain.ParseTimestamp(endText)
	if err != nil {
		return domain.Task{}, err
	}
	return domain.NewEvent(name, start, end)
}

// ParseIndex parses a 1-based task number. Anything but a positive
// base-10 integer fails with ErrInvalidTask.
func ParseIndex(argument string) (int, error) {
	argument = strings.TrimSpace(argument)
	n, err := strconv.ParseUint(argument, 10, strconv.IntSize-1)
	if err != nil || n == 0 {
		return 0, fmt.Errorf("%w: %q is not a task number", domain.ErrInvalidTask, argument)
	}
	return int(n), nil
}
