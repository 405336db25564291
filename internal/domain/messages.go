package domain

import (
	"errors"
	"fmt"
	"iter"
	"strings"
)

// Console framing.
const (
	FrameIndent = "        "
	FindHeader  = "HERE ARE THE MATCHING RESULTS:"
)

// DelimiterLine is printed before and after every response.
var DelimiterLine = FrameIndent + strings.Repeat("_", 56)

// Frame wraps msg between delimiter lines and indents each line.
func Frame(msg string) string {
	var b strings.Builder
	b.WriteString(DelimiterLine + "\n")
	for _, line := range strings.Split(msg, "\n") {
		if line != "" {
			b.WriteString(FrameIndent + line)
		}
		b.WriteByte('\n')
	}
	b.WriteString(DelimiterLine + "\n")
	return b.String()
}

// GreetingMessage answers HI and opens a session.
func GreetingMessage() string {
	return "Hi, I hope that you are having a nice day."
}

// FarewellMessage answers BYE.
func FarewellMessage() string {
	return "It was a good session, Bye."
}

// AddedMessage confirms an add.
func AddedMessage(task Task, total int) string {
	return fmt.Sprintf("I have added %s to my memory\n  %s\nYou have %s in the list",
		task.Name, task, countTasks(total))
}

// DeletedMessage confirms a delete.
func DeletedMessage(task Task, total int) string {
	return fmt.Sprintf("Noted, I have removed this task from my memory:\n  %s\nYou have %s in the list",
		task, countTasks(total))
}

// DeletedAllMessage confirms a delete-all.
func DeletedAllMessage() string {
	return "Noted, I have cleared every task from my memory"
}

// MarkedMessage confirms a mark.
func MarkedMessage(task Task) string {
	return "Understood, I have marked the task as done:\n  " + task.String()
}

// UnmarkedMessage confirms an unmark.
func UnmarkedMessage(task Task) string {
	return "Understood, I have marked the task as undone:\n  " + task.String()
}

// ListMessage renders the whole list followed by its size.
func ListMessage(l *TaskList) string {
	footer := fmt.Sprintf("I have %s in my memory", countTasks(l.Len()))
	if l.Len() == 0 {
		return footer
	}
	return l.String() + "\n" + footer
}

// FindMessage renders search results under FindHeader, numbered from 1.
func FindMessage(query string, matches iter.Seq[Task]) string {
	body := numbered(matches)
	if body == "" {
		return FindHeader + "\n" + fmt.Sprintf("Nothing in my memory matches %q", query)
	}
	return FindHeader + "\n" + body
}

// ErrorMessage converts a command failure into the text shown to the user.
func ErrorMessage(err error) string {
	switch {
	case errors.Is(err, ErrUnknownCommand):
		return "INVALID COMMAND"
	case errors.Is(err, ErrIndexOutOfRange):
		return "INVALID TASK NUMBER"
	case errors.Is(err, ErrInvalidTimestamp):
		return "INVALID TIMESTAMP, please use yyyy-mm-dd HHMM"
	case errors.Is(err, ErrInvalidTask):
		return "INVALID TASK"
	default:
		return err.Error()
	}
}

func countTasks(n int) string {
	if n == 1 {
		return "1 task"
	}
	return fmt.Sprintf("%d tasks", n)
}
