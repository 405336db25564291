// Package domain contains core business entities and interfaces.
package domain

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// Kind identifies a task variant. The set is closed.
type Kind string

const (
	KindTodo     Kind = "T" // Plain task without a date
	KindDeadline Kind = "D" // Task due at a point in time
	KindEvent    Kind = "E" // Task spanning a period
)

// AllKinds returns all task kinds.
func AllKinds() []Kind {
	return []Kind{KindTodo, KindDeadline, KindEvent}
}

// IsValid returns true if the kind is a known variant.
func (k Kind) IsValid() bool {
	switch k {
	case KindTodo, KindDeadline, KindEvent:
		return true
	default:
		return false
	}
}

// Display returns a human-readable name of the kind.
func (k Kind) Display() string {
	switch k {
	case KindTodo:
		return "Todo"
	case KindDeadline:
		return "Deadline"
	case KindEvent:
		return "Event"
	default:
		return string(k)
	}
}

// Task represents a unit of tracked work.
// Kind selects which of the time fields carry meaning: Due for deadlines,
// Start and End for events. Start is not required to precede End.
// Fields are ordered to minimize memory padding.
type Task struct {
	Due   time.Time // Deadline only
	Start time.Time // Event only
	End   time.Time // Event only
	Name  string    // Non-blank
	Kind  Kind      // Variant tag
	Done  bool      // Completion flag
}

// NewTodo creates a todo. The name is trimmed and must not be blank.
func NewTodo(name string) (Task, error) {
	n, err := validateName(name)
	if err != nil {
		return Task{}, err
	}
	return Task{Kind: KindTodo, Name: n}, nil
}

// NewDeadline creates a deadline due at due.
func NewDeadline(name string, due time.Time) (Task, error) {
	n, err := validateName(name)
	if err != nil {
		return Task{}, err
	}
	return Task{Kind: KindDeadline, Name: n, Due: due}, nil
}

// NewEvent creates an event spanning start to end.
func NewEvent(name string, start, end time.Time) (Task, error) {
	n, err := validateName(name)
	if err != nil {
		return Task{}, err
	}
	return Task{Kind: KindEvent, Name: n, Start: start, End: end}, nil
}

func validateName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", fmt.Errorf("%w: name cannot be blank", ErrInvalidTask)
	}
	if hasControl(trimmed) {
		return "", fmt.Errorf("%w: name cannot contain control characters", ErrInvalidTask)
	}
	return trimmed, nil
}

// hasControl reports whether s holds a line break, tab or other control character.
// Such names cannot be stored one record per line.
func hasControl(s string) bool {
	return strings.ContainsFunc(s, unicode.IsControl)
}

// Mark sets the task as done.
func (t *Task) Mark() {
	t.Done = true
}

// Unmark sets the task as not done.
func (t *Task) Unmark() {
	t.Done = false
}

// Equal reports whether both tasks have the same kind, name, flag and times.
func (t Task) Equal(other Task) bool {
	return t.Kind == other.Kind &&
		t.Name == other.Name &&
		t.Done == other.Done &&
		t.Due.Equal(other.Due) &&
		t.Start.Equal(other.Start) &&
		t.End.Equal(other.End)
}

// String renders the task, e.g. "[D][X] return book (by: MAY 5 2020 2000)".
func (t Task) String() string {
	var b strings.Builder
	b.WriteString("[" + string(t.Kind) + "]")
	if t.Done {
		b.WriteString("[X] ")
	} else {
		b.WriteString("[ ] ")
	}
	b.WriteString(t.Name)

	switch t.Kind {
	case KindTodo:
	case KindDeadline:
		b.WriteString(" (by: " + FormatDisplay(t.Due) + ")")
	case KindEvent:
		b.WriteString(" (from: " + FormatDisplay(t.Start) + " to: " + FormatDisplay(t.End) + ")")
	}
	return b.String()
}

const recordSep = "|"

// Encode serializes the task into a single pipe-delimited record:
//
//	T|<done>|<name>
//	D|<done>|<name>|<due>
//	E|<done>|<name>|<start>|<end>
//
// where <done> is 0 or 1 and times use RecordLayout.
func (t Task) Encode() string {
	fields := []string{string(t.Kind), encodeDone(t.Done), t.Name}
	switch t.Kind {
	case KindTodo:
	case KindDeadline:
		fields = append(fields, formatRecord(t.Due))
	case KindEvent:
		fields = append(fields, formatRecord(t.Start), formatRecord(t.End))
	}
	return strings.Join(fields, recordSep)
}

// DecodeTask parses a record produced by Encode.
// Tag and flag are read from the left and times from the right, so names
// may themselves contain the separator.
func DecodeTask(record string) (Task, error) {
	fields := strings.Split(record, recordSep)
	if len(fields) < 3 {
		return Task{}, fmt.Errorf("%w: too few fields in %q", ErrCorruptRecord, record)
	}

	kind := Kind(fields[0])
	var timeFields int
	switch kind {
	case KindTodo:
		timeFields = 0
	case KindDeadline:
		timeFields = 1
	case KindEvent:
		timeFields = 2
	default:
		return Task{}, fmt.Errorf("%w: unknown kind %q", ErrCorruptRecord, fields[0])
	}
	if len(fields) < 3+timeFields {
		return Task{}, fmt.Errorf("%w: too few fields for %s in %q", ErrCorruptRecord, kind.Display(), record)
	}

	done, err := decodeDone(fields[1])
	if err != nil {
		return Task{}, err
	}

	nameEnd := len(fields) - timeFields
	name := strings.Join(fields[2:nameEnd], recordSep)
	if strings.TrimSpace(name) == "" {
		return Task{}, fmt.Errorf("%w: blank name in %q", ErrCorruptRecord, record)
	}
	if hasControl(name) {
		return Task{}, fmt.Errorf("%w: control character in name of %q", ErrCorruptRecord, record)
	}

	task := Task{Kind: kind, Name: name, Done: done}
	switch kind {
	case KindTodo:
	case KindDeadline:
		if task.Due, err = parseRecordTimestamp(fields[nameEnd]); err != nil {
			return Task{}, err
		}
	case KindEvent:
		if task.Start, err = parseRecordTimestamp(fields[nameEnd]); err != nil {
			return Task{}, err
		}
		if task.End, err = parseRecordTimestamp(fields[nameEnd+1]); err != nil {
			return Task{}, err
		}
	}
	return task, nil
}

func encodeDone(done bool) string {
	if done {
		return "1"
	}
	return "0"
}

func decodeDone(s string) (bool, error) {
	switch s {
	case "1":
		return true, nil
	case "0":
		return false, nil
	default:
		return false, fmt.Errorf("%w: bad done flag %q", ErrCorruptRecord, s)
	}
}
