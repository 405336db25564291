package domain

import (
	"fmt"
	"iter"
	"slices"
	"strconv"
	"strings"
)

// TaskList is the ordered task collection of a session.
// A task's 1-based position is its only identifier: deleting task k
// renumbers every task after it.
// TaskList is not safe for concurrent use.
type TaskList struct {
	tasks []Task
}

// NewTaskList creates a list holding a copy of tasks.
func NewTaskList(tasks ...Task) *TaskList {
	return &TaskList{tasks: slices.Clone(tasks)}
}

// LoadTaskList rebuilds a list from serialized records.
// Corrupt records are skipped; one error is returned per skipped record.
func LoadTaskList(records []string) (*TaskList, []error) {
	l := &TaskList{tasks: make([]Task, 0, len(records))}
	var errs []error
	for i, record := range records {
		task, err := DecodeTask(record)
		if err != nil {
			errs = append(errs, fmt.Errorf("record %d: %w", i+1, err))
			continue
		}
		l.tasks = append(l.tasks, task)
	}
	return l, errs
}

// Len returns the number of tasks.
func (l *TaskList) Len() int {
	return len(l.tasks)
}

// Get returns the task at the 1-based index.
func (l *TaskList) Get(index int) (Task, error) {
	if err := l.checkIndex(index); err != nil {
		return Task{}, err
	}
	return l.tasks[index-1], nil
}

// Tasks returns a copy of the tasks in order.
func (l *TaskList) Tasks() []Task {
	return slices.Clone(l.tasks)
}

// Reset replaces the contents with a copy of tasks.
func (l *TaskList) Reset(tasks []Task) {
	l.tasks = slices.Clone(tasks)
}

// Add appends task and returns the confirmation message.
func (l *TaskList) Add(task Task) string {
	l.tasks = append(l.tasks, task)
	return AddedMessage(task, len(l.tasks))
}

// Delete removes the task at the 1-based index.
// On error the list is left unchanged.
func (l *TaskList) Delete(index int) (string, error) {
	if err := l.checkIndex(index); err != nil {
		return "", err
	}
	removed := l.tasks[index-1]
	l.tasks = slices.Delete(l.tasks, index-1, index)
	return DeletedMessage(removed, len(l.tasks)), nil
}

// DeleteAll removes every task.
func (l *TaskList) DeleteAll() string {
	l.tasks = l.tasks[:0]
	return DeletedAllMessage()
}

// Mark sets the task at the 1-based index as done.
func (l *TaskList) Mark(index int) (string, error) {
	if err := l.checkIndex(index); err != nil {
		return "", err
	}
	l.tasks[index-1].Mark()
	return MarkedMessage(l.tasks[index-1]), nil
}

// Unmark sets the task at the 1-based index as not done.
func (l *TaskList) Unmark(index int) (string, error) {
	if err := l.checkIndex(index); err != nil {
		return "", err
	}
	l.tasks[index-1].Unmark()
	return UnmarkedMessage(l.tasks[index-1]), nil
}

// Find yields, in list order, the tasks whose name contains substr.
// Matching is case-sensitive and ignores the rest of the rendering.
// The sequence reads the list when iterated, so it can be ranged over again.
func (l *TaskList) Find(substr string) iter.Seq[Task] {
	return func(yield func(Task) bool) {
		for _, t := range l.tasks {
			if !strings.Contains(t.Name, substr) {
				continue
			}
			if !yield(t) {
				return
			}
		}
	}
}

// String numbers the tasks from 1, one per line.
func (l *TaskList) String() string {
	return numbered(slices.Values(l.tasks))
}

// Records serializes every task in order.
func (l *TaskList) Records() []string {
	records := make([]string, len(l.tasks))
	for i, t := range l.tasks {
		records[i] = t.Encode()
	}
	return records
}

func (l *TaskList) checkIndex(index int) error {
	if index < 1 || index > len(l.tasks) {
		return fmt.Errorf("%w: %d (have %s)", ErrIndexOutOfRange, index, countTasks(len(l.tasks)))
	}
	return nil
}

func numbered(tasks iter.Seq[Task]) string {
	var b strings.Builder
	n := 0
	for t := range tasks {
		if n > 0 {
			b.WriteByte('\n')
		}
		n++
		b.WriteString(strconv.Itoa(n) + "." + t.String())
	}
	return b.String()
}
