package domain

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrame(t *testing.T) {
	got := Frame("first\n  second")

	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	assert.Equal(t, []string{
		DelimiterLine,
		"        first",
		"          second",
		DelimiterLine,
	}, lines)
	assert.Equal(t, "        "+strings.Repeat("_", 56), DelimiterLine)
}

func TestFrame_BlankLinesHaveNoIndent(t *testing.T) {
	got := Frame("a\n\nb")
	assert.Contains(t, got, "        a\n\n        b\n")
}

func TestListMessage(t *testing.T) {
	l := newSampleList(t)
	_, _ = l.Delete(3)

	want := "1.[T][ ] work\n" +
		"2.[D][ ] sleep (by: MAY 5 2020 2000)\n" +
		"I have 2 tasks in my memory"
	assert.Equal(t, want, ListMessage(l))
	assert.Equal(t, "I have 0 tasks in my memory", ListMessage(NewTaskList()))
}

func TestFindMessage(t *testing.T) {
	l := newSampleList(t)

	want := "HERE ARE THE MATCHING RESULTS:\n" +
		"1.[T][ ] work\n" +
		"2.[E][ ] assist with work (from: MAY 5 2020 1800 to: MAY 5 2020 2200)"
	assert.Equal(t, want, FindMessage("work", l.Find("work")))

	empty := FindMessage("gym", l.Find("gym"))
	assert.True(t, strings.HasPrefix(empty, FindHeader+"\n"))
	assert.Contains(t, empty, `"gym"`)
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{fmt.Errorf("parse: %w", ErrUnknownCommand), "INVALID COMMAND"},
		{ErrIndexOutOfRange, "INVALID TASK NUMBER"},
		{fmt.Errorf("%w: blank", ErrInvalidTask), "INVALID TASK"},
		{fmt.Errorf("%w: x", ErrInvalidTimestamp), "INVALID TIMESTAMP, please use yyyy-mm-dd HHMM"},
		{errors.New("disk full"), "disk full"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, ErrorMessage(tt.err))
		})
	}
}
