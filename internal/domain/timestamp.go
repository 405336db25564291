package domain

import (
	"fmt"
	"strings"
	"time"
)

// Timestamp layouts.
const (
	InputLayout   = "2006-01-02 1504"  // What users type after /by, /from and /to
	RecordLayout  = "2006-01-02T15:04" // What serialized records carry
	displayLayout = "Jan 2 2006 1504"
)

// ParseTimestamp parses user input in InputLayout.
func ParseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(InputLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q (expected yyyy-mm-dd HHMM)", ErrInvalidTimestamp, s)
	}
	return t, nil
}

// FormatDisplay renders t for humans, e.g. "MAY 5 2020 2000".
// The result is never parsed back.
func FormatDisplay(t time.Time) string {
	return strings.ToUpper(t.Format(displayLayout))
}

func formatRecord(t time.Time) string {
	return t.Format(RecordLayout)
}

func parseRecordTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(RecordLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: bad timestamp %q", ErrCorruptRecord, s)
	}
	return t, nil
}
