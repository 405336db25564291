package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsUserError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"unknown command", fmt.Errorf("%w: %q", ErrUnknownCommand, "hello"), true},
		{"invalid task", fmt.Errorf("%w: name cannot be blank", ErrInvalidTask), true},
		{"index out of range", fmt.Errorf("%w: 4", ErrIndexOutOfRange), true},
		{"invalid timestamp", ErrInvalidTimestamp, true},
		{"corrupt record", fmt.Errorf("record 2: %w", ErrCorruptRecord), false},
		{"store fault", fmt.Errorf("save tasks: %w", errors.New("disk full")), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsUserError(tt.err))
		})
	}
}
