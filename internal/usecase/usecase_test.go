package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/runoshun/taskbot/internal/domain"
)

func sampleRecords() []string {
	return []string{
		"T|0|work",
		"D|0|sleep|2020-05-05T20:00",
		"E|0|assist with work|2020-05-05T18:00|2020-05-05T22:00",
	}
}

func loadList(t *testing.T, records ...string) *domain.TaskList {
	t.Helper()
	list, errs := domain.LoadTaskList(records)
	require.Empty(t, errs)
	return list
}
