package query

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tgienger/lifeos/internal/models"
)

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "05.02.2026", FormatDate("2026-02-05"))
	assert.Equal(t, "05.02.2026", FormatDate("2026-02-05T00:00:00Z"))
	assert.Equal(t, "someday", FormatDate("someday"))
}

func TestDeadlineLabel(t *testing.T) {
	tests := []struct {
		task     models.Task
		label    string
		critical bool
		ok       bool
	}{
		{models.Task{Deadline: "2026-01-20"}, "OVERDUE", true, true},
		{models.Task{Deadline: "2026-01-22"}, "Today", true, true},
		{models.Task{Deadline: "2026-01-23"}, "Tomorrow", false, true},
		{models.Task{Deadline: "2026-02-05"}, "Due 05.02.2026", false, true},
		{models.Task{Deadline: "2026-01-20", Completed: true}, "", false, false},
		{models.Task{IsBacklog: true}, "", false, false},
		{models.Task{Deadline: "garbage"}, "", false, false},
	}

	for _, tt := range tests {
		label, u, ok := DeadlineLabel(tt.task, ref)
		assert.Equal(t, tt.ok, ok, tt.task.Deadline)
		assert.Equal(t, tt.label, label)
		assert.Equal(t, tt.critical, u.Critical)
	}
}
