package query

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tgienger/lifeos/internal/models"
)

func TestPartition(t *testing.T) {
	scheduled, backlog := Partition(sampleTasks())

	assert.Equal(t, []string{"1", "2", "3", "5", "7"}, ids(scheduled))
	assert.Equal(t, []string{"4", "6"}, ids(backlog))
}

func TestApply(t *testing.T) {
	spec := DefaultSpec()
	spec.Completion = CompletionUnfinished

	res := Apply(sampleTasks(), spec, ref)

	// "7" has a malformed deadline; string order puts it last.
	assert.Equal(t, []string{"1", "2", "5", "7"}, ids(res.Scheduled))
	assert.Equal(t, []string{"4"}, ids(res.Backlog))
	assert.Equal(t, 5, res.Len())

	spec.Sort = SortPriority
	res = Apply(sampleTasks(), spec, ref)
	assert.Equal(t, []string{"1", "5", "2", "7"}, ids(res.Scheduled))
}

func TestApplyEmpty(t *testing.T) {
	res := Apply(nil, DefaultSpec(), ref)

	assert.Empty(t, res.Scheduled)
	assert.Empty(t, res.Backlog)
	assert.Equal(t, 0, res.Len())
}

func TestUpcoming(t *testing.T) {
	tasks := []models.Task{
		{ID: "overdue", Deadline: "2026-01-21"},
		{ID: "week", Deadline: "2026-01-29"},
		{ID: "eight", Deadline: "2026-01-30"},
		{ID: "today", Deadline: "2026-01-22"},
		{ID: "done", Deadline: "2026-01-23", Completed: true},
		{ID: "backlog", IsBacklog: true},
		{ID: "none"},
		{ID: "tomorrow", Deadline: "2026-01-23"},
	}

	assert.Equal(t, []string{"today", "tomorrow", "week"}, ids(Upcoming(tasks, ref, 0)))
	assert.Equal(t, []string{"today", "tomorrow"}, ids(Upcoming(tasks, ref, 2)))
}

func TestUpcomingLimit(t *testing.T) {
	tasks := make([]models.Task, 0, 15)
	for i := 0; i < 15; i++ {
		tasks = append(tasks, models.Task{ID: fmt.Sprint(i), Deadline: "2026-01-25"})
	}

	got := Upcoming(tasks, ref, WidgetLimit)

	assert.Len(t, got, WidgetLimit)
	assert.Equal(t, "0", got[0].ID)
}

func TestBacklogPreview(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	tasks := []models.Task{
		{ID: "old", IsBacklog: true, CreatedAt: base},
		{ID: "scheduled", Deadline: "2026-01-22", CreatedAt: base.AddDate(0, 0, 5)},
		{ID: "new", IsBacklog: true, CreatedAt: base.AddDate(0, 0, 3)},
		{ID: "done", IsBacklog: true, Completed: true, CreatedAt: base.AddDate(0, 0, 4)},
		{ID: "mid", IsBacklog: true, CreatedAt: base.AddDate(0, 0, 1)},
	}

	assert.Equal(t, []string{"new", "mid", "old"}, ids(BacklogPreview(tasks, 0)))
	assert.Equal(t, []string{"new"}, ids(BacklogPreview(tasks, 1)))
}
