package query

import (
	"time"

	"github.com/tgienger/lifeos/internal/models"
)

const (
	// WidgetLimit is the number of rows the dashboard widgets show
	WidgetLimit = 10
	// UpcomingDays is how far ahead the upcoming widget looks
	UpcomingDays = 7
)

// Result holds the two task pools the task manager displays
type Result struct {
	Scheduled []models.Task `json:"scheduled" yaml:"scheduled"`
	Backlog   []models.Task `json:"backlog" yaml:"backlog"`
}

// Len returns the number of tasks across both pools
func (r Result) Len() int {
	return len(r.Scheduled) + len(r.Backlog)
}

// Partition splits tasks on IsBacklog, preserving order within each pool
func Partition(tasks []models.Task) (scheduled, backlog []models.Task) {
	scheduled = make([]models.Task, 0, len(tasks))
	backlog = make([]models.Task, 0)
	for _, t := range tasks {
		if t.IsBacklog {
			backlog = append(backlog, t)
		} else {
			scheduled = append(scheduled, t)
		}
	}
	return scheduled, backlog
}

// Apply filters tasks with spec, splits the matches into scheduled and
// backlog pools and sorts each pool with spec.Sort.
func Apply(tasks []models.Task, spec Spec, ref time.Time) Result {
	scheduled, backlog := Partition(Filter(tasks, spec, ref))
	return Result{
		Scheduled: SortScheduled(scheduled, spec.Sort),
		Backlog:   SortBacklog(backlog, spec.Sort),
	}
}

// Upcoming returns incomplete scheduled tasks due within the next
// UpcomingDays days of ref, earliest first. limit <= 0 means no limit.
func Upcoming(tasks []models.Task, ref time.Time, limit int) []models.Task {
	out := make([]models.Task, 0)
	for _, t := range tasks {
		if t.Completed || t.IsBacklog || !t.HasDeadline() {
			continue
		}
		u, ok := ClassifyDeadline(t.Deadline, ref)
		if !ok || u.Days < 0 || u.Days > UpcomingDays {
			continue
		}
		out = append(out, t)
	}
	return truncate(SortScheduled(out, SortDefault), limit)
}

// BacklogPreview returns incomplete backlog tasks, newest first.
// limit <= 0 means no limit.
func BacklogPreview(tasks []models.Task, limit int) []models.Task {
	out := make([]models.Task, 0)
	for _, t := range tasks {
		if !t.Completed && t.IsBacklog {
			out = append(out, t)
		}
	}
	return truncate(SortBacklog(out, SortDefault), limit)
}

func truncate(tasks []models.Task, limit int) []models.Task {
	if limit > 0 && len(tasks) > limit {
		return tasks[:limit]
	}
	return tasks
}
