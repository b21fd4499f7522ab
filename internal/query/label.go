package query

import (
	"time"

	"github.com/tgienger/lifeos/internal/models"
)

// DisplayLayout is the day-first date format shown to users
const DisplayLayout = "02.01.2006"

// FormatDate renders a YYYY-MM-DD deadline as DD.MM.YYYY. Unparseable input
// is returned unchanged.
func FormatDate(deadline string) string {
	d, err := ParseDeadline(deadline)
	if err != nil {
		return deadline
	}
	return d.Format(DisplayLayout)
}

// DeadlineLabel returns the short deadline text shown next to a task.
// ok is false for completed tasks and for tasks without a usable deadline.
func DeadlineLabel(t models.Task, ref time.Time) (label string, u Urgency, ok bool) {
	if t.Completed {
		return "", Urgency{}, false
	}
	u, ok = ClassifyDeadline(t.Deadline, ref)
	if !ok {
		return "", Urgency{}, false
	}

	switch u.Bucket {
	case BucketOverdue:
		return "OVERDUE", u, true
	case BucketToday:
		return "Today", u, true
	case BucketTomorrow:
		return "Tomorrow", u, true
	default:
		return "Due " + FormatDate(t.Deadline), u, true
	}
}
