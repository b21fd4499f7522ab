package query

import (
	"cmp"
	"slices"
	"strings"

	"github.com/tgienger/lifeos/internal/models"
)

// PriorityRank maps a priority to its sort weight. Unknown values rank 0.
func PriorityRank(p models.Priority) int {
	switch p {
	case models.PriorityHigh:
		return 3
	case models.PriorityMedium:
		return 2
	case models.PriorityLow:
		return 1
	default:
		return 0
	}
}

// SortScheduled orders tasks with deadlines. The default mode is earliest
// deadline first; priority mode is highest priority first. The sort is stable
// and returns a new slice.
func SortScheduled(tasks []models.Task, mode SortMode) []models.Task {
	out := append(make([]models.Task, 0, len(tasks)), tasks...)
	if mode == SortPriority {
		slices.SortStableFunc(out, byPriority)
		return out
	}
	slices.SortStableFunc(out, byDeadline)
	return out
}

// SortBacklog orders backlog tasks. The default mode is most recently created
// first; priority mode is highest priority first. The sort is stable and
// returns a new slice.
func SortBacklog(tasks []models.Task, mode SortMode) []models.Task {
	out := append(make([]models.Task, 0, len(tasks)), tasks...)
	if mode == SortPriority {
		slices.SortStableFunc(out, byPriority)
		return out
	}
	slices.SortStableFunc(out, byNewest)
	return out
}

func byPriority(a, b models.Task) int {
	return cmp.Compare(PriorityRank(b.Priority), PriorityRank(a.Priority))
}

// byDeadline compares zero-padded YYYY-MM-DD strings. A missing deadline
// compares equal to everything so it is left where it was.
func byDeadline(a, b models.Task) int {
	if a.Deadline == "" || b.Deadline == "" {
		return 0
	}
	return strings.Compare(a.Deadline, b.Deadline)
}

func byNewest(a, b models.Task) int {
	return b.CreatedAt.Compare(a.CreatedAt)
}
