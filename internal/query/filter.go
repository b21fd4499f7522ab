package query

import (
	"strings"
	"time"

	"github.com/tgienger/lifeos/internal/models"
)

// Filter returns the tasks matching every criterion of spec, in input order.
// The input slice is never modified.
func Filter(tasks []models.Task, spec Spec, ref time.Time) []models.Task {
	search := strings.ToLower(strings.TrimSpace(spec.Search))

	out := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if matches(t, spec, search, ref) {
			out = append(out, t)
		}
	}
	return out
}

// Matches reports whether a single task satisfies spec
func Matches(t models.Task, spec Spec, ref time.Time) bool {
	return matches(t, spec, strings.ToLower(strings.TrimSpace(spec.Search)), ref)
}

func matches(t models.Task, spec Spec, search string, ref time.Time) bool {
	switch spec.Completion {
	case CompletionFinished:
		if !t.Completed {
			return false
		}
	case CompletionUnfinished:
		if t.Completed {
			return false
		}
	}

	if len(spec.Domains) > 0 && !spec.HasDomain(t.Domain) {
		return false
	}

	// Backlog tasks have no firm deadline, so the window never applies to them.
	if !t.IsBacklog && !InWindow(t.Deadline, spec.Window, ref) {
		return false
	}

	if search != "" &&
		!strings.Contains(strings.ToLower(t.Title), search) &&
		!strings.Contains(strings.ToLower(t.Description), search) {
		return false
	}

	return true
}
