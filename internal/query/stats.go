package query

import (
	"time"

	"github.com/tgienger/lifeos/internal/models"
)

// DomainStats counts incomplete tasks per domain. One entry is returned for
// every domain in allDomains, in that order, zero counts included. Tasks whose
// domain is not listed are ignored.
func DomainStats(tasks []models.Task, allDomains []string) []models.DomainStat {
	counts := make(map[string]int, len(allDomains))
	for _, t := range tasks {
		if !t.Completed {
			counts[t.Domain]++
		}
	}

	stats := make([]models.DomainStat, 0, len(allDomains))
	for _, d := range allDomains {
		stats = append(stats, models.DomainStat{Domain: d, Count: counts[d]})
	}
	return stats
}

// NonZero drops the entries with a zero count
func NonZero(stats []models.DomainStat) []models.DomainStat {
	out := make([]models.DomainStat, 0, len(stats))
	for _, s := range stats {
		if s.Count > 0 {
			out = append(out, s)
		}
	}
	return out
}

// Totals is a headline summary of a task collection
type Totals struct {
	Total     int `json:"total" yaml:"total"`
	Open      int `json:"open" yaml:"open"`
	Completed int `json:"completed" yaml:"completed"`
	Backlog   int `json:"backlog" yaml:"backlog"`
	Overdue   int `json:"overdue" yaml:"overdue"`
	DueToday  int `json:"due_today" yaml:"due_today"`
}

// Summarize computes Totals relative to ref. Backlog, Overdue and DueToday
// only count open tasks; Overdue and DueToday only count scheduled ones.
func Summarize(tasks []models.Task, ref time.Time) Totals {
	var t Totals
	t.Total = len(tasks)
	for _, task := range tasks {
		if task.Completed {
			t.Completed++
			continue
		}
		t.Open++
		if task.IsBacklog {
			t.Backlog++
			continue
		}
		u, ok := ClassifyDeadline(task.Deadline, ref)
		if !ok {
			continue
		}
		switch u.Bucket {
		case BucketOverdue:
			t.Overdue++
		case BucketToday:
			t.DueToday++
		}
	}
	return t
}
