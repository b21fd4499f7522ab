package models

import "time"

// Priority is the urgency level of a task
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Priorities lists the recognized priorities from lowest to highest
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

// Valid reports whether p is one of the recognized priorities
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// DefaultDomains is the canonical, ordered domain vocabulary
var DefaultDomains = []string{
	"personal",
	"work",
	"university",
	"health",
	"finance",
	"coding",
	"study",
	"home",
	"social",
	"travel",
	"administration",
}

// Task represents a single task as held in memory by the client.
// Deadline is a calendar date in YYYY-MM-DD form; empty means no deadline.
type Task struct {
	ID          string    `json:"id" yaml:"id"`
	Title       string    `json:"title" yaml:"title"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
	Completed   bool      `json:"completed" yaml:"completed"`
	Priority    Priority  `json:"priority" yaml:"priority"`
	Domain      string    `json:"domain" yaml:"domain"`
	Deadline    string    `json:"deadline,omitempty" yaml:"deadline,omitempty"`
	IsBacklog   bool      `json:"is_backlog" yaml:"is_backlog"`
	CreatedAt   time.Time `json:"created_at" yaml:"created_at"`
	UpdatedAt   time.Time `json:"updated_at,omitzero" yaml:"updated_at,omitempty"` // zero if the API did not report it
	ProjectID   string    `json:"project_id,omitempty" yaml:"project_id,omitempty"`
	UniModuleID string    `json:"uni_module_id,omitempty" yaml:"uni_module_id,omitempty"`
}

// HasDeadline reports whether the task carries a deadline
func (t Task) HasDeadline() bool {
	return t.Deadline != ""
}

// DomainStat is the number of incomplete tasks in a domain
type DomainStat struct {
	Domain string `json:"domain" yaml:"domain"`
	Count  int    `json:"count" yaml:"count"`
}
