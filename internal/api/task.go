package api

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/tgienger/lifeos/internal/models"
)

// Task is a task as the backend serializes it
type Task struct {
	ID          string     `json:"task_id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Priority    string     `json:"priority"`
	Domain      string     `json:"domain"`
	ProjectID   string     `json:"project_id,omitempty"`
	UniModuleID string     `json:"uni_module_id,omitempty"`
	Deadline    *string    `json:"deadline,omitempty"`
	IsBacklog   bool       `json:"is_backlog"`
	Completed   bool       `json:"completed"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

// ToModel converts a wire task into the in-memory representation.
// Only the date part of the deadline is kept.
func ToModel(t Task) models.Task {
	m := models.Task{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
		Priority:    models.Priority(t.Priority),
		Domain:      t.Domain,
		IsBacklog:   t.IsBacklog,
		CreatedAt:   t.CreatedAt,
		ProjectID:   t.ProjectID,
		UniModuleID: t.UniModuleID,
	}
	if t.Deadline != nil {
		m.Deadline, _, _ = strings.Cut(*t.Deadline, "T")
	}
	if t.UpdatedAt != nil {
		m.UpdatedAt = *t.UpdatedAt
	}
	return m
}

// ToModels converts a slice of wire tasks
func ToModels(ts []Task) []models.Task {
	out := make([]models.Task, 0, len(ts))
	for _, t := range ts {
		out = append(out, ToModel(t))
	}
	return out
}

// TaskInput is a create or partial update request. Nil fields are left out
// of the request body. ClearDeadline sends an explicit null deadline and
// takes precedence over Deadline.
type TaskInput struct {
	Title         *string
	Description   *string
	Priority      *models.Priority
	Domain        *string
	ProjectID     *string
	UniModuleID   *string
	Deadline      *string
	ClearDeadline bool
	IsBacklog     *bool
	Completed     *bool
}

// MarshalJSON writes only the fields that are set, using backend field names
func (in TaskInput) MarshalJSON() ([]byte, error) {
	body := make(map[string]any)
	if in.Title != nil {
		body["title"] = *in.Title
	}
	if in.Description != nil {
		body["description"] = *in.Description
	}
	if in.Priority != nil {
		body["priority"] = *in.Priority
	}
	if in.Domain != nil {
		body["domain"] = *in.Domain
	}
	if in.ProjectID != nil {
		body["project_id"] = *in.ProjectID
	}
	if in.UniModuleID != nil {
		body["uni_module_id"] = *in.UniModuleID
	}
	if in.ClearDeadline {
		body["deadline"] = nil
	} else if in.Deadline != nil {
		body["deadline"] = *in.Deadline
	}
	if in.IsBacklog != nil {
		body["is_backlog"] = *in.IsBacklog
	}
	if in.Completed != nil {
		body["completed"] = *in.Completed
	}
	return json.Marshal(body)
}

// InputFromTask builds a full input from an edited task. An empty deadline
// becomes an explicit clear.
func InputFromTask(t models.Task) TaskInput {
	in := TaskInput{
		Title:       String(t.Title),
		Description: String(t.Description),
		Priority:    &t.Priority,
		Domain:      String(t.Domain),
		IsBacklog:   Bool(t.IsBacklog),
		Completed:   Bool(t.Completed),
	}
	if t.Deadline == "" {
		in.ClearDeadline = true
	} else {
		in.Deadline = String(t.Deadline)
	}
	return in
}

// String returns a pointer to s
func String(s string) *string { return &s }

// Bool returns a pointer to b
func Bool(b bool) *bool { return &b }
