package api

import (
	"errors"
	"slices"
	"strings"
	"time"
)

var (
	ErrTitleRequired           = errors.New("title is required")
	ErrInvalidPriority         = errors.New("invalid priority value")
	ErrInvalidDomain           = errors.New("invalid domain value")
	ErrNoDeadlineForNonBacklog = errors.New("deadline must be set for non-backlog tasks")
	ErrBacklogDeadlineConflict = errors.New("backlog tasks should not have a deadline")
	ErrInvalidDeadline         = errors.New("invalid deadline format")
)

// ValidateCreate runs the backend's field checks locally so the user gets
// feedback before a round trip. domains is the accepted domain vocabulary.
func ValidateCreate(in TaskInput, domains []string) error {
	if in.Title == nil || strings.TrimSpace(*in.Title) == "" {
		return ErrTitleRequired
	}
	if in.Priority == nil || !in.Priority.Valid() {
		return ErrInvalidPriority
	}
	if in.Domain == nil || !slices.Contains(domains, *in.Domain) {
		return ErrInvalidDomain
	}

	backlog := in.IsBacklog != nil && *in.IsBacklog
	hasDeadline := !in.ClearDeadline && in.Deadline != nil && *in.Deadline != ""
	if !backlog && !hasDeadline {
		return ErrNoDeadlineForNonBacklog
	}
	if backlog && hasDeadline {
		return ErrBacklogDeadlineConflict
	}
	if hasDeadline {
		if _, err := time.Parse("2006-01-02", *in.Deadline); err != nil {
			return ErrInvalidDeadline
		}
	}
	return nil
}
