package query

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	ErrUnknownCompletion = errors.New("unknown completion filter")
	ErrUnknownWindow     = errors.New("unknown deadline window")
	ErrUnknownSort       = errors.New("unknown sort mode")
)

// Completion selects tasks by their completed flag
type Completion string

const (
	CompletionAll        Completion = "all"
	CompletionFinished   Completion = "finished"
	CompletionUnfinished Completion = "unfinished"
)

// Completions lists every completion filter in display order
var Completions = []Completion{CompletionAll, CompletionFinished, CompletionUnfinished}

// Window is a named deadline range relative to the reference date
type Window string

const (
	WindowAll       Window = "all"
	WindowToday     Window = "today"
	WindowTomorrow  Window = "tomorrow"
	WindowNextWeek  Window = "next-week"
	WindowNextMonth Window = "next-month"
)

// Windows lists every deadline window in display order
var Windows = []Window{WindowAll, WindowToday, WindowTomorrow, WindowNextWeek, WindowNextMonth}

// SortMode selects the ordering applied to each task pool
type SortMode string

const (
	SortDefault  SortMode = "default"
	SortPriority SortMode = "priority"
)

// SortModes lists every sort mode in display order
var SortModes = []SortMode{SortDefault, SortPriority}

// ParseCompletion normalizes s into a Completion. Empty input means all.
func ParseCompletion(s string) (Completion, error) {
	c := Completion(strings.ToLower(strings.TrimSpace(s)))
	if c == "" {
		return CompletionAll, nil
	}
	if !slices.Contains(Completions, c) {
		return "", fmt.Errorf("%w: %q", ErrUnknownCompletion, s)
	}
	return c, nil
}

// ParseWindow normalizes s into a Window. Empty input means all.
func ParseWindow(s string) (Window, error) {
	w := Window(strings.ToLower(strings.TrimSpace(s)))
	if w == "" {
		return WindowAll, nil
	}
	if !slices.Contains(Windows, w) {
		return "", fmt.Errorf("%w: %q", ErrUnknownWindow, s)
	}
	return w, nil
}

// ParseSortMode normalizes s into a SortMode. Empty input means default.
func ParseSortMode(s string) (SortMode, error) {
	m := SortMode(strings.ToLower(strings.TrimSpace(s)))
	if m == "" {
		return SortDefault, nil
	}
	if !slices.Contains(SortModes, m) {
		return "", fmt.Errorf("%w: %q", ErrUnknownSort, s)
	}
	return m, nil
}

// Label returns the human readable name of the completion filter
func (c Completion) Label() string {
	switch c {
	case CompletionFinished:
		return "Finished"
	case CompletionUnfinished:
		return "Unfinished"
	}
	return "All"
}

// Label returns the human readable name of the window
func (w Window) Label() string {
	switch w {
	case WindowToday:
		return "Today"
	case WindowTomorrow:
		return "Tomorrow"
	case WindowNextWeek:
		return "Next 7 days"
	case WindowNextMonth:
		return "Next 30 days"
	}
	return "All"
}

// Label returns the human readable name of the sort mode
func (m SortMode) Label() string {
	if m == SortPriority {
		return "Priority"
	}
	return "Default"
}

// Spec is the set of filter and sort selections applied to a task collection.
// It is passed by value; helpers that change it return a modified copy.
type Spec struct {
	Completion Completion `json:"completion" yaml:"completion"`
	Domains    []string   `json:"domains,omitempty" yaml:"domains,omitempty"`
	Window     Window     `json:"window" yaml:"window"`
	Sort       SortMode   `json:"sort" yaml:"sort"`
	Search     string     `json:"search,omitempty" yaml:"search,omitempty"`
}

// DefaultSpec returns the spec that matches every task in default order
func DefaultSpec() Spec {
	return Spec{
		Completion: CompletionAll,
		Window:     WindowAll,
		Sort:       SortDefault,
	}
}

// Validate checks that every enum field holds a recognized value
func (s Spec) Validate() error {
	if !slices.Contains(Completions, s.Completion) {
		return fmt.Errorf("%w: %q", ErrUnknownCompletion, s.Completion)
	}
	if !slices.Contains(Windows, s.Window) {
		return fmt.Errorf("%w: %q", ErrUnknownWindow, s.Window)
	}
	if !slices.Contains(SortModes, s.Sort) {
		return fmt.Errorf("%w: %q", ErrUnknownSort, s.Sort)
	}
	return nil
}

// Normalize replaces unrecognized enum values with their defaults.
// Used on values read back from storage.
func (s Spec) Normalize() Spec {
	if c, err := ParseCompletion(string(s.Completion)); err == nil {
		s.Completion = c
	} else {
		s.Completion = CompletionAll
	}
	if w, err := ParseWindow(string(s.Window)); err == nil {
		s.Window = w
	} else {
		s.Window = WindowAll
	}
	if m, err := ParseSortMode(string(s.Sort)); err == nil {
		s.Sort = m
	} else {
		s.Sort = SortDefault
	}
	return s
}

// IsDefault reports whether s constrains nothing and uses the default order
func (s Spec) IsDefault() bool {
	return s.Completion == CompletionAll &&
		len(s.Domains) == 0 &&
		s.Window == WindowAll &&
		s.Sort == SortDefault &&
		strings.TrimSpace(s.Search) == ""
}

// HasDomain reports whether domain is part of the selected domain set
func (s Spec) HasDomain(domain string) bool {
	return slices.Contains(s.Domains, domain)
}

// ToggleDomain adds domain to the selection, or removes it if already selected
func (s Spec) ToggleDomain(domain string) Spec {
	if s.HasDomain(domain) {
		out := make([]string, 0, len(s.Domains))
		for _, d := range s.Domains {
			if d != domain {
				out = append(out, d)
			}
		}
		s.Domains = out
		return s
	}
	s.Domains = append(slices.Clone(s.Domains), domain)
	return s
}
