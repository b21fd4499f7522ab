package views

import (
	"context"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tgienger/lifeos/internal/api"
	"github.com/tgienger/lifeos/internal/db"
	"github.com/tgienger/lifeos/internal/models"
	"github.com/tgienger/lifeos/internal/query"
	"github.com/tgienger/lifeos/internal/ui/styles"
)

// Env is what the views need from outside the UI
type Env struct {
	Tasks   api.TaskService
	Store   *db.DB
	Domains []string
	Now     func() time.Time
}

func (e Env) ref() time.Time {
	if e.Now == nil {
		return time.Now()
	}
	return e.Now()
}

// clamp returns val clamped between minVal and maxVal
func clamp(val, minVal, maxVal int) int {
	if val < minVal {
		return minVal
	}
	if val > maxVal {
		return maxVal
	}
	return val
}

// next returns the element after cur in values, wrapping around
func next[T comparable](values []T, cur T, dir int) T {
	if len(values) == 0 {
		return cur
	}
	for i, v := range values {
		if v == cur {
			return values[(i+dir+len(values))%len(values)]
		}
	}
	return values[0]
}

type tasksLoadedMsg struct {
	tasks []models.Task
}

type errMsg struct {
	err error
}

// OpenTasks asks the app to show the task manager. A non-empty Domain
// narrows the filter to that domain.
type OpenTasks struct {
	Domain string
}

// BackToDashboard asks the app to show the dashboard
type BackToDashboard struct{}

// SpecChanged reports a new filter selection so it can be persisted
type SpecChanged struct {
	Spec query.Spec
}

// fetchTasks loads the task snapshot from the backend
func fetchTasks(svc api.TaskService) tea.Msg {
	tasks, err := svc.ListTasks(context.Background())
	if err != nil {
		return errMsg{err}
	}
	return tasksLoadedMsg{tasks: tasks}
}

// mutate runs fn against the backend and re-fetches the snapshot on success
func mutate(svc api.TaskService, fn func(ctx context.Context) error) tea.Cmd {
	return func() tea.Msg {
		if err := fn(context.Background()); err != nil {
			return errMsg{err}
		}
		return fetchTasks(svc)
	}
}

// renderTaskRow renders a task on one line: checkbox, title, domain,
// priority and deadline label
func renderTaskRow(s *styles.Styles, t models.Task, ref time.Time, width int, selected bool) string {
	check := "[ ]"
	titleStyle := s.TaskTitle
	if t.Completed {
		check = "[x]"
		titleStyle = s.TaskCompleted
	}

	var meta []string
	meta = append(meta,
		lipgloss.NewStyle().Foreground(styles.DomainColor(t.Domain)).Render(t.Domain),
		lipgloss.NewStyle().Foreground(styles.PriorityColor(t.Priority)).Render(string(t.Priority)),
	)
	if label, u, ok := query.DeadlineLabel(t, ref); ok {
		meta = append(meta, styles.DeadlineStyle(u).Render(label))
	}
	right := strings.Join(meta, s.TaskMeta.Render(" · "))

	left := check + " " + titleStyle.Render(t.Title)
	gap := width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if gap < 1 {
		// Truncate the title so the metadata stays visible
		room := max(width-lipgloss.Width(right)-lipgloss.Width(check)-6, 8)
		title := t.Title
		if len([]rune(title)) > room {
			title = string([]rune(title)[:room-1]) + "…"
		}
		left = check + " " + titleStyle.Render(title)
		gap = max(width-lipgloss.Width(left)-lipgloss.Width(right)-4, 1)
	}
	line := left + strings.Repeat(" ", gap) + right

	if selected {
		return s.ListSelected.Width(width).Render(line)
	}
	return s.ListItem.Width(width).Render(line)
}
