package views

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tgienger/lifeos/internal/api"
	"github.com/tgienger/lifeos/internal/models"
	"github.com/tgienger/lifeos/internal/ui/styles"
)

// Edit form fields in focus order
const (
	fieldTitle = iota
	fieldDesc
	fieldDomain
	fieldPriority
	fieldBacklog
	fieldDeadline
	fieldSave
	fieldCount
)

func (v *TaskListView) startNewTask() tea.Cmd {
	domain := models.DefaultDomains[0]
	if len(v.spec.Domains) == 1 {
		domain = v.spec.Domains[0]
	} else if len(v.env.Domains) > 0 {
		domain = v.env.Domains[0]
	}

	v.editing = true
	v.editingNew = true
	v.editBase = models.Task{}
	v.editFocusIdx = fieldTitle
	v.editErr = nil
	v.editTitle.Reset()
	v.editDesc.Reset()
	v.editDeadline.Reset()
	v.editDomain = domain
	v.editPriority = models.PriorityMedium
	v.editBacklog = false
	v.updateEditFocus()
	return textinput.Blink
}

func (v *TaskListView) startEditTask(task models.Task) tea.Cmd {
	v.editing = true
	v.editingNew = false
	v.editBase = task
	v.editFocusIdx = fieldTitle
	v.editErr = nil
	v.editTitle.SetValue(task.Title)
	v.editDesc.SetValue(task.Description)
	v.editDeadline.SetValue(task.Deadline)
	v.editDomain = task.Domain
	v.editPriority = task.Priority
	v.editBacklog = task.IsBacklog
	v.updateEditFocus()
	return textinput.Blink
}

func (v *TaskListView) updateEditFocus() {
	v.editTitle.Blur()
	v.editDesc.Blur()
	v.editDeadline.Blur()

	switch v.editFocusIdx {
	case fieldTitle:
		v.editTitle.Focus()
	case fieldDesc:
		v.editDesc.Focus()
	case fieldDeadline:
		v.editDeadline.Focus()
	}
}

func (v *TaskListView) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Back):
		v.editing = false
		return v, nil

	case msg.String() == "ctrl+s":
		return v, v.saveTask()

	case msg.String() == "shift+tab":
		v.editFocusIdx = (v.editFocusIdx + fieldCount - 1) % fieldCount
		v.updateEditFocus()
		return v, nil

	case key.Matches(msg, v.keys.Tab):
		v.editFocusIdx = (v.editFocusIdx + 1) % fieldCount
		v.updateEditFocus()
		return v, nil
	}

	switch v.editFocusIdx {
	case fieldDomain:
		switch {
		case key.Matches(msg, v.keys.Left):
			v.editDomain = next(v.env.Domains, v.editDomain, -1)
		case key.Matches(msg, v.keys.Right), key.Matches(msg, v.keys.Enter):
			v.editDomain = next(v.env.Domains, v.editDomain, 1)
		}
		return v, nil

	case fieldPriority:
		switch {
		case key.Matches(msg, v.keys.Left):
			v.editPriority = next(models.Priorities, v.editPriority, -1)
		case key.Matches(msg, v.keys.Right), key.Matches(msg, v.keys.Enter):
			v.editPriority = next(models.Priorities, v.editPriority, 1)
		}
		return v, nil

	case fieldBacklog:
		if key.Matches(msg, v.keys.Enter) || key.Matches(msg, v.keys.Toggle) {
			v.editBacklog = !v.editBacklog
		}
		return v, nil

	case fieldSave:
		if key.Matches(msg, v.keys.Enter) {
			return v, v.saveTask()
		}
		return v, nil
	}

	// Enter moves on from single line inputs
	if key.Matches(msg, v.keys.Enter) && v.editFocusIdx != fieldDesc {
		v.editFocusIdx++
		v.updateEditFocus()
		return v, nil
	}

	var cmd tea.Cmd
	switch v.editFocusIdx {
	case fieldTitle:
		v.editTitle, cmd = v.editTitle.Update(msg)
	case fieldDesc:
		v.editDesc, cmd = v.editDesc.Update(msg)
	case fieldDeadline:
		v.editDeadline, cmd = v.editDeadline.Update(msg)
	}
	return v, cmd
}

// formTask applies the form fields to the task being edited
func (v *TaskListView) formTask() models.Task {
	t := v.editBase
	t.Title = strings.TrimSpace(v.editTitle.Value())
	t.Description = strings.TrimSpace(v.editDesc.Value())
	t.Domain = v.editDomain
	t.Priority = v.editPriority
	t.IsBacklog = v.editBacklog
	t.Deadline = strings.TrimSpace(v.editDeadline.Value())
	if t.IsBacklog {
		t.Deadline = ""
	}
	return t
}

// saveTask validates the form and sends it. Invalid input keeps the form
// open with the error shown.
func (v *TaskListView) saveTask() tea.Cmd {
	t := v.formTask()
	in := api.InputFromTask(t)
	if v.editingNew {
		in.ClearDeadline = false
		in.Completed = nil
	}
	if err := api.ValidateCreate(in, v.env.Domains); err != nil {
		v.editErr = err
		return nil
	}

	v.editing = false
	v.editErr = nil
	svc := v.env.Tasks
	if v.editingNew {
		return mutate(svc, func(ctx context.Context) error {
			_, err := svc.CreateTask(ctx, in)
			return err
		})
	}
	id := t.ID
	return mutate(svc, func(ctx context.Context) error {
		_, err := svc.UpdateTask(ctx, id, in)
		return err
	})
}

func (v *TaskListView) renderEditForm() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)

	formTitle := "New Task"
	if !v.editingNew {
		formTitle = "Edit Task"
	}

	fieldStyles := make([]lipgloss.Style, fieldCount)
	for i := range fieldStyles {
		fieldStyles[i] = s.Input
	}
	fieldStyles[v.editFocusIdx] = s.InputFocused
	btnStyle := s.Button
	if v.editFocusIdx == fieldSave {
		btnStyle = s.ButtonFocused
	}

	// Dynamic input width based on content width
	inputWidth := clamp(contentWidth-6, 20, 50)

	domain := lipgloss.NewStyle().Foreground(styles.DomainColor(v.editDomain)).Render(v.editDomain)
	priority := lipgloss.NewStyle().Foreground(styles.PriorityColor(v.editPriority)).Render(string(v.editPriority))
	backlog := "[ ] Backlog (no deadline)"
	if v.editBacklog {
		backlog = "[x] Backlog (no deadline)"
	}
	deadline := v.editDeadline.View()
	if v.editBacklog {
		deadline = s.TitleMuted.Render("not used for backlog tasks")
	}

	parts := []string{
		s.Title.Render(formTitle),
		"",
		"Title:",
		fieldStyles[fieldTitle].Width(inputWidth).Render(v.editTitle.View()),
		"",
		"Description:",
		fieldStyles[fieldDesc].Render(v.editDesc.View()),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top,
			lipgloss.JoinVertical(lipgloss.Left, "Domain:", fieldStyles[fieldDomain].Render("‹ "+domain+" ›")),
			"  ",
			lipgloss.JoinVertical(lipgloss.Left, "Priority:", fieldStyles[fieldPriority].Render("‹ "+priority+" ›")),
		),
		"",
		fieldStyles[fieldBacklog].Render(backlog),
		"",
		"Deadline (YYYY-MM-DD):",
		fieldStyles[fieldDeadline].Width(20).Render(deadline),
		"",
		btnStyle.Render(" Save "),
	}
	if v.editErr != nil {
		parts = append(parts, "", s.Error.Render(v.editErr.Error()))
	}
	parts = append(parts, "",
		s.TitleMuted.Render("Tab: next • ←→: change • Space: toggle • Ctrl+S: save • Esc: cancel"))

	form := lipgloss.JoinVertical(lipgloss.Left, parts...)

	// Center within content width, then center that in terminal
	centered := lipgloss.Place(contentWidth, v.height,
		lipgloss.Center, lipgloss.Center,
		form,
	)
	return styles.CenterView(centered, v.width, v.height)
}
