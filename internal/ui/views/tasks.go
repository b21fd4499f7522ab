package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tgienger/lifeos/internal/db"
	"github.com/tgienger/lifeos/internal/models"
	"github.com/tgienger/lifeos/internal/query"
	"github.com/tgienger/lifeos/internal/ui/keys"
	"github.com/tgienger/lifeos/internal/ui/styles"
)

// FocusArea represents which part of the UI has focus
type FocusArea int

const (
	FocusTaskList FocusArea = iota
	FocusSearchInput
)

// TaskListView is the task manager: a filter bar over the deadline and
// backlog sections, plus the forms that change tasks
type TaskListView struct {
	env    Env
	tasks  []models.Task
	spec   query.Spec
	result query.Result
	rows   []models.Task // scheduled then backlog, in display order
	totals query.Totals
	styles *styles.Styles
	keys   keys.KeyMap

	width  int
	height int
	loaded bool
	err    error
	status string

	// UI state
	focus       FocusArea
	cursor      int
	scrollY     int
	searchInput textinput.Model

	// Domain multi-select
	domainDropdownOpen bool
	domainCursor       int

	// Task creation/editing
	editing      bool
	editingNew   bool
	editBase     models.Task
	editTitle    textinput.Model
	editDesc     textarea.Model
	editDeadline textinput.Model
	editDomain   string
	editPriority models.Priority
	editBacklog  bool
	editFocusIdx int // see the field* constants
	editErr      error

	// Task view mode (read-only detail view)
	viewingTask bool
	viewingID   string

	// Delete confirmation
	confirmingDelete bool
	deleteTargetID   string
	deleteTargetName string

	// Saved views
	savingView   bool
	viewName     textinput.Model
	choosingView bool
	savedViews   []db.SavedView
	viewCursor   int

	// Help popup (shown with ? at narrow widths)
	showHelpPopup bool
}

// NewTaskListView creates a task manager starting from spec
func NewTaskListView(env Env, spec query.Spec) *TaskListView {
	s := styles.NewStyles()

	search := textinput.New()
	search.Placeholder = "Search..."
	search.CharLimit = 100
	search.SetValue(spec.Search)

	editTitle := textinput.New()
	editTitle.Placeholder = "Task title"
	editTitle.CharLimit = 200

	editDesc := textarea.New()
	editDesc.Placeholder = "Description"
	editDesc.CharLimit = 1000
	editDesc.SetWidth(50)
	editDesc.SetHeight(3)
	editDesc.ShowLineNumbers = false

	editDeadline := textinput.New()
	editDeadline.Placeholder = query.DateLayout
	editDeadline.CharLimit = 10

	viewName := textinput.New()
	viewName.Placeholder = "View name"
	viewName.CharLimit = 60

	return &TaskListView{
		env:          env,
		spec:         spec,
		styles:       s,
		keys:         keys.DefaultKeyMap(),
		focus:        FocusTaskList,
		searchInput:  search,
		editTitle:    editTitle,
		editDesc:     editDesc,
		editDeadline: editDeadline,
		viewName:     viewName,
	}
}

// Spec returns the active filter selection
func (v *TaskListView) Spec() query.Spec {
	return v.spec
}

// Init initializes the view
func (v *TaskListView) Init() tea.Cmd {
	return v.loadTasks
}

func (v *TaskListView) loadTasks() tea.Msg {
	return fetchTasks(v.env.Tasks)
}

// derive recomputes everything shown from the snapshot and the spec
func (v *TaskListView) derive() {
	ref := v.env.ref()
	v.result = query.Apply(v.tasks, v.spec, ref)
	v.rows = make([]models.Task, 0, v.result.Len())
	v.rows = append(v.rows, v.result.Scheduled...)
	v.rows = append(v.rows, v.result.Backlog...)
	v.totals = query.Summarize(v.tasks, ref)
	if v.cursor >= len(v.rows) {
		v.cursor = max(0, len(v.rows)-1)
	}
}

// setSpec applies a new filter selection and asks for it to be persisted
func (v *TaskListView) setSpec(spec query.Spec) tea.Cmd {
	v.spec = spec
	v.derive()
	return func() tea.Msg { return SpecChanged{Spec: spec} }
}

func (v *TaskListView) selected() (models.Task, bool) {
	if v.cursor < 0 || v.cursor >= len(v.rows) {
		return models.Task{}, false
	}
	return v.rows[v.cursor], true
}

func (v *TaskListView) findTask(id string) (models.Task, bool) {
	for _, t := range v.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return models.Task{}, false
}

// Update handles messages
func (v *TaskListView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		// Update textarea widths dynamically based on content width
		contentWidth := styles.ContentWidth(v.width)
		inputWidth := clamp(contentWidth-10, 20, 50)
		v.editDesc.SetWidth(inputWidth)
		return v, nil

	case tasksLoadedMsg:
		v.tasks = msg.tasks
		v.loaded = true
		v.err = nil
		v.derive()
		// The viewed task may have been deleted in the meantime
		if v.viewingTask {
			if _, ok := v.findTask(v.viewingID); !ok {
				v.viewingTask = false
			}
		}
		return v, nil

	case errMsg:
		v.err = msg.err
		v.loaded = true
		return v, nil

	case tea.KeyMsg:
		// Handle help popup first - any key closes it
		if v.showHelpPopup {
			v.showHelpPopup = false
			return v, nil
		}

		if v.confirmingDelete {
			return v.updateConfirmDelete(msg)
		}

		if v.editing {
			return v.updateEditing(msg)
		}

		if v.savingView {
			return v.updateSavingView(msg)
		}

		if v.choosingView {
			return v.updateChoosingView(msg)
		}

		if v.viewingTask {
			return v.updateViewingTask(msg)
		}

		if v.domainDropdownOpen {
			return v.updateDomainDropdown(msg)
		}

		return v.updateNormal(msg)
	}

	return v, nil
}

func (v *TaskListView) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Handle search input typing first - don't process hotkeys while typing
	if v.focus == FocusSearchInput {
		switch {
		case key.Matches(msg, v.keys.Back), key.Matches(msg, v.keys.Enter), key.Matches(msg, v.keys.Tab):
			v.searchInput.Blur()
			v.focus = FocusTaskList
			return v, v.setSpec(v.spec)
		default:
			var cmd tea.Cmd
			v.searchInput, cmd = v.searchInput.Update(msg)
			v.spec.Search = v.searchInput.Value()
			v.derive()
			return v, cmd
		}
	}

	v.status = ""

	switch {
	case key.Matches(msg, v.keys.Quit):
		return v, tea.Quit

	case key.Matches(msg, v.keys.Back):
		return v, func() tea.Msg { return BackToDashboard{} }

	case key.Matches(msg, v.keys.Tab), key.Matches(msg, v.keys.Search):
		v.focus = FocusSearchInput
		v.searchInput.Focus()
		return v, textinput.Blink

	case key.Matches(msg, v.keys.Up):
		if v.cursor > 0 {
			v.cursor--
		}
		return v, nil

	case key.Matches(msg, v.keys.Down):
		if v.cursor < len(v.rows)-1 {
			v.cursor++
		}
		return v, nil

	case key.Matches(msg, v.keys.Enter):
		if t, ok := v.selected(); ok {
			v.viewingTask = true
			v.viewingID = t.ID
		}
		return v, nil

	case key.Matches(msg, v.keys.New):
		return v, v.startNewTask()

	case key.Matches(msg, v.keys.Edit):
		if t, ok := v.selected(); ok {
			return v, v.startEditTask(t)
		}
		return v, nil

	case key.Matches(msg, v.keys.Delete):
		if t, ok := v.selected(); ok {
			v.confirmDelete(t)
		}
		return v, nil

	case key.Matches(msg, v.keys.Toggle):
		if t, ok := v.selected(); ok {
			return v, v.toggleTask(t)
		}
		return v, nil

	case key.Matches(msg, v.keys.Completion):
		spec := v.spec
		spec.Completion = next(query.Completions, spec.Completion, 1)
		return v, v.setSpec(spec)

	case key.Matches(msg, v.keys.Window):
		spec := v.spec
		spec.Window = next(query.Windows, spec.Window, 1)
		return v, v.setSpec(spec)

	case key.Matches(msg, v.keys.Sort):
		spec := v.spec
		spec.Sort = next(query.SortModes, spec.Sort, 1)
		return v, v.setSpec(spec)

	case key.Matches(msg, v.keys.Domains):
		v.domainDropdownOpen = true
		return v, nil

	case key.Matches(msg, v.keys.Reset):
		v.searchInput.SetValue("")
		v.status = "Filters reset"
		return v, v.setSpec(query.DefaultSpec())

	case key.Matches(msg, v.keys.SaveView):
		v.savingView = true
		v.viewName.Reset()
		v.viewName.Focus()
		return v, textinput.Blink

	case key.Matches(msg, v.keys.Views):
		v.choosingView = true
		v.viewCursor = 0
		v.reloadViews()
		return v, nil

	case key.Matches(msg, v.keys.Refresh):
		return v, v.loadTasks

	case key.Matches(msg, v.keys.Help):
		v.showHelpPopup = true
		return v, nil
	}

	return v, nil
}

func (v *TaskListView) updateDomainDropdown(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Back), key.Matches(msg, v.keys.Domains):
		v.domainDropdownOpen = false
		return v, nil
	case key.Matches(msg, v.keys.Up):
		if v.domainCursor > 0 {
			v.domainCursor--
		}
		return v, nil
	case key.Matches(msg, v.keys.Down):
		if v.domainCursor < len(v.env.Domains)-1 {
			v.domainCursor++
		}
		return v, nil
	case key.Matches(msg, v.keys.Enter), key.Matches(msg, v.keys.Toggle):
		if v.domainCursor < len(v.env.Domains) {
			return v, v.setSpec(v.spec.ToggleDomain(v.env.Domains[v.domainCursor]))
		}
		return v, nil
	}
	return v, nil
}

func (v *TaskListView) updateViewingTask(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	task, ok := v.findTask(v.viewingID)
	if !ok {
		v.viewingTask = false
		return v, nil
	}

	switch {
	case key.Matches(msg, v.keys.Back):
		v.viewingTask = false
		return v, nil
	case key.Matches(msg, v.keys.Quit):
		return v, tea.Quit
	case key.Matches(msg, v.keys.Edit):
		return v, v.startEditTask(task)
	case key.Matches(msg, v.keys.Delete):
		v.confirmDelete(task)
		return v, nil
	case key.Matches(msg, v.keys.Toggle):
		return v, v.toggleTask(task)
	}
	return v, nil
}

func (v *TaskListView) confirmDelete(t models.Task) {
	v.confirmingDelete = true
	v.deleteTargetID = t.ID
	v.deleteTargetName = t.Title
}

func (v *TaskListView) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		v.confirmingDelete = false
		v.viewingTask = false
		svc, id := v.env.Tasks, v.deleteTargetID
		return v, mutate(svc, func(ctx context.Context) error {
			return svc.DeleteTask(ctx, id)
		})
	case "n", "N", "esc":
		v.confirmingDelete = false
		return v, nil
	}
	return v, nil
}

func (v *TaskListView) toggleTask(t models.Task) tea.Cmd {
	svc, id := v.env.Tasks, t.ID
	return mutate(svc, func(ctx context.Context) error {
		_, err := svc.ToggleTask(ctx, id)
		return err
	})
}

func (v *TaskListView) updateSavingView(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Back):
		v.savingView = false
		v.viewName.Blur()
		return v, nil
	case key.Matches(msg, v.keys.Enter), msg.String() == "ctrl+s":
		saved, err := v.env.Store.SaveView(v.viewName.Value(), v.spec)
		if err != nil {
			v.err = err
			return v, nil
		}
		v.savingView = false
		v.viewName.Blur()
		v.err = nil
		v.status = fmt.Sprintf("Saved view %q", saved.Name)
		return v, nil
	}

	var cmd tea.Cmd
	v.viewName, cmd = v.viewName.Update(msg)
	return v, cmd
}

func (v *TaskListView) reloadViews() {
	saved, err := v.env.Store.ListViews()
	if err != nil {
		v.err = err
		return
	}
	v.savedViews = saved
	if v.viewCursor >= len(v.savedViews) {
		v.viewCursor = max(0, len(v.savedViews)-1)
	}
}

func (v *TaskListView) updateChoosingView(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Back), key.Matches(msg, v.keys.Views):
		v.choosingView = false
		return v, nil
	case key.Matches(msg, v.keys.Up):
		if v.viewCursor > 0 {
			v.viewCursor--
		}
		return v, nil
	case key.Matches(msg, v.keys.Down):
		if v.viewCursor < len(v.savedViews)-1 {
			v.viewCursor++
		}
		return v, nil
	case key.Matches(msg, v.keys.Enter):
		if v.viewCursor >= len(v.savedViews) {
			return v, nil
		}
		chosen := v.savedViews[v.viewCursor]
		v.choosingView = false
		v.searchInput.SetValue(chosen.Spec.Search)
		v.cursor = 0
		v.scrollY = 0
		v.status = fmt.Sprintf("Applied view %q", chosen.Name)
		return v, v.setSpec(chosen.Spec)
	case key.Matches(msg, v.keys.Delete):
		if v.viewCursor >= len(v.savedViews) {
			return v, nil
		}
		name := v.savedViews[v.viewCursor].Name
		if err := v.env.Store.DeleteView(name); err != nil {
			v.err = err
			return v, nil
		}
		v.status = fmt.Sprintf("Deleted view %q", name)
		v.reloadViews()
		return v, nil
	}
	return v, nil
}

// View renders the view
func (v *TaskListView) View() string {
	if v.showHelpPopup {
		return v.renderHelpPopup()
	}

	if v.confirmingDelete {
		return v.renderDeleteConfirm()
	}

	if v.editing {
		return v.renderEditForm()
	}

	if v.savingView {
		return v.renderSaveView()
	}

	if v.choosingView {
		return v.renderViewPicker()
	}

	if v.viewingTask {
		return v.renderTaskView()
	}

	if !v.loaded {
		return v.styles.TitleMuted.Render("Loading...")
	}

	var b strings.Builder

	b.WriteString(v.renderHeader())
	b.WriteString("\n\n")

	b.WriteString(v.renderTaskList())
	b.WriteString("\n\n")

	b.WriteString(v.renderStatus())
	b.WriteString("\n")
	b.WriteString(v.renderHelp())

	return styles.CenterView(b.String(), v.width, v.height)
}

func (v *TaskListView) renderHeader() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)
	isNarrow := contentWidth < 60

	// Search input - dynamic width
	searchStyle := s.Input
	if v.focus == FocusSearchInput {
		searchStyle = s.InputFocused
	}
	searchWidth := clamp(contentWidth-8, 10, 30)
	searchBox := searchStyle.Width(searchWidth).Render(v.searchInput.View())

	field := func(name, value string, active bool) string {
		valueStyle := s.FilterValue
		if active {
			valueStyle = s.FilterActive
		}
		return s.FilterLabel.Render(name+" ") + valueStyle.Render(value)
	}
	completion := field("Status", v.spec.Completion.Label(), v.spec.Completion != query.CompletionAll)
	window := field("Due", v.spec.Window.Label(), v.spec.Window != query.WindowAll)
	order := field("Sort", v.spec.Sort.Label(), v.spec.Sort != query.SortDefault)

	var selectors string
	if isNarrow {
		selectors = lipgloss.JoinVertical(lipgloss.Left, completion, window, order)
	} else {
		selectors = lipgloss.JoinHorizontal(lipgloss.Center, completion, "   ", window, "   ", order)
	}

	title := s.Title.Render("Tasks")
	if len(v.spec.Domains) == 1 {
		title = s.Title.Render("Tasks · " + v.spec.Domains[0])
	}

	header := lipgloss.JoinVertical(lipgloss.Left,
		title,
		lipgloss.JoinHorizontal(lipgloss.Center, searchBox, "  ", selectors),
		v.renderDomainChips(contentWidth),
	)

	// Domain dropdown if open
	if v.domainDropdownOpen {
		header += "\n" + v.renderDomainDropdown()
	}
	return header
}

func (v *TaskListView) renderDomainChips(width int) string {
	s := v.styles
	chips := []string{s.FilterLabel.Render("Domains")}
	if len(v.spec.Domains) == 0 {
		chips = append(chips, s.FilterValue.Render("all"))
	}
	for _, d := range v.env.Domains {
		if v.spec.HasDomain(d) {
			chips = append(chips, s.ChipActive.Render(d))
		}
	}
	return lipgloss.NewStyle().Width(max(width-4, 20)).Render(strings.Join(chips, " "))
}

func (v *TaskListView) renderDomainDropdown() string {
	s := v.styles
	var items []string
	for i, d := range v.env.Domains {
		itemStyle := s.ListItem
		if i == v.domainCursor {
			itemStyle = s.ListSelected
		}
		check := "[ ]"
		if v.spec.HasDomain(d) {
			check = "[x]"
		}
		dot := lipgloss.NewStyle().Foreground(styles.DomainColor(d)).Render("●")
		items = append(items, itemStyle.Render(check+" "+dot+" "+d))
	}
	items = append(items, "", s.TitleMuted.Render("Space/↵: toggle • Esc: done"))

	content := lipgloss.JoinVertical(lipgloss.Left, items...)
	return s.FilterBar.Render(content)
}

func (v *TaskListView) renderTaskList() string {
	s := v.styles
	ref := v.env.ref()
	width := max(styles.ContentWidth(v.width)-4, 20)

	var (
		lines      []string
		cursorLine int
		idx        int
	)
	section := func(title string, tasks []models.Task, empty string) {
		lines = append(lines, s.Section.Render(fmt.Sprintf("%s (%d)", title, len(tasks))))
		if len(tasks) == 0 {
			lines = append(lines, s.TitleMuted.Render("  "+empty))
		}
		for _, t := range tasks {
			if idx == v.cursor {
				cursorLine = len(lines)
			}
			lines = append(lines, renderTaskRow(s, t, ref, width, idx == v.cursor && v.focus == FocusTaskList))
			idx++
		}
	}

	if len(v.tasks) == 0 {
		return s.TitleMuted.Render("No tasks. Press 'n' to create one.")
	}

	section("Deadline Tasks", v.result.Scheduled, "No deadline tasks match the filter")
	lines = append(lines, "")
	section("Backlog", v.result.Backlog, "No backlog tasks match the filter")

	// Keep the cursor row on screen
	available := max(v.height-14, 3)
	if cursorLine < v.scrollY {
		v.scrollY = cursorLine
	} else if cursorLine >= v.scrollY+available {
		v.scrollY = cursorLine - available + 1
	}
	start := clamp(v.scrollY, 0, max(len(lines)-available, 0))
	end := min(start+available, len(lines))

	return lipgloss.JoinVertical(lipgloss.Left, lines[start:end]...)
}

func (v *TaskListView) renderStatus() string {
	s := v.styles
	if v.err != nil {
		return s.Error.Render("Error: " + v.err.Error())
	}
	t := v.totals
	line := fmt.Sprintf("%d of %d shown · %d open · %d done", v.result.Len(), t.Total, t.Open, t.Completed)
	if t.Overdue > 0 || t.DueToday > 0 {
		line += " · " + styles.DeadlineStyle(query.Urgency{Critical: true}).
			Render(fmt.Sprintf("%d overdue, %d due today", t.Overdue, t.DueToday))
	}
	if v.status != "" {
		line += "  " + s.FilterActive.Render(v.status)
	}
	return s.StatusBar.Render(line)
}

func (v *TaskListView) renderHelp() string {
	contentWidth := styles.ContentWidth(v.width)
	// At narrow widths, show hint to press ? for help
	if contentWidth > 0 && contentWidth < 50 {
		return v.styles.Help.Render(v.styles.HelpKey.Render("?") + " help")
	}

	return v.styles.Help.Render(
		fmt.Sprintf("%s view • %s new • %s edit • %s done • %s del • %s search • %s/%s/%s filter • %s domains • %s views • %s back • %s more",
			v.styles.HelpKey.Render("↵"),
			v.styles.HelpKey.Render("n"),
			v.styles.HelpKey.Render("e"),
			v.styles.HelpKey.Render("x"),
			v.styles.HelpKey.Render("d"),
			v.styles.HelpKey.Render("/"),
			v.styles.HelpKey.Render("c"),
			v.styles.HelpKey.Render("w"),
			v.styles.HelpKey.Render("s"),
			v.styles.HelpKey.Render("f"),
			v.styles.HelpKey.Render("v"),
			v.styles.HelpKey.Render("esc"),
			v.styles.HelpKey.Render("?"),
		),
	)
}

func (v *TaskListView) renderHelpPopup() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)

	helpItems := []string{
		s.HelpKey.Render("↵") + "      view task",
		s.HelpKey.Render("n") + "      new task",
		s.HelpKey.Render("e") + "      edit task",
		s.HelpKey.Render("x") + "      mark done / open",
		s.HelpKey.Render("d") + "      delete task",
		s.HelpKey.Render("/") + "      search",
		s.HelpKey.Render("c") + "      cycle status filter",
		s.HelpKey.Render("w") + "      cycle deadline window",
		s.HelpKey.Render("s") + "      cycle sort order",
		s.HelpKey.Render("f") + "      choose domains",
		s.HelpKey.Render("R") + "      reset filters",
		s.HelpKey.Render("S") + "      save filter as view",
		s.HelpKey.Render("v") + "      saved views",
		s.HelpKey.Render("r") + "      refresh",
		s.HelpKey.Render("esc") + "    dashboard",
		s.HelpKey.Render("q") + "      quit",
		"",
		s.TitleMuted.Render("Press any key to close"),
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		append([]string{s.Title.Render("Keyboard Shortcuts"), ""}, helpItems...)...,
	)

	centered := lipgloss.Place(contentWidth, v.height,
		lipgloss.Center, lipgloss.Center,
		s.FilterBar.Render(content),
	)
	return styles.CenterView(centered, v.width, v.height)
}

func (v *TaskListView) renderDeleteConfirm() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)

	content := lipgloss.JoinVertical(lipgloss.Center,
		s.Title.Foreground(styles.Current.Error).Render("Delete Task?"),
		"",
		s.TitleMuted.Render(fmt.Sprintf("Are you sure you want to delete %q?", v.deleteTargetName)),
		"",
		lipgloss.JoinHorizontal(lipgloss.Center,
			s.ButtonPrimary.Render(" Y - Yes "),
			"  ",
			s.Button.Render(" N - No "),
		),
	)

	centered := lipgloss.Place(contentWidth, v.height,
		lipgloss.Center, lipgloss.Center,
		content,
	)
	return styles.CenterView(centered, v.width, v.height)
}

func (v *TaskListView) renderSaveView() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)
	inputWidth := clamp(contentWidth-6, 20, 40)

	parts := []string{
		s.Title.Render("Save View"),
		"",
		s.TitleMuted.Render(fmt.Sprintf("%s · %s · %s", v.spec.Completion.Label(), v.spec.Window.Label(), v.spec.Sort.Label())),
		"",
		"Name:",
		s.InputFocused.Width(inputWidth).Render(v.viewName.View()),
	}
	if v.err != nil {
		parts = append(parts, "", s.Error.Render(v.err.Error()))
	}
	parts = append(parts, "", s.TitleMuted.Render("↵: save • Esc: cancel"))

	centered := lipgloss.Place(contentWidth, v.height,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Left, parts...),
	)
	return styles.CenterView(centered, v.width, v.height)
}

func (v *TaskListView) renderViewPicker() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)

	var items []string
	if len(v.savedViews) == 0 {
		items = append(items, s.TitleMuted.Render("No saved views. Press 'S' in the task list to save one."))
	}
	for i, sv := range v.savedViews {
		itemStyle := s.ListItem
		if i == v.viewCursor {
			itemStyle = s.ListSelected
		}
		items = append(items, itemStyle.Render(sv.Name))
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		s.Title.Render("Saved Views"),
		"",
		lipgloss.JoinVertical(lipgloss.Left, items...),
		"",
		s.TitleMuted.Render("↵: apply • d: delete • Esc: close"),
	)

	centered := lipgloss.Place(contentWidth, v.height,
		lipgloss.Center, lipgloss.Center,
		s.FilterBar.Render(content),
	)
	return styles.CenterView(centered, v.width, v.height)
}

func (v *TaskListView) renderTaskView() string {
	task, ok := v.findTask(v.viewingID)
	if !ok {
		return ""
	}

	s := v.styles
	maxContentWidth := styles.ContentWidth(v.width)

	status := "Open"
	if task.Completed {
		status = "Done"
	}

	deadline := s.TitleMuted.Render("None")
	if task.IsBacklog {
		deadline = s.TitleMuted.Render("Backlog")
	} else if task.HasDeadline() {
		deadline = query.FormatDate(task.Deadline)
		if label, u, ok := query.DeadlineLabel(task, v.env.ref()); ok {
			deadline += "  " + styles.DeadlineStyle(u).Render(label)
		}
	}

	descText := task.Description
	if descText == "" {
		descText = s.TitleMuted.Render("No description")
	}

	titleStyle := s.Title.MarginBottom(1)
	labelStyle := s.TitleMuted
	textWidth := clamp(maxContentWidth-10, 20, 70)

	helpText := s.Help.Render(
		fmt.Sprintf("%s edit • %s done • %s delete • %s back",
			s.HelpKey.Render("e"),
			s.HelpKey.Render("x"),
			s.HelpKey.Render("d"),
			s.HelpKey.Render("esc"),
		),
	)

	content := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(task.Title),
		labelStyle.Render("Status"),
		status,
		"",
		labelStyle.Render("Domain"),
		lipgloss.NewStyle().Foreground(styles.DomainColor(task.Domain)).Render(task.Domain),
		"",
		labelStyle.Render("Priority"),
		lipgloss.NewStyle().Foreground(styles.PriorityColor(task.Priority)).Render(string(task.Priority)),
		"",
		labelStyle.Render("Deadline"),
		deadline,
		"",
		labelStyle.Render("Description"),
		lipgloss.NewStyle().Width(textWidth).Render(descText),
		"",
		labelStyle.Render("Created"),
		task.CreatedAt.Local().Format("Jan 2, 2006 3:04 PM"),
		"",
		helpText,
	)

	// Return with padding, not centered vertically, but horizontally centered if wide
	padded := lipgloss.NewStyle().Padding(1, 2).Render(content)
	return styles.CenterView(padded, v.width, v.height)
}
