package views

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tgienger/lifeos/internal/models"
	"github.com/tgienger/lifeos/internal/query"
	"github.com/tgienger/lifeos/internal/ui/keys"
	"github.com/tgienger/lifeos/internal/ui/styles"
)

type domainItem struct {
	stat models.DomainStat
}

func (i domainItem) Title() string       { return i.stat.Domain }
func (i domainItem) Description() string { return fmt.Sprintf("%d open", i.stat.Count) }
func (i domainItem) FilterValue() string { return i.stat.Domain }

type domainDelegate struct {
	styles *styles.Styles
	width  int
}

func (d domainDelegate) Height() int                               { return 1 }
func (d domainDelegate) Spacing() int                              { return 0 }
func (d domainDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }

func (d domainDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(domainItem)
	if !ok {
		return
	}

	dot := lipgloss.NewStyle().Foreground(styles.DomainColor(it.stat.Domain)).Render("●")
	count := fmt.Sprintf("%3d", it.stat.Count)
	if it.stat.Count == 0 {
		count = d.styles.TitleMuted.Render(fmt.Sprintf("%3d", 0))
	}
	name := fmt.Sprintf("%-16s", it.stat.Domain)
	line := dot + " " + name + count

	style := d.styles.ListItem
	if index == m.Index() {
		style = d.styles.ListSelected
	}
	fmt.Fprint(w, style.Width(max(d.width, 20)).Render(line))
}

// DashboardView shows open tasks per domain next to the upcoming and
// backlog widgets
type DashboardView struct {
	env      Env
	list     list.Model
	delegate *domainDelegate
	styles   *styles.Styles
	keys     keys.KeyMap
	width    int
	height   int
	loaded   bool
	err      error

	totals   query.Totals
	upcoming []models.Task
	backlog  []models.Task

	// Help popup (shown with ? at narrow widths)
	showHelpPopup bool
}

func NewDashboardView(env Env) *DashboardView {
	s := styles.NewStyles()

	delegate := &domainDelegate{styles: s, width: 28}

	l := list.New([]list.Item{}, delegate, 0, 0)
	l.Title = "Domains"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	l.Styles.Title = s.WidgetTitle

	return &DashboardView{
		env:      env,
		list:     l,
		delegate: delegate,
		styles:   s,
		keys:     keys.DefaultKeyMap(),
	}
}

func (v *DashboardView) Init() tea.Cmd {
	return v.loadTasks
}

func (v *DashboardView) loadTasks() tea.Msg {
	return fetchTasks(v.env.Tasks)
}

// setTasks derives every widget from a fresh snapshot
func (v *DashboardView) setTasks(tasks []models.Task) {
	ref := v.env.ref()
	v.totals = query.Summarize(tasks, ref)
	v.upcoming = query.Upcoming(tasks, ref, query.WidgetLimit)
	v.backlog = query.BacklogPreview(tasks, query.WidgetLimit)

	stats := query.DomainStats(tasks, v.env.Domains)
	items := make([]list.Item, len(stats))
	for i, st := range stats {
		items[i] = domainItem{stat: st}
	}
	v.list.SetItems(items)
	v.loaded = true
	v.err = nil
}

func (v *DashboardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.list.SetSize(v.delegate.width+4, max(msg.Height-8, 5))
		return v, nil

	case tasksLoadedMsg:
		v.setTasks(msg.tasks)
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

		switch {
		case key.Matches(msg, v.keys.Quit):
			return v, tea.Quit
		case key.Matches(msg, v.keys.Back):
			return v, nil
		case key.Matches(msg, v.keys.Help):
			v.showHelpPopup = true
			return v, nil
		case key.Matches(msg, v.keys.Refresh):
			return v, v.loadTasks
		case key.Matches(msg, v.keys.Tab):
			return v, func() tea.Msg { return OpenTasks{} }
		case key.Matches(msg, v.keys.Enter):
			if item, ok := v.list.SelectedItem().(domainItem); ok {
				return v, func() tea.Msg {
					return OpenTasks{Domain: item.stat.Domain}
				}
			}
			return v, nil
		}
	}

	var cmd tea.Cmd
	v.list, cmd = v.list.Update(msg)
	return v, cmd
}

// View renders the view
func (v *DashboardView) View() string {
	if v.showHelpPopup {
		return v.renderHelpPopup()
	}

	if !v.loaded {
		return v.styles.TitleMuted.Render("Loading...")
	}

	s := v.styles
	contentWidth := styles.ContentWidth(v.width)

	header := lipgloss.JoinVertical(lipgloss.Left,
		s.Title.Render("lifeos"),
		v.renderTotals(),
	)

	widgetWidth := clamp(contentWidth-v.delegate.width-10, 30, 70)
	isNarrow := contentWidth < v.delegate.width+40

	widgets := lipgloss.JoinVertical(lipgloss.Left,
		v.renderWidget(fmt.Sprintf("Upcoming (%d days)", query.UpcomingDays), v.upcoming, widgetWidth, "Nothing due this week"),
		v.renderWidget("Backlog", v.backlog, widgetWidth, "Backlog is empty"),
	)

	var body string
	if isNarrow {
		body = lipgloss.JoinVertical(lipgloss.Left, v.list.View(), "", widgets)
	} else {
		body = lipgloss.JoinHorizontal(lipgloss.Top, v.list.View(), "  ", widgets)
	}

	parts := []string{header, "", body, ""}
	if v.err != nil {
		parts = append(parts, s.Error.Render("Error: "+v.err.Error()))
	}
	parts = append(parts, v.renderHelp())

	content := lipgloss.NewStyle().Padding(1, 2).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
	return styles.CenterView(content, v.width, v.height)
}

func (v *DashboardView) renderTotals() string {
	s := v.styles
	t := v.totals
	line := fmt.Sprintf("%d open · %d done · %d backlog", t.Open, t.Completed, t.Backlog)
	urgent := ""
	if t.Overdue > 0 || t.DueToday > 0 {
		urgent = "  " + styles.DeadlineStyle(query.Urgency{Critical: true}).
			Render(fmt.Sprintf("%d overdue · %d due today", t.Overdue, t.DueToday))
	}
	return s.TitleMuted.Render(line) + urgent
}

func (v *DashboardView) renderWidget(title string, tasks []models.Task, width int, empty string) string {
	s := v.styles
	ref := v.env.ref()

	rows := []string{s.WidgetTitle.Render(fmt.Sprintf("%s (%d)", title, len(tasks)))}
	if len(tasks) == 0 {
		rows = append(rows, s.TitleMuted.Render(empty))
	}
	for _, t := range tasks {
		rows = append(rows, renderTaskRow(s, t, ref, width, false))
	}
	return s.Widget.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (v *DashboardView) renderHelp() string {
	contentWidth := styles.ContentWidth(v.width)
	// At narrow widths, show hint to press ? for help
	if contentWidth > 0 && contentWidth < 50 {
		return v.styles.Help.Render(v.styles.HelpKey.Render("?") + " help")
	}
	return v.styles.Help.Render(
		fmt.Sprintf("%s open domain • %s all tasks • %s refresh • %s quit",
			v.styles.HelpKey.Render("↵"),
			v.styles.HelpKey.Render("tab"),
			v.styles.HelpKey.Render("r"),
			v.styles.HelpKey.Render("q"),
		),
	)
}

func (v *DashboardView) renderHelpPopup() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)

	helpItems := []string{
		s.HelpKey.Render("↑/↓") + "    select domain",
		s.HelpKey.Render("↵") + "      tasks in domain",
		s.HelpKey.Render("tab") + "    all tasks",
		s.HelpKey.Render("r") + "      refresh",
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
