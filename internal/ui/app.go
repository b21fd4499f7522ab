package ui

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tgienger/lifeos/internal/api"
	"github.com/tgienger/lifeos/internal/config"
	"github.com/tgienger/lifeos/internal/db"
	"github.com/tgienger/lifeos/internal/query"
	"github.com/tgienger/lifeos/internal/ui/views"
)

// Currently active view
type View int

const (
	ViewDashboard View = iota
	ViewTasks
)

const (
	lastViewDashboard = "dashboard"
	lastViewTasks     = "tasks"
)

type App struct {
	db          *db.DB
	env         views.Env
	currentView View
	dashboard   *views.DashboardView
	taskList    *views.TaskListView
	width       int
	height      int
}

// Creates a new application
func NewApp(cfg *config.Config, store *db.DB, tasks api.TaskService) *App {
	env := views.Env{
		Tasks:   tasks,
		Store:   store,
		Domains: cfg.Domains,
		Now:     cfg.Now,
	}
	return &App{
		db:          store,
		env:         env,
		currentView: ViewDashboard,
		dashboard:   views.NewDashboardView(env),
	}
}

// CurrentView reports which view is on screen
func (a *App) CurrentView() View {
	return a.currentView
}

func (a *App) Init() tea.Cmd {
	// Reopen the task manager if that is where the user left
	last, err := a.db.GetSetting(db.SettingLastView)
	if err != nil {
		log.Printf("reading last view: %v", err)
	}
	if last == lastViewTasks {
		return a.openTasks("")
	}
	return a.dashboard.Init()
}

func (a *App) openTasks(domain string) tea.Cmd {
	spec, err := a.db.LoadSpec()
	if err != nil {
		log.Printf("loading filter: %v", err)
	}
	if domain != "" {
		spec.Domains = []string{domain}
	}

	a.currentView = ViewTasks
	a.taskList = views.NewTaskListView(a.env, spec)

	// Save as last opened view
	a.setSetting(db.SettingLastView, lastViewTasks)
	if domain != "" {
		a.saveSpec(spec)
	}

	// Initialize task list with window size
	return tea.Batch(
		a.taskList.Init(),
		func() tea.Msg {
			return tea.WindowSizeMsg{Width: a.width, Height: a.height}
		},
	)
}

func (a *App) setSetting(key, value string) {
	if err := a.db.SetSetting(key, value); err != nil {
		log.Printf("saving %s: %v", key, err)
	}
}

func (a *App) saveSpec(spec query.Spec) {
	if err := a.db.SaveSpec(spec); err != nil {
		log.Printf("saving filter: %v", err)
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// Always update dashboard size since it persists
		a.dashboard.Update(msg)

	case views.OpenTasks:
		return a, a.openTasks(msg.Domain)

	case views.SpecChanged:
		a.saveSpec(msg.Spec)
		return a, nil

	case views.BackToDashboard:
		a.currentView = ViewDashboard
		a.setSetting(db.SettingLastView, lastViewDashboard)
		return a, tea.Batch(
			a.dashboard.Init(),
			func() tea.Msg {
				return tea.WindowSizeMsg{Width: a.width, Height: a.height}
			},
		)
	}

	var cmd tea.Cmd
	switch a.currentView {
	case ViewDashboard:
		_, cmd = a.dashboard.Update(msg)
	case ViewTasks:
		_, cmd = a.taskList.Update(msg)
	}

	return a, cmd
}

func (a *App) View() string {
	switch a.currentView {
	case ViewTasks:
		if a.taskList != nil {
			return a.taskList.View()
		}
	}
	return a.dashboard.View()
}
