package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/tgienger/lifeos/internal/api"
	"github.com/tgienger/lifeos/internal/config"
	"github.com/tgienger/lifeos/internal/db"
	"github.com/tgienger/lifeos/internal/models"
	"github.com/tgienger/lifeos/internal/query"
)

type fakeService struct {
	tasks   []models.Task
	created []api.TaskInput
	toggled []string
	deleted []string
}

func (f *fakeService) ListTasks(ctx context.Context) ([]models.Task, error) {
	return append([]models.Task(nil), f.tasks...), nil
}

func (f *fakeService) GetTask(ctx context.Context, id string) (models.Task, error) {
	for _, t := range f.tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return models.Task{}, &api.Error{StatusCode: 404, Message: "Task not found"}
}

func (f *fakeService) CreateTask(ctx context.Context, in api.TaskInput) (models.Task, error) {
	f.created = append(f.created, in)
	return models.Task{ID: "0b7e3c1a-6a43-4a8e-9a0c-2f1d7e6b5c4d", Title: *in.Title}, nil
}

func (f *fakeService) UpdateTask(ctx context.Context, id string, in api.TaskInput) (models.Task, error) {
	return f.GetTask(ctx, id)
}

func (f *fakeService) DeleteTask(ctx context.Context, id string) error {
	if _, err := f.GetTask(ctx, id); err != nil {
		return err
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeService) ToggleTask(ctx context.Context, id string) (models.Task, error) {
	f.toggled = append(f.toggled, id)
	for i := range f.tasks {
		if f.tasks[i].ID == id {
			f.tasks[i].Completed = !f.tasks[i].Completed
			return f.tasks[i], nil
		}
	}
	return models.Task{}, &api.Error{StatusCode: 404, Message: "Task not found"}
}

func sampleTasks() []models.Task {
	created := func(day int) time.Time { return time.Date(2026, 1, day, 8, 0, 0, 0, time.UTC) }
	return []models.Task{
		{ID: "a1111111-0000-0000-0000-000000000000", Title: "Pay rent", Domain: "finance", Priority: models.PriorityHigh, Deadline: "2026-01-20", CreatedAt: created(1)},
		{ID: "b2222222-0000-0000-0000-000000000000", Title: "Write report", Domain: "work", Priority: models.PriorityMedium, Deadline: "2026-01-23", CreatedAt: created(2)},
		{ID: "c3333333-0000-0000-0000-000000000000", Title: "Learn Go generics", Domain: "coding", Priority: models.PriorityLow, IsBacklog: true, CreatedAt: created(3)},
		{ID: "d4444444-0000-0000-0000-000000000000", Title: "Dentist", Domain: "health", Priority: models.PriorityLow, Deadline: "2026-01-22", Completed: true, CreatedAt: created(4)},
	}
}

// harness runs commands against one config file and data directory
type harness struct {
	t       *testing.T
	svc     *fakeService
	cfgPath string
	dataDir string
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	dir := t.TempDir()
	dataDir := filepath.Join(dir, "data")
	cfgPath := filepath.Join(dir, "config.yaml")
	cfg := "api_url: http://backend.test/api\ndata_dir: " + dataDir + "\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o644))

	return &harness{t: t, svc: &fakeService{tasks: sampleTasks()}, cfgPath: cfgPath, dataDir: dataDir}
}

func (h *harness) run(args ...string) (string, error) {
	h.t.Helper()
	var gotURL string
	cmd := newRootCmd(BuildInfo{Version: "1.2.3", Commit: "abc123", Date: "2026-01-01"}, func(cfg *config.Config) api.TaskService {
		gotURL = cfg.APIURL
		return h.svc
	})

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config", h.cfgPath, "--today", "2026-01-22"}, args...))
	err := cmd.ExecuteContext(context.Background())
	if gotURL != "" {
		assert.Equal(h.t, "http://backend.test/api", gotURL)
	}
	return out.String(), err
}

func (h *harness) runJSON(v any, args ...string) {
	h.t.Helper()
	out, err := h.run(append(args, "-o", "json")...)
	require.NoError(h.t, err)
	require.NoError(h.t, json.Unmarshal([]byte(out), v), out)
}

func titles(tasks []models.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.Title
	}
	return out
}

func TestVersion(t *testing.T) {
	h := newHarness(t)
	out, err := h.run("version")
	require.NoError(t, err)
	assert.Contains(t, out, "lifeos 1.2.3")
	assert.Contains(t, out, "commit: abc123")
}

func TestListJSON(t *testing.T) {
	h := newHarness(t)

	var res query.Result
	h.runJSON(&res, "list")
	assert.Equal(t, []string{"Pay rent", "Dentist", "Write report"}, titles(res.Scheduled))
	assert.Equal(t, []string{"Learn Go generics"}, titles(res.Backlog))
}

func TestListFilters(t *testing.T) {
	h := newHarness(t)

	var res query.Result
	h.runJSON(&res, "list", "--completion", "unfinished", "--window", "tomorrow")
	assert.Equal(t, []string{"Write report"}, titles(res.Scheduled))
	assert.Equal(t, []string{"Learn Go generics"}, titles(res.Backlog), "backlog ignores the window")

	h.runJSON(&res, "list", "--domain", "work,coding", "--sort", "priority")
	assert.Equal(t, []string{"Write report"}, titles(res.Scheduled))
	assert.Equal(t, []string{"Learn Go generics"}, titles(res.Backlog))

	h.runJSON(&res, "list", "--search", "RENT")
	assert.Equal(t, []string{"Pay rent"}, titles(res.Scheduled))
	assert.Empty(t, res.Backlog)
}

func TestListRejectsBadFlags(t *testing.T) {
	h := newHarness(t)

	_, err := h.run("list", "--completion", "sometimes")
	assert.ErrorIs(t, err, query.ErrUnknownCompletion)

	_, err = h.run("list", "--window", "someday")
	assert.ErrorIs(t, err, query.ErrUnknownWindow)

	_, err = h.run("list", "--domain", "hobbies")
	assert.ErrorContains(t, err, `unknown domain "hobbies"`)

	_, err = h.run("list", "-o", "xml")
	assert.ErrorContains(t, err, "unknown output format")
}

func TestListTable(t *testing.T) {
	h := newHarness(t)
	out, err := h.run("list")
	require.NoError(t, err)

	assert.Contains(t, out, "Deadline Tasks")
	assert.Contains(t, out, "Backlog")
	assert.Contains(t, out, "Write report")
	assert.Contains(t, out, "OVERDUE")
	assert.Contains(t, out, "Tomorrow")
	assert.Contains(t, out, "4 of 4 tasks shown")
}

func TestInvalidToday(t *testing.T) {
	h := newHarness(t)
	cmd := newRootCmd(BuildInfo{}, func(*config.Config) api.TaskService { return h.svc })
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", h.cfgPath, "--today", "22.01.2026", "list"})

	err := cmd.Execute()
	assert.ErrorIs(t, err, config.ErrInvalidToday)
}

func TestStats(t *testing.T) {
	h := newHarness(t)

	var report statsReport
	h.runJSON(&report, "stats")
	assert.Equal(t, query.Totals{Total: 4, Open: 3, Completed: 1, Backlog: 1, Overdue: 1}, report.Totals)
	assert.Equal(t, []models.DomainStat{
		{Domain: "work", Count: 1},
		{Domain: "finance", Count: 1},
		{Domain: "coding", Count: 1},
	}, report.Domains)

	h.runJSON(&report, "stats", "--all")
	assert.Len(t, report.Domains, len(models.DefaultDomains))
}

func TestAgendaYAML(t *testing.T) {
	h := newHarness(t)
	out, err := h.run("agenda", "-o", "yaml")
	require.NoError(t, err)

	var report agendaReport
	require.NoError(t, yaml.Unmarshal([]byte(out), &report))
	assert.Equal(t, []string{"Write report"}, titles(report.Upcoming))
	assert.Equal(t, []string{"Learn Go generics"}, titles(report.Backlog))
}

func TestAddValidates(t *testing.T) {
	h := newHarness(t)

	_, err := h.run("add", "--deadline", "2026-02-01")
	assert.ErrorIs(t, err, api.ErrTitleRequired)

	_, err = h.run("add", "--title", "Gym")
	assert.ErrorIs(t, err, api.ErrNoDeadlineForNonBacklog)

	_, err = h.run("add", "--title", "Gym", "--backlog", "--deadline", "2026-02-01")
	assert.ErrorIs(t, err, api.ErrBacklogDeadlineConflict)

	_, err = h.run("add", "--title", "Gym", "--deadline", "2026-02-01", "--priority", "urgent")
	assert.ErrorIs(t, err, api.ErrInvalidPriority)

	_, err = h.run("add", "--title", "Gym", "--deadline", "2026-02-01", "--domain", "hobbies")
	assert.ErrorIs(t, err, api.ErrInvalidDomain)

	assert.Empty(t, h.svc.created)
}

func TestAddCreates(t *testing.T) {
	h := newHarness(t)

	out, err := h.run("add", "-t", "Gym", "--domain", "Health", "--deadline", "2026-02-01", "-p", "high")
	require.NoError(t, err)
	assert.Contains(t, out, `Created 0b7e3c1a-6a43-4a8e-9a0c-2f1d7e6b5c4d "Gym"`)

	require.Len(t, h.svc.created, 1)
	in := h.svc.created[0]
	assert.Equal(t, "health", *in.Domain)
	assert.Equal(t, models.PriorityHigh, *in.Priority)
	assert.Equal(t, "2026-02-01", *in.Deadline)
	assert.False(t, *in.IsBacklog)
}

func TestToggleAndDelete(t *testing.T) {
	h := newHarness(t)
	id := h.svc.tasks[1].ID

	out, err := h.run("toggle", id)
	require.NoError(t, err)
	assert.Contains(t, out, `b2222222 "Write report" is done`)

	out, err = h.run("rm", id)
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted "+id)
	assert.Equal(t, []string{id}, h.svc.deleted)

	_, err = h.run("delete", "nope")
	assert.True(t, api.IsNotFound(err))
}

func TestViewsLifecycle(t *testing.T) {
	h := newHarness(t)

	out, err := h.run("views", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No saved views")

	out, err = h.run("views", "save", "focus", "--completion", "unfinished", "--domain", "work")
	require.NoError(t, err)
	assert.Contains(t, out, `Saved view "focus": Unfinished, work`)
	assert.FileExists(t, filepath.Join(h.dataDir, "lifeos.db"))

	var saved []db.SavedView
	h.runJSON(&saved, "views", "list")
	require.Len(t, saved, 1)
	assert.Equal(t, "focus", saved[0].Name)
	assert.Equal(t, []string{"work"}, saved[0].Spec.Domains)

	var res query.Result
	h.runJSON(&res, "list", "--view", "focus")
	assert.Equal(t, []string{"Write report"}, titles(res.Scheduled))
	assert.Empty(t, res.Backlog)

	// Flags override the view
	h.runJSON(&res, "list", "--view", "focus", "--domain", "coding")
	assert.Empty(t, res.Scheduled)
	assert.Equal(t, []string{"Learn Go generics"}, titles(res.Backlog))

	_, err = h.run("list", "--view", "missing")
	assert.ErrorIs(t, err, db.ErrViewNotFound)

	_, err = h.run("views", "delete", "focus")
	require.NoError(t, err)
	_, err = h.run("views", "delete", "focus")
	assert.ErrorIs(t, err, db.ErrViewNotFound)
}

func TestDescribeSpec(t *testing.T) {
	assert.Equal(t, "everything", describeSpec(query.DefaultSpec()))

	spec := query.Spec{
		Completion: query.CompletionFinished,
		Domains:    []string{"work", "study"},
		Window:     query.WindowNextWeek,
		Sort:       query.SortPriority,
		Search:     "exam",
	}
	assert.Equal(t, `Finished, work+study, Next 7 days, "exam", by Priority`, describeSpec(spec))
}
