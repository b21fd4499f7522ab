package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tgienger/lifeos/internal/query"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	d, err := New(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { d.Close() })
	return d
}

func TestNewCreatesDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "lifeos")

	d, err := New(dir)
	require.NoError(t, err)
	defer d.Close()

	assert.FileExists(t, filepath.Join(dir, fileName))
}

func TestNewIsIdempotent(t *testing.T) {
	dir := t.TempDir()

	first, err := New(dir)
	require.NoError(t, err)
	require.NoError(t, first.SetSetting("k", "v"))
	first.Close()

	second, err := New(dir)
	require.NoError(t, err)
	defer second.Close()

	v, err := second.GetSetting("k")
	require.NoError(t, err)
	assert.Equal(t, "v", v)
}

func TestDefaultDataDir(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg")

	dir, err := DefaultDataDir()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/xdg/lifeos", dir)
}

func TestSettings(t *testing.T) {
	d := newTestDB(t)

	v, err := d.GetSetting(SettingLastView)
	require.NoError(t, err)
	assert.Empty(t, v)

	require.NoError(t, d.SetSetting(SettingLastView, "dashboard"))
	require.NoError(t, d.SetSetting(SettingLastView, "tasks"))

	v, err = d.GetSetting(SettingLastView)
	require.NoError(t, err)
	assert.Equal(t, "tasks", v)

	require.NoError(t, d.DeleteSetting(SettingLastView))
	v, err = d.GetSetting(SettingLastView)
	require.NoError(t, err)
	assert.Empty(t, v)
}

func TestSpecRoundTrip(t *testing.T) {
	d := newTestDB(t)

	spec, err := d.LoadSpec()
	require.NoError(t, err)
	assert.Equal(t, query.DefaultSpec(), spec)

	want := query.Spec{
		Completion: query.CompletionUnfinished,
		Domains:    []string{"work", "health"},
		Window:     query.WindowNextWeek,
		Sort:       query.SortPriority,
		Search:     "report",
	}
	require.NoError(t, d.SaveSpec(want))

	got, err := d.LoadSpec()
	require.NoError(t, err)
	assert.Equal(t, want, got)

	require.NoError(t, d.ResetSpec())
	got, err = d.LoadSpec()
	require.NoError(t, err)
	assert.Equal(t, query.DefaultSpec(), got)
}

func TestLoadSpecNormalizesStoredValues(t *testing.T) {
	d := newTestDB(t)

	require.NoError(t, d.SetSetting(SettingFilterSpec, `{"completion":"someday","window":"tomorrow","sort":"random"}`))
	got, err := d.LoadSpec()
	require.NoError(t, err)
	assert.Equal(t, query.CompletionAll, got.Completion)
	assert.Equal(t, query.WindowTomorrow, got.Window)
	assert.Equal(t, query.SortDefault, got.Sort)

	require.NoError(t, d.SetSetting(SettingFilterSpec, `not json`))
	got, err = d.LoadSpec()
	require.NoError(t, err)
	assert.Equal(t, query.DefaultSpec(), got)
}
