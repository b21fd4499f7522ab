package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCompletion(t *testing.T) {
	c, err := ParseCompletion(" Unfinished ")
	require.NoError(t, err)
	assert.Equal(t, CompletionUnfinished, c)

	c, err = ParseCompletion("")
	require.NoError(t, err)
	assert.Equal(t, CompletionAll, c)

	_, err = ParseCompletion("done")
	assert.ErrorIs(t, err, ErrUnknownCompletion)
}

func TestParseWindow(t *testing.T) {
	w, err := ParseWindow("NEXT-MONTH")
	require.NoError(t, err)
	assert.Equal(t, WindowNextMonth, w)

	w, err = ParseWindow("")
	require.NoError(t, err)
	assert.Equal(t, WindowAll, w)

	_, err = ParseWindow("next-year")
	assert.ErrorIs(t, err, ErrUnknownWindow)
}

func TestParseSortMode(t *testing.T) {
	m, err := ParseSortMode("priority")
	require.NoError(t, err)
	assert.Equal(t, SortPriority, m)

	m, err = ParseSortMode("")
	require.NoError(t, err)
	assert.Equal(t, SortDefault, m)

	_, err = ParseSortMode("alphabetical")
	assert.ErrorIs(t, err, ErrUnknownSort)
}

func TestSpecValidate(t *testing.T) {
	assert.NoError(t, DefaultSpec().Validate())

	s := DefaultSpec()
	s.Completion = "maybe"
	assert.ErrorIs(t, s.Validate(), ErrUnknownCompletion)

	s = DefaultSpec()
	s.Window = ""
	assert.ErrorIs(t, s.Validate(), ErrUnknownWindow)

	s = DefaultSpec()
	s.Sort = "random"
	assert.ErrorIs(t, s.Validate(), ErrUnknownSort)
}

func TestSpecNormalize(t *testing.T) {
	s := Spec{Completion: "Finished", Window: "decade", Sort: "", Domains: []string{"work"}}

	got := s.Normalize()

	assert.Equal(t, Spec{
		Completion: CompletionFinished,
		Window:     WindowAll,
		Sort:       SortDefault,
		Domains:    []string{"work"},
	}, got)
	assert.NoError(t, got.Validate())
}

func TestSpecIsDefault(t *testing.T) {
	assert.True(t, DefaultSpec().IsDefault())

	s := DefaultSpec()
	s.Search = "  "
	assert.True(t, s.IsDefault())

	s = DefaultSpec().ToggleDomain("work")
	assert.False(t, s.IsDefault())
}

func TestToggleDomain(t *testing.T) {
	base := DefaultSpec()

	withWork := base.ToggleDomain("work")
	assert.Equal(t, []string{"work"}, withWork.Domains)
	assert.Empty(t, base.Domains)

	both := withWork.ToggleDomain("health")
	assert.Equal(t, []string{"work", "health"}, both.Domains)
	assert.Equal(t, []string{"work"}, withWork.Domains)

	onlyHealth := both.ToggleDomain("work")
	assert.Equal(t, []string{"health"}, onlyHealth.Domains)
	assert.True(t, both.HasDomain("work"))
	assert.False(t, onlyHealth.HasDomain("work"))
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "Unfinished", CompletionUnfinished.Label())
	assert.Equal(t, "Next 7 days", WindowNextWeek.Label())
	assert.Equal(t, "Priority", SortPriority.Label())
	assert.Equal(t, "All", Window("bogus").Label())
}
