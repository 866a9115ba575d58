package shell

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bootcamp-landing/pkg/content"
	"bootcamp-landing/pkg/sections"
	"bootcamp-landing/pkg/theme"
)

func TestScrollIndicator(t *testing.T) {
	s := NewScrollIndicator(600)
	assert.True(t, s.Visible())

	assert.True(t, s.Update(0))
	assert.True(t, s.Update(699))
	assert.False(t, s.Update(700))
	assert.False(t, s.Visible())
	assert.True(t, s.Update(10))
}

func newShell(t *testing.T) *Shell {
	t.Helper()
	lib, err := content.Load()
	require.NoError(t, err)
	return New(lib, 5*time.Second)
}

func TestPageMarksSameActiveItemOnce(t *testing.T) {
	router := sections.NewRouter()
	router.Select(sections.Benefits)

	page := newShell(t).Page(State{Theme: theme.Dark, Router: router})

	active := 0
	for _, n := range page.Nav {
		if n.Active {
			active++
			assert.Equal(t, sections.Benefits, n.Section)
		}
	}
	assert.Equal(t, 1, active)
	assert.Equal(t, "Écosystème Complet", page.Doc.Title)
	assert.Equal(t, theme.Light, page.NextTheme)
	assert.Equal(t, 5, page.ResetSeconds)
	assert.Equal(t, 500, page.MotivationMax)
}

func TestPageDefaultsToIntroduction(t *testing.T) {
	page := newShell(t).Page(State{Theme: theme.Light})
	assert.Equal(t, sections.Introduction, page.Active)
	assert.Equal(t, "Introduction au Bootcamp", page.Doc.Title)
	assert.True(t, page.ScrollVisible)
	assert.Equal(t, ScrollIndicatorMargin, page.ScrollMargin)
}

func TestResetSecondsRoundsUp(t *testing.T) {
	lib, err := content.Load()
	require.NoError(t, err)
	assert.Equal(t, 2, New(lib, 1500*time.Millisecond).Page(State{}).ResetSeconds)
	assert.Equal(t, 5, New(lib, 0).Page(State{}).ResetSeconds)
}
