package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/cinefind/internal/domain"
)

func movies(titles ...string) []domain.MovieSummary {
	out := make([]domain.MovieSummary, len(titles))
	for i, title := range titles {
		out[i] = domain.MovieSummary{ID: "tt" + title, Title: title, Year: "2000"}
	}
	return out
}

func press(g Grid, keys ...string) Grid {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEscape}
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		g, _ = g.Update(msg)
	}
	return g
}

func TestGrid_ColumnsFromWidth(t *testing.T) {
	g := NewGrid(nil)
	g.SetSize(CardWidth*3+BorderWidth, 40)
	assert.Equal(t, 3, g.Columns())

	g.SetSize(10, 40)
	assert.Equal(t, 1, g.Columns())
}

func TestGrid_Navigation(t *testing.T) {
	g := NewGrid(nil)
	g.SetSize(CardWidth*3+BorderWidth, 40)
	g.SetMovies(movies("a", "b", "c", "d", "e"), false)

	g = press(g, "l", "l")
	assert.Equal(t, 2, g.Cursor())

	g = press(g, "j")
	assert.Equal(t, 4, g.Cursor(), "down clamps to the last card")
	assert.True(t, g.AtEnd())

	g = press(g, "k")
	assert.Equal(t, 1, g.Cursor())

	g = press(g, "G")
	assert.Equal(t, 4, g.Cursor())
	g = press(g, "g")
	assert.Equal(t, 0, g.Cursor())
}

func TestGrid_Filter(t *testing.T) {
	g := NewGrid(nil)
	g.SetSize(120, 40)
	g.SetMovies(movies("Alien", "Aliens", "Heat", "Ronin"), false)

	g = press(g, "/")
	require.True(t, g.IsFilterTyping())

	g = press(g, "alien")
	assert.Equal(t, 2, g.Len())

	g = press(g, "enter")
	assert.True(t, g.IsFiltering())
	assert.False(t, g.IsFilterTyping())

	// Appending a page keeps the filter
	g.SetMovies(append(g.Movies(), movies("Alien 3")...), true)
	assert.Equal(t, 3, g.Len())

	g = press(g, "esc")
	assert.False(t, g.IsFiltering())
	assert.Equal(t, 5, g.Len())
}

func TestGrid_ReplaceResetsCursorAndFilter(t *testing.T) {
	g := NewGrid(nil)
	g.SetSize(120, 40)
	g.SetMovies(movies("a", "b", "c"), false)
	g = press(g, "l", "/")

	g.SetMovies(movies("x", "y"), false)
	assert.Equal(t, 0, g.Cursor())
	assert.False(t, g.IsFiltering())

	m, ok := g.SelectedMovie()
	require.True(t, ok)
	assert.Equal(t, "x", m.Title)
}

func TestGrid_MarksMembers(t *testing.T) {
	g := NewGrid(func(id string) bool { return id == "ttHeat" })
	g.SetSize(120, 40)
	g.SetMovies(movies("Heat", "Ronin"), false)

	view := g.View()
	assert.Contains(t, view, "♥ watchlist")
	assert.Contains(t, view, "Ronin")
}

func TestGrid_EmptySelection(t *testing.T) {
	g := NewGrid(nil)
	g.SetSize(60, 20)
	_, ok := g.SelectedMovie()
	assert.False(t, ok)
	assert.Contains(t, g.View(), "No movies")
}
