package tui

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmcdole/cinefind/internal/browse"
	"github.com/mmcdole/cinefind/internal/domain"
	"github.com/mmcdole/cinefind/internal/tui/components"
)

var yearPattern = regexp.MustCompile(`^\d{4}$`)

// handleKeyMsg handles keyboard input
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// Any key leaves the help screen
	if m.State == StateHelp {
		m.State = StateBrowsing
		return m, nil
	}

	// Route to active modal if any
	if handled, newModel, cmd := m.routeToModal(msg); handled {
		return newModel, cmd
	}

	// The grid filter input takes every key while typing
	if m.Grid.IsFilterTyping() {
		var cmd tea.Cmd
		m.Grid, cmd = m.Grid.Update(msg)
		return m, cmd
	}

	// Global keys
	switch {
	case key.Matches(msg, Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, Keys.Help):
		m.State = StateHelp
		return m, nil

	case key.Matches(msg, Keys.Escape):
		if m.Grid.IsFiltering() {
			m.Grid.ClearFilter()
		}
		return m, nil

	case key.Matches(msg, Keys.Search):
		term := ""
		if m.Browse.Mode == browse.ModeSearch {
			term = m.Browse.Term
		}
		m.InputModal.Show(components.InputSearch, "Search Movies", "Search for movies...", "", term)
		return m, nil

	case key.Matches(msg, Keys.Popular):
		cmd := m.start(m.Browse.StartPopular())
		return m, cmd

	case key.Matches(msg, Keys.Year):
		m.InputModal.Show(components.InputYear, "Movies by Year", "e.g. 1999", "Four digit release year", "")
		return m, nil

	case key.Matches(msg, Keys.Filters):
		m.InputModal.Show(components.InputFilter, "Filters", "e.g. 2010 series",
			"Year and/or type (movie, series, episode). Empty clears filters.", filterValue(m.Browse))
		return m, nil

	case key.Matches(msg, Keys.Watchlist):
		cmd := m.showWatchlist(m.Watchlist.Entries())
		return m, cmd

	case key.Matches(msg, Keys.Find):
		m.InputModal.Show(components.InputFind, "Find in Watchlist", "Title...", "", "")
		return m, nil

	case key.Matches(msg, Keys.LoadMore):
		cmd := m.start(m.Browse.StartLoadMore())
		return m, cmd

	case key.Matches(msg, Keys.Detail):
		movie, ok := m.Grid.SelectedMovie()
		if !ok {
			return m, nil
		}
		cmd := m.Inspector.ShowLoading(movie, m.Watchlist.IsMember(movie.ID))
		m.updateLayout()
		return m, tea.Batch(cmd, LoadDetailCmd(m.Discovery, movie.ID))

	case key.Matches(msg, Keys.Toggle):
		movie, ok := m.Grid.SelectedMovie()
		if !ok {
			return m, nil
		}
		cmd := m.toggleWatchlist(movie)
		return m, cmd

	case key.Matches(msg, Keys.Open):
		movie, ok := m.Grid.SelectedMovie()
		if !ok {
			return m, nil
		}
		return m, m.openIMDb(movie)
	}

	// Everything else navigates the grid
	var cmd tea.Cmd
	m.Grid, cmd = m.Grid.Update(msg)
	return m, cmd
}

// routeToModal routes key messages to the active modal
func (m Model) routeToModal(msg tea.KeyMsg) (bool, Model, tea.Cmd) {
	if m.InputModal.IsVisible() {
		var cmd tea.Cmd
		var submitted bool
		m.InputModal, cmd, submitted = m.InputModal.Update(msg)
		if submitted {
			purpose, value := m.InputModal.Purpose(), m.InputModal.Value()
			m.InputModal.Hide()
			cmd = m.handleSubmit(purpose, value)
			return true, m, cmd
		}
		return true, m, cmd
	}

	if m.Inspector.IsVisible() {
		var cmd tea.Cmd
		var action components.InspectorAction
		m.Inspector, cmd, action = m.Inspector.Update(msg)
		switch action {
		case components.InspectorClose:
			m.Inspector.Hide()
		case components.InspectorToggle:
			cmd = m.toggleWatchlist(m.Inspector.Summary())
		case components.InspectorOpen:
			cmd = m.openIMDb(m.Inspector.Summary())
		}
		return true, m, cmd
	}

	return false, m, nil
}

// handleSubmit acts on a value entered in the input modal
func (m *Model) handleSubmit(purpose components.InputPurpose, value string) tea.Cmd {
	switch purpose {
	case components.InputSearch:
		return m.start(m.Browse.StartSearch(value))

	case components.InputYear:
		if value != "" && !yearPattern.MatchString(value) {
			return m.setNotice(browse.ErrorNotice("Year must be a four digit number"))
		}
		return m.start(m.Browse.StartYear(value))

	case components.InputFilter:
		year, mediaType, err := parseFilters(value)
		if err != nil {
			return m.setNotice(browse.ErrorNotice("Invalid filters: " + err.Error()))
		}
		notice := browse.InfoNotice(browse.MsgFiltersApplied)
		if year == "" && mediaType == "" {
			notice = browse.InfoNotice(browse.MsgFiltersCleared)
		}
		cmd := m.start(m.Browse.StartFiltered(year, mediaType))
		return tea.Batch(cmd, m.setNotice(notice))

	case components.InputFind:
		if value == "" {
			return m.showWatchlist(m.Watchlist.Entries())
		}
		found := m.Watchlist.Find(value)
		if len(found) == 0 {
			return m.setNotice(browse.InfoNotice(fmt.Sprintf("No watchlist movies match %q", value)))
		}
		return m.showWatchlist(found)
	}
	return nil
}

// showWatchlist renders entries as the grid, or only announces an empty watchlist
func (m *Model) showWatchlist(entries []domain.WatchlistEntry) tea.Cmd {
	next, notice := m.Browse.ShowWatchlist(entries)
	if len(entries) > 0 {
		m.Browse = next
		m.Grid.SetMovies(m.Browse.Movies, false)
	}
	return m.setNotice(notice)
}

// parseFilters reads "2010 series" style input. Either part may be omitted.
func parseFilters(value string) (string, domain.MediaType, error) {
	var year string
	var mediaType domain.MediaType

	for _, field := range strings.Fields(strings.ToLower(value)) {
		switch {
		case yearPattern.MatchString(field) && year == "":
			year = field
		case domain.MediaType(field).Valid() && mediaType == "":
			mediaType = domain.MediaType(field)
		default:
			return "", "", fmt.Errorf("unrecognized filter %q", field)
		}
	}
	return year, mediaType, nil
}

// filterValue renders the active filters back into input form
func filterValue(s browse.State) string {
	if s.Mode != browse.ModeFiltered {
		return ""
	}
	return strings.TrimSpace(s.Filter.Year + " " + string(s.Filter.Type))
}
