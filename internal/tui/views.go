package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/cinefind/internal/browse"
	"github.com/mmcdole/cinefind/internal/tui/styles"
)

// View renders the application
func (m Model) View() string {
	if !m.Ready {
		return "Loading..."
	}

	if m.State == StateHelp {
		return m.renderHelp()
	}

	// Modals take over the screen
	if m.InputModal.IsVisible() {
		return lipgloss.Place(m.Width, m.Height,
			lipgloss.Center, lipgloss.Center,
			m.InputModal.View())
	}
	if m.Inspector.IsVisible() {
		return lipgloss.Place(m.Width, m.Height,
			lipgloss.Center, lipgloss.Center,
			m.Inspector.View())
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.renderContent(),
		m.renderFooter(),
	)
}

// renderHeader renders the brand line with the watchlist counter
func (m Model) renderHeader() string {
	left := styles.AccentStyle.Bold(true).Render("CineFind") +
		styles.DimStyle.Render(" · "+m.Browse.Title())

	right := styles.Heart + " " + styles.SubtitleStyle.Render("Watchlist") + " " +
		styles.BadgeStyle.Render(fmt.Sprintf("%d", m.Watchlist.Count()))

	gap := max(1, m.Width-lipgloss.Width(left)-lipgloss.Width(right))
	return left + strings.Repeat(" ", gap) + right
}

// renderContent renders the results area for the current status
func (m Model) renderContent() string {
	height := max(1, m.Height-ChromeHeight)
	center := func(s string) string {
		return lipgloss.Place(m.Width, height, lipgloss.Center, lipgloss.Center, s)
	}

	switch m.Browse.Status {
	case browse.Loading:
		if m.Browse.LoadMoreInFlight {
			return m.renderGrid()
		}
		return center(m.Spinner.View() + " " + styles.DimStyle.Render("Loading awesome movies..."))

	case browse.Empty:
		return center(lipgloss.JoinVertical(lipgloss.Center,
			styles.TitleStyle.Render("No movies found"),
			styles.DimStyle.Render("Try a different search term or browse popular movies"),
		))

	case browse.Errored:
		return center(lipgloss.JoinVertical(lipgloss.Center,
			styles.ErrorStyle.Bold(true).Render("Oops! Something went wrong"),
			styles.ErrorStyle.Render(m.Browse.ErrorMsg),
			"",
			styles.DimStyle.Render("Press p for popular movies or s to search"),
		))

	case browse.Loaded:
		return m.renderGrid()
	}

	return center("")
}

// renderGrid renders the cards with the listing title and load-more footer
func (m Model) renderGrid() string {
	grid := m.Grid
	grid.SetTitle(m.gridTitle())
	grid.SetFooter(m.gridFooter())
	return grid.View()
}

func (m Model) gridTitle() string {
	title := m.Browse.Title()
	if m.Grid.IsFiltering() {
		return fmt.Sprintf("%s (%d of %d)", title, m.Grid.Len(), len(m.Browse.Movies))
	}
	return fmt.Sprintf("%s (%d)", title, len(m.Browse.Movies))
}

// gridFooter renders the load-more hint below the cards
func (m Model) gridFooter() string {
	var parts []string
	switch {
	case m.Browse.LoadMoreInFlight:
		parts = append(parts, m.Spinner.View()+" "+styles.DimStyle.Render("Loading..."))
	case m.Browse.LoadMoreOffered:
		parts = append(parts, styles.AccentStyle.Render("m")+styles.DimStyle.Render(" Load More Movies"))
	}
	if m.Browse.Total > len(m.Browse.Movies) {
		parts = append(parts, styles.DimStyle.Render(fmt.Sprintf("%d of %d results", len(m.Browse.Movies), m.Browse.Total)))
	}
	return strings.Join(parts, styles.DimStyle.Render(" · "))
}

// renderFooter renders the notice line and key hints
func (m Model) renderFooter() string {
	var left string
	if !m.Notice.IsZero() {
		left = noticeStyle(m.Notice.Kind).Render(m.Notice.Text)
	}

	hints := []string{
		styles.AccentStyle.Render("s") + styles.DimStyle.Render(" search"),
		styles.AccentStyle.Render("p") + styles.DimStyle.Render(" popular"),
		styles.AccentStyle.Render("w") + styles.DimStyle.Render(" watchlist"),
		styles.AccentStyle.Render("a") + styles.DimStyle.Render(" ♥"),
	}
	center := strings.Join(hints, "  ")

	right := styles.AccentStyle.Render("?") + styles.DimStyle.Render(" help")

	leftWidth := lipgloss.Width(left)
	centerWidth := lipgloss.Width(center)
	rightWidth := lipgloss.Width(right)

	if leftWidth+centerWidth+rightWidth >= m.Width {
		// Not enough space - just left + right
		gap := max(0, m.Width-leftWidth-rightWidth)
		return left + strings.Repeat(" ", gap) + right
	}

	available := m.Width - leftWidth - rightWidth
	leftPad := (available - centerWidth) / 2
	rightPad := available - centerWidth - leftPad

	return left + strings.Repeat(" ", leftPad) + center + strings.Repeat(" ", rightPad) + right
}

func noticeStyle(kind browse.NoticeKind) lipgloss.Style {
	switch kind {
	case browse.NoticeSuccess:
		return styles.SuccessStyle
	case browse.NoticeWarning:
		return styles.WarningStyle
	case browse.NoticeError:
		return styles.ErrorStyle
	default:
		return styles.InfoStyle
	}
}

// renderHelp renders the help screen
func (m Model) renderHelp() string {
	help := `
BROWSE                          CARDS
  s          Search titles        h/j/k/l  Move
  p          Popular movies       g/G      First/last card
  y          Movies by year       C-u/C-d  Page up/down
  f          Filters              /        Filter cards
  m          Load more            Enter    Details

WATCHLIST                       OTHER
  w          Show watchlist       ?        This help
  W          Find in watchlist    Esc      Close / Cancel
  a/Space    Add or remove        o        Open on IMDb
                                  q        Quit

Press any key to return...
`

	return lipgloss.Place(m.Width, m.Height,
		lipgloss.Center, lipgloss.Center,
		styles.ModalStyle.Render(help))
}
