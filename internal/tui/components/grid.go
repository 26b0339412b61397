package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/cinefind/internal/domain"
	"github.com/mmcdole/cinefind/internal/search"
	"github.com/mmcdole/cinefind/internal/tui/styles"
)

// Layout constants for the card grid
const (
	// Border adds 1 char on each side
	BorderWidth  = 2
	BorderHeight = 2

	// Card outer size including its own border and padding
	CardWidth  = 26
	CardHeight = 5

	// Title line at top and hint line at bottom of the grid
	TitleLines  = 1
	FooterLines = 1
)

// MembershipFunc reports whether a movie id is in the watchlist
type MembershipFunc func(id string) bool

// Grid renders movie cards in rows and owns the local "/" filter
type Grid struct {
	movies  []domain.MovieSummary
	index   *search.Index
	results []search.Result // visible cards, filtered or not

	// Selection
	cursor    int
	offsetRow int

	// Dimensions
	width       int
	height      int
	cols        int
	visibleRows int
	focused     bool

	title    string
	footer   string
	isMember MembershipFunc

	// Filter state
	filterActive bool
	filterInput  textinput.Model
	filterQuery  string
}

// NewGrid creates a new grid component
func NewGrid(isMember MembershipFunc) Grid {
	ti := textinput.New()
	ti.Placeholder = "type to filter..."
	ti.Prompt = "/ "
	ti.PromptStyle = styles.FilterPromptStyle
	ti.TextStyle = styles.FilterStyle

	if isMember == nil {
		isMember = func(string) bool { return false }
	}

	g := Grid{
		filterInput: ti,
		isMember:    isMember,
		focused:     true,
		cols:        1,
		visibleRows: 1,
	}
	g.index = search.NewIndex(nil)
	return g
}

// SetMovies replaces the cards. With keepPosition the cursor and filter
// survive, which is what appending a page needs.
func (g *Grid) SetMovies(movies []domain.MovieSummary, keepPosition bool) {
	g.movies = movies
	g.index = search.NewIndex(movies)
	if !keepPosition {
		g.cursor = 0
		g.offsetRow = 0
		g.clearFilter()
		return
	}
	g.applyFilter()
}

// Movies returns the unfiltered cards
func (g Grid) Movies() []domain.MovieSummary {
	return g.movies
}

// SetTitle sets the heading shown above the cards
func (g *Grid) SetTitle(title string) {
	g.title = title
}

// SetFooter sets the hint line shown below the cards
func (g *Grid) SetFooter(footer string) {
	g.footer = footer
}

// SetSize updates the component dimensions
func (g *Grid) SetSize(width, height int) {
	g.width = width
	g.height = height
	g.recalcLayout()
}

// recalcLayout derives columns and visible rows from the current size
func (g *Grid) recalcLayout() {
	interiorW := g.width - BorderWidth
	g.cols = max(1, interiorW/CardWidth)

	interiorH := g.height - BorderHeight - TitleLines - FooterLines
	if g.filterActive {
		interiorH--
	}
	g.visibleRows = max(1, interiorH/CardHeight)
	g.ensureVisible()
}

// SetFocused sets the focus state
func (g *Grid) SetFocused(focused bool) {
	g.focused = focused
}

// Columns returns the number of cards per row
func (g Grid) Columns() int {
	return g.cols
}

// Cursor returns the cursor position within the visible cards
func (g Grid) Cursor() int {
	return g.cursor
}

// Len returns the number of visible cards
func (g Grid) Len() int {
	return len(g.results)
}

// SelectedMovie returns the movie under the cursor
func (g Grid) SelectedMovie() (domain.MovieSummary, bool) {
	if g.cursor < 0 || g.cursor >= len(g.results) {
		return domain.MovieSummary{}, false
	}
	return g.results[g.cursor].Movie, true
}

// AtEnd reports whether the cursor is on the last row
func (g Grid) AtEnd() bool {
	n := len(g.results)
	return n > 0 && g.cursor/g.cols == (n-1)/g.cols
}

func (g *Grid) ensureVisible() {
	row := g.cursor / g.cols
	if row < g.offsetRow {
		g.offsetRow = row
	}
	if row >= g.offsetRow+g.visibleRows {
		g.offsetRow = row - g.visibleRows + 1
	}
	if g.offsetRow < 0 {
		g.offsetRow = 0
	}
}

func (g *Grid) moveTo(pos int) {
	n := len(g.results)
	if n == 0 {
		g.cursor = 0
		return
	}
	g.cursor = min(max(pos, 0), n-1)
	g.ensureVisible()
}

// ToggleFilter activates the filter input
func (g *Grid) ToggleFilter() {
	g.filterActive = true
	g.filterInput.Focus()
	g.recalcLayout()
}

// IsFiltering returns true if filter mode is active
func (g Grid) IsFiltering() bool {
	return g.filterActive
}

// IsFilterTyping returns true if filter is active AND input is focused
func (g Grid) IsFilterTyping() bool {
	return g.filterActive && g.filterInput.Focused()
}

// ClearFilter deactivates the filter and shows all cards
func (g *Grid) ClearFilter() {
	g.clearFilter()
}

func (g *Grid) clearFilter() {
	g.filterActive = false
	g.filterQuery = ""
	g.filterInput.SetValue("")
	g.filterInput.Blur()
	g.results = g.index.Filter("")
	g.recalcLayout()
	g.moveTo(g.cursor)
}

// applyFilter narrows the cards to the current query
func (g *Grid) applyFilter() {
	g.filterQuery = g.filterInput.Value()
	g.results = g.index.Filter(g.filterQuery)
	g.moveTo(g.cursor)
}

// Init initializes the component
func (g Grid) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (g Grid) Update(msg tea.Msg) (Grid, tea.Cmd) {
	if !g.focused {
		return g, nil
	}

	keyMsg, isKey := msg.(tea.KeyMsg)

	// Typing into the filter
	if g.filterActive && g.filterInput.Focused() {
		if isKey {
			switch {
			case key.Matches(keyMsg, GridKeys.Escape):
				g.clearFilter()
				return g, nil
			case key.Matches(keyMsg, GridKeys.Enter):
				// Accept filter, blur input to allow navigation
				g.filterInput.Blur()
				return g, nil
			case keyMsg.String() == "backspace" && g.filterInput.Value() == "":
				g.clearFilter()
				return g, nil
			}
		}

		var cmd tea.Cmd
		g.filterInput, cmd = g.filterInput.Update(msg)
		g.cursor = 0
		g.offsetRow = 0
		g.applyFilter()
		return g, cmd
	}

	if !isKey {
		return g, nil
	}

	// Filter applied but blurred
	if g.filterActive {
		switch {
		case key.Matches(keyMsg, GridKeys.Escape):
			g.clearFilter()
			return g, nil
		case key.Matches(keyMsg, GridKeys.Filter):
			g.filterInput.Focus()
			return g, nil
		}
	}

	if key.Matches(keyMsg, GridKeys.Filter) {
		g.ToggleFilter()
		return g, nil
	}

	switch {
	case key.Matches(keyMsg, GridKeys.Left):
		g.moveTo(g.cursor - 1)
	case key.Matches(keyMsg, GridKeys.Right):
		g.moveTo(g.cursor + 1)
	case key.Matches(keyMsg, GridKeys.Up):
		if g.cursor-g.cols >= 0 {
			g.moveTo(g.cursor - g.cols)
		}
	case key.Matches(keyMsg, GridKeys.Down):
		g.moveTo(g.cursor + g.cols)
	case key.Matches(keyMsg, GridKeys.Home):
		g.moveTo(0)
	case key.Matches(keyMsg, GridKeys.End):
		g.moveTo(len(g.results) - 1)
	case key.Matches(keyMsg, GridKeys.HalfUp):
		g.moveTo(g.cursor - g.cols*max(1, g.visibleRows/2))
	case key.Matches(keyMsg, GridKeys.HalfDown):
		g.moveTo(g.cursor + g.cols*max(1, g.visibleRows/2))
	}

	return g, nil
}

// View renders the component
func (g Grid) View() string {
	style := styles.InactiveBorder
	if g.focused {
		style = styles.ActiveBorder
	}

	innerWidth := g.width - BorderWidth
	var lines []string

	lines = append(lines, styles.AccentStyle.Render(styles.Truncate(g.title, innerWidth)))
	if g.filterActive {
		lines = append(lines, g.filterInput.View())
	}
	lines = append(lines, g.renderCards())
	lines = append(lines, g.footer)

	frameW, frameH := style.GetFrameSize()
	return style.
		Width(g.width - frameW).
		Height(g.height - frameH).
		Render(strings.Join(lines, "\n"))
}

// emptyMessage is rendered when there are no cards to show
func (g Grid) emptyMessage() string {
	if g.filterActive && g.filterQuery != "" {
		return styles.DimStyle.Render("No matches")
	}
	return styles.DimStyle.Render("No movies")
}

func (g Grid) renderCards() string {
	n := len(g.results)
	if n == 0 {
		return g.emptyMessage()
	}

	var rows []string
	firstRow := g.offsetRow
	lastRow := min(firstRow+g.visibleRows, (n+g.cols-1)/g.cols)
	for row := firstRow; row < lastRow; row++ {
		var cards []string
		for col := 0; col < g.cols; col++ {
			i := row*g.cols + col
			if i >= n {
				break
			}
			cards = append(cards, g.renderCard(g.results[i], i == g.cursor))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderCard draws one movie: title, year and type, watchlist marker
func (g Grid) renderCard(r search.Result, selected bool) string {
	style := styles.CardStyle
	if selected {
		style = styles.CardSelectedStyle
	}
	frameW, _ := style.GetFrameSize()
	textWidth := CardWidth - frameW

	m := r.Movie
	title := highlight(styles.Truncate(m.Title, textWidth), r.MatchedIndexes, selected)

	year := m.Year
	if year == "" {
		year = "----"
	}
	meta := styles.SubtitleStyle.Render(year) + " " + styles.DimBadgeStyle.Render(m.TypeLabel())

	marker := " "
	if g.isMember(m.ID) {
		marker = styles.Heart + styles.DimStyle.Render(" watchlist")
	}

	// Width covers padding, so only the border is subtracted
	return style.
		Width(CardWidth - style.GetHorizontalBorderSize()).
		Render(strings.Join([]string{title, meta, marker}, "\n"))
}

// highlight emphasizes the fuzzy matched characters of a title
func highlight(title string, matched []int, selected bool) string {
	base := styles.SubtitleStyle
	if selected {
		base = styles.TitleStyle
	}
	if len(matched) == 0 {
		return base.Render(title)
	}

	set := make(map[int]bool, len(matched))
	for _, i := range matched {
		set[i] = true
	}

	var b strings.Builder
	for i, r := range title {
		if set[i] {
			b.WriteString(styles.MatchHighlightStyle.Render(string(r)))
		} else {
			b.WriteString(base.Render(string(r)))
		}
	}
	return b.String()
}
