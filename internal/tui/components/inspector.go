package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/cinefind/internal/domain"
	"github.com/mmcdole/cinefind/internal/tui/styles"
)

// Layout constants for inspector
const (
	InspectorBorderHeight     = 2
	InspectorPaddingHeight    = 2
	InspectorScrollIndicators = 2
)

// inspectorContent holds the three-zone layout content
type inspectorContent struct {
	header string // fixed top
	body   string // scrollable middle
	footer string // fixed bottom
}

// InspectorAction is what the user asked for while the inspector is open
type InspectorAction int

const (
	InspectorNone InspectorAction = iota
	InspectorToggle
	InspectorOpen
	InspectorClose
)

// Inspector is the modal showing the full record of one movie
type Inspector struct {
	visible bool
	loading bool
	summary domain.MovieSummary
	detail  *domain.MovieDetail
	member  bool

	spinner spinner.Model
	width   int
	height  int
	offset  int // body scroll offset
}

// NewInspector creates a new inspector component
func NewInspector() Inspector {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.SpinnerStyle
	return Inspector{spinner: s}
}

// ShowLoading opens the inspector for m while its details are fetched
func (i *Inspector) ShowLoading(m domain.MovieSummary, member bool) tea.Cmd {
	i.visible = true
	i.loading = true
	i.summary = m
	i.detail = nil
	i.member = member
	i.offset = 0
	return i.spinner.Tick
}

// SetDetail fills in the fetched record. Details for another movie are ignored.
func (i *Inspector) SetDetail(d *domain.MovieDetail) bool {
	if !i.visible || d == nil || d.ID != i.summary.ID {
		return false
	}
	i.loading = false
	i.detail = d
	return true
}

// SetMember updates the watchlist action line
func (i *Inspector) SetMember(member bool) {
	i.member = member
}

// Hide closes the inspector
func (i *Inspector) Hide() {
	i.visible = false
	i.loading = false
	i.detail = nil
}

// IsVisible returns whether the inspector is open
func (i Inspector) IsVisible() bool {
	return i.visible
}

// IsLoading returns whether details are still being fetched
func (i Inspector) IsLoading() bool {
	return i.loading
}

// MovieID returns the id of the movie being shown
func (i Inspector) MovieID() string {
	return i.summary.ID
}

// Summary returns the movie being shown
func (i Inspector) Summary() domain.MovieSummary {
	return i.summary
}

// SetSize updates the component dimensions
func (i *Inspector) SetSize(width, height int) {
	i.width = width
	i.height = height
}

func (i Inspector) maxVisible() int {
	return max(1, i.height-InspectorBorderHeight-InspectorPaddingHeight-InspectorScrollIndicators)
}

// Update handles messages, returns the requested action
func (i Inspector) Update(msg tea.Msg) (Inspector, tea.Cmd, InspectorAction) {
	if !i.visible {
		return i, nil, InspectorNone
	}

	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !i.loading {
			return i, nil, InspectorNone
		}
		var cmd tea.Cmd
		i.spinner, cmd = i.spinner.Update(msg)
		return i, cmd, InspectorNone

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, DetailKeys.Close):
			return i, nil, InspectorClose
		case key.Matches(msg, DetailKeys.Toggle):
			return i, nil, InspectorToggle
		case key.Matches(msg, DetailKeys.Open):
			return i, nil, InspectorOpen
		case key.Matches(msg, DetailKeys.Up):
			if i.offset > 0 {
				i.offset--
			}
		case key.Matches(msg, DetailKeys.Down):
			i.offset++
		}
	}
	return i, nil, InspectorNone
}

// View renders the component
func (i Inspector) View() string {
	if !i.visible {
		return ""
	}

	style := styles.ModalStyle
	frameW, _ := style.GetFrameSize()
	contentWidth := max(10, i.width-frameW)

	var content inspectorContent
	if i.loading || i.detail == nil {
		content = inspectorContent{
			header: styles.TitleStyle.Render(styles.Truncate(i.summary.Title, contentWidth)),
			body:   i.spinner.View() + " " + styles.DimStyle.Render("Loading details..."),
			footer: i.renderAction(),
		}
	} else {
		content = i.renderDetail(*i.detail, contentWidth)
	}

	// Three-zone layout: header is fixed, body scrolls, footer is fixed
	headerLines := splitLines(content.header)
	footerLines := splitLines(content.footer)
	bodyLines := splitLines(content.body)

	availableForBody := max(1, i.maxVisible()-len(headerLines)-len(footerLines))

	totalBodyLines := len(bodyLines)
	maxOffset := max(0, totalBodyLines-availableForBody)
	offset := min(i.offset, maxOffset)

	end := min(offset+availableForBody, totalBodyLines)
	visibleBody := bodyLines[offset:end]

	up := " "
	if offset > 0 {
		up = styles.DimStyle.Render("↑ more")
	}
	down := " "
	if end < totalBodyLines {
		down = styles.DimStyle.Render("↓ more")
	}

	var parts []string
	parts = append(parts, headerLines...)
	parts = append(parts, up)
	parts = append(parts, visibleBody...)
	for j := len(visibleBody); j < availableForBody; j++ {
		parts = append(parts, "")
	}
	parts = append(parts, down)
	parts = append(parts, footerLines...)

	// Width and Height cover padding, so only the border is subtracted
	return style.
		Width(i.width - style.GetHorizontalBorderSize()).
		Height(i.height - style.GetVerticalBorderSize()).
		Render(strings.Join(parts, "\n"))
}

func (i Inspector) renderDetail(d domain.MovieDetail, width int) inspectorContent {
	return inspectorContent{
		header: renderDetailHeader(d, width),
		body:   renderDetailBody(d, width),
		footer: i.renderAction(),
	}
}

// renderAction renders the watchlist and IMDb action line
func (i Inspector) renderAction() string {
	open := "   " + styles.HelpKeyStyle.Render("o") + " " + styles.HelpDescStyle.Render("Open on IMDb")
	if i.member {
		return styles.Heart + " " + styles.HelpKeyStyle.Render("a") + " " + styles.HelpDescStyle.Render("Remove from Watchlist") + open
	}
	return styles.DimStyle.Render("♡") + " " + styles.HelpKeyStyle.Render("a") + " " + styles.HelpDescStyle.Render("Add to Watchlist") + open
}

func renderDetailHeader(d domain.MovieDetail, width int) string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render(styles.Truncate(d.Title, width)))
	b.WriteString("\n")

	var meta []string
	for _, v := range []string{d.Year, d.Rated, d.Runtime} {
		if v != "" {
			meta = append(meta, v)
		}
	}
	meta = append(meta, d.TypeLabel())
	b.WriteString(styles.SubtitleStyle.Render(styles.Truncate(strings.Join(meta, " • "), width)))
	b.WriteString("\n")

	rating := styles.RatingStyle(d.Rating).Render(styles.StarChar + " " + d.FormattedRating())
	if d.Votes != "" {
		rating += styles.DimStyle.Render(fmt.Sprintf(" (%s votes)", d.Votes))
	}
	b.WriteString(rating)

	return b.String()
}

func renderDetailBody(d domain.MovieDetail, width int) string {
	var lines []string

	if len(d.Genres) > 0 {
		var tags []string
		for _, g := range d.Genres {
			tags = append(tags, styles.GenreTagStyle.Render(g))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, tags...), "")
	}

	plot := d.Plot
	if plot == "" {
		plot = "No plot available."
	}
	lines = append(lines, styles.Wrap(plot, width)...)
	lines = append(lines, "")

	field := func(label, value string) {
		if value == "" {
			return
		}
		wrapped := styles.Wrap(value, max(10, width-len(label)-2))
		if len(wrapped) == 0 {
			return
		}
		lines = append(lines, styles.DimStyle.Render(label+": ")+wrapped[0])
		pad := strings.Repeat(" ", len(label)+2)
		for _, w := range wrapped[1:] {
			lines = append(lines, pad+w)
		}
	}

	field("Director", d.Director)
	field("Cast", d.CastLine())
	field("Released", d.Released)
	field("Language", d.Language)
	field("Country", d.Country)
	field("Awards", d.Awards)
	if d.Metascore != "" {
		field("Metascore", d.Metascore)
	}
	for _, r := range d.Ratings {
		field(r.Source, r.Value)
	}

	return strings.Join(lines, "\n")
}

// splitLines splits a string into lines, returning nil for empty strings
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
