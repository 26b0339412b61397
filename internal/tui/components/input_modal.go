package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/cinefind/internal/tui/styles"
)

// InputPurpose records what a submitted value is for
type InputPurpose int

const (
	InputSearch InputPurpose = iota
	InputYear
	InputFilter
	InputFind
)

// InputModal is a simple text input modal
type InputModal struct {
	visible bool
	title   string
	hint    string
	purpose InputPurpose
	input   textinput.Model
}

// NewInputModal creates a new input modal
func NewInputModal() InputModal {
	ti := textinput.New()
	ti.CharLimit = 100
	ti.Width = 40
	ti.Prompt = "› "
	ti.PromptStyle = styles.FilterPromptStyle
	ti.TextStyle = lipgloss.NewStyle().Foreground(styles.White)
	ti.PlaceholderStyle = styles.DimStyle

	return InputModal{
		input: ti,
	}
}

// Show displays the modal for purpose, prefilled with value
func (m *InputModal) Show(purpose InputPurpose, title, placeholder, hint, value string) {
	m.visible = true
	m.purpose = purpose
	m.title = title
	m.hint = hint
	m.input.Placeholder = placeholder
	m.input.SetValue(value)
	m.input.CursorEnd()
	m.input.Focus()
}

// Hide dismisses the modal
func (m *InputModal) Hide() {
	m.visible = false
	m.input.Blur()
}

// IsVisible returns whether the modal is shown
func (m InputModal) IsVisible() bool {
	return m.visible
}

// Purpose returns what the modal was opened for
func (m InputModal) Purpose() InputPurpose {
	return m.purpose
}

// Value returns the trimmed input value
func (m InputModal) Value() string {
	return strings.TrimSpace(m.input.Value())
}

// Update handles input events, returns (modal, cmd, submitted)
func (m InputModal) Update(msg tea.Msg) (InputModal, tea.Cmd, bool) {
	if !m.visible {
		return m, nil, false
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter":
			return m, nil, true
		case "esc":
			m.Hide()
			return m, nil, false
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd, false
}

// View renders the input modal
func (m InputModal) View() string {
	if !m.visible {
		return ""
	}

	const modalWidth = 46

	titleStyle := lipgloss.NewStyle().
		Foreground(styles.White).
		Bold(true).
		Width(modalWidth).
		Background(styles.SlateDark)

	lineStyle := lipgloss.NewStyle().
		Width(modalWidth).
		Background(styles.SlateDark)

	parts := []string{
		titleStyle.Render(m.title),
		lineStyle.Render(""),
		lineStyle.Render(m.input.View()),
	}
	if m.hint != "" {
		parts = append(parts, lineStyle.Render(""), lineStyle.Inherit(styles.DimStyle).Render(m.hint))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.Amber).
		Background(styles.SlateDark).
		Padding(1, 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}
