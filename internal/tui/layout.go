package tui

// Layout constants
const (
	// Header line plus footer line
	ChromeHeight = 2

	// Inspector modal bounds
	InspectorMaxWidth  = 84
	InspectorMargin    = 4
	InspectorMinHeight = 12
)

// updateLayout updates component sizes based on window size
func (m *Model) updateLayout() {
	if m.Width == 0 || m.Height == 0 {
		return
	}

	contentHeight := max(1, m.Height-ChromeHeight)
	m.Grid.SetSize(m.Width, contentHeight)

	inspectorWidth := min(InspectorMaxWidth, m.Width-InspectorMargin)
	inspectorHeight := max(InspectorMinHeight, m.Height-InspectorMargin)
	m.Inspector.SetSize(max(20, inspectorWidth), min(inspectorHeight, m.Height))
}
