package components

import (
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/artspace/artspace/internal/ui/styles"
)

// Button renders a clickable button. The output is marked with id so a
// mouse release can be matched against it after zone.Scan.
func Button(id, label string, width int, pressed bool) string {
	style := styles.Button
	if pressed {
		style = styles.ButtonPressed
	}

	// Padding(1, 0) gives the three-row pill the controls row reserves
	rendered := style.
		Width(max(width, lipgloss.Width(label)+4)).
		Padding(1, 0).
		Render(label)

	return zone.Mark(id, rendered)
}
