package styles

import "github.com/charmbracelet/lipgloss"

// Gallery palette
var (
	// Core colors
	ColorWhite   = lipgloss.Color("#ffffff")
	ColorGray    = lipgloss.Color("#808080")
	ColorDimGray = lipgloss.Color("#4a4a4a")
	ColorSlate   = lipgloss.Color("#5a6b8c")
	ColorPlaque  = lipgloss.Color("#afafaf")
	ColorInk     = lipgloss.Color("#1a1a1a")

	// Card colors
	ColorCardBorder = ColorWhite
	ColorCardTitle  = ColorGray

	// Indicator colors
	ColorDotActive   = ColorSlate
	ColorDotInactive = ColorDimGray
)

// Card and plaque styles
var (
	// Artwork title on the plaque
	PlaqueTitle = lipgloss.NewStyle().
			Foreground(ColorInk).
			Background(ColorPlaque).
			Padding(0, 1)

	// Artist name
	PlaqueArtist = lipgloss.NewStyle().
			Foreground(ColorInk).
			Background(ColorPlaque).
			Bold(true).
			Padding(0, 1)

	// Parenthesized year
	PlaqueYear = lipgloss.NewStyle().
			Foreground(ColorInk).
			Background(ColorPlaque).
			PaddingRight(1)

	// Placeholder shown when an image is missing
	MissingImage = lipgloss.NewStyle().
			Foreground(ColorGray).
			Italic(true)

	// Dimmed/secondary text
	DimmedText = lipgloss.NewStyle().
			Foreground(ColorGray)

	// Help overlay heading
	HelpTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorWhite).
			Padding(0, 1)

	// Status bar at bottom
	StatusBar = lipgloss.NewStyle().
			Foreground(ColorGray).
			Background(lipgloss.Color("#1a1a1a")).
			Padding(0, 1)
)

// Button styles
var (
	Button = lipgloss.NewStyle().
		Foreground(ColorWhite).
		Background(ColorSlate).
		Bold(true).
		Align(lipgloss.Center).
		Padding(0, 2)

	// Last activated button
	ButtonPressed = Button.
			Background(lipgloss.Color("#7a8bac"))
)

// Dot returns the indicator style for a dot whose highlight strength is in [0, 1]
func Dot(strength float64) lipgloss.Style {
	if strength >= 0.5 {
		return lipgloss.NewStyle().Foreground(ColorDotActive).Bold(true)
	}
	return lipgloss.NewStyle().Foreground(ColorDotInactive)
}

// DotIcon returns the indicator glyph for a dot whose highlight strength is in [0, 1]
func DotIcon(strength float64) string {
	if strength >= 0.5 {
		return "●"
	}
	return "○"
}
