package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/artspace/artspace/internal/ui/styles"
)

// truncateToWidth truncates a string to fit within maxWidth visual characters
func truncateToWidth(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= maxWidth {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		if lipgloss.Width(string(runes)) <= maxWidth-1 {
			return string(runes) + "…"
		}
	}
	return ""
}

// Frame draws a bordered card of exactly width x height cells with content
// centered inside. The caption, if any, sits in the bottom border.
func Frame(caption, content string, width, height int) string {
	innerWidth := width - 2
	innerHeight := height - 2

	if innerWidth <= 0 || innerHeight <= 0 {
		return ""
	}

	border := lipgloss.NewStyle().Foreground(styles.ColorCardBorder)

	contentLines := strings.Split(content, "\n")
	if len(contentLines) > innerHeight {
		contentLines = contentLines[:innerHeight]
	}
	top := (innerHeight - len(contentLines)) / 2

	var result strings.Builder

	result.WriteString(border.Render("╭" + strings.Repeat("─", innerWidth) + "╮"))
	result.WriteString("\n")

	for i := 0; i < innerHeight; i++ {
		line := ""
		if i >= top && i-top < len(contentLines) {
			line = truncateToWidth(contentLines[i-top], innerWidth)
		}
		result.WriteString(border.Render("│"))
		result.WriteString(centerLine(line, innerWidth))
		result.WriteString(border.Render("│"))
		result.WriteString("\n")
	}

	result.WriteString(bottomBorder(border, caption, innerWidth))

	return result.String()
}

func centerLine(line string, width int) string {
	pad := width - lipgloss.Width(line)
	if pad <= 0 {
		return line
	}
	left := pad / 2
	return strings.Repeat(" ", left) + line + strings.Repeat(" ", pad-left)
}

func bottomBorder(border lipgloss.Style, caption string, innerWidth int) string {
	if caption == "" {
		return border.Render("╰" + strings.Repeat("─", innerWidth) + "╯")
	}

	captionText := truncateToWidth(" "+caption+" ", innerWidth)
	captionLen := lipgloss.Width(captionText)
	leftLen := max((innerWidth-captionLen)/2, 0)
	rightLen := max(innerWidth-captionLen-leftLen, 0)

	captionStyle := lipgloss.NewStyle().Foreground(styles.ColorCardTitle)

	return border.Render("╰"+strings.Repeat("─", leftLen)) +
		captionStyle.Render(captionText) +
		border.Render(strings.Repeat("─", rightLen)+"╯")
}
