package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/artspace/artspace/internal/config"
	"github.com/artspace/artspace/internal/keymap"
	"github.com/artspace/artspace/internal/ui/styles"
)

// helpMarkdown builds the help overlay source from the key map
func helpMarkdown(km keymap.KeyMap) string {
	var b strings.Builder

	b.WriteString("Browse the collection one artwork at a time. ")
	b.WriteString("Stepping past either end wraps around.\n\n")
	b.WriteString("| Key | Action |\n")
	b.WriteString("| --- | --- |\n")

	for _, column := range km.FullHelp() {
		for _, binding := range column {
			h := binding.Help()
			fmt.Fprintf(&b, "| `%s` | %s |\n", h.Key, h.Desc)
		}
	}

	b.WriteString("\nThe **Previous** and **Next** buttons can also be clicked.\n")

	return b.String()
}

// renderMarkdown renders markdown content for terminal display
func renderMarkdown(content string, width int) string {
	if content == "" {
		return ""
	}

	if width <= 0 {
		width = 80
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return content // Fall back to raw content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return content // Fall back to raw content
	}

	return strings.TrimSpace(rendered)
}

func (g *Gallery) renderHelp() string {
	width := min(g.width, config.HelpWrapWidth)
	if g.helpCache == "" || g.helpWidth != width {
		g.helpCache = renderMarkdown(helpMarkdown(g.keymap), width)
		g.helpWidth = width
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		styles.HelpTitle.Render("ArtSpace"),
		styles.DimmedText.Render("Press ? to close"),
		"",
		g.helpCache,
	)
}
