package app

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/artspace/artspace/internal/assets"
	"github.com/artspace/artspace/internal/config"
	"github.com/artspace/artspace/internal/gallery"
	"github.com/artspace/artspace/internal/keymap"
	"github.com/artspace/artspace/internal/ui/components"
	"github.com/artspace/artspace/internal/ui/layout"
	"github.com/artspace/artspace/internal/ui/render"
	"github.com/artspace/artspace/internal/ui/styles"
)

// Gallery is the root bubbletea model: one artwork on screen, two buttons
// to move through the catalog
type Gallery struct {
	nav       *gallery.Navigator
	keymap    keymap.KeyMap
	logger    *slog.Logger
	indicator Indicator
	pressed   string // ID of the last activated control
	width     int
	height    int
	showHelp  bool
	helpCache string
	helpWidth int
}

// New creates the gallery screen around a navigator. A nil logger discards.
func New(nav *gallery.Navigator, logger *slog.Logger) *Gallery {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if zone.DefaultManager == nil {
		zone.NewGlobal()
	}

	return &Gallery{
		nav:       nav,
		keymap:    keymap.DefaultKeyMap(),
		logger:    logger,
		indicator: NewIndicator(nav.Index()),
	}
}

// Init initializes the screen
func (g *Gallery) Init() tea.Cmd {
	g.logger.Debug("gallery opened",
		"artworks", g.nav.Len(),
		"index", g.nav.Index(),
	)
	return nil
}

// Update handles messages
func (g *Gallery) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		g.width = msg.Width
		g.height = msg.Height
		return g, nil

	case tea.KeyMsg:
		return g, g.handleKey(msg)

	case tea.MouseMsg:
		return g, g.handleMouse(msg)

	case indicatorFrameMsg:
		return g, g.indicator.Update(msg)
	}

	return g, nil
}

func (g *Gallery) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, g.keymap.Quit):
		g.logger.Debug("gallery closed", "index", g.nav.Index())
		return tea.Quit

	case key.Matches(msg, g.keymap.Help):
		g.showHelp = !g.showHelp
		return nil
	}

	if g.showHelp {
		return nil
	}

	switch {
	case key.Matches(msg, g.keymap.Previous):
		return g.activate(render.ControlPrevious)
	case key.Matches(msg, g.keymap.Next):
		return g.activate(render.ControlNext)
	case key.Matches(msg, g.keymap.First):
		return g.move("first", g.nav.First)
	case key.Matches(msg, g.keymap.Last):
		return g.move("last", g.nav.Last)
	}

	return nil
}

func (g *Gallery) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if g.showHelp || msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return nil
	}

	for _, id := range []string{render.ControlPrevious, render.ControlNext} {
		if z := zone.Get(id); z != nil && z.InBounds(msg) {
			return g.activate(id)
		}
	}
	return nil
}

// activate runs the navigation bound to a control
func (g *Gallery) activate(control string) tea.Cmd {
	g.pressed = control
	switch control {
	case render.ControlPrevious:
		return g.move(control, g.nav.Previous)
	case render.ControlNext:
		return g.move(control, g.nav.Next)
	}
	return nil
}

func (g *Gallery) move(action string, step func()) tea.Cmd {
	from := g.nav.Index()
	step()

	g.logger.Debug("navigate",
		"action", action,
		"from", from,
		"to", g.nav.Index(),
		"title", g.nav.Current().Title,
	)

	if g.nav.Index() == from {
		return nil
	}
	return g.indicator.SetTarget(g.nav.Index())
}

// View renders the screen
func (g *Gallery) View() string {
	if g.width == 0 {
		return "Loading..."
	}

	if g.width < config.MinWidth || g.height < config.MinHeight {
		return lipgloss.Place(g.width, g.height, lipgloss.Center, lipgloss.Center,
			styles.DimmedText.Render("Terminal too small"))
	}

	if g.showHelp {
		return lipgloss.JoinVertical(
			lipgloss.Left,
			lipgloss.NewStyle().Height(g.height-1).MaxHeight(g.height-1).Render(g.renderHelp()),
			g.renderStatusBar(),
		)
	}

	desc := render.Render(g.nav.Current())
	rects := layout.Arrange(layout.Gallery(), 0, 0, g.width, g.height)
	contentWidth := min(g.width-2*config.SidePadding, config.MaxCardWidth)

	regions := []struct {
		name    string
		content string
	}{
		{layout.RegionCard, g.renderCard(desc, g.position(), contentWidth, rects[layout.RegionCard].Height)},
		{layout.RegionPlaque, g.renderPlaque(desc, contentWidth)},
		{layout.RegionIndicator, g.indicator.View(g.nav.Len())},
		{layout.RegionControls, g.renderControls(desc, contentWidth)},
		{layout.RegionStatus, g.renderStatusBar()},
	}

	rows := make([]string, 0, len(regions)*2)
	line := 0
	for _, r := range regions {
		rect := rects[r.name]
		if rect.Height <= 0 {
			continue
		}
		for ; line < rect.Y; line++ {
			rows = append(rows, "")
		}
		rows = append(rows, lipgloss.Place(g.width, rect.Height, lipgloss.Center, lipgloss.Top, r.content))
		line += rect.Height
	}

	return zone.Scan(strings.Join(rows, "\n"))
}

func (g *Gallery) renderCard(desc render.ViewDescription, position string, width, height int) string {
	art, err := assets.Lookup(desc.ImageRef)
	if err != nil {
		art = styles.MissingImage.Render("[ " + desc.ImageAlt + " ]")
	}
	return components.Frame(position, art, width, height)
}

func (g *Gallery) renderPlaque(desc render.ViewDescription, width int) string {
	title := styles.PlaqueTitle.Width(width).MaxHeight(layout.PlaqueHeight - 1).Render(desc.Title)
	byline := lipgloss.JoinHorizontal(
		lipgloss.Top,
		styles.PlaqueArtist.Render(desc.Artist),
		styles.PlaqueYear.Render(desc.YearLabel),
	)
	byline = lipgloss.NewStyle().Background(styles.ColorPlaque).Width(width).Render(byline)

	return lipgloss.JoinVertical(lipgloss.Left, title, byline)
}

func (g *Gallery) renderControls(desc render.ViewDescription, width int) string {
	rects := layout.Arrange(
		layout.Controls(render.ControlPrevious, render.ControlNext, config.ButtonGap),
		0, 0, width, layout.ControlsHeight,
	)

	buttons := make([]string, 0, len(desc.Controls)*2)
	for i, c := range desc.Controls {
		if i > 0 {
			buttons = append(buttons, strings.Repeat(" ", config.ButtonGap))
		}
		buttons = append(buttons, components.Button(c.ID, c.Label, rects[c.ID].Width, g.pressed == c.ID))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, buttons...)
}

func (g *Gallery) renderStatusBar() string {
	return styles.StatusBar.Width(g.width).Render(g.position() + " | ? help | q quit")
}

// position is the 1-based "current/total" label
func (g *Gallery) position() string {
	return fmt.Sprintf("%d/%d", g.nav.Index()+1, g.nav.Len())
}
