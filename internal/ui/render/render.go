// Package render turns an artwork into a toolkit-free description of the
// gallery screen.
package render

import "github.com/artspace/artspace/internal/gallery"

// Control IDs
const (
	ControlPrevious = "previous"
	ControlNext     = "next"
)

// Control is a button on the gallery screen
type Control struct {
	ID    string
	Label string
}

// ViewDescription is everything the screen shows for one artwork
type ViewDescription struct {
	ImageRef  string
	ImageAlt  string
	Title     string
	Artist    string
	YearLabel string
	Controls  []Control
}

// Render describes the screen for a single artwork
func Render(a gallery.Artwork) ViewDescription {
	return ViewDescription{
		ImageRef:  a.ImageRef,
		ImageAlt:  a.Title,
		Title:     a.Title,
		Artist:    a.Artist,
		YearLabel: "(" + a.Year + ")",
		Controls: []Control{
			{ID: ControlPrevious, Label: "Previous"},
			{ID: ControlNext, Label: "Next"},
		},
	}
}
