package gallery

import "errors"

// ErrEmptyCatalog is returned when a catalog is built with no artworks
var ErrEmptyCatalog = errors.New("gallery: catalog must contain at least one artwork")

// Artwork is a single gallery entry
type Artwork struct {
	ImageRef string `yaml:"image"`
	Title    string `yaml:"title"`
	Artist   string `yaml:"artist"`
	Year     string `yaml:"year"`
}

// Catalog is an ordered, non-empty, read-only list of artworks
type Catalog struct {
	artworks []Artwork
}

// NewCatalog copies the given artworks into a catalog
func NewCatalog(artworks ...Artwork) (Catalog, error) {
	if len(artworks) == 0 {
		return Catalog{}, ErrEmptyCatalog
	}
	items := make([]Artwork, len(artworks))
	copy(items, artworks)
	return Catalog{artworks: items}, nil
}

// DefaultCatalog returns the bundled artworks
func DefaultCatalog() Catalog {
	return Catalog{artworks: []Artwork{
		{
			ImageRef: "blueroses",
			Title:    "Still Life of Blue Rose and Other Flowers",
			Artist:   "Owen Scott",
			Year:     "2021",
		},
		{
			ImageRef: "bridge",
			Title:    "Sailing Under the Bridge",
			Artist:   "Kat Kuan",
			Year:     "2017",
		},
	}}
}

// Len returns the number of artworks
func (c Catalog) Len() int {
	return len(c.artworks)
}

// At returns the artwork at position i. i must be in [0, Len()).
func (c Catalog) At(i int) Artwork {
	return c.artworks[i]
}

// All returns a copy of the artworks in order
func (c Catalog) All() []Artwork {
	items := make([]Artwork, len(c.artworks))
	copy(items, c.artworks)
	return items
}
