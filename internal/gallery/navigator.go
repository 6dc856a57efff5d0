package gallery

// Navigator tracks which catalog entry is on screen.
// The index always stays in [0, catalog.Len()). The catalog must come from
// NewCatalog or DefaultCatalog; a zero Catalog is empty and stepping over it
// panics.
type Navigator struct {
	catalog Catalog
	index   int
}

// NewNavigator creates a navigator positioned on the first artwork
func NewNavigator(catalog Catalog) *Navigator {
	return &Navigator{catalog: catalog}
}

// Previous steps back one artwork, wrapping from the first to the last
func (n *Navigator) Previous() {
	n.step(-1)
}

// Next steps forward one artwork, wrapping from the last to the first
func (n *Navigator) Next() {
	n.step(1)
}

// First jumps to the first artwork
func (n *Navigator) First() {
	n.index = 0
}

// Last jumps to the last artwork
func (n *Navigator) Last() {
	n.index = n.catalog.Len() - 1
}

// Seek moves to position i, wrapping values outside the catalog
func (n *Navigator) Seek(i int) {
	n.index = 0
	n.step(i)
}

func (n *Navigator) step(delta int) {
	size := n.catalog.Len()
	n.index = ((n.index+delta)%size + size) % size
}

// Index returns the current position
func (n *Navigator) Index() int {
	return n.index
}

// Len returns the catalog size
func (n *Navigator) Len() int {
	return n.catalog.Len()
}

// Current returns the artwork on screen
func (n *Navigator) Current() Artwork {
	return n.catalog.At(n.index)
}
