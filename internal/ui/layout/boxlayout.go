package layout

// Region names used by the gallery screen
const (
	RegionCard      = "card"
	RegionPlaque    = "plaque"
	RegionIndicator = "indicator"
	RegionControls  = "controls"
	RegionStatus    = "status"
)

// Fixed region heights
const (
	PlaqueHeight    = 3
	IndicatorHeight = 1
	ControlsHeight  = 3
	StatusHeight    = 1
	GapHeight       = 1
)

// Rect is the position and size of a region
type Rect struct {
	X, Y          int // top-left
	Width, Height int
}

// Direction determines how children are laid out
type Direction int

const (
	Vertical   Direction = iota // stack top to bottom
	Horizontal                  // stack left to right
)

// Box is a layout node that either splits its space among children or names a region
type Box struct {
	Direction Direction
	Children  []*Box
	Region    string // region name if this is a leaf node
	Size      int    // static size (height for Vertical, width for Horizontal)
	Weight    int    // share of the space left after static sizes
}

// Arrange calculates the rectangle of every named region under root
func Arrange(root *Box, x, y, width, height int) map[string]Rect {
	if len(root.Children) == 0 {
		if root.Region != "" {
			return map[string]Rect{
				root.Region: {X: x, Y: y, Width: width, Height: height},
			}
		}
		return map[string]Rect{}
	}

	available := height
	if root.Direction == Horizontal {
		available = width
	}

	sizes := splitSizes(root.Children, available)

	result := map[string]Rect{}
	offset := 0
	for i, child := range root.Children {
		var childResult map[string]Rect
		if root.Direction == Horizontal {
			childResult = Arrange(child, x+offset, y, sizes[i], height)
		} else {
			childResult = Arrange(child, x, y+offset, width, sizes[i])
		}

		for k, v := range childResult {
			result[k] = v
		}
		offset += sizes[i]
	}

	return result
}

func splitSizes(boxes []*Box, available int) []int {
	totalWeight := 0
	reserved := 0

	for _, box := range boxes {
		if box.Size > 0 {
			reserved += box.Size
		} else {
			totalWeight += weightOf(box)
		}
	}

	dynamic := max(available-reserved, 0)

	result := make([]int, len(boxes))
	for i, box := range boxes {
		if box.Size > 0 {
			result[i] = min(available, box.Size)
		} else if totalWeight > 0 {
			result[i] = (dynamic * weightOf(box)) / totalWeight
		}
	}

	// hand the rounding remainder to weighted boxes
	allocated := 0
	for _, s := range result {
		allocated += s
	}
	remainder := available - allocated
	for i := 0; remainder > 0 && i < len(result); i++ {
		if boxes[i].Size == 0 {
			result[i]++
			remainder--
		}
	}

	return result
}

func weightOf(b *Box) int {
	if b.Weight == 0 {
		return 1
	}
	return b.Weight
}

// Gallery returns the screen layout: the artwork card takes whatever height
// the fixed plaque, indicator, controls and status rows leave over.
func Gallery() *Box {
	return &Box{
		Direction: Vertical,
		Children: []*Box{
			{Size: GapHeight},
			{Region: RegionCard, Weight: 1},
			{Size: GapHeight},
			{Region: RegionPlaque, Size: PlaqueHeight},
			{Region: RegionIndicator, Size: IndicatorHeight},
			{Size: GapHeight},
			{Region: RegionControls, Size: ControlsHeight},
			{Region: RegionStatus, Size: StatusHeight},
		},
	}
}

// Controls splits the controls row into two equal button regions
func Controls(previous, next string, gap int) *Box {
	return &Box{
		Direction: Horizontal,
		Children: []*Box{
			{Region: previous, Weight: 1},
			{Size: gap},
			{Region: next, Weight: 1},
		},
	}
}
