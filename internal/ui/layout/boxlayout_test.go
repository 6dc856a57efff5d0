package layout

import "testing"

func TestArrange_Leaf(t *testing.T) {
	rects := Arrange(&Box{Region: "only"}, 2, 3, 10, 5)

	r, ok := rects["only"]
	if !ok {
		t.Fatal("expected region 'only'")
	}
	if r != (Rect{X: 2, Y: 3, Width: 10, Height: 5}) {
		t.Errorf("unexpected rect %+v", r)
	}
}

func TestArrange_StaticAndWeighted(t *testing.T) {
	root := &Box{
		Direction: Vertical,
		Children: []*Box{
			{Region: "top", Size: 3},
			{Region: "a", Weight: 1},
			{Region: "b", Weight: 2},
		},
	}

	rects := Arrange(root, 0, 0, 20, 12)

	if rects["top"].Height != 3 {
		t.Errorf("expected top height 3, got %d", rects["top"].Height)
	}
	if rects["a"].Height != 3 {
		t.Errorf("expected a height 3, got %d", rects["a"].Height)
	}
	if rects["b"].Height != 6 {
		t.Errorf("expected b height 6, got %d", rects["b"].Height)
	}
	if rects["b"].Y != 6 {
		t.Errorf("expected b at y=6, got %d", rects["b"].Y)
	}
}

func TestArrange_RemainderGoesToWeighted(t *testing.T) {
	root := &Box{
		Direction: Horizontal,
		Children: []*Box{
			{Region: "left", Weight: 1},
			{Region: "right", Weight: 1},
		},
	}

	rects := Arrange(root, 0, 0, 7, 1)

	total := rects["left"].Width + rects["right"].Width
	if total != 7 {
		t.Errorf("expected widths to sum to 7, got %d", total)
	}
	if rects["right"].X != rects["left"].Width {
		t.Errorf("expected right to start at %d, got %d", rects["left"].Width, rects["right"].X)
	}
}

func TestGallery(t *testing.T) {
	rects := Arrange(Gallery(), 0, 0, 60, 40)

	for _, name := range []string{RegionCard, RegionPlaque, RegionIndicator, RegionControls, RegionStatus} {
		if _, ok := rects[name]; !ok {
			t.Errorf("expected region '%s'", name)
		}
	}

	fixed := 3*GapHeight + PlaqueHeight + IndicatorHeight + ControlsHeight + StatusHeight
	if rects[RegionCard].Height != 40-fixed {
		t.Errorf("expected card height %d, got %d", 40-fixed, rects[RegionCard].Height)
	}
	if rects[RegionStatus].Y != 39 {
		t.Errorf("expected status on last row, got y=%d", rects[RegionStatus].Y)
	}
}

func TestGallery_TinyTerminal(t *testing.T) {
	rects := Arrange(Gallery(), 0, 0, 20, 5)

	if rects[RegionCard].Height != 0 {
		t.Errorf("expected card to collapse, got height %d", rects[RegionCard].Height)
	}
}

func TestControls(t *testing.T) {
	rects := Arrange(Controls("prev", "next", 2), 0, 0, 42, 3)

	if rects["prev"].Width != 20 || rects["next"].Width != 20 {
		t.Errorf("expected two 20-wide buttons, got %d and %d", rects["prev"].Width, rects["next"].Width)
	}
	if rects["next"].X != 22 {
		t.Errorf("expected next at x=22, got %d", rects["next"].X)
	}
}
