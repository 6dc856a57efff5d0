package gallery

import (
	"fmt"
	"testing"
)

func catalogOf(t *testing.T, n int) Catalog {
	t.Helper()
	items := make([]Artwork, n)
	for i := range items {
		items[i] = Artwork{ImageRef: fmt.Sprintf("img-%d", i), Title: fmt.Sprintf("Artwork %d", i)}
	}
	c, err := NewCatalog(items...)
	if err != nil {
		t.Fatalf("failed to build catalog: %v", err)
	}
	return c
}

func TestNewNavigator_StartsAtZero(t *testing.T) {
	nav := NewNavigator(DefaultCatalog())

	if nav.Index() != 0 {
		t.Errorf("expected index 0, got %d", nav.Index())
	}
	if nav.Len() != 2 {
		t.Errorf("expected 2 artworks, got %d", nav.Len())
	}
}

func TestNavigator_StepFormulas(t *testing.T) {
	for n := 1; n <= 5; n++ {
		for start := 0; start < n; start++ {
			t.Run(fmt.Sprintf("n=%d/start=%d", n, start), func(t *testing.T) {
				nav := NewNavigator(catalogOf(t, n))
				nav.Seek(start)

				nav.Next()
				if want := (start + 1) % n; nav.Index() != want {
					t.Errorf("next: expected %d, got %d", want, nav.Index())
				}

				nav.Seek(start)
				nav.Previous()
				if want := (start - 1 + n) % n; nav.Index() != want {
					t.Errorf("previous: expected %d, got %d", want, nav.Index())
				}
			})
		}
	}
}

func TestNavigator_InverseLaws(t *testing.T) {
	for n := 1; n <= 5; n++ {
		for start := 0; start < n; start++ {
			nav := NewNavigator(catalogOf(t, n))

			nav.Seek(start)
			nav.Previous()
			nav.Next()
			if nav.Index() != start {
				t.Errorf("n=%d: previous then next from %d landed on %d", n, start, nav.Index())
			}

			nav.Seek(start)
			nav.Next()
			nav.Previous()
			if nav.Index() != start {
				t.Errorf("n=%d: next then previous from %d landed on %d", n, start, nav.Index())
			}
		}
	}
}

func TestNavigator_Boundaries(t *testing.T) {
	nav := NewNavigator(catalogOf(t, 4))

	nav.Previous()
	if nav.Index() != 3 {
		t.Errorf("expected previous from 0 to wrap to 3, got %d", nav.Index())
	}

	nav.Next()
	if nav.Index() != 0 {
		t.Errorf("expected next from 3 to wrap to 0, got %d", nav.Index())
	}
}

func TestNavigator_SingleArtwork(t *testing.T) {
	nav := NewNavigator(catalogOf(t, 1))

	nav.Next()
	if nav.Index() != 0 {
		t.Errorf("expected index 0 after next, got %d", nav.Index())
	}
	nav.Previous()
	if nav.Index() != 0 {
		t.Errorf("expected index 0 after previous, got %d", nav.Index())
	}
}

func TestNavigator_DefaultCatalogScenario(t *testing.T) {
	nav := NewNavigator(DefaultCatalog())

	if nav.Current().Title != "Still Life of Blue Rose and Other Flowers" {
		t.Fatalf("expected blue roses first, got '%s'", nav.Current().Title)
	}

	nav.Next()
	if nav.Index() != 1 {
		t.Fatalf("expected index 1, got %d", nav.Index())
	}
	current := nav.Current()
	if current.Title != "Sailing Under the Bridge" {
		t.Errorf("expected 'Sailing Under the Bridge', got '%s'", current.Title)
	}
	if current.Artist != "Kat Kuan" {
		t.Errorf("expected artist 'Kat Kuan', got '%s'", current.Artist)
	}
	if current.Year != "2017" {
		t.Errorf("expected year '2017', got '%s'", current.Year)
	}

	nav.Next()
	if nav.Index() != 0 {
		t.Errorf("expected wrap back to 0, got %d", nav.Index())
	}

	nav.Previous()
	if nav.Index() != 1 {
		t.Errorf("expected wrap to 1, got %d", nav.Index())
	}
}

func TestNavigator_NextIsNeverNoOp(t *testing.T) {
	nav := NewNavigator(DefaultCatalog())

	nav.Next()
	if nav.Index() == 0 {
		t.Error("expected a single next to leave index 0")
	}
}

func TestNavigator_FirstLast(t *testing.T) {
	nav := NewNavigator(catalogOf(t, 3))

	nav.Last()
	if nav.Index() != 2 {
		t.Errorf("expected last index 2, got %d", nav.Index())
	}

	nav.First()
	if nav.Index() != 0 {
		t.Errorf("expected first index 0, got %d", nav.Index())
	}
}

func TestNavigator_SeekWraps(t *testing.T) {
	tests := []struct {
		seek     int
		expected int
	}{
		{0, 0},
		{2, 2},
		{3, 0},
		{7, 1},
		{-1, 2},
		{-4, 2},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("seek %d", tt.seek), func(t *testing.T) {
			nav := NewNavigator(catalogOf(t, 3))
			nav.Seek(tt.seek)
			if nav.Index() != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, nav.Index())
			}
		})
	}
}

func TestZeroCatalogIsEmpty(t *testing.T) {
	var c Catalog

	if c.Len() != 0 {
		t.Errorf("expected zero catalog to be empty, got %d", c.Len())
	}
	if _, err := NewCatalog(c.All()...); err == nil {
		t.Error("expected NewCatalog to reject the zero catalog's artworks")
	}
}
