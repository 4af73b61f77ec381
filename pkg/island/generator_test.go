package island

import (
	"testing"

	"github.com/katuneko/lurhook/internal/domain"
)

func TestGenerate(t *testing.T) {
	w := Generate(1, 120, 80)

	// 1. Проверка размеров мира
	if w.Width != 120 || w.Height != 80 {
		t.Errorf("Expected map size 120x80, got %dx%d", w.Width, w.Height)
	}
	if len(w.Tiles) != 120*80 || len(w.Depths) != 120*80 {
		t.Fatalf("Tile/depth slices have wrong length: %d/%d", len(w.Tiles), len(w.Depths))
	}

	// 2. На карте должна быть и вода, и суша
	hasWater, hasLand := false, false
	for _, tile := range w.Tiles {
		if tile.IsWater() {
			hasWater = true
		} else {
			hasLand = true
		}
	}
	if !hasWater {
		t.Error("Generated map has no water, nowhere to fish")
	}
	if !hasLand {
		t.Error("Generated map has no land")
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a := Generate(42, 60, 40)
	b := Generate(42, 60, 40)

	for i := range a.Tiles {
		if a.Tiles[i] != b.Tiles[i] || a.Depths[i] != b.Depths[i] {
			t.Fatalf("Same seed produced different maps at index %d", i)
		}
	}

	c := Generate(43, 60, 40)
	same := true
	for i := range a.Tiles {
		if a.Tiles[i] != c.Tiles[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("Different seeds produced identical maps")
	}
}

func TestDepthZeroOnLand(t *testing.T) {
	w := Generate(7, 60, 40)
	for y := 0; y < w.Height; y++ {
		for x := 0; x < w.Width; x++ {
			pt := domain.Position{X: x, Y: y}
			if w.TileAt(pt) == domain.TileLand && w.DepthAt(pt) != 0 {
				t.Fatalf("Land tile at %v has depth %d", pt, w.DepthAt(pt))
			}
			if w.TileAt(pt).IsWater() && w.DepthAt(pt) < 0 {
				t.Fatalf("Water tile at %v has negative depth", pt)
			}
		}
	}
}

func TestStartPositionPrefersLand(t *testing.T) {
	w := Generate(1, 120, 80)
	start := StartPosition(w)
	if !w.InBounds(start) {
		t.Fatalf("Start position %v out of bounds", start)
	}
	// Если суша на карте есть, стартовать в воде нельзя.
	for _, tile := range w.Tiles {
		if tile == domain.TileLand {
			if w.TileAt(start).IsWater() {
				t.Errorf("Start position %v is in water while land exists", start)
			}
			return
		}
	}
}
