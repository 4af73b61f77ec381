package systems

import (
	"testing"

	"github.com/katuneko/lurhook/internal/domain"
)

var visParams = VisibilityParams{DeepWaterRadius: 5, StormRadius: 3}

func deepWorld() *domain.GameWorld {
	w := domain.NewGameWorld(20, 20)
	for i := range w.Tiles {
		w.Tiles[i] = domain.TileDeepWater
	}
	return w
}

func TestVisibility_DeepWaterLimited(t *testing.T) {
	w := deepWorld()
	player := domain.Position{X: 0, Y: 0}

	if !Visible(w, player, domain.Position{X: 4, Y: 0}, 0, visParams) {
		t.Error("Point at distance 4 should be visible in clear weather")
	}
	if Visible(w, player, domain.Position{X: 6, Y: 0}, 0, visParams) {
		t.Error("Point at distance 6 should be hidden on deep water")
	}
}

func TestVisibility_StormShrinksRadius(t *testing.T) {
	w := deepWorld()
	player := domain.Position{X: 0, Y: 0}

	if Visible(w, player, domain.Position{X: 4, Y: 0}, 1, visParams) {
		t.Error("Distance 4 should be hidden during a storm")
	}
	if !Visible(w, player, domain.Position{X: 3, Y: 0}, 1, visParams) {
		t.Error("Distance 3 should remain visible during a storm")
	}
}

func TestVisibility_UnlimitedOnLand(t *testing.T) {
	w := domain.NewGameWorld(120, 80) // вся карта - суша
	player := domain.Position{X: 0, Y: 0}

	if !Visible(w, player, domain.Position{X: 100, Y: 0}, 0, visParams) {
		t.Error("Visibility on land should be unlimited")
	}
	// Шторм на суше обзор не ограничивает
	if !Visible(w, player, domain.Position{X: 100, Y: 0}, 5, visParams) {
		t.Error("Storm should not limit visibility on land")
	}
}
