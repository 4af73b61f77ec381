package engine

import (
	"github.com/katuneko/lurhook/internal/domain"
	"github.com/katuneko/lurhook/internal/systems"
	"github.com/katuneko/lurhook/pkg/api"
)

// BuildSnapshot собирает DTO для клиента. Рыбы и опасности за
// пределами обзора (глубина, шторм) в снимок не попадают; вид рыбы
// не раскрывается никогда - только позиция.
func (g *Game) BuildSnapshot(msgType string) *api.ServerResponse {
	st := g.state
	t := g.cfg.Tuning

	vp := systems.VisibilityParams{
		DeepWaterRadius: t.DeepWaterRadius,
		StormRadius:     t.StormRadius,
	}

	resp := &api.ServerResponse{
		Type:      msgType,
		Tick:      st.Clock,
		Mode:      st.Mode.String(),
		TimeOfDay: st.TimeOfDay,
		Storm:     st.StormTurns > 0,
		Grid:      &api.GridMeta{Width: st.World.Width, Height: st.World.Height},
		Map:       g.buildMap(vp),
		Player:    g.buildPlayer(),
		Logs:      g.DrainLogs(),
	}

	for _, f := range st.Fishes {
		if systems.Visible(st.World, st.Player.Pos, f.Pos, st.StormTurns, vp) {
			resp.Fishes = append(resp.Fishes, api.FishView{
				Pos: api.PositionView{X: f.Pos.X, Y: f.Pos.Y},
			})
		}
	}
	for _, hz := range st.Hazards {
		if systems.Visible(st.World, st.Player.Pos, hz.Pos, st.StormTurns, vp) {
			resp.Hazards = append(resp.Hazards, api.HazardView{
				Pos: api.PositionView{X: hz.Pos.X, Y: hz.Pos.Y},
			})
		}
	}

	switch st.Mode {
	case domain.ModeAiming:
		resp.AimTarget = &api.PositionView{X: st.AimTarget.X, Y: st.AimTarget.Y}
	case domain.ModeFishing:
		if st.Session != nil && st.Session.Phase == domain.PhaseDueling {
			resp.Meter = &api.MeterView{
				Tension:    st.Session.Meter.Tension,
				MaxTension: st.Session.Meter.MaxTension,
				Reels:      st.Session.Meter.Reels,
			}
		}
	case domain.ModeEnd:
		resp.Score = st.FinalScore
	}

	return resp
}

func (g *Game) buildMap(vp systems.VisibilityParams) []api.TileView {
	st := g.state
	tiles := make([]api.TileView, 0, st.World.Width*st.World.Height)

	for y := 0; y < st.World.Height; y++ {
		for x := 0; x < st.World.Width; x++ {
			pos := domain.Position{X: x, Y: y}
			kind := st.World.TileAt(pos)
			tiles = append(tiles, api.TileView{
				X: x, Y: y,
				Kind:      kind.String(),
				Depth:     st.World.DepthAt(pos),
				IsVisible: systems.Visible(st.World, st.Player.Pos, pos, st.StormTurns, vp),
			})
		}
	}
	return tiles
}

func (g *Game) buildPlayer() *api.PlayerView {
	p := g.state.Player
	view := &api.PlayerView{
		Pos:        api.PositionView{X: p.Pos.X, Y: p.Pos.Y},
		HP:         p.HP,
		MaxHP:      g.cfg.Tuning.MaxHP,
		Hunger:     p.Hunger,
		Line:       p.Line,
		CannedFood: p.CannedFood,
	}
	for _, fish := range p.Inventory {
		view.Inventory = append(view.Inventory, api.CatchView{
			Name:      fish.Name,
			Legendary: fish.Legendary,
		})
	}
	if p.Rod != nil {
		view.Rod = p.Rod.Name
	}
	if p.Reel != nil {
		view.Reel = p.Reel.Name
	}
	if p.Lure != nil {
		view.Lure = p.Lure.Name
	}
	return view
}
