package engine

import (
	"sort"

	"tombs-server/internal/domain"
	"tombs-server/pkg/api"
)

// BuildStateFor создает персональный слепок мира для observer.
// Слепок честный: в нём нет тайлов, которых герой не видел, и нет
// сущностей вне текущего поля зрения.
func (s *GameService) BuildStateFor(observer *domain.Entity) *api.ServerResponse {
	inst := s.Current
	grid := inst.Grid

	// 1. Карта: только исследованные тайлы
	var mapDTO []api.TileView
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			tile := grid.Map[y][x]
			if tile.Visibility == domain.VisibilityUnseen {
				continue
			}
			mapDTO = append(mapDTO, tileToView(tile))
		}
	}

	// 2. Сущности: себя видим всегда, остальных - только на видимых тайлах
	var viewEntities []api.EntityView
	for _, e := range inst.Entities {
		if e.ID == observer.ID {
			viewEntities = append(viewEntities, toEntityView(e, observer))
			continue
		}
		if inst.Visible[grid.GetIndex(e.Pos.X, e.Pos.Y)] {
			viewEntities = append(viewEntities, toEntityView(e, observer))
		}
	}
	// Стабильный порядок не зависит от порядка вставки
	sort.Slice(viewEntities, func(i, j int) bool { return viewEntities[i].ID < viewEntities[j].ID })

	respType := "UPDATE"
	if inst.GameOver {
		respType = "GAME_OVER"
	}

	resp := &api.ServerResponse{
		Type:       respType,
		Turn:       inst.Turn,
		Depth:      inst.Depth,
		MyEntityID: observer.ID.Wire(),
		Grid:       &api.GridMeta{Width: grid.Width, Height: grid.Height},
		Map:        mapDTO,
		Entities:   viewEntities,
		Logs:       inst.DrainLogs(),
	}

	if observer.Stats != nil {
		resp.Player = statsToView(observer, true)
	}
	if observer.Inventory != nil {
		resp.Inventory = inventoryToView(observer)
	}

	return resp
}

func tileToView(tile domain.Tile) api.TileView {
	view := api.TileView{
		X: tile.X, Y: tile.Y,
		Kind:       tile.Kind.String(),
		IsVisible:  tile.Visibility == domain.VisibilityVisible,
		IsExplored: true,
		HasCorpse:  tile.Corpse,
	}
	switch tile.Kind {
	case domain.TileWall:
		view.Symbol, view.Color = "#", "#666666"
	case domain.TileStairsDown:
		view.Symbol, view.Color = ">", "#FFFFFF"
	default:
		view.Symbol, view.Color = ".", "#333333"
	}
	return view
}

// toEntityView конвертирует доменную сущность в DTO с учетом прав доступа
func toEntityView(target *domain.Entity, observer *domain.Entity) api.EntityView {
	view := api.EntityView{
		ID:   target.ID.Wire(),
		Type: target.Type.String(),
		Name: target.Name,
	}
	view.Pos.X = target.Pos.X
	view.Pos.Y = target.Pos.Y

	if target.Render != nil {
		view.Render.Symbol = string(target.Render.Glyph.Char())
		view.Render.Color = target.Render.Glyph.HexColor()
	} else {
		view.Render.Symbol = "?"
		view.Render.Color = "#FFFFFF"
	}

	if target.Stats != nil {
		view.Stats = statsToView(target, target.ID == observer.ID)
	}

	return view
}

// statsToView собирает стат-блок. Владелец видит всё, чужаки - только
// здоровье и факт смерти.
func statsToView(e *domain.Entity, isOwner bool) *api.StatsView {
	st := e.Stats
	view := &api.StatsView{
		HP: st.HP, MaxHP: st.MaxHP,
		IsDead: st.IsDead,
	}
	if isOwner {
		view.Power = st.Power
		view.Defense = st.Defense
		view.XP = st.XP
		view.Level = st.Level
	}
	if len(e.Statuses) > 0 {
		view.Statuses = make(map[string]int, len(e.Statuses))
		for kind, turns := range e.Statuses {
			view.Statuses[kind.String()] = turns
		}
	}
	return view
}

func inventoryToView(e *domain.Entity) *api.InventoryView {
	inv := &api.InventoryView{
		Items:    make([]api.ItemView, 0, len(e.Inventory.Items)),
		MaxSlots: e.Inventory.MaxSlots,
	}
	for _, item := range e.Inventory.Items {
		iv := api.ItemView{
			ID:   item.ID.Wire(),
			Name: item.Name,
			Kind: item.Item.Kind.String(),
		}
		if item.Render != nil {
			iv.Symbol = string(item.Render.Glyph.Char())
			iv.Color = item.Render.Glyph.HexColor()
		}
		if item.Item.Scroll != domain.ScrollNone {
			iv.Scroll = item.Item.Scroll.String()
		}
		iv.HealAmount = item.Item.HealAmount
		iv.AttackBonus = item.Item.AttackBonus
		iv.DefenseBonus = item.Item.DefenseBonus
		if e.Equipment != nil && (e.Equipment.Weapon == item || e.Equipment.Armor == item) {
			iv.Equipped = true
		}
		inv.Items = append(inv.Items, iv)
	}
	return inv
}
