package domain

import (
	"fmt"

	"tombs-server/internal/core/types"
)

// GetIndex возвращает линейный индекс клетки в SpatialHash.
func (g *Grid) GetIndex(x, y int) int {
	return y*g.Width + x
}

// InBounds проверяет, что координата лежит внутри карты.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// TileAt возвращает тайл по координате. Выход за границы — ошибка,
// а не молчаливое притягивание к краю.
func (g *Grid) TileAt(pos Position) (Tile, error) {
	if !g.InBounds(pos.X, pos.Y) {
		return Tile{}, fmt.Errorf("tile at (%d,%d): %w", pos.X, pos.Y, ErrOutOfBounds)
	}
	return g.Map[pos.Y][pos.X], nil
}

// IsWalkable сообщает, проходим ли тайл.
func (g *Grid) IsWalkable(pos Position) (bool, error) {
	t, err := g.TileAt(pos)
	if err != nil {
		return false, err
	}
	return t.Walkable(), nil
}

// IsTransparent сообщает, пропускает ли тайл взгляд.
func (g *Grid) IsTransparent(pos Position) (bool, error) {
	t, err := g.TileAt(pos)
	if err != nil {
		return false, err
	}
	return t.Transparent(), nil
}

// SetVisibility выставляет состояние видимости тайла.
func (g *Grid) SetVisibility(pos Position, v Visibility) error {
	if !g.InBounds(pos.X, pos.Y) {
		return fmt.Errorf("set visibility at (%d,%d): %w", pos.X, pos.Y, ErrOutOfBounds)
	}
	g.Map[pos.Y][pos.X].Visibility = v
	return nil
}

// PlaceCorpse ставит декоративную отметку трупа. Проходимость тайла
// не меняется: по трупам ходят.
func (g *Grid) PlaceCorpse(pos Position) {
	if g.InBounds(pos.X, pos.Y) {
		g.Map[pos.Y][pos.X].Corpse = true
	}
}

// --- Индексы сущностей ---

// GetEntitiesAt возвращает список сущностей в конкретной клетке (быстро!).
func (g *Grid) GetEntitiesAt(x, y int) []*Entity {
	if !g.InBounds(x, y) {
		return nil
	}
	return g.SpatialHash[g.GetIndex(x, y)]
}

// BlockingEntityAt возвращает живую блокирующую сущность на клетке, если есть.
func (g *Grid) BlockingEntityAt(pos Position) *Entity {
	for _, e := range g.GetEntitiesAt(pos.X, pos.Y) {
		if e.Blocks() {
			return e
		}
	}
	return nil
}

// GetEntity ищет сущность по ID.
func (g *Grid) GetEntity(id types.EntityID) *Entity {
	if g.EntityRegistry == nil {
		return nil
	}
	return g.EntityRegistry[id]
}

// RegisterEntity добавляет сущность в реестр.
func (g *Grid) RegisterEntity(e *Entity) {
	if g.EntityRegistry == nil {
		g.EntityRegistry = make(map[types.EntityID]*Entity)
	}
	g.EntityRegistry[e.ID] = e
}

// UnregisterEntity удаляет сущность из реестра.
func (g *Grid) UnregisterEntity(id types.EntityID) {
	if g.EntityRegistry != nil {
		delete(g.EntityRegistry, id)
	}
}

// AddEntity добавляет сущность в пространственный индекс.
func (g *Grid) AddEntity(e *Entity) {
	idx := g.GetIndex(e.Pos.X, e.Pos.Y)
	g.SpatialHash[idx] = append(g.SpatialHash[idx], e)
}

// RemoveEntity удаляет сущность из индекса (смерть, подбор предмета).
func (g *Grid) RemoveEntity(e *Entity) {
	idx := g.GetIndex(e.Pos.X, e.Pos.Y)
	entities := g.SpatialHash[idx]

	for i, other := range entities {
		if other.ID == e.ID {
			// Swap with last: порядок внутри клетки не важен
			lastIdx := len(entities) - 1
			entities[i] = entities[lastIdx]
			g.SpatialHash[idx] = entities[:lastIdx]
			return
		}
	}
}

// MoveEntity перемещает сущность в индексе с полной проверкой:
// границы, стены, занятость живой сущностью.
func (g *Grid) MoveEntity(e *Entity, newPos Position) error {
	walkable, err := g.IsWalkable(newPos)
	if err != nil {
		return err
	}
	if !walkable {
		return fmt.Errorf("move to (%d,%d): %w", newPos.X, newPos.Y, ErrBlocked)
	}
	if other := g.BlockingEntityAt(newPos); other != nil && other.ID != e.ID {
		return fmt.Errorf("move to (%d,%d), occupied by %s: %w", newPos.X, newPos.Y, other.Name, ErrBlocked)
	}

	g.RemoveEntity(e)
	e.Pos = newPos
	g.AddEntity(e)
	return nil
}
