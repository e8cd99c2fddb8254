package domain

import "tombs-server/internal/core/types"

type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Tile — одна клетка карты.
// Проходимость и прозрачность выводятся из вида тайла; труп — чисто
// декоративная отметка и на физику не влияет.
type Tile struct {
	X          int        `json:"x"`
	Y          int        `json:"y"`
	Kind       TileKind   `json:"kind"`
	Visibility Visibility `json:"visibility"`
	Corpse     bool       `json:"corpse,omitempty"`
}

// Walkable сообщает, можно ли стоять на тайле.
// Лестница вниз всегда проходима.
func (t Tile) Walkable() bool {
	return t.Kind != TileWall
}

// Transparent сообщает, пропускает ли тайл взгляд.
// Лестница вниз всегда прозрачна.
func (t Tile) Transparent() bool {
	return t.Kind != TileWall
}

// Grid — карта одного уровня с фиксированными размерами.
// Живёт ровно один уровень: спуск по лестнице создаёт новый Grid.
type Grid struct {
	Map    [][]Tile `json:"map"`
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Depth  int      `json:"depth"`

	// SpatialHash: индекс клетки -> сущности на ней.
	// Ключ: Y*Width + X. Клиенту не отправляется.
	SpatialHash    map[int][]*Entity            `json:"-"`
	EntityRegistry map[types.EntityID]*Entity   `json:"-"`
}

// NewGrid создает карту, целиком заполненную стенами.
func NewGrid(width, height, depth int) *Grid {
	tiles := make([][]Tile, height)
	for y := 0; y < height; y++ {
		row := make([]Tile, width)
		for x := 0; x < width; x++ {
			row[x] = Tile{X: x, Y: y, Kind: TileWall}
		}
		tiles[y] = row
	}
	return &Grid{
		Map:            tiles,
		Width:          width,
		Height:         height,
		Depth:          depth,
		SpatialHash:    make(map[int][]*Entity),
		EntityRegistry: make(map[types.EntityID]*Entity),
	}
}
