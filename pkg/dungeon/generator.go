package dungeon

import (
	"fmt"
	"math/rand"

	"tombs-server/internal/core/types"
	"tombs-server/internal/domain"
	"tombs-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Попыток перегенерировать уровень, если флуд-проверка нашла
// недостижимый пол. На практике L-коридоры между последовательными
// комнатами дают связный уровень с первой попытки.
const maxGenerateAttempts = 16

// Rect - Вспомогательная структура для комнаты
type Rect struct {
	X, Y, W, H int
}

func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.W && r.X+r.W >= other.X &&
		r.Y <= other.Y+other.H && r.Y+r.H >= other.Y
}

// Level - результат генерации: карта и всё её население, кроме героя.
type Level struct {
	Grid     *domain.Grid
	Entities []*domain.Entity
	StartPos domain.Position
	Stairs   domain.Position
}

// Generate создает уровень на глубине depth из переданного сида.
// Один и тот же сид всегда даёт байт-в-байт одинаковый уровень.
// Гарантия: каждый проходимый тайл достижим из стартовой позиции;
// если после maxGenerateAttempts попыток гарантия не выполнена,
// возвращается domain.ErrLevelGeneration.
func Generate(depth int, seed int64) (*Level, error) {
	genLogger := logger.Log.WithFields(logrus.Fields{
		"component": "dungeon_generator",
		"depth":     depth,
		"seed":      seed,
	})

	rng := rand.New(rand.NewSource(seed))

	for attempt := 1; attempt <= maxGenerateAttempts; attempt++ {
		level := generateOnce(depth, rng)
		if level == nil {
			continue
		}
		if !isFullyConnected(level.Grid, level.StartPos) {
			genLogger.WithField("attempt", attempt).Warn("Generated level has unreachable floor, retrying.")
			continue
		}
		genLogger.WithFields(logrus.Fields{
			"attempt":  attempt,
			"entities": len(level.Entities),
		}).Info("Level generated.")
		return level, nil
	}

	return nil, fmt.Errorf("depth %d, seed %d: %w", depth, seed, domain.ErrLevelGeneration)
}

func generateOnce(depth int, rng *rand.Rand) *Level {
	grid := domain.NewGrid(MapWidth, MapHeight, depth)

	var rooms []Rect

	// Вырезаем комнаты. Пересекающиеся попытки просто отбрасываются,
	// поэтому итоговых комнат обычно меньше, чем MaxRooms.
	for i := 0; i < MaxRooms; i++ {
		w := randRange(rng, RoomMinSize, RoomMaxSize)
		h := randRange(rng, RoomMinSize, RoomMaxSize)
		x := randRange(rng, 0, MapWidth-w-1)
		y := randRange(rng, 0, MapHeight-h-1)

		newRoom := Rect{X: x, Y: y, W: w, H: h}
		failed := false
		for _, other := range rooms {
			if newRoom.Intersects(other) {
				failed = true
				break
			}
		}
		if failed {
			continue
		}

		carveRoom(grid, newRoom)

		if len(rooms) > 0 {
			// Соединяем с предыдущей комнатой Г-образным коридором,
			// порядок плеч случаен.
			prevX, prevY := rooms[len(rooms)-1].Center()
			currX, currY := newRoom.Center()

			if rng.Intn(2) == 0 {
				carveHCorridor(grid, prevX, currX, prevY)
				carveVCorridor(grid, prevY, currY, currX)
			} else {
				carveVCorridor(grid, prevY, currY, prevX)
				carveHCorridor(grid, prevX, currX, currY)
			}
		}
		rooms = append(rooms, newRoom)
	}

	if len(rooms) < 2 {
		return nil
	}

	level := &Level{Grid: grid}

	// Герой начинает в центре первой комнаты.
	sx, sy := rooms[0].Center()
	level.StartPos = domain.Position{X: sx, Y: sy}

	// Спавн-индекс определяет порядок хода монстров: он монотонно
	// растёт в порядке создания и упакован в младшие биты ID.
	var spawnIndex uint64

	nextID := func(t domain.EntityType) types.EntityID {
		spawnIndex++
		return types.PackEntityID(uint8(t), uint16(depth), spawnIndex)
	}

	occupied := map[domain.Position]bool{level.StartPos: true}

	spawn := func(e *domain.Entity) {
		level.Entities = append(level.Entities, e)
		occupied[e.Pos] = true
	}

	for _, room := range rooms {
		placeMonsters(rng, depth, room, occupied, nextID, spawn)
		placeItems(rng, depth, room, occupied, nextID, spawn)
	}

	// Лестница вниз - в центре последней комнаты. Монстр или предмет
	// на этом тайле не мешают: лестница не блокирует проход.
	lx, ly := rooms[len(rooms)-1].Center()
	level.Stairs = domain.Position{X: lx, Y: ly}
	grid.Map[ly][lx].Kind = domain.TileStairsDown
	level.Entities = append(level.Entities, newStairs(nextID(domain.EntityTypeStairs), level.Stairs))

	return level
}

func placeMonsters(rng *rand.Rand, depth int, room Rect, occupied map[domain.Position]bool,
	nextID func(domain.EntityType) types.EntityID, spawn func(*domain.Entity)) {

	count := rng.Intn(valueForDepth(maxMonstersPerRoom, depth) + 1)
	for i := 0; i < count; i++ {
		pos := randomPointIn(rng, room)
		if occupied[pos] {
			continue
		}
		if rng.Intn(100) < valueForDepth(trollChance, depth) {
			spawn(newTroll(nextID(domain.EntityTypeMonster), pos))
		} else {
			spawn(newOrc(nextID(domain.EntityTypeMonster), pos))
		}
	}
}

func placeItems(rng *rand.Rand, depth int, room Rect, occupied map[domain.Position]bool,
	nextID func(domain.EntityType) types.EntityID, spawn func(*domain.Entity)) {

	count := rng.Intn(valueForDepth(maxItemsPerRoom, depth) + 1)
	for i := 0; i < count; i++ {
		pos := randomPointIn(rng, room)
		if occupied[pos] {
			continue
		}

		weights := []int{
			35, // лечебное зелье - базовый вес, не зависит от глубины
			valueForDepth(lightningChance, depth),
			valueForDepth(fireballChance, depth),
			valueForDepth(confusionChance, depth),
			valueForDepth(swordChance, depth),
			valueForDepth(armorChance, depth),
		}

		id := nextID(domain.EntityTypeItem)
		switch weightedChoice(rng, weights) {
		case 0:
			spawn(newHealingPotion(id, pos))
		case 1:
			spawn(newScroll(id, pos, domain.ScrollLightning))
		case 2:
			spawn(newScroll(id, pos, domain.ScrollFireball))
		case 3:
			spawn(newScroll(id, pos, domain.ScrollConfusion))
		case 4:
			spawn(newSword(id, pos))
		case 5:
			spawn(newShield(id, pos))
		}
	}
}

// isFullyConnected проверяет флуд-заливкой (4 направления), что каждый
// проходимый тайл достижим из start.
func isFullyConnected(g *domain.Grid, start domain.Position) bool {
	if !g.InBounds(start.X, start.Y) || !g.Map[start.Y][start.X].Walkable() {
		return false
	}

	reached := make(map[int]bool)
	queue := []domain.Position{start}
	reached[g.GetIndex(start.X, start.Y)] = true

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}} {
			nx, ny := cur.X+d[0], cur.Y+d[1]
			if nx < 0 || ny < 0 || nx >= g.Width || ny >= g.Height {
				continue
			}
			idx := g.GetIndex(nx, ny)
			if reached[idx] || !g.Map[ny][nx].Walkable() {
				continue
			}
			reached[idx] = true
			queue = append(queue, domain.Position{X: nx, Y: ny})
		}
	}

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.Map[y][x].Walkable() && !reached[g.GetIndex(x, y)] {
				return false
			}
		}
	}
	return true
}

// --- Вспомогательные функции ---

// carveRoom вырезает внутренность комнаты, внешний периметр остаётся стеной.
func carveRoom(g *domain.Grid, room Rect) {
	for y := room.Y + 1; y < room.Y+room.H; y++ {
		for x := room.X + 1; x < room.X+room.W; x++ {
			g.Map[y][x].Kind = domain.TileFloor
		}
	}
}

func carveHCorridor(g *domain.Grid, x1, x2, y int) {
	for x := min(x1, x2); x <= max(x1, x2); x++ {
		g.Map[y][x].Kind = domain.TileFloor
	}
}

func carveVCorridor(g *domain.Grid, y1, y2, x int) {
	for y := min(y1, y2); y <= max(y1, y2); y++ {
		g.Map[y][x].Kind = domain.TileFloor
	}
}

// randomPointIn возвращает случайную точку внутри комнаты (не на стене).
func randomPointIn(rng *rand.Rand, room Rect) domain.Position {
	return domain.Position{
		X: randRange(rng, room.X+1, room.X+room.W-1),
		Y: randRange(rng, room.Y+1, room.Y+room.H-1),
	}
}

func randRange(rng *rand.Rand, min, max int) int {
	return rng.Intn(max-min+1) + min
}
