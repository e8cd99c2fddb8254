package dungeon

import (
	"math/rand"

	"tombs-server/internal/core/types"
	"tombs-server/internal/domain"
)

// Константы генерации
const (
	MapWidth  = 80
	MapHeight = 43

	MaxRooms    = 30
	RoomMinSize = 6
	RoomMaxSize = 10
)

// Transition - точка в таблице масштабирования сложности: начиная с
// глубины Depth действует значение Value.
type Transition struct {
	Depth int
	Value int
}

// valueForDepth возвращает значение последней ступени таблицы, чья
// глубина не превышает текущую. Таблица упорядочена по возрастанию Depth.
func valueForDepth(table []Transition, depth int) int {
	value := 0
	for _, t := range table {
		if depth >= t.Depth {
			value = t.Value
		} else {
			break
		}
	}
	return value
}

// Таблицы сложности: чем глубже, тем плотнее и злее населён уровень.
var (
	maxMonstersPerRoom = []Transition{{1, 2}, {4, 3}, {6, 5}}
	maxItemsPerRoom    = []Transition{{1, 1}, {4, 2}}
	trollChance        = []Transition{{3, 15}, {5, 30}, {7, 60}}

	lightningChance = []Transition{{4, 25}}
	fireballChance  = []Transition{{6, 25}}
	confusionChance = []Transition{{2, 10}}
	swordChance     = []Transition{{4, 5}}
	armorChance     = []Transition{{8, 15}}
)

// weightedChoice выбирает индекс пропорционально весам. Нулевые веса
// никогда не выбираются.
func weightedChoice(rng *rand.Rand, weights []int) int {
	total := 0
	for _, w := range weights {
		total += w
	}
	roll := rng.Intn(total)
	for i, w := range weights {
		if roll < w {
			return i
		}
		roll -= w
	}
	return len(weights) - 1
}

// --- Шаблоны монстров ---

func newOrc(id types.EntityID, pos domain.Position) *domain.Entity {
	return &domain.Entity{
		ID:     id,
		Type:   domain.EntityTypeMonster,
		Name:   "орк",
		Pos:    pos,
		Render: &domain.RenderComponent{Glyph: types.MakeGlyph(0x3F7F3F, 'o')},
		Stats: &domain.StatsComponent{
			HP: 10, MaxHP: 10, Power: 3, Defense: 0, XP: 35, Level: 1,
		},
		AI:       &domain.AIComponent{State: domain.AIStateIdle},
		Statuses: domain.StatusMap{},
	}
}

func newTroll(id types.EntityID, pos domain.Position) *domain.Entity {
	return &domain.Entity{
		ID:     id,
		Type:   domain.EntityTypeMonster,
		Name:   "тролль",
		Pos:    pos,
		Render: &domain.RenderComponent{Glyph: types.MakeGlyph(0x007F00, 'T')},
		Stats: &domain.StatsComponent{
			HP: 16, MaxHP: 16, Power: 4, Defense: 1, XP: 100, Level: 1,
		},
		AI:       &domain.AIComponent{State: domain.AIStateIdle},
		Statuses: domain.StatusMap{},
	}
}

// --- Шаблоны предметов ---

func newHealingPotion(id types.EntityID, pos domain.Position) *domain.Entity {
	return &domain.Entity{
		ID:     id,
		Type:   domain.EntityTypeItem,
		Name:   "лечебное зелье",
		Pos:    pos,
		Render: &domain.RenderComponent{Glyph: types.MakeGlyph(0x7F00FF, '!')},
		Item:   &domain.ItemComponent{Kind: domain.ItemPotion, HealAmount: domain.HealAmount},
	}
}

func newScroll(id types.EntityID, pos domain.Position, kind domain.ScrollKind) *domain.Entity {
	names := map[domain.ScrollKind]string{
		domain.ScrollLightning: "свиток молнии",
		domain.ScrollFireball:  "свиток огненного шара",
		domain.ScrollConfusion: "свиток замешательства",
	}
	return &domain.Entity{
		ID:     id,
		Type:   domain.EntityTypeItem,
		Name:   names[kind],
		Pos:    pos,
		Render: &domain.RenderComponent{Glyph: types.MakeGlyph(0xFFFF3F, '#')},
		Item:   &domain.ItemComponent{Kind: domain.ItemScroll, Scroll: kind},
	}
}

func newSword(id types.EntityID, pos domain.Position) *domain.Entity {
	return &domain.Entity{
		ID:     id,
		Type:   domain.EntityTypeItem,
		Name:   "меч",
		Pos:    pos,
		Render: &domain.RenderComponent{Glyph: types.MakeGlyph(0x00BFFF, '/')},
		Item:   &domain.ItemComponent{Kind: domain.ItemWeapon, AttackBonus: 3},
	}
}

func newShield(id types.EntityID, pos domain.Position) *domain.Entity {
	return &domain.Entity{
		ID:     id,
		Type:   domain.EntityTypeItem,
		Name:   "щит",
		Pos:    pos,
		Render: &domain.RenderComponent{Glyph: types.MakeGlyph(0xBF7100, '[')},
		Item:   &domain.ItemComponent{Kind: domain.ItemArmor, DefenseBonus: 1},
	}
}

func newStairs(id types.EntityID, pos domain.Position) *domain.Entity {
	return &domain.Entity{
		ID:     id,
		Type:   domain.EntityTypeStairs,
		Name:   "лестница вниз",
		Pos:    pos,
		Render: &domain.RenderComponent{Glyph: types.MakeGlyph(0xFFFFFF, '>')},
	}
}
