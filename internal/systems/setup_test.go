package systems

import (
	"os"
	"testing"

	"tombs-server/internal/core/types"
	"tombs-server/internal/domain"
	"tombs-server/pkg/logger"
)

func TestMain(m *testing.M) {
	// Initialize the global logger before running any tests
	logger.Init()

	// Exit with the result of the tests
	os.Exit(m.Run())
}

// newOpenGrid builds a grid of the given size with every tile carved
// to floor. Walls can be placed back per-test.
func newOpenGrid(width, height int) *domain.Grid {
	g := domain.NewGrid(width, height, 1)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			g.Map[y][x].Kind = domain.TileFloor
		}
	}
	return g
}

func setWall(g *domain.Grid, x, y int) {
	g.Map[y][x].Kind = domain.TileWall
}

func newTestPlayer(x, y int) *domain.Entity {
	return &domain.Entity{
		ID:   types.PackEntityID(uint8(domain.EntityTypePlayer), 0, 0),
		Type: domain.EntityTypePlayer,
		Name: "Герой",
		Pos:  domain.Position{X: x, Y: y},
		Stats: &domain.StatsComponent{
			HP: 30, MaxHP: 30, Power: 5, Defense: 2, Level: 1,
		},
		Inventory: &domain.InventoryComponent{MaxSlots: domain.InventoryCapacity},
		Equipment: &domain.EquipmentComponent{},
	}
}

func newTestMonster(index uint64, x, y int) *domain.Entity {
	return &domain.Entity{
		ID:   types.PackEntityID(uint8(domain.EntityTypeMonster), 1, index),
		Type: domain.EntityTypeMonster,
		Name: "орк",
		Pos:  domain.Position{X: x, Y: y},
		Stats: &domain.StatsComponent{
			HP: 10, MaxHP: 10, Power: 3, Defense: 0, XP: 35,
		},
		AI: &domain.AIComponent{State: domain.AIStateIdle},
	}
}

func newTestItem(index uint64, name string, item *domain.ItemComponent) *domain.Entity {
	return &domain.Entity{
		ID:   types.PackEntityID(uint8(domain.EntityTypeItem), 1, index),
		Type: domain.EntityTypeItem,
		Name: name,
		Item: item,
	}
}

// fullVisibility returns an FOV map covering the whole grid, for tests
// that do not care about occlusion.
func fullVisibility(g *domain.Grid) map[int]bool {
	visible := make(map[int]bool)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			visible[g.GetIndex(x, y)] = true
		}
	}
	return visible
}
