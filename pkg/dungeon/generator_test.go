package dungeon

import (
	"os"
	"testing"

	"tombs-server/internal/domain"
	"tombs-server/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func TestGenerate_FullConnectivity(t *testing.T) {
	for _, seed := range []int64{1, 42, 777, 123456} {
		for depth := 1; depth <= 8; depth++ {
			level, err := Generate(depth, seed)
			if err != nil {
				t.Fatalf("Generate(depth=%d, seed=%d) failed: %v", depth, seed, err)
			}

			// Каждый проходимый тайл достижим из стартовой позиции
			if !isFullyConnected(level.Grid, level.StartPos) {
				t.Errorf("depth=%d seed=%d: level has unreachable floor", depth, seed)
			}
		}
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	a, err := Generate(3, 999)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Generate(3, 999)
	if err != nil {
		t.Fatal(err)
	}

	if a.StartPos != b.StartPos {
		t.Errorf("Start positions differ: %v vs %v", a.StartPos, b.StartPos)
	}
	if a.Stairs != b.Stairs {
		t.Errorf("Stairs differ: %v vs %v", a.Stairs, b.Stairs)
	}

	for y := 0; y < a.Grid.Height; y++ {
		for x := 0; x < a.Grid.Width; x++ {
			if a.Grid.Map[y][x].Kind != b.Grid.Map[y][x].Kind {
				t.Fatalf("Tile (%d,%d) differs between identical seeds", x, y)
			}
		}
	}

	if len(a.Entities) != len(b.Entities) {
		t.Fatalf("Entity counts differ: %d vs %d", len(a.Entities), len(b.Entities))
	}
	for i := range a.Entities {
		ea, eb := a.Entities[i], b.Entities[i]
		if ea.ID != eb.ID || ea.Pos != eb.Pos || ea.Name != eb.Name {
			t.Errorf("Entity %d differs: %s@%v vs %s@%v", i, ea.Name, ea.Pos, eb.Name, eb.Pos)
		}
	}
}

func TestGenerate_DifferentSeedsDiffer(t *testing.T) {
	a, err := Generate(1, 1)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Generate(1, 2)
	if err != nil {
		t.Fatal(err)
	}

	same := true
	for y := 0; y < a.Grid.Height && same; y++ {
		for x := 0; x < a.Grid.Width; x++ {
			if a.Grid.Map[y][x].Kind != b.Grid.Map[y][x].Kind {
				same = false
				break
			}
		}
	}
	if same {
		t.Error("Different seeds produced identical maps")
	}
}

func TestGenerate_StairsPlacement(t *testing.T) {
	level, err := Generate(1, 7)
	if err != nil {
		t.Fatal(err)
	}

	tile := level.Grid.Map[level.Stairs.Y][level.Stairs.X]
	if tile.Kind != domain.TileStairsDown {
		t.Errorf("Expected stairs tile at %v, got %v", level.Stairs, tile.Kind)
	}

	found := false
	for _, e := range level.Entities {
		if e.Type == domain.EntityTypeStairs {
			if e.Pos != level.Stairs {
				t.Errorf("Stairs entity at %v, expected %v", e.Pos, level.Stairs)
			}
			found = true
		}
	}
	if !found {
		t.Error("Expected a stairs entity on the level")
	}
}

func TestGenerate_StartTileIsFree(t *testing.T) {
	for _, seed := range []int64{5, 55, 555} {
		level, err := Generate(1, seed)
		if err != nil {
			t.Fatal(err)
		}

		if !level.Grid.Map[level.StartPos.Y][level.StartPos.X].Walkable() {
			t.Errorf("seed=%d: start position %v is not walkable", seed, level.StartPos)
		}
		for _, e := range level.Entities {
			if e.Pos == level.StartPos && e.Type == domain.EntityTypeMonster {
				t.Errorf("seed=%d: monster spawned on the hero start tile", seed)
			}
		}
	}
}

func TestGenerate_DepthScalesDifficulty(t *testing.T) {
	// Средняя населённость монстрами должна расти с глубиной
	avgMonsters := func(depth int) float64 {
		total := 0
		runs := 10
		for seed := int64(1); seed <= int64(runs); seed++ {
			level, err := Generate(depth, seed)
			if err != nil {
				t.Fatal(err)
			}
			for _, e := range level.Entities {
				if e.Type == domain.EntityTypeMonster {
					total++
				}
			}
		}
		return float64(total) / float64(runs)
	}

	shallow := avgMonsters(1)
	deep := avgMonsters(7)

	if deep <= shallow {
		t.Errorf("Expected deeper levels to hold more monsters: depth1=%.1f depth7=%.1f", shallow, deep)
	}
}

func TestGenerate_TrollsOnlyDeep(t *testing.T) {
	// До глубины 3 тролли не появляются
	for seed := int64(1); seed <= 10; seed++ {
		level, err := Generate(1, seed)
		if err != nil {
			t.Fatal(err)
		}
		for _, e := range level.Entities {
			if e.Name == "тролль" {
				t.Fatalf("seed=%d: troll spawned at depth 1", seed)
			}
		}
	}
}

func TestValueForDepth(t *testing.T) {
	table := []Transition{{1, 2}, {4, 3}, {6, 5}}

	cases := []struct {
		depth, want int
	}{
		{0, 0}, {1, 2}, {3, 2}, {4, 3}, {5, 3}, {6, 5}, {99, 5},
	}
	for _, c := range cases {
		if got := valueForDepth(table, c.depth); got != c.want {
			t.Errorf("valueForDepth(depth=%d) = %d, want %d", c.depth, got, c.want)
		}
	}
}

func TestCreatePlayer(t *testing.T) {
	p := CreatePlayer("hero_1", domain.Position{X: 3, Y: 4})

	if !p.IsPlayer() {
		t.Fatal("Expected a player entity")
	}
	if p.ID.Index() != 0 {
		t.Error("The hero must always take spawn index 0")
	}
	if p.Stats == nil || p.Inventory == nil || p.Equipment == nil {
		t.Fatal("The hero must carry stats, inventory and equipment")
	}
	if p.Inventory.MaxSlots != domain.InventoryCapacity {
		t.Errorf("Expected %d inventory slots, got %d", domain.InventoryCapacity, p.Inventory.MaxSlots)
	}
}
