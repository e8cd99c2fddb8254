package systems

import (
	"errors"
	"testing"

	"tombs-server/internal/domain"
)

func TestExecuteMove_Walks(t *testing.T) {
	g := newOpenGrid(10, 10)
	player := newTestPlayer(5, 5)
	g.AddEntity(player)

	res, err := ExecuteMove(player, 1, 0, g)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !res.HasMoved {
		t.Fatal("Expected the step to succeed")
	}
	if player.Pos.X != 6 || player.Pos.Y != 5 {
		t.Errorf("Expected position (6,5), got %v", player.Pos)
	}

	// SpatialHash должен переехать вместе с сущностью
	if len(g.GetEntitiesAt(5, 5)) != 0 {
		t.Error("Old tile must be empty after the move")
	}
	if len(g.GetEntitiesAt(6, 5)) != 1 {
		t.Error("New tile must hold the entity")
	}
}

func TestExecuteMove_OutOfBounds(t *testing.T) {
	g := newOpenGrid(10, 10)
	player := newTestPlayer(0, 0)
	g.AddEntity(player)

	_, err := ExecuteMove(player, -1, 0, g)
	if !errors.Is(err, domain.ErrOutOfBounds) {
		t.Fatalf("Expected ErrOutOfBounds, got %v", err)
	}
	if player.Pos.X != 0 || player.Pos.Y != 0 {
		t.Error("Position must not change on a rejected step")
	}
}

func TestExecuteMove_WallBlocked(t *testing.T) {
	g := newOpenGrid(10, 10)
	setWall(g, 6, 5)
	player := newTestPlayer(5, 5)
	g.AddEntity(player)

	_, err := ExecuteMove(player, 1, 0, g)
	if !errors.Is(err, domain.ErrBlocked) {
		t.Fatalf("Expected ErrBlocked, got %v", err)
	}
}

func TestCalculateMove_BlockedByCreature(t *testing.T) {
	g := newOpenGrid(10, 10)
	player := newTestPlayer(5, 5)
	orc := newTestMonster(1, 6, 5)
	g.AddEntity(player)
	g.AddEntity(orc)

	res := CalculateMove(player, 1, 0, g)
	if res.HasMoved {
		t.Fatal("Step into an occupied tile must not succeed")
	}
	if res.BlockedBy != orc {
		t.Errorf("Expected the orc as blocker, got %v", res.BlockedBy)
	}

	// Сам мир не тронут: CalculateMove чистая функция
	if player.Pos.X != 5 {
		t.Error("CalculateMove must not mutate positions")
	}
}

func TestCalculateMove_CorpseIsPassable(t *testing.T) {
	g := newOpenGrid(10, 10)
	player := newTestPlayer(5, 5)
	orc := newTestMonster(1, 6, 5)
	g.AddEntity(player)
	g.AddEntity(orc)
	KillEntity(g, orc)

	res := CalculateMove(player, 1, 0, g)
	if !res.HasMoved {
		t.Error("Corpses must not block movement")
	}
}

func TestCalculateMove_ItemIsPassable(t *testing.T) {
	g := newOpenGrid(10, 10)
	player := newTestPlayer(5, 5)
	potion := newTestItem(1, "зелье лечения", &domain.ItemComponent{
		Kind:       domain.ItemPotion,
		HealAmount: domain.HealAmount,
	})
	potion.Pos = domain.Position{X: 6, Y: 5}
	g.AddEntity(player)
	g.AddEntity(potion)

	res := CalculateMove(player, 1, 0, g)
	if !res.HasMoved {
		t.Error("Items must not block movement")
	}
}

func TestHasLineOfSight(t *testing.T) {
	g := newOpenGrid(10, 10)

	a := domain.Position{X: 1, Y: 5}
	b := domain.Position{X: 8, Y: 5}

	if !HasLineOfSight(g, a, b) {
		t.Error("Expected clear line of sight in the open")
	}

	setWall(g, 4, 5)
	if HasLineOfSight(g, a, b) {
		t.Error("Expected the wall to break line of sight")
	}
}
