package engine

import (
	"testing"

	"tombs-server/internal/core/types"
	"tombs-server/internal/domain"
	"tombs-server/internal/infrastructure/storage"
	"tombs-server/internal/systems"
)

func TestSnapshotRestore_RoundTrip(t *testing.T) {
	s, inst, player := newTestWorld(t, 5, 5)

	orc := spawnMonster(1, 9, 5)
	inst.addEntity(orc)

	// Предмет подобран: в рюкзаке, не на полу
	potion := &domain.Entity{
		ID:   types.PackEntityID(uint8(domain.EntityTypeItem), 1, 2),
		Type: domain.EntityTypeItem,
		Name: "лечебное зелье",
		Pos:  player.Pos,
		Item: &domain.ItemComponent{Kind: domain.ItemPotion, HealAmount: domain.HealAmount},
	}
	inst.addEntity(potion)
	if _, err := systems.TryPickup(player, inst.Grid); err != nil {
		t.Fatal(err)
	}

	player.Stats.HP = 12
	inst.Turn = 33

	snap := s.Snapshot()

	// Снимок не должен содержать носимые предметы отдельной строкой
	for _, e := range snap.Entities {
		if e.ID == potion.ID {
			t.Fatal("Carried items must be serialized inside the hero blob only")
		}
	}

	// Полный цикл через бинарный формат на диске
	svc := storage.NewSnapshotService(t.TempDir())
	path, err := svc.Save(snap)
	if err != nil {
		t.Fatal(err)
	}
	loaded, err := svc.Load(path)
	if err != nil {
		t.Fatal(err)
	}

	restored, err := RestoreService(loaded)
	if err != nil {
		t.Fatal(err)
	}

	if restored.Current.Depth != 1 || restored.Current.Turn != 33 {
		t.Errorf("Restored instance lost depth/turn: %d/%d",
			restored.Current.Depth, restored.Current.Turn)
	}
	if restored.Player.Stats.HP != 12 {
		t.Errorf("Restored hero HP = %d, want 12", restored.Player.Stats.HP)
	}

	// Зелье в рюкзаке и НЕ лежит на полу
	if restored.Player.Inventory.FindItem(potion.ID) == nil {
		t.Error("Restored hero must keep the carried potion")
	}
	for _, e := range restored.Current.Grid.GetEntitiesAt(5, 5) {
		if e.ID == potion.ID {
			t.Error("Carried potion must not reappear on the floor")
		}
	}

	// Монстр жив и снова в очереди ходов
	if restored.Current.Grid.GetEntity(orc.ID) == nil {
		t.Error("Restored monster missing from the registry")
	}
	if restored.Current.TurnManager.Len() != 1 {
		t.Errorf("Expected 1 monster in the turn queue, got %d",
			restored.Current.TurnManager.Len())
	}

	// Мир остаётся играбельным: команда выполняется без паники
	restored.Current.ExecuteCommand(emptyCmd(domain.ActionWait))
	if restored.Current.Turn != 34 {
		t.Errorf("Restored world must keep ticking, turn = %d", restored.Current.Turn)
	}
}

func TestRestoreService_NoPlayer(t *testing.T) {
	grid := domain.NewGrid(5, 5, 1)
	snap := &storage.Snapshot{
		Seed:  1,
		Depth: 1,
		Grid:  grid,
	}

	if _, err := RestoreService(snap); err == nil {
		t.Error("Expected an error for a snapshot without a player")
	}
}
