package engine

import (
	"testing"

	"tombs-server/internal/domain"
)

func TestTurnManager_SpawnOrder(t *testing.T) {
	tm := NewTurnManager()

	// Добавляем в перемешанном порядке
	third := spawnMonster(3, 1, 1)
	first := spawnMonster(1, 2, 2)
	second := spawnMonster(2, 3, 3)

	tm.AddEntity(third)
	tm.AddEntity(first)
	tm.AddEntity(second)

	ordered := tm.OrderedEntities()
	if len(ordered) != 3 {
		t.Fatalf("Expected 3 entities, got %d", len(ordered))
	}
	if ordered[0] != first || ordered[1] != second || ordered[2] != third {
		t.Errorf("Turn order must follow spawn index, got %v %v %v",
			ordered[0].ID, ordered[1].ID, ordered[2].ID)
	}
}

func TestTurnManager_Remove(t *testing.T) {
	tm := NewTurnManager()

	a := spawnMonster(1, 1, 1)
	b := spawnMonster(2, 2, 2)
	tm.AddEntity(a)
	tm.AddEntity(b)

	tm.RemoveEntity(a.ID)

	if tm.Len() != 1 {
		t.Fatalf("Expected 1 entity after removal, got %d", tm.Len())
	}
	ordered := tm.OrderedEntities()
	if ordered[0] != b {
		t.Error("Expected the remaining monster to be b")
	}

	// Повторное удаление безопасно
	tm.RemoveEntity(a.ID)
	if tm.Len() != 1 {
		t.Error("Removing a missing entity must be a no-op")
	}
}

func TestTurnManager_IgnoresEntitiesWithoutAI(t *testing.T) {
	tm := NewTurnManager()

	item := &domain.Entity{Type: domain.EntityTypeItem, Name: "меч"}
	tm.AddEntity(item)

	if tm.Len() != 0 {
		t.Error("Items must never enter the turn queue")
	}
}
